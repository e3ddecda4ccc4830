package posapi

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

func (c *Client) GetInventory(ctx context.Context) (*domain.InventoryResponse, error) {
	var resp domain.InventoryResponse
	if err := c.get(ctx, "/api/inventory", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetInventoryBySupplier(ctx context.Context, supplierName string) (*domain.InventoryResponse, error) {
	var resp domain.InventoryResponse
	if err := c.get(ctx, "/api/inventory/supplier/"+pathSegment(supplierName), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetInventoryItem(ctx context.Context, itemID string) (*domain.InventoryItemResponse, error) {
	var resp domain.InventoryItemResponse
	if err := c.get(ctx, "/api/inventory/"+pathSegment(itemID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateInventoryItem(ctx context.Context, req domain.InventoryItemRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.post(ctx, "/api/inventory", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateInventoryItem(ctx context.Context, itemID string, req domain.InventoryItemRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.put(ctx, "/api/inventory/"+pathSegment(itemID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteInventoryItem(ctx context.Context, itemID string) (*domain.Result, error) {
	var resp domain.Result
	if err := c.delete(ctx, "/api/inventory/"+pathSegment(itemID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package posapi

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

func (c *Client) GetSuppliers(ctx context.Context) (*domain.SuppliersResponse, error) {
	var resp domain.SuppliersResponse
	if err := c.get(ctx, "/api/suppliers", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSupplier(ctx context.Context, supplierID string) (*domain.SupplierResponse, error) {
	var resp domain.SupplierResponse
	if err := c.get(ctx, "/api/suppliers/"+pathSegment(supplierID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateSupplier(ctx context.Context, req domain.SupplierRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.post(ctx, "/api/suppliers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, supplierID string, req domain.SupplierRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.put(ctx, "/api/suppliers/"+pathSegment(supplierID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, supplierID string) (*domain.Result, error) {
	var resp domain.Result
	if err := c.delete(ctx, "/api/suppliers/"+pathSegment(supplierID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetCategories(ctx context.Context) (*domain.CategoriesResponse, error) {
	var resp domain.CategoriesResponse
	if err := c.get(ctx, "/api/categories", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID string) (*domain.CategoryResponse, error) {
	var resp domain.CategoryResponse
	if err := c.get(ctx, "/api/categories/"+pathSegment(categoryID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.post(ctx, "/api/categories", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.put(ctx, "/api/categories/"+pathSegment(categoryID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) (*domain.Result, error) {
	var resp domain.Result
	if err := c.delete(ctx, "/api/categories/"+pathSegment(categoryID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package posapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

const (
	DefaultTopItemsLimit  = 5
	DefaultTopItemsPeriod = "all"
)

func (c *Client) GetSales(ctx context.Context) (*domain.SalesResponse, error) {
	var resp domain.SalesResponse
	if err := c.get(ctx, "/api/sales", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetRecentSales(ctx context.Context) (*domain.SalesResponse, error) {
	var resp domain.SalesResponse
	if err := c.get(ctx, "/api/sales/recent", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetTopSellingItems(ctx context.Context, limit int, period string) (*domain.TopItemsResponse, error) {
	if limit <= 0 {
		limit = DefaultTopItemsLimit
	}
	if period == "" {
		period = DefaultTopItemsPeriod
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("period", period)

	var resp domain.TopItemsResponse
	if err := c.get(ctx, "/api/sales/top-items?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetFilteredSales(ctx context.Context, filter domain.SalesFilter, page int) (*domain.FilteredSalesResponse, error) {
	if page < 1 {
		page = 1
	}
	dateFilter := filter.DateFilter
	if dateFilter == "" {
		dateFilter = "all"
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("dateFilter", dateFilter)
	params.Set("customerFilter", filter.CustomerFilter)
	params.Set("amountFilter", filter.AmountFilter)
	params.Set("startDate", filter.StartDate)
	params.Set("endDate", filter.EndDate)

	var resp domain.FilteredSalesResponse
	if err := c.get(ctx, "/api/sales/filtered?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.post(ctx, "/api/sales", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSale(ctx context.Context, saleID string, fields map[string]interface{}) (*domain.Result, error) {
	var resp domain.Result
	if err := c.put(ctx, "/api/sales/"+pathSegment(saleID), fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteSale(ctx context.Context, saleID string) (*domain.Result, error) {
	var resp domain.Result
	if err := c.delete(ctx, "/api/sales/"+pathSegment(saleID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

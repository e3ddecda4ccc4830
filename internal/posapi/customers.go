package posapi

import (
	"context"
	"fmt"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

const (
	DefaultCustomerSalesLimit = 20
	profilePictureField       = "profile_picture"
)

func (c *Client) GetCustomers(ctx context.Context) (*domain.CustomersResponse, error) {
	var resp domain.CustomersResponse
	if err := c.get(ctx, "/api/customers", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetCustomerProfile(ctx context.Context, name string) (*domain.CustomerResponse, error) {
	var resp domain.CustomerResponse
	if err := c.get(ctx, "/api/customers/"+pathSegment(name), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCustomerProfile posts the profile form, picture included, as
// multipart/form-data.
func (c *Client) UpdateCustomerProfile(ctx context.Context, update domain.CustomerUpdate) (*domain.Result, error) {
	var file *FormFile
	if update.Picture != nil {
		file = &FormFile{
			Field:    profilePictureField,
			Filename: update.Picture.Filename,
			Content:  update.Picture.Content,
		}
	}

	var resp domain.Result
	if err := c.postForm(ctx, "/api/customers/update", update.Fields(), file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetCustomerSales(ctx context.Context, name string, page, limit int) (*domain.CustomerSalesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultCustomerSalesLimit
	}
	endpoint := fmt.Sprintf("/api/customers/%s/sales?page=%d&limit=%d", pathSegment(name), page, limit)

	var resp domain.CustomerSalesResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package posapi

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

func (c *Client) GetUsers(ctx context.Context) (*domain.UsersResponse, error) {
	var resp domain.UsersResponse
	if err := c.get(ctx, "/api/users", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateUser(ctx context.Context, req domain.UserRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.post(ctx, "/api/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID string, req domain.UserRequest) (*domain.Result, error) {
	var resp domain.Result
	if err := c.put(ctx, "/api/users/"+pathSegment(userID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (*domain.Result, error) {
	var resp domain.Result
	if err := c.delete(ctx, "/api/users/"+pathSegment(userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

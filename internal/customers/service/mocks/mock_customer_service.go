package mocks

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/customers/domain"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) (*domain.ListView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.ListView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) Profile(ctx context.Context, name string) (*domain.ProfileView, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.ProfileView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) EditForm(ctx context.Context, name string) (*domain.EditForm, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.EditForm), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, input domain.UpdateInput, picture *posdomain.ProfilePicture) (string, error) {
	args := m.Called(ctx, input, picture)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerService) Sales(ctx context.Context, name string, page, limit int) (*domain.SalesPage, error) {
	args := m.Called(ctx, name, page, limit)
	if v := args.Get(0); v != nil {
		return v.(*domain.SalesPage), args.Error(1)
	}
	return nil, args.Error(1)
}

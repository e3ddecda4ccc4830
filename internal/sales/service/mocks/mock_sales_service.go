package mocks

import (
	"context"

	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/sales/domain"
	"github.com/stretchr/testify/mock"
)

type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) History(ctx context.Context) (*domain.HistoryView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.HistoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesService) FilteredHistory(ctx context.Context, filter posdomain.SalesFilter, page int) (*domain.FilteredHistoryView, error) {
	args := m.Called(ctx, filter, page)
	if v := args.Get(0); v != nil {
		return v.(*domain.FilteredHistoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesService) RecentSales(ctx context.Context) *domain.RecentView {
	args := m.Called(ctx)
	return args.Get(0).(*domain.RecentView)
}

func (m *MockSalesService) TopItems(ctx context.Context, limit int, period string) *domain.TopItemsView {
	args := m.Called(ctx, limit, period)
	return args.Get(0).(*domain.TopItemsView)
}

func (m *MockSalesService) DeleteSale(ctx context.Context, saleID string) (string, error) {
	args := m.Called(ctx, saleID)
	return args.String(0), args.Error(1)
}

func (m *MockSalesService) SaleInventory(ctx context.Context, sessionID string) (*domain.SaleInventoryView, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*domain.SaleInventoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesService) ChangePending(sessionID, itemID, action string) int {
	args := m.Called(sessionID, itemID, action)
	return args.Int(0)
}

func (m *MockSalesService) AddToCart(ctx context.Context, sessionID, itemID string) (*domain.AddedToCart, error) {
	args := m.Called(ctx, sessionID, itemID)
	if v := args.Get(0); v != nil {
		return v.(*domain.AddedToCart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesService) RemoveFromCart(sessionID, itemID string) bool {
	args := m.Called(sessionID, itemID)
	return args.Bool(0)
}

func (m *MockSalesService) ClearCart(sessionID string) {
	m.Called(sessionID)
}

func (m *MockSalesService) ResetSession(sessionID string) {
	m.Called(sessionID)
}

func (m *MockSalesService) Cart(sessionID string) domain.CartView {
	args := m.Called(sessionID)
	return args.Get(0).(domain.CartView)
}

func (m *MockSalesService) CompleteSale(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	args := m.Called(ctx, sessionID, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.CheckoutResult), args.Error(1)
	}
	return nil, args.Error(1)
}

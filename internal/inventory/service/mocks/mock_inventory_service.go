package mocks

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/inventory/domain"
	"github.com/stretchr/testify/mock"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Table(ctx context.Context, filter domain.Filter) (*domain.TableView, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.(*domain.TableView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryService) BySupplier(ctx context.Context, supplier string) (*domain.SupplierInventoryView, error) {
	args := m.Called(ctx, supplier)
	if v := args.Get(0); v != nil {
		return v.(*domain.SupplierInventoryView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryService) ItemForm(ctx context.Context, itemID string) (*domain.ItemForm, error) {
	args := m.Called(ctx, itemID)
	if v := args.Get(0); v != nil {
		return v.(*domain.ItemForm), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryService) SaveItem(ctx context.Context, input domain.ItemInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, itemID string) (string, error) {
	args := m.Called(ctx, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockInventoryService) FilterOptions(ctx context.Context, category, supplier string) *domain.FilterOptions {
	args := m.Called(ctx, category, supplier)
	return args.Get(0).(*domain.FilterOptions)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Suppliers(ctx context.Context) (*domain.SupplierTable, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.SupplierTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) SupplierForm(ctx context.Context, supplierID string) (*domain.SupplierForm, error) {
	args := m.Called(ctx, supplierID)
	if v := args.Get(0); v != nil {
		return v.(*domain.SupplierForm), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) SaveSupplier(ctx context.Context, input domain.SupplierInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) DeleteSupplier(ctx context.Context, supplierID string) (string, error) {
	args := m.Called(ctx, supplierID)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) (*domain.CategoryTable, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.CategoryTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) CategoryForm(ctx context.Context, categoryID string) (*domain.CategoryForm, error) {
	args := m.Called(ctx, categoryID)
	if v := args.Get(0); v != nil {
		return v.(*domain.CategoryForm), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) SaveCategory(ctx context.Context, input domain.CategoryInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, categoryID string) (string, error) {
	args := m.Called(ctx, categoryID)
	return args.String(0), args.Error(1)
}

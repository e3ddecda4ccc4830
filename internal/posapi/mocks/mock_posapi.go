package mocks

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/stretchr/testify/mock"
)

type MockSalesAPI struct {
	mock.Mock
}

func (m *MockSalesAPI) GetSales(ctx context.Context) (*domain.SalesResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.SalesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) GetRecentSales(ctx context.Context) (*domain.SalesResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.SalesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) GetTopSellingItems(ctx context.Context, limit int, period string) (*domain.TopItemsResponse, error) {
	args := m.Called(ctx, limit, period)
	if res := args.Get(0); res != nil {
		return res.(*domain.TopItemsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) GetFilteredSales(ctx context.Context, filter domain.SalesFilter, page int) (*domain.FilteredSalesResponse, error) {
	args := m.Called(ctx, filter, page)
	if res := args.Get(0); res != nil {
		return res.(*domain.FilteredSalesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) UpdateSale(ctx context.Context, saleID string, fields map[string]interface{}) (*domain.Result, error) {
	args := m.Called(ctx, saleID, fields)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesAPI) DeleteSale(ctx context.Context, saleID string) (*domain.Result, error) {
	args := m.Called(ctx, saleID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockInventoryAPI struct {
	mock.Mock
}

func (m *MockInventoryAPI) GetInventory(ctx context.Context) (*domain.InventoryResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.InventoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) GetInventoryBySupplier(ctx context.Context, supplierName string) (*domain.InventoryResponse, error) {
	args := m.Called(ctx, supplierName)
	if res := args.Get(0); res != nil {
		return res.(*domain.InventoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) GetInventoryItem(ctx context.Context, itemID string) (*domain.InventoryItemResponse, error) {
	args := m.Called(ctx, itemID)
	if res := args.Get(0); res != nil {
		return res.(*domain.InventoryItemResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) CreateInventoryItem(ctx context.Context, req domain.InventoryItemRequest) (*domain.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) UpdateInventoryItem(ctx context.Context, itemID string, req domain.InventoryItemRequest) (*domain.Result, error) {
	args := m.Called(ctx, itemID, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) DeleteInventoryItem(ctx context.Context, itemID string) (*domain.Result, error) {
	args := m.Called(ctx, itemID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCustomerAPI struct {
	mock.Mock
}

func (m *MockCustomerAPI) GetCustomers(ctx context.Context) (*domain.CustomersResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.CustomersResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerAPI) GetCustomerProfile(ctx context.Context, name string) (*domain.CustomerResponse, error) {
	args := m.Called(ctx, name)
	if res := args.Get(0); res != nil {
		return res.(*domain.CustomerResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerAPI) UpdateCustomerProfile(ctx context.Context, update domain.CustomerUpdate) (*domain.Result, error) {
	args := m.Called(ctx, update)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerAPI) GetCustomerSales(ctx context.Context, name string, page, limit int) (*domain.CustomerSalesResponse, error) {
	args := m.Called(ctx, name, page, limit)
	if res := args.Get(0); res != nil {
		return res.(*domain.CustomerSalesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSupplierAPI struct {
	mock.Mock
}

func (m *MockSupplierAPI) GetSuppliers(ctx context.Context) (*domain.SuppliersResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.SuppliersResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierAPI) GetSupplier(ctx context.Context, supplierID string) (*domain.SupplierResponse, error) {
	args := m.Called(ctx, supplierID)
	if res := args.Get(0); res != nil {
		return res.(*domain.SupplierResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierAPI) CreateSupplier(ctx context.Context, req domain.SupplierRequest) (*domain.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierAPI) UpdateSupplier(ctx context.Context, supplierID string, req domain.SupplierRequest) (*domain.Result, error) {
	args := m.Called(ctx, supplierID, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierAPI) DeleteSupplier(ctx context.Context, supplierID string) (*domain.Result, error) {
	args := m.Called(ctx, supplierID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryAPI struct {
	mock.Mock
}

func (m *MockCategoryAPI) GetCategories(ctx context.Context) (*domain.CategoriesResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.CategoriesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryAPI) GetCategory(ctx context.Context, categoryID string) (*domain.CategoryResponse, error) {
	args := m.Called(ctx, categoryID)
	if res := args.Get(0); res != nil {
		return res.(*domain.CategoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryAPI) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryAPI) UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest) (*domain.Result, error) {
	args := m.Called(ctx, categoryID, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryAPI) DeleteCategory(ctx context.Context, categoryID string) (*domain.Result, error) {
	args := m.Called(ctx, categoryID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) GetUsers(ctx context.Context) (*domain.UsersResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.UsersResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) CreateUser(ctx context.Context, req domain.UserRequest) (*domain.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) UpdateUser(ctx context.Context, userID string, req domain.UserRequest) (*domain.Result, error) {
	args := m.Called(ctx, userID, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) DeleteUser(ctx context.Context, userID string) (*domain.Result, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

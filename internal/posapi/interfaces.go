package posapi

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

type SalesAPI interface {
	GetSales(ctx context.Context) (*domain.SalesResponse, error)
	GetRecentSales(ctx context.Context) (*domain.SalesResponse, error)
	GetTopSellingItems(ctx context.Context, limit int, period string) (*domain.TopItemsResponse, error)
	GetFilteredSales(ctx context.Context, filter domain.SalesFilter, page int) (*domain.FilteredSalesResponse, error)
	CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Result, error)
	UpdateSale(ctx context.Context, saleID string, fields map[string]interface{}) (*domain.Result, error)
	DeleteSale(ctx context.Context, saleID string) (*domain.Result, error)
}

type InventoryAPI interface {
	GetInventory(ctx context.Context) (*domain.InventoryResponse, error)
	GetInventoryBySupplier(ctx context.Context, supplierName string) (*domain.InventoryResponse, error)
	GetInventoryItem(ctx context.Context, itemID string) (*domain.InventoryItemResponse, error)
	CreateInventoryItem(ctx context.Context, req domain.InventoryItemRequest) (*domain.Result, error)
	UpdateInventoryItem(ctx context.Context, itemID string, req domain.InventoryItemRequest) (*domain.Result, error)
	DeleteInventoryItem(ctx context.Context, itemID string) (*domain.Result, error)
}

type CustomerAPI interface {
	GetCustomers(ctx context.Context) (*domain.CustomersResponse, error)
	GetCustomerProfile(ctx context.Context, name string) (*domain.CustomerResponse, error)
	UpdateCustomerProfile(ctx context.Context, update domain.CustomerUpdate) (*domain.Result, error)
	GetCustomerSales(ctx context.Context, name string, page, limit int) (*domain.CustomerSalesResponse, error)
}

type SupplierAPI interface {
	GetSuppliers(ctx context.Context) (*domain.SuppliersResponse, error)
	GetSupplier(ctx context.Context, supplierID string) (*domain.SupplierResponse, error)
	CreateSupplier(ctx context.Context, req domain.SupplierRequest) (*domain.Result, error)
	UpdateSupplier(ctx context.Context, supplierID string, req domain.SupplierRequest) (*domain.Result, error)
	DeleteSupplier(ctx context.Context, supplierID string) (*domain.Result, error)
}

type CategoryAPI interface {
	GetCategories(ctx context.Context) (*domain.CategoriesResponse, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.CategoryResponse, error)
	CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Result, error)
	UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest) (*domain.Result, error)
	DeleteCategory(ctx context.Context, categoryID string) (*domain.Result, error)
}

type UserAPI interface {
	GetUsers(ctx context.Context) (*domain.UsersResponse, error)
	CreateUser(ctx context.Context, req domain.UserRequest) (*domain.Result, error)
	UpdateUser(ctx context.Context, userID string, req domain.UserRequest) (*domain.Result, error)
	DeleteUser(ctx context.Context, userID string) (*domain.Result, error)
}

var (
	_ SalesAPI     = (*Client)(nil)
	_ InventoryAPI = (*Client)(nil)
	_ CustomerAPI  = (*Client)(nil)
	_ SupplierAPI  = (*Client)(nil)
	_ CategoryAPI  = (*Client)(nil)
	_ UserAPI      = (*Client)(nil)
)

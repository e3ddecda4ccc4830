package domain

import (
	"github.com/shopspring/decimal"

	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

// LowStockThreshold marks stock counts at or below it as low.
const LowStockThreshold = 5

const (
	SelectCategory = "Select Category"
	SelectSupplier = "Select Supplier"
	AllCategories  = "All Categories"
	AllSuppliers   = "All Suppliers"
)

type ItemRow struct {
	ID       string
	Name     string
	Category string
	Stock    int
	Price    decimal.Decimal
	Supplier string
	LowStock bool
	InStock  bool
}

type Summary struct {
	TotalItems int
	LowStock   int
	OutOfStock int
	TotalValue decimal.Decimal
}

// Filter narrows the inventory table. Empty fields match everything.
type Filter struct {
	Category string `form:"category"`
	Supplier string `form:"supplier"`
	Search   string `form:"search"`
}

type TableView struct {
	Rows    []ItemRow
	Summary Summary
	Filter  Filter
	// Error replaces the rows with a single error line when set.
	Error string
}

type Option struct {
	Value string
	Label string
}

// Select is a dropdown with a leading empty option.
type Select struct {
	ID          string
	Name        string
	Placeholder string
	Options     []Option
	Selected    string
}

type FilterOptions struct {
	Categories Select
	Suppliers  Select
}

type ItemForm struct {
	Title      string
	ID         string
	Name       string
	Stock      int
	Price      decimal.Decimal
	Categories Select
	Suppliers  Select
}

// ItemInput is posted by the inventory form.
type ItemInput struct {
	ID       string `json:"inventoryId" form:"inventoryId"`
	Name     string `json:"itemName" form:"itemName"`
	Category string `json:"itemCategory" form:"itemCategory"`
	Quantity string `json:"itemQuantity" form:"itemQuantity"`
	Price    string `json:"itemPrice" form:"itemPrice"`
	Supplier string `json:"itemSupplier" form:"itemSupplier"`
}

type SupplierInventoryView struct {
	Supplier string
	TableView
}

type SupplierTable struct {
	Rows  []posdomain.Supplier
	Error string
}

type SupplierForm struct {
	Title         string
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

type SupplierInput struct {
	ID            string `json:"supplierId" form:"supplierId"`
	Name          string `json:"supplierName" form:"supplierName"`
	ContactPerson string `json:"contactPerson" form:"contactPerson"`
	Phone         string `json:"contactNumber" form:"contactNumber"`
	Email         string `json:"supplierEmail" form:"supplierEmail"`
	Address       string `json:"supplierAddress" form:"supplierAddress"`
}

type CategoryTable struct {
	Rows  []posdomain.Category
	Error string
}

type CategoryForm struct {
	Title string
	ID    string
	Name  string
}

type CategoryInput struct {
	ID   string `json:"categoryId" form:"categoryId"`
	Name string `json:"categoryName" form:"categoryName"`
}

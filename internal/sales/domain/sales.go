package domain

import (
	"github.com/shopspring/decimal"

	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

const (
	WalkInCustomer       = "Walk-in Customer"
	UnknownStaff         = "Unknown"
	NoItems              = "No items"
	Uncategorized        = "Uncategorized"
	CustomerTypeNew      = "new"
	CustomerTypeExisting = "existing"
	LowStockThreshold    = 5
)

type SaleRow struct {
	ID           string
	Date         string
	CustomerName string
	ItemsDisplay string
	ItemsTitle   string
	Total        decimal.Decimal
	StaffName    string
}

type Summary struct {
	TotalAmount  decimal.Decimal
	Transactions int
	AverageOrder decimal.Decimal
}

type HistoryView struct {
	Rows    []SaleRow
	Summary Summary
	// Error replaces the rows with a single error line when set.
	Error string
}

type FilteredHistoryView struct {
	HistoryView
	Filter     posdomain.SalesFilter
	Page       int
	Total      int
	Limit      int
	TotalPages int
}

type RecentView struct {
	Rows   []SaleRow
	Failed bool
}

type TopItemsView struct {
	Items  []posdomain.TopItem
	Failed bool
}

type ItemCard struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Stock      int
	LowStock   bool
	OutOfStock bool
	Pending    int
}

type CategoryGroup struct {
	Name  string
	Items []ItemCard
}

type SaleInventoryView struct {
	Groups []CategoryGroup
	Failed bool
}

type CartLine struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal
}

type CartView struct {
	Lines    []CartLine
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (v CartView) Empty() bool { return len(v.Lines) == 0 }

// CheckoutRequest is posted by the make-sale form. CustomerInvalid is set
// when the browser flagged the customer field as invalid.
type CheckoutRequest struct {
	CustomerType    string `json:"customerType" form:"customerType"`
	CustomerName    string `json:"customerName" form:"customerName"`
	CustomerInvalid bool   `json:"customerInvalid" form:"customerInvalid"`
}

type PendingChange struct {
	ItemID  string `json:"itemId" form:"itemId" binding:"required"`
	Action  string `json:"action" form:"action" binding:"required,oneof=increase decrease"`
	Pending int    `json:"pending"`
}

type AddedToCart struct {
	Quantity int
	Name     string
}

type CheckoutResult struct {
	SaleID  string
	Message string
}

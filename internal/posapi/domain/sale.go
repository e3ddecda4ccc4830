package domain

import "github.com/shopspring/decimal"

type SaleItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity Int             `json:"quantity"`
	Category string          `json:"category,omitempty"`
}

// Subtotal is price × quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Sale struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CustomerName string          `json:"customer_name"`
	Items        []SaleItem      `json:"items"`
	ItemsDisplay string          `json:"items_display"`
	Total        decimal.Decimal `json:"total"`
	StaffName    string          `json:"staff_name"`
}

type SalesResponse struct {
	Envelope
	Sales []Sale `json:"sales"`
}

type SaleResponse struct {
	Envelope
	Sale *Sale `json:"sale"`
}

type SalesSummary struct {
	TotalSalesAmount  decimal.Decimal `json:"total_sales_amount"`
	TotalTransactions Int             `json:"total_transactions"`
	AverageOrder      decimal.Decimal `json:"average_order"`
}

type FilteredSalesResponse struct {
	Envelope
	Sales      []Sale       `json:"sales"`
	Total      Int          `json:"total"`
	Page       Int          `json:"page"`
	Limit      Int          `json:"limit"`
	TotalPages Int          `json:"total_pages"`
	Summary    SalesSummary `json:"summary"`
}

// SalesFilter mirrors the query string of /api/sales/filtered. Empty
// fields are sent as empty values, DateFilter defaults to "all".
type SalesFilter struct {
	DateFilter     string `form:"dateFilter"`
	CustomerFilter string `form:"customerFilter"`
	AmountFilter   string `form:"amountFilter"`
	StartDate      string `form:"startDate"`
	EndDate        string `form:"endDate"`
}

type TopItem struct {
	Name     string          `json:"name"`
	Quantity Int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type TopItemsResponse struct {
	Envelope
	Items []TopItem `json:"items"`
}

// SaleLineRequest is one cart line sent with a new sale. Money goes out as
// JSON numbers.
type SaleLineRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateSaleRequest struct {
	CustomerName string            `json:"customerName"`
	CustomerType string            `json:"customerType"`
	Items        []SaleLineRequest `json:"items"`
	Total        float64           `json:"total"`
}

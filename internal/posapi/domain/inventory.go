package domain

import "github.com/shopspring/decimal"

type InventoryItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    Int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
}

type InventoryResponse struct {
	Envelope
	Inventory []InventoryItem `json:"inventory"`
	Total     Int             `json:"total"`
}

type InventoryItemResponse struct {
	Envelope
	Item *InventoryItem `json:"item"`
}

type InventoryItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
}

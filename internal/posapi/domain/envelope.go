package domain

// Envelope is the common part of every backend response. Failures carry
// their text in either message or error.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (e Envelope) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// MessageOr returns the backend text, or fallback when there is none.
func (e Envelope) MessageOr(fallback string) string {
	if t := e.Text(); t != "" {
		return t
	}
	return fallback
}

// Result is returned by create/update/delete endpoints. Creates also
// report the new document id under an entity specific key.
type Result struct {
	Envelope
	SaleID     string `json:"sale_id,omitempty"`
	ItemID     string `json:"item_id,omitempty"`
	SupplierID string `json:"supplier_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

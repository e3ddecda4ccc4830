package domain

import "github.com/shopspring/decimal"

type Customer struct {
	Name           string          `json:"name"`
	Age            Text            `json:"age"`
	Sex            Text            `json:"sex"`
	Address        Text            `json:"address"`
	Occupation     Text            `json:"occupation"`
	Business       Text            `json:"business"`
	Phone          Text            `json:"phone"`
	Email          Text            `json:"email"`
	Notes          Text            `json:"notes"`
	ProfilePicture string          `json:"profile_picture"`
	TotalSales     Int             `json:"total_sales"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
	FirstPurchase  string          `json:"first_purchase"`
	LastPurchase   string          `json:"last_purchase"`
	RecentSales    []Sale          `json:"recent_sales"`
}

type CustomersResponse struct {
	Envelope
	Customers []Customer `json:"customers"`
}

type CustomerResponse struct {
	Envelope
	Customer *Customer `json:"customer"`
}

// ProfilePicture is an uploaded image forwarded with a profile update.
type ProfilePicture struct {
	Filename string
	Content  []byte
}

// CustomerUpdate carries the multipart fields of /api/customers/update.
type CustomerUpdate struct {
	Name         string
	OriginalName string
	Age          string
	Sex          string
	Address      string
	Occupation   string
	Business     string
	Phone        string
	Email        string
	Notes        string
	Picture      *ProfilePicture
}

// Fields returns the text fields in the order the form posts them.
func (u CustomerUpdate) Fields() [][2]string {
	return [][2]string{
		{"name", u.Name},
		{"original_name", u.OriginalName},
		{"age", u.Age},
		{"sex", u.Sex},
		{"address", u.Address},
		{"occupation", u.Occupation},
		{"business", u.Business},
		{"phone", u.Phone},
		{"email", u.Email},
		{"notes", u.Notes},
	}
}

type CustomerSalesResponse struct {
	Envelope
	Sales []Sale `json:"sales"`
	Total Int    `json:"total"`
	Page  Int    `json:"page"`
	Limit Int    `json:"limit"`
}

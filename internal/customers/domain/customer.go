package domain

import "github.com/shopspring/decimal"

const (
	// MaxPictureBytes caps profile picture uploads.
	MaxPictureBytes = 5 * 1024 * 1024
	MinAge          = 1
	MaxAge          = 120
)

// PictureExtensions are the accepted profile picture file types.
var PictureExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

type Card struct {
	Name       string
	Age        string
	Sex        string
	Address    string
	ProfileURL string
	Picture    string
}

type Group struct {
	Letter    string
	Customers []Card
}

type ListView struct {
	Groups []Group
	Failed bool
}

type HistoryEntry struct {
	Date  string
	Total decimal.Decimal
	Items string
}

type ProfileView struct {
	Name          string
	Initial       string
	Picture       string
	TotalSales    int
	TotalSpent    decimal.Decimal
	AvgOrderValue decimal.Decimal
	FirstPurchase string
	LastPurchase  string
	Age           string
	Sex           string
	Phone         string
	Email         string
	Address       string
	History       []HistoryEntry
}

type EditForm struct {
	Title      string
	Name       string
	Age        string
	Sex        string
	Address    string
	Occupation string
	Business   string
	Phone      string
	Email      string
	Notes      string
	Picture    string
}

// UpdateInput holds the text fields of the edit profile form.
type UpdateInput struct {
	Name         string `form:"name"`
	OriginalName string `form:"original_name"`
	Age          string `form:"age"`
	Sex          string `form:"sex"`
	Address      string `form:"address"`
	Occupation   string `form:"occupation"`
	Business     string `form:"business"`
	Phone        string `form:"phone"`
	Email        string `form:"email"`
	Notes        string `form:"notes"`
}

type SalesPage struct {
	Name       string
	Entries    []HistoryEntry
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ridloal/pos-web-client/internal/customers/domain"
	"github.com/ridloal/pos-web-client/internal/platform/format"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

const avatarURL = "https://ui-avatars.com/api/?name=%s&background=3498db&color=fff&size=64"

type CustomerService interface {
	List(ctx context.Context) (*domain.ListView, error)
	Profile(ctx context.Context, name string) (*domain.ProfileView, error)
	EditForm(ctx context.Context, name string) (*domain.EditForm, error)
	Update(ctx context.Context, input domain.UpdateInput, picture *posdomain.ProfilePicture) (string, error)
	Sales(ctx context.Context, name string, page, limit int) (*domain.SalesPage, error)
}

type customerServiceImpl struct {
	customerAPI posapi.CustomerAPI
}

func NewCustomerService(ca posapi.CustomerAPI) CustomerService {
	return &customerServiceImpl{customerAPI: ca}
}

// GroupByLetter sorts customers by name and groups them under the upper
// cased first letter. Names that do not start with a letter or digit go
// under "#".
func GroupByLetter(customers []posdomain.Customer) []domain.Group {
	sorted := make([]posdomain.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	index := map[string]int{}
	var groups []domain.Group
	for _, c := range sorted {
		letter := firstLetter(c.Name)
		i, ok := index[letter]
		if !ok {
			i = len(groups)
			index[letter] = i
			groups = append(groups, domain.Group{Letter: letter})
		}
		groups[i].Customers = append(groups[i].Customers, card(c))
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Letter < groups[j].Letter })
	return groups
}

func firstLetter(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return string(unicode.ToUpper(r))
	}
	return "#"
}

func card(c posdomain.Customer) domain.Card {
	picture := c.ProfilePicture
	if picture == "" {
		picture = AvatarURL(c.Name)
	}
	return domain.Card{
		Name:       c.Name,
		Age:        c.Age.String(),
		Sex:        c.Sex.String(),
		Address:    c.Address.String(),
		ProfileURL: ProfileURL(c.Name),
		Picture:    picture,
	}
}

func ProfileURL(name string) string {
	return "/customer_profile?name=" + format.EncodeURIComponent(name)
}

func AvatarURL(name string) string {
	return fmt.Sprintf(avatarURL, format.EncodeURIComponent(name))
}

func (s *customerServiceImpl) List(ctx context.Context) (*domain.ListView, error) {
	resp, err := s.customerAPI.GetCustomers(ctx)
	if err != nil {
		logger.Error("CustomerService.List: failed to load customers", err)
		return nil, err
	}
	if !resp.Success {
		return &domain.ListView{Failed: true}, nil
	}
	return &domain.ListView{Groups: GroupByLetter(resp.Customers)}, nil
}

// known drops the backend's N/A placeholder so optional profile fields
// stay hidden.
func known(t posdomain.Text) string {
	s := strings.TrimSpace(t.String())
	if s == format.NotAvailable {
		return ""
	}
	return s
}

func historyEntry(sale posdomain.Sale) domain.HistoryEntry {
	entry := domain.HistoryEntry{
		Date:  format.FormatDate(sale.Date),
		Total: sale.Total,
		Items: "No items",
	}
	if sale.Items != nil {
		parts := make([]string, 0, len(sale.Items))
		for _, item := range sale.Items {
			parts = append(parts, fmt.Sprintf("%s (%d)", item.Name, item.Quantity.Int()))
		}
		entry.Items = strings.Join(parts, ", ")
	}
	return entry
}

func (s *customerServiceImpl) Profile(ctx context.Context, name string) (*domain.ProfileView, error) {
	resp, err := s.customerAPI.GetCustomerProfile(ctx, name)
	if err != nil {
		return nil, posapi.Failed(err, "Error loading customer profile")
	}
	if !resp.Success || resp.Customer == nil {
		return nil, &posapi.ActionError{Message: "Error loading customer profile"}
	}

	c := resp.Customer
	view := &domain.ProfileView{
		Name:          c.Name,
		Initial:       strings.ToUpper(firstRune(c.Name)),
		Picture:       c.ProfilePicture,
		TotalSales:    c.TotalSales.Int(),
		TotalSpent:    c.TotalSpent,
		AvgOrderValue: c.AvgOrderValue,
		FirstPurchase: format.FormatDate(c.FirstPurchase),
		LastPurchase:  format.FormatDate(c.LastPurchase),
		Age:           known(c.Age),
		Sex:           known(c.Sex),
		Phone:         known(c.Phone),
		Email:         known(c.Email),
		Address:       known(c.Address),
	}
	for _, sale := range c.RecentSales {
		view.History = append(view.History, historyEntry(sale))
	}
	return view, nil
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

func (s *customerServiceImpl) EditForm(ctx context.Context, name string) (*domain.EditForm, error) {
	if strings.TrimSpace(name) == "" {
		return nil, posapi.Invalid("No customer selected")
	}
	resp, err := s.customerAPI.GetCustomerProfile(ctx, name)
	if err != nil {
		return nil, posapi.Failed(err, "Error loading customer data")
	}
	if !resp.Success || resp.Customer == nil {
		return nil, &posapi.ActionError{Message: "Error loading customer data"}
	}

	c := resp.Customer
	return &domain.EditForm{
		Title:      "Edit Profile: " + name,
		Name:       name,
		Age:        known(c.Age),
		Sex:        known(c.Sex),
		Address:    known(c.Address),
		Occupation: known(c.Occupation),
		Business:   known(c.Business),
		Phone:      known(c.Phone),
		Email:      known(c.Email),
		Notes:      known(c.Notes),
		Picture:    c.ProfilePicture,
	}, nil
}

// ValidateUpdate applies the edit form checks made before upload. Phone
// and email are free text.
func ValidateUpdate(input domain.UpdateInput, picture *posdomain.ProfilePicture) error {
	if strings.TrimSpace(input.OriginalName) == "" && strings.TrimSpace(input.Name) == "" {
		return posapi.Invalid("No customer selected")
	}
	if picture != nil {
		if len(picture.Content) > domain.MaxPictureBytes {
			return posapi.Invalid("File size too large. Please select an image under 5MB.")
		}
		if !allowedPicture(picture.Filename) {
			return posapi.Invalid("Please select a PNG, JPG, JPEG or GIF image.")
		}
	}
	if age := strings.TrimSpace(input.Age); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil || n < domain.MinAge || n > domain.MaxAge {
			return posapi.Invalid(fmt.Sprintf("Please enter a valid age between %d and %d.", domain.MinAge, domain.MaxAge))
		}
	}
	return nil
}

func allowedPicture(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range domain.PictureExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *customerServiceImpl) Update(ctx context.Context, input domain.UpdateInput, picture *posdomain.ProfilePicture) (string, error) {
	if err := ValidateUpdate(input, picture); err != nil {
		return "", err
	}
	name := strings.TrimSpace(input.Name)
	original := strings.TrimSpace(input.OriginalName)
	if name == "" {
		name = original
	}
	if original == "" {
		original = name
	}

	update := posdomain.CustomerUpdate{
		Name:         name,
		OriginalName: original,
		Age:          strings.TrimSpace(input.Age),
		Sex:          input.Sex,
		Address:      input.Address,
		Occupation:   input.Occupation,
		Business:     input.Business,
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		Notes:        input.Notes,
		Picture:      picture,
	}
	resp, err := s.customerAPI.UpdateCustomerProfile(ctx, update)
	msg, err := posapi.Outcome(resp, err, "Customer profile updated successfully!", "Error updating customer profile")
	if err == nil {
		pictureSize := "none"
		if picture != nil {
			pictureSize = format.FormatFileSize(int64(len(picture.Content)))
		}
		logger.Info("Customer profile updated", "customer", name, "picture", pictureSize)
	}
	return msg, err
}

func (s *customerServiceImpl) Sales(ctx context.Context, name string, page, limit int) (*domain.SalesPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = posapi.DefaultCustomerSalesLimit
	}
	resp, err := s.customerAPI.GetCustomerSales(ctx, name, page, limit)
	if err != nil {
		return nil, posapi.Failed(err, "Error loading customer sales")
	}
	if !resp.Success {
		return nil, posapi.Rejected(resp.Envelope, "Error loading customer sales")
	}

	view := &domain.SalesPage{Name: name, Page: page, Limit: limit, Total: resp.Total.Int()}
	if l := resp.Limit.Int(); l > 0 {
		view.Limit = l
	}
	if p := resp.Page.Int(); p > 0 {
		view.Page = p
	}
	view.TotalPages = (view.Total + view.Limit - 1) / view.Limit
	for _, sale := range resp.Sales {
		view.Entries = append(view.Entries, historyEntry(sale))
	}
	return view, nil
}

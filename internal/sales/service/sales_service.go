package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ridloal/pos-web-client/internal/cart"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/sales/domain"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrQuantityNotSelected  = errors.New("no quantity selected")
	ErrItemUnavailable      = errors.New("item unavailable")
	ErrOutOfStock           = errors.New("item out of stock")
	ErrCustomerInvalid      = errors.New("customer field has validation errors")
	ErrCustomerNameRequired = errors.New("customer name required for new customer")
	ErrCustomerNotSelected  = errors.New("existing customer not selected")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerLookupFailed = errors.New("customer lookup failed")
	ErrSaleRejected         = errors.New("sale rejected")
)

// SaleRejectedError carries the backend's reason for refusing a sale.
type SaleRejectedError struct {
	Message string
}

func (e *SaleRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSaleRejected, e.Message)
}

func (e *SaleRejectedError) Is(target error) bool {
	return target == ErrSaleRejected
}

type SalesService interface {
	History(ctx context.Context) (*domain.HistoryView, error)
	FilteredHistory(ctx context.Context, filter posdomain.SalesFilter, page int) (*domain.FilteredHistoryView, error)
	RecentSales(ctx context.Context) *domain.RecentView
	TopItems(ctx context.Context, limit int, period string) *domain.TopItemsView
	DeleteSale(ctx context.Context, saleID string) (string, error)

	SaleInventory(ctx context.Context, sessionID string) (*domain.SaleInventoryView, error)
	ChangePending(sessionID, itemID, action string) int
	AddToCart(ctx context.Context, sessionID, itemID string) (*domain.AddedToCart, error)
	RemoveFromCart(sessionID, itemID string) bool
	ClearCart(sessionID string)
	ResetSession(sessionID string)
	Cart(sessionID string) domain.CartView
	CompleteSale(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.CheckoutResult, error)
}

type salesServiceImpl struct {
	salesAPI     posapi.SalesAPI
	inventoryAPI posapi.InventoryAPI
	customerAPI  posapi.CustomerAPI
	carts        *cart.Store
}

func NewSalesService(sa posapi.SalesAPI, ia posapi.InventoryAPI, ca posapi.CustomerAPI, carts *cart.Store) SalesService {
	return &salesServiceImpl{
		salesAPI:     sa,
		inventoryAPI: ia,
		customerAPI:  ca,
		carts:        carts,
	}
}

func saleRow(s posdomain.Sale) domain.SaleRow {
	row := domain.SaleRow{
		ID:           s.ID,
		Date:         orDefault(s.Date, "N/A"),
		CustomerName: orDefault(s.CustomerName, domain.WalkInCustomer),
		ItemsDisplay: orDefault(s.ItemsDisplay, domain.NoItems),
		ItemsTitle:   s.ItemsDisplay,
		Total:        s.Total,
		StaffName:    orDefault(s.StaffName, domain.UnknownStaff),
	}
	return row
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Summarize totals the given sales for the summary cards.
func Summarize(sales []posdomain.Sale) domain.Summary {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	summary := domain.Summary{TotalAmount: total, Transactions: len(sales), AverageOrder: decimal.Zero}
	if len(sales) > 0 {
		summary.AverageOrder = total.Div(decimal.NewFromInt(int64(len(sales))))
	}
	return summary
}

func (s *salesServiceImpl) History(ctx context.Context) (*domain.HistoryView, error) {
	resp, err := s.salesAPI.GetSales(ctx)
	if err != nil {
		logger.Error("SalesService.History: failed to load sales", err)
		return nil, err
	}
	view := &domain.HistoryView{Summary: Summarize(nil)}
	if !resp.Success {
		view.Error = "Error: " + resp.MessageOr("Failed to load sales history.")
		return view, nil
	}
	for _, sale := range resp.Sales {
		view.Rows = append(view.Rows, saleRow(sale))
	}
	view.Summary = Summarize(resp.Sales)
	return view, nil
}

func (s *salesServiceImpl) FilteredHistory(ctx context.Context, filter posdomain.SalesFilter, page int) (*domain.FilteredHistoryView, error) {
	if page < 1 {
		page = 1
	}
	resp, err := s.salesAPI.GetFilteredSales(ctx, filter, page)
	if err != nil {
		logger.Error("SalesService.FilteredHistory: failed to load filtered sales", err, "page", page)
		return nil, err
	}

	view := &domain.FilteredHistoryView{
		HistoryView: domain.HistoryView{Summary: Summarize(nil)},
		Filter:      filter,
		Page:        page,
	}
	if !resp.Success {
		view.Error = "Error: " + resp.MessageOr("Failed to load filtered sales.")
		return view, nil
	}
	if len(resp.Sales) == 0 {
		return view, nil
	}

	for _, sale := range resp.Sales {
		view.Rows = append(view.Rows, saleRow(sale))
	}
	// summary covers every filtered sale, not only this page
	view.Summary = domain.Summary{
		TotalAmount:  resp.Summary.TotalSalesAmount,
		Transactions: resp.Summary.TotalTransactions.Int(),
		AverageOrder: resp.Summary.AverageOrder,
	}
	view.Total = resp.Total.Int()
	view.Limit = resp.Limit.Int()
	view.TotalPages = resp.TotalPages.Int()
	if p := resp.Page.Int(); p > 0 {
		view.Page = p
	}
	return view, nil
}

func (s *salesServiceImpl) RecentSales(ctx context.Context) *domain.RecentView {
	resp, err := s.salesAPI.GetRecentSales(ctx)
	if err != nil {
		logger.Error("SalesService.RecentSales: failed to load recent sales", err)
		return &domain.RecentView{Failed: true}
	}
	if !resp.Success {
		return &domain.RecentView{Failed: true}
	}
	view := &domain.RecentView{}
	for _, sale := range resp.Sales {
		view.Rows = append(view.Rows, saleRow(sale))
	}
	return view
}

func (s *salesServiceImpl) TopItems(ctx context.Context, limit int, period string) *domain.TopItemsView {
	resp, err := s.salesAPI.GetTopSellingItems(ctx, limit, period)
	if err != nil || !resp.Success {
		if err != nil {
			logger.Error("SalesService.TopItems: failed to load top items", err)
		}
		return &domain.TopItemsView{Failed: true}
	}
	return &domain.TopItemsView{Items: resp.Items}
}

func (s *salesServiceImpl) DeleteSale(ctx context.Context, saleID string) (string, error) {
	resp, err := s.salesAPI.DeleteSale(ctx, saleID)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &SaleRejectedError{Message: resp.MessageOr("Error deleting sale")}
	}
	return resp.MessageOr("Sale deleted successfully"), nil
}

// SaleInventory groups the inventory by category in the order categories
// are first seen.
func (s *salesServiceImpl) SaleInventory(ctx context.Context, sessionID string) (*domain.SaleInventoryView, error) {
	resp, err := s.inventoryAPI.GetInventory(ctx)
	if err != nil {
		logger.Error("SalesService.SaleInventory: failed to load inventory", err)
		return nil, err
	}
	if !resp.Success {
		return &domain.SaleInventoryView{Failed: true}, nil
	}

	pending := map[string]int{}
	_ = s.carts.With(sessionID, func(c *cart.Cart) error {
		for _, item := range resp.Inventory {
			pending[item.ID] = c.Pending(item.ID)
		}
		return nil
	})

	view := &domain.SaleInventoryView{}
	index := map[string]int{}
	for _, item := range resp.Inventory {
		category := orDefault(item.Category, domain.Uncategorized)
		i, ok := index[category]
		if !ok {
			i = len(view.Groups)
			index[category] = i
			view.Groups = append(view.Groups, domain.CategoryGroup{Name: category})
		}
		stock := item.Stock.Int()
		view.Groups[i].Items = append(view.Groups[i].Items, domain.ItemCard{
			ID:         item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Stock:      stock,
			LowStock:   stock <= domain.LowStockThreshold,
			OutOfStock: stock == 0,
			Pending:    pending[item.ID],
		})
	}
	return view, nil
}

func (s *salesServiceImpl) ChangePending(sessionID, itemID, action string) int {
	var value int
	_ = s.carts.With(sessionID, func(c *cart.Cart) error {
		switch action {
		case "increase":
			value = c.Increase(itemID)
		case "decrease":
			value = c.Decrease(itemID)
		default:
			value = c.Pending(itemID)
		}
		return nil
	})
	return value
}

// AddToCart moves the pending quantity of an item into the cart. Name and
// price come from the backend record of the item.
func (s *salesServiceImpl) AddToCart(ctx context.Context, sessionID, itemID string) (*domain.AddedToCart, error) {
	var added *domain.AddedToCart
	err := s.carts.With(sessionID, func(c *cart.Cart) error {
		quantity := c.Pending(itemID)
		if quantity <= 0 {
			return ErrQuantityNotSelected
		}

		resp, err := s.inventoryAPI.GetInventoryItem(ctx, itemID)
		if err != nil {
			return err
		}
		if !resp.Success || resp.Item == nil {
			return fmt.Errorf("%w: %w", ErrItemUnavailable, posapi.Rejected(resp.Envelope, "Item not found"))
		}
		if resp.Item.Stock.Int() <= 0 {
			return fmt.Errorf("%w: %s", ErrOutOfStock, resp.Item.Name)
		}

		if err := c.Add(cart.Line{
			ID:       itemID,
			Name:     resp.Item.Name,
			Price:    resp.Item.Price,
			Quantity: quantity,
		}); err != nil {
			return err
		}
		c.ResetPending(itemID)
		added = &domain.AddedToCart{Quantity: quantity, Name: resp.Item.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *salesServiceImpl) RemoveFromCart(sessionID, itemID string) bool {
	var removed bool
	_ = s.carts.With(sessionID, func(c *cart.Cart) error {
		removed = c.Remove(itemID)
		return nil
	})
	return removed
}

func (s *salesServiceImpl) ClearCart(sessionID string) {
	_ = s.carts.With(sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// ResetSession drops the cart and pending quantities, as a page reload
// would.
func (s *salesServiceImpl) ResetSession(sessionID string) {
	s.carts.Discard(sessionID)
}

func (s *salesServiceImpl) Cart(sessionID string) domain.CartView {
	var view domain.CartView
	_ = s.carts.With(sessionID, func(c *cart.Cart) error {
		view = cartView(c)
		return nil
	})
	return view
}

func cartView(c *cart.Cart) domain.CartView {
	totals := c.Totals()
	view := domain.CartView{Subtotal: totals.Subtotal, Tax: totals.Tax, Total: totals.Total}
	for _, l := range c.Lines() {
		view.Lines = append(view.Lines, domain.CartLine{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return view
}

// CompleteSale validates the cart and the customer, then submits the sale.
// The cart is cleared only when the backend accepts it.
func (s *salesServiceImpl) CompleteSale(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	var result *domain.CheckoutResult
	err := s.carts.With(sessionID, func(c *cart.Cart) error {
		if c.IsEmpty() {
			return ErrEmptyCart
		}
		if req.CustomerInvalid {
			return ErrCustomerInvalid
		}

		customerType := domain.CustomerTypeExisting
		if req.CustomerType == domain.CustomerTypeNew {
			customerType = domain.CustomerTypeNew
		}
		name := strings.TrimSpace(req.CustomerName)

		if customerType == domain.CustomerTypeNew && name == "" {
			return ErrCustomerNameRequired
		}
		if customerType == domain.CustomerTypeExisting {
			if name == "" {
				return ErrCustomerNotSelected
			}
			if err := s.ensureCustomerExists(ctx, name); err != nil {
				return err
			}
		}

		payload := posdomain.CreateSaleRequest{
			CustomerName: orDefault(name, domain.WalkInCustomer),
			CustomerType: customerType,
			// total is sent before tax
			Total: c.Subtotal().InexactFloat64(),
		}
		for _, l := range c.Lines() {
			payload.Items = append(payload.Items, posdomain.SaleLineRequest{
				ID:       l.ID,
				Name:     l.Name,
				Price:    l.Price.InexactFloat64(),
				Quantity: l.Quantity,
			})
		}

		resp, err := s.salesAPI.CreateSale(ctx, payload)
		if err != nil {
			if errors.Is(err, posapi.ErrUnauthorized) {
				return err
			}
			logger.Error("SalesService.CompleteSale: create sale failed", err, "customer", payload.CustomerName)
			return &SaleRejectedError{Message: posapi.MessageOr(err, "Error completing sale")}
		}
		if !resp.Success {
			return &SaleRejectedError{Message: resp.MessageOr("Error completing sale")}
		}

		c.Clear()
		result = &domain.CheckoutResult{SaleID: resp.SaleID, Message: "Sale completed successfully!"}
		logger.Info("Sale completed", "sale_id", resp.SaleID, "customer", payload.CustomerName, "items", len(payload.Items))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ensureCustomerExists passes when the customer list could not be read
// with success; only a readable list without the name is a miss.
func (s *salesServiceImpl) ensureCustomerExists(ctx context.Context, name string) error {
	resp, err := s.customerAPI.GetCustomers(ctx)
	if err != nil {
		if errors.Is(err, posapi.ErrUnauthorized) {
			return err
		}
		logger.Error("SalesService.CompleteSale: customer lookup failed", err)
		return fmt.Errorf("%w: %v", ErrCustomerLookupFailed, err)
	}
	if !resp.Success {
		return nil
	}
	for _, customer := range resp.Customers {
		if strings.EqualFold(customer.Name, name) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCustomerNotFound, name)
}

package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ridloal/pos-web-client/internal/inventory/domain"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

type InventoryService interface {
	Table(ctx context.Context, filter domain.Filter) (*domain.TableView, error)
	BySupplier(ctx context.Context, supplier string) (*domain.SupplierInventoryView, error)
	ItemForm(ctx context.Context, itemID string) (*domain.ItemForm, error)
	SaveItem(ctx context.Context, input domain.ItemInput) (string, error)
	DeleteItem(ctx context.Context, itemID string) (string, error)
	FilterOptions(ctx context.Context, category, supplier string) *domain.FilterOptions
}

type inventoryServiceImpl struct {
	inventoryAPI posapi.InventoryAPI
	categoryAPI  posapi.CategoryAPI
	supplierAPI  posapi.SupplierAPI
}

func NewInventoryService(ia posapi.InventoryAPI, ca posapi.CategoryAPI, sa posapi.SupplierAPI) InventoryService {
	return &inventoryServiceImpl{
		inventoryAPI: ia,
		categoryAPI:  ca,
		supplierAPI:  sa,
	}
}

// Summarize counts items the way the summary cards show them: stock 0 is
// out of stock, 1 to LowStockThreshold is low.
func Summarize(items []posdomain.InventoryItem) domain.Summary {
	summary := domain.Summary{TotalValue: decimal.Zero}
	for _, item := range items {
		stock := item.Stock.Int()
		summary.TotalItems++
		summary.TotalValue = summary.TotalValue.Add(item.Price.Mul(decimal.NewFromInt(int64(stock))))
		switch {
		case stock == 0:
			summary.OutOfStock++
		case stock <= domain.LowStockThreshold:
			summary.LowStock++
		}
	}
	return summary
}

// Matches reports whether item passes every non-empty filter field. Search
// looks at name, category and supplier without regard to case.
func Matches(item posdomain.InventoryItem, f domain.Filter) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Supplier != "" && item.Supplier != f.Supplier {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		haystack := strings.ToLower(item.Name + " " + item.Category + " " + item.Supplier)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

func itemRow(item posdomain.InventoryItem) domain.ItemRow {
	stock := item.Stock.Int()
	return domain.ItemRow{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Stock:    stock,
		Price:    item.Price,
		Supplier: item.Supplier,
		LowStock: stock <= domain.LowStockThreshold,
		InStock:  stock > 0,
	}
}

func tableView(items []posdomain.InventoryItem, filter domain.Filter) domain.TableView {
	view := domain.TableView{Filter: filter}
	var visible []posdomain.InventoryItem
	for _, item := range items {
		if Matches(item, filter) {
			visible = append(visible, item)
			view.Rows = append(view.Rows, itemRow(item))
		}
	}
	view.Summary = Summarize(visible)
	return view
}

func (s *inventoryServiceImpl) Table(ctx context.Context, filter domain.Filter) (*domain.TableView, error) {
	resp, err := s.inventoryAPI.GetInventory(ctx)
	if err != nil {
		logger.Error("InventoryService.Table: failed to load inventory", err)
		return nil, err
	}
	if !resp.Success {
		return &domain.TableView{
			Filter:  filter,
			Summary: Summarize(nil),
			Error:   "Error: " + resp.MessageOr("Failed to load inventory."),
		}, nil
	}
	view := tableView(resp.Inventory, filter)
	return &view, nil
}

func (s *inventoryServiceImpl) BySupplier(ctx context.Context, supplier string) (*domain.SupplierInventoryView, error) {
	resp, err := s.inventoryAPI.GetInventoryBySupplier(ctx, supplier)
	if err != nil {
		logger.Error("InventoryService.BySupplier: failed to load inventory", err, "supplier", supplier)
		return nil, err
	}
	view := &domain.SupplierInventoryView{Supplier: supplier}
	if !resp.Success {
		view.Summary = Summarize(nil)
		view.Error = "Error: " + resp.MessageOr("Failed to load inventory.")
		return view, nil
	}
	view.TableView = tableView(resp.Inventory, domain.Filter{})
	return view, nil
}

// ItemForm prepares the add form, or the edit form when itemID is set. The
// item and both dropdowns are fetched together; a dropdown that fails to
// load is left with its placeholder only.
func (s *inventoryServiceImpl) ItemForm(ctx context.Context, itemID string) (*domain.ItemForm, error) {
	form := &domain.ItemForm{Title: "Add Inventory Item", Price: decimal.Zero}
	var categories []posdomain.Category
	var suppliers []posdomain.Supplier

	g, gctx := errgroup.WithContext(ctx)
	if itemID != "" {
		g.Go(func() error {
			resp, err := s.inventoryAPI.GetInventoryItem(gctx, itemID)
			if err != nil {
				return posapi.Failed(err, "Error loading item details")
			}
			if !resp.Success || resp.Item == nil {
				return posapi.Rejected(resp.Envelope, "Error loading item details")
			}
			form.Title = "Edit Inventory Item"
			form.ID = itemID
			form.Name = resp.Item.Name
			form.Stock = resp.Item.Stock.Int()
			form.Price = resp.Item.Price
			form.Categories.Selected = resp.Item.Category
			form.Suppliers.Selected = resp.Item.Supplier
			return nil
		})
	}
	g.Go(func() error {
		categories = s.loadCategories(gctx)
		return nil
	})
	g.Go(func() error {
		suppliers = s.loadSuppliers(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	form.Categories = categorySelect("itemCategory", domain.SelectCategory, categories, form.Categories.Selected)
	form.Suppliers = supplierSelect("itemSupplier", domain.SelectSupplier, suppliers, form.Suppliers.Selected)
	return form, nil
}

// FilterOptions rebuilds both filter dropdowns keeping the current choice.
func (s *inventoryServiceImpl) FilterOptions(ctx context.Context, category, supplier string) *domain.FilterOptions {
	var categories []posdomain.Category
	var suppliers []posdomain.Supplier

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories = s.loadCategories(gctx)
		return nil
	})
	g.Go(func() error {
		suppliers = s.loadSuppliers(gctx)
		return nil
	})
	_ = g.Wait()

	return &domain.FilterOptions{
		Categories: categorySelect("categoryFilter", domain.AllCategories, categories, category),
		Suppliers:  supplierSelect("supplierFilter", domain.AllSuppliers, suppliers, supplier),
	}
}

func (s *inventoryServiceImpl) loadCategories(ctx context.Context) []posdomain.Category {
	resp, err := s.categoryAPI.GetCategories(ctx)
	if err != nil {
		logger.Warn("Failed to load categories for dropdown", "error", err)
		return nil
	}
	if !resp.Success {
		return nil
	}
	return resp.Categories
}

func (s *inventoryServiceImpl) loadSuppliers(ctx context.Context) []posdomain.Supplier {
	resp, err := s.supplierAPI.GetSuppliers(ctx)
	if err != nil {
		logger.Warn("Failed to load suppliers for dropdown", "error", err)
		return nil
	}
	if !resp.Success {
		return nil
	}
	return resp.Suppliers
}

func categorySelect(id, placeholder string, categories []posdomain.Category, selected string) domain.Select {
	sel := domain.Select{ID: id, Name: id, Placeholder: placeholder, Selected: selected}
	for _, c := range categories {
		sel.Options = append(sel.Options, domain.Option{Value: c.Name, Label: c.Name})
	}
	return sel
}

func supplierSelect(id, placeholder string, suppliers []posdomain.Supplier, selected string) domain.Select {
	sel := domain.Select{ID: id, Name: id, Placeholder: placeholder, Selected: selected}
	for _, sp := range suppliers {
		sel.Options = append(sel.Options, domain.Option{Value: sp.Name, Label: sp.Name})
	}
	return sel
}

// ParseQuantity reads a stock count. Fractions are truncated.
func ParseQuantity(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, n >= 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

func ParsePrice(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// SaveItem creates the item, or updates it when the form carries an id.
func (s *inventoryServiceImpl) SaveItem(ctx context.Context, input domain.ItemInput) (string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", posapi.Invalid("Please enter an item name.")
	}
	stock, ok := ParseQuantity(input.Quantity)
	if !ok {
		return "", posapi.Invalid("Please enter a valid stock quantity.")
	}
	price, ok := ParsePrice(input.Price)
	if !ok {
		return "", posapi.Invalid("Please enter a valid price.")
	}

	req := posdomain.InventoryItemRequest{
		Name:     name,
		Category: input.Category,
		Stock:    stock,
		Price:    price,
		Supplier: input.Supplier,
	}
	if input.ID != "" {
		resp, err := s.inventoryAPI.UpdateInventoryItem(ctx, input.ID, req)
		return posapi.Outcome(resp, err, "Item updated successfully", "Error saving item")
	}
	resp, err := s.inventoryAPI.CreateInventoryItem(ctx, req)
	msg, err := posapi.Outcome(resp, err, "Item created successfully", "Error saving item")
	if err == nil {
		logger.Info("Inventory item created", "item_id", resp.ItemID, "name", name)
	}
	return msg, err
}

func (s *inventoryServiceImpl) DeleteItem(ctx context.Context, itemID string) (string, error) {
	resp, err := s.inventoryAPI.DeleteInventoryItem(ctx, itemID)
	return posapi.Outcome(resp, err, "Item deleted successfully", "Error deleting item")
}

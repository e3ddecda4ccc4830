package service

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ridloal/pos-web-client/internal/platform/format"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/statistics/domain"
)

var nonWord = regexp.MustCompile(`\W`)

type StatisticsService interface {
	Options(ctx context.Context) (*domain.Options, error)
	ChartData(ctx context.Context, query domain.ChartQuery) (*domain.ChartData, error)
}

type statisticsServiceImpl struct {
	salesAPI     posapi.SalesAPI
	customerAPI  posapi.CustomerAPI
	categoryAPI  posapi.CategoryAPI
	inventoryAPI posapi.InventoryAPI
}

func NewStatisticsService(sa posapi.SalesAPI, cua posapi.CustomerAPI, ca posapi.CategoryAPI, ia posapi.InventoryAPI) StatisticsService {
	return &statisticsServiceImpl{
		salesAPI:     sa,
		customerAPI:  cua,
		categoryAPI:  ca,
		inventoryAPI: ia,
	}
}

func CheckboxID(prefix, name string) string {
	return prefix + nonWord.ReplaceAllString(name, "_")
}

// Options loads customers, categories and inventory concurrently. A list
// that fails to load leaves its checkboxes out; only 401 is returned.
func (s *statisticsServiceImpl) Options(ctx context.Context) (*domain.Options, error) {
	var (
		customers  []posdomain.Customer
		categories []posdomain.Category
		inventory  []posdomain.InventoryItem

		categoriesOK, inventoryOK bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.customerAPI.GetCustomers(gctx)
		if err != nil {
			return tolerate("customers", err)
		}
		if resp.Success {
			customers = resp.Customers
		}
		return nil
	})
	g.Go(func() error {
		resp, err := s.categoryAPI.GetCategories(gctx)
		if err != nil {
			return tolerate("categories", err)
		}
		categories, categoriesOK = resp.Categories, resp.Success
		return nil
	})
	g.Go(func() error {
		resp, err := s.inventoryAPI.GetInventory(gctx)
		if err != nil {
			return tolerate("inventory", err)
		}
		inventory, inventoryOK = resp.Inventory, resp.Success
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := &domain.Options{Customers: customerBoxes(customers)}
	if categoriesOK && inventoryOK {
		opts.Products = productGroups(categories, inventory)
	}
	return opts, nil
}

func tolerate(list string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, posapi.ErrUnauthorized) {
		return err
	}
	logger.Warn("StatisticsService.Options: failed to load "+list, "error", err)
	return nil
}

func customerBoxes(customers []posdomain.Customer) []domain.Checkbox {
	sorted := make([]posdomain.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	boxes := make([]domain.Checkbox, 0, len(sorted))
	for _, c := range sorted {
		boxes = append(boxes, domain.Checkbox{ID: CheckboxID(domain.CustomerIDPrefix, c.Name), Value: c.Name})
	}
	return boxes
}

func productGroups(categories []posdomain.Category, inventory []posdomain.InventoryItem) []domain.ProductGroup {
	sorted := make([]posdomain.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	groups := make([]domain.ProductGroup, 0, len(sorted))
	for _, cat := range sorted {
		group := domain.ProductGroup{Category: cat.Name}
		for _, item := range inventory {
			if item.Category == cat.Name {
				group.Products = append(group.Products, domain.Checkbox{ID: CheckboxID(domain.ProductIDPrefix, item.Name), Value: item.Name})
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func (s *statisticsServiceImpl) ChartData(ctx context.Context, query domain.ChartQuery) (*domain.ChartData, error) {
	resp, err := s.salesAPI.GetSales(ctx)
	if err != nil {
		logger.Error("StatisticsService.ChartData: failed to load sales", err)
		return nil, err
	}
	var sales []posdomain.Sale
	if resp.Success {
		sales = resp.Sales
	}
	filtered := FilterSales(sales, query.Customers, query.Products)
	return PrepareChartData(filtered, query.Type, query.Customers, query.Products), nil
}

// FilterSales keeps the sales of the selected customers, then those with at
// least one line item among the selected products. Empty selections keep
// everything.
func FilterSales(sales []posdomain.Sale, customers, products []string) []posdomain.Sale {
	out := make([]posdomain.Sale, 0, len(sales))
	for _, sale := range sales {
		if len(customers) > 0 && !contains(customers, sale.CustomerName) {
			continue
		}
		if len(products) > 0 && !hasProduct(sale, products) {
			continue
		}
		out = append(out, sale)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func hasProduct(sale posdomain.Sale, products []string) bool {
	for _, item := range sale.Items {
		if contains(products, item.Name) {
			return true
		}
	}
	return false
}

func PrepareChartData(sales []posdomain.Sale, chartType string, customers, products []string) *domain.ChartData {
	switch chartType {
	case domain.ChartBar:
		return barChart(sales, customers, products)
	case domain.ChartPie:
		return pieChart(sales, products)
	}
	return &domain.ChartData{Labels: []string{}, Datasets: []domain.Dataset{}}
}

func barChart(sales []posdomain.Sale, customers, products []string) *domain.ChartData {
	labels := customers
	if len(labels) == 0 {
		labels = distinctCustomers(sales)
	}
	data := &domain.ChartData{Labels: labels, Datasets: []domain.Dataset{}}

	if len(products) == 0 {
		totals := make([]float64, len(labels))
		for i, customer := range labels {
			sum := decimal.Zero
			for _, sale := range sales {
				if sale.CustomerName == customer {
					sum = sum.Add(sale.Total)
				}
			}
			totals[i] = sum.InexactFloat64()
		}
		data.Datasets = append(data.Datasets, domain.Dataset{
			Label:           domain.TotalSpendingLabel,
			Data:            totals,
			BackgroundColor: domain.TotalSpendingColor,
		})
		return data
	}

	for _, product := range products {
		spent := make([]float64, len(labels))
		for i, customer := range labels {
			sum := decimal.Zero
			for _, sale := range sales {
				if sale.CustomerName != customer {
					continue
				}
				if item, ok := firstItem(sale, product); ok {
					sum = sum.Add(item.Subtotal())
				}
			}
			spent[i] = sum.InexactFloat64()
		}
		data.Datasets = append(data.Datasets, domain.Dataset{
			Label:           product,
			Data:            spent,
			BackgroundColor: format.LabelColor(product),
		})
	}
	return data
}

func distinctCustomers(sales []posdomain.Sale) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, sale := range sales {
		if !seen[sale.CustomerName] {
			seen[sale.CustomerName] = true
			names = append(names, sale.CustomerName)
		}
	}
	return names
}

// firstItem returns the sale's first line for product. Later duplicates of
// the same product are not counted.
func firstItem(sale posdomain.Sale, product string) (posdomain.SaleItem, bool) {
	for _, item := range sale.Items {
		if item.Name == product {
			return item, true
		}
	}
	return posdomain.SaleItem{}, false
}

func pieChart(sales []posdomain.Sale, products []string) *domain.ChartData {
	index := map[string]int{}
	labels := []string{}
	counts := []float64{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			if len(products) > 0 && !contains(products, item.Name) {
				continue
			}
			qty := item.Quantity.Int()
			if qty == 0 {
				qty = 1
			}
			i, ok := index[item.Name]
			if !ok {
				i = len(labels)
				index[item.Name] = i
				labels = append(labels, item.Name)
				counts = append(counts, 0)
			}
			counts[i] += float64(qty)
		}
	}

	colors := make([]string, len(labels))
	for i, label := range labels {
		colors[i] = format.LabelColor(label)
	}
	return &domain.ChartData{
		Labels: labels,
		Datasets: []domain.Dataset{{
			Label:           domain.PurchaseFrequencyLabel,
			Data:            counts,
			BackgroundColor: colors,
		}},
	}
}

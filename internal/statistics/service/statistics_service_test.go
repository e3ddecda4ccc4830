package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/pos-web-client/internal/platform/format"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/posapi/mocks"
	"github.com/ridloal/pos-web-client/internal/statistics/domain"
)

func line(name string, price string, qty int) posdomain.SaleItem {
	return posdomain.SaleItem{Name: name, Price: decimal.RequireFromString(price), Quantity: posdomain.Int(qty)}
}

func sampleSales() []posdomain.Sale {
	return []posdomain.Sale{
		{CustomerName: "Bea", Total: decimal.RequireFromString("100"), Items: []posdomain.SaleItem{line("Coffee", "50", 2)}},
		{CustomerName: "Ana", Total: decimal.RequireFromString("30.5"), Items: []posdomain.SaleItem{line("Bread", "10.5", 1), line("Coffee", "20", 1)}},
		{CustomerName: "Bea", Total: decimal.RequireFromString("12"), Items: []posdomain.SaleItem{line("Bread", "12", 0)}},
	}
}

func TestCheckboxID(t *testing.T) {
	assert.Equal(t, "cust_Ana_Cruz", CheckboxID(domain.CustomerIDPrefix, "Ana Cruz"))
	assert.Equal(t, "prod_J_J_Co_", CheckboxID(domain.ProductIDPrefix, "J&J Co."))
	assert.Equal(t, "prod_snake_case9", CheckboxID(domain.ProductIDPrefix, "snake_case9"))
}

func TestFilterSales(t *testing.T) {
	sales := sampleSales()
	assert.Len(t, FilterSales(sales, nil, nil), 3)
	assert.Len(t, FilterSales(sales, []string{"Bea"}, nil), 2)
	assert.Len(t, FilterSales(sales, nil, []string{"Coffee"}), 2)

	filtered := FilterSales(sales, []string{"Bea"}, []string{"Bread"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "12", filtered[0].Total.String())
}

func TestPrepareChartData(t *testing.T) {
	sales := sampleSales()

	t.Run("bar without products", func(t *testing.T) {
		data := PrepareChartData(sales, domain.ChartBar, nil, nil)
		assert.Equal(t, []string{"Bea", "Ana"}, data.Labels)
		require.Len(t, data.Datasets, 1)
		assert.Equal(t, domain.TotalSpendingLabel, data.Datasets[0].Label)
		assert.Equal(t, []float64{112, 30.5}, data.Datasets[0].Data)
		assert.Equal(t, "#3498db", data.Datasets[0].BackgroundColor)
	})

	t.Run("bar per product", func(t *testing.T) {
		data := PrepareChartData(sales, domain.ChartBar, []string{"Ana", "Bea"}, []string{"Coffee", "Bread"})
		assert.Equal(t, []string{"Ana", "Bea"}, data.Labels)
		require.Len(t, data.Datasets, 2)
		assert.Equal(t, "Coffee", data.Datasets[0].Label)
		assert.Equal(t, []float64{20, 100}, data.Datasets[0].Data)
		assert.Equal(t, format.LabelColor("Coffee"), data.Datasets[0].BackgroundColor)
		assert.Equal(t, []float64{10.5, 0}, data.Datasets[1].Data)
	})

	t.Run("pie", func(t *testing.T) {
		data := PrepareChartData(sales, domain.ChartPie, nil, nil)
		assert.Equal(t, []string{"Coffee", "Bread"}, data.Labels)
		require.Len(t, data.Datasets, 1)
		assert.Equal(t, domain.PurchaseFrequencyLabel, data.Datasets[0].Label)
		assert.Equal(t, []float64{3, 2}, data.Datasets[0].Data)
		assert.Equal(t, []string{format.LabelColor("Coffee"), format.LabelColor("Bread")}, data.Datasets[0].BackgroundColor)

		data = PrepareChartData(sales, domain.ChartPie, nil, []string{"Bread"})
		assert.Equal(t, []string{"Bread"}, data.Labels)
	})

	t.Run("unknown type", func(t *testing.T) {
		data := PrepareChartData(sales, "line", nil, nil)
		assert.Empty(t, data.Labels)
		assert.NotNil(t, data.Labels)
		assert.Empty(t, data.Datasets)
	})
}

type fixture struct {
	sales      *mocks.MockSalesAPI
	customers  *mocks.MockCustomerAPI
	categories *mocks.MockCategoryAPI
	inventory  *mocks.MockInventoryAPI
	svc        StatisticsService
}

func newFixture() *fixture {
	f := &fixture{
		sales:      new(mocks.MockSalesAPI),
		customers:  new(mocks.MockCustomerAPI),
		categories: new(mocks.MockCategoryAPI),
		inventory:  new(mocks.MockInventoryAPI),
	}
	f.svc = NewStatisticsService(f.sales, f.customers, f.categories, f.inventory)
	return f
}

func TestStatisticsService_Options(t *testing.T) {
	t.Run("all lists", func(t *testing.T) {
		f := newFixture()
		f.customers.On("GetCustomers", mock.Anything).Return(&posdomain.CustomersResponse{Envelope: posdomain.Envelope{Success: true},
			Customers: []posdomain.Customer{{Name: "bea"}, {Name: "Ana Cruz"}}}, nil).Once()
		f.categories.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: posdomain.Envelope{Success: true},
			Categories: []posdomain.Category{{Name: "Snacks"}, {Name: "Drinks"}}}, nil).Once()
		f.inventory.On("GetInventory", mock.Anything).Return(&posdomain.InventoryResponse{Envelope: posdomain.Envelope{Success: true},
			Inventory: []posdomain.InventoryItem{{Name: "Chips", Category: "Snacks"}, {Name: "Iced Tea", Category: "Drinks"}, {Name: "Soap", Category: "Other"}}}, nil).Once()

		opts, err := f.svc.Options(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, []domain.Checkbox{{ID: "cust_Ana_Cruz", Value: "Ana Cruz"}, {ID: "cust_bea", Value: "bea"}}, opts.Customers)
		require.Len(t, opts.Products, 2)
		assert.Equal(t, "Drinks", opts.Products[0].Category)
		assert.Equal(t, []domain.Checkbox{{ID: "prod_Iced_Tea", Value: "Iced Tea"}}, opts.Products[0].Products)
		assert.Equal(t, "Snacks", opts.Products[1].Category)
	})

	t.Run("failed inventory hides products", func(t *testing.T) {
		f := newFixture()
		f.customers.On("GetCustomers", mock.Anything).Return(&posdomain.CustomersResponse{}, nil).Once()
		f.categories.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: posdomain.Envelope{Success: true},
			Categories: []posdomain.Category{{Name: "Drinks"}}}, nil).Once()
		f.inventory.On("GetInventory", mock.Anything).Return(nil, errors.New("network down")).Once()

		opts, err := f.svc.Options(context.TODO())
		require.NoError(t, err)
		assert.Empty(t, opts.Customers)
		assert.Empty(t, opts.Products)
	})

	t.Run("unauthorized", func(t *testing.T) {
		f := newFixture()
		f.customers.On("GetCustomers", mock.Anything).Return(nil, posapi.ErrUnauthorized).Once()
		f.categories.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{}, nil).Maybe()
		f.inventory.On("GetInventory", mock.Anything).Return(&posdomain.InventoryResponse{}, nil).Maybe()

		_, err := f.svc.Options(context.TODO())
		assert.ErrorIs(t, err, posapi.ErrUnauthorized)
	})
}

func TestStatisticsService_ChartData(t *testing.T) {
	ctx := context.TODO()
	f := newFixture()
	f.sales.On("GetSales", ctx).Return(&posdomain.SalesResponse{Envelope: posdomain.Envelope{Success: true}, Sales: sampleSales()}, nil).Once()

	data, err := f.svc.ChartData(ctx, domain.ChartQuery{Type: domain.ChartBar, Customers: []string{"Ana"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, data.Labels)
	assert.Equal(t, []float64{30.5}, data.Datasets[0].Data)

	f.sales.On("GetSales", ctx).Return(&posdomain.SalesResponse{}, nil).Once()
	data, err = f.svc.ChartData(ctx, domain.ChartQuery{Type: domain.ChartPie})
	require.NoError(t, err)
	assert.Empty(t, data.Labels)

	f.sales.On("GetSales", ctx).Return(nil, posapi.ErrNetwork).Once()
	_, err = f.svc.ChartData(ctx, domain.ChartQuery{Type: domain.ChartBar})
	assert.ErrorIs(t, err, posapi.ErrNetwork)
}

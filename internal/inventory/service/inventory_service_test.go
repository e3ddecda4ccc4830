package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/pos-web-client/internal/inventory/domain"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/posapi/mocks"
)

func ok() posdomain.Envelope { return posdomain.Envelope{Success: true} }

func sampleInventory() []posdomain.InventoryItem {
	return []posdomain.InventoryItem{
		{ID: "1", Name: "Coke", Category: "Drinks", Stock: 20, Price: decimal.RequireFromString("25"), Supplier: "Coca-Cola"},
		{ID: "2", Name: "Chips", Category: "Snacks", Stock: 5, Price: decimal.RequireFromString("15.50"), Supplier: "Jack"},
		{ID: "3", Name: "Tea", Category: "Drinks", Stock: 0, Price: decimal.RequireFromString("30"), Supplier: "Lipton"},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleInventory())
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 1, summary.LowStock)
	assert.Equal(t, 1, summary.OutOfStock)
	assert.Equal(t, "577.5", summary.TotalValue.String())

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.TotalItems)
	assert.True(t, empty.TotalValue.IsZero())
}

func TestMatches(t *testing.T) {
	items := sampleInventory()
	assert.True(t, Matches(items[0], domain.Filter{}))
	assert.True(t, Matches(items[0], domain.Filter{Category: "Drinks", Search: "co"}))
	assert.False(t, Matches(items[1], domain.Filter{Category: "Drinks"}))
	assert.True(t, Matches(items[2], domain.Filter{Search: "LIPTON"}))
	assert.False(t, Matches(items[2], domain.Filter{Supplier: "Jack"}))
}

func TestParseInputs(t *testing.T) {
	n, ok := ParseQuantity("12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	n, ok = ParseQuantity(" 7.9 ")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = ParseQuantity("-1")
	assert.False(t, ok)
	_, ok = ParseQuantity("ten")
	assert.False(t, ok)

	p, ok := ParsePrice("19.99")
	assert.True(t, ok)
	assert.Equal(t, 19.99, p)
	_, ok = ParsePrice("")
	assert.False(t, ok)
}

func TestInventoryService_Table(t *testing.T) {
	ctx := context.TODO()

	t.Run("filter narrows rows and summary", func(t *testing.T) {
		ia := new(mocks.MockInventoryAPI)
		svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))
		ia.On("GetInventory", ctx).Return(&posdomain.InventoryResponse{Envelope: ok(), Inventory: sampleInventory()}, nil).Once()

		view, err := svc.Table(ctx, domain.Filter{Category: "Drinks"})
		require.NoError(t, err)
		require.Len(t, view.Rows, 2)
		assert.True(t, view.Rows[0].InStock)
		assert.False(t, view.Rows[1].InStock)
		assert.True(t, view.Rows[1].LowStock)
		assert.Equal(t, 2, view.Summary.TotalItems)
		assert.Equal(t, 1, view.Summary.OutOfStock)
		assert.Equal(t, "500", view.Summary.TotalValue.String())
		ia.AssertExpectations(t)
	})

	t.Run("unsuccessful response", func(t *testing.T) {
		ia := new(mocks.MockInventoryAPI)
		svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))
		ia.On("GetInventory", ctx).Return(&posdomain.InventoryResponse{Envelope: posdomain.Envelope{Message: "Database offline"}}, nil).Once()

		view, err := svc.Table(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.Equal(t, "Error: Database offline", view.Error)
	})
}

func TestInventoryService_ItemForm(t *testing.T) {
	ctx := context.TODO()

	t.Run("edit form preselects the item's category and supplier", func(t *testing.T) {
		ia, ca, sa := new(mocks.MockInventoryAPI), new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI)
		svc := NewInventoryService(ia, ca, sa)

		ia.On("GetInventoryItem", mock.Anything, "1").Return(&posdomain.InventoryItemResponse{Envelope: ok(), Item: &sampleInventory()[0]}, nil).Once()
		ca.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: ok(), Categories: []posdomain.Category{{Name: "Drinks"}, {Name: "Snacks"}}}, nil).Once()
		sa.On("GetSuppliers", mock.Anything).Return(nil, posapi.ErrNetwork).Once()

		form, err := svc.ItemForm(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Edit Inventory Item", form.Title)
		assert.Equal(t, "Coke", form.Name)
		assert.Equal(t, 20, form.Stock)
		assert.Equal(t, "Drinks", form.Categories.Selected)
		assert.Len(t, form.Categories.Options, 2)
		assert.Equal(t, "Select Category", form.Categories.Placeholder)
		assert.Equal(t, "Coca-Cola", form.Suppliers.Selected)
		assert.Empty(t, form.Suppliers.Options)
		ia.AssertExpectations(t)
		ca.AssertExpectations(t)
		sa.AssertExpectations(t)
	})

	t.Run("new form skips the item lookup", func(t *testing.T) {
		ia, ca, sa := new(mocks.MockInventoryAPI), new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI)
		svc := NewInventoryService(ia, ca, sa)
		ca.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: ok()}, nil).Once()
		sa.On("GetSuppliers", mock.Anything).Return(&posdomain.SuppliersResponse{Envelope: ok(), Suppliers: []posdomain.Supplier{{Name: "Jack"}}}, nil).Once()

		form, err := svc.ItemForm(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "Add Inventory Item", form.Title)
		assert.Equal(t, []domain.Option{{Value: "Jack", Label: "Jack"}}, form.Suppliers.Options)
		ia.AssertNotCalled(t, "GetInventoryItem", mock.Anything, mock.Anything)
	})

	t.Run("missing item", func(t *testing.T) {
		ia, ca, sa := new(mocks.MockInventoryAPI), new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI)
		svc := NewInventoryService(ia, ca, sa)
		ia.On("GetInventoryItem", mock.Anything, "9").Return(&posdomain.InventoryItemResponse{}, nil).Once()
		ca.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: ok()}, nil).Maybe()
		sa.On("GetSuppliers", mock.Anything).Return(&posdomain.SuppliersResponse{Envelope: ok()}, nil).Maybe()

		_, err := svc.ItemForm(ctx, "9")
		var actionErr *posapi.ActionError
		require.True(t, errors.As(err, &actionErr))
		assert.Equal(t, "Error loading item details", actionErr.Message)
	})
}

func TestInventoryService_FilterOptionsKeepSelection(t *testing.T) {
	ctx := context.TODO()
	ca, sa := new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI)
	svc := NewInventoryService(new(mocks.MockInventoryAPI), ca, sa)
	ca.On("GetCategories", mock.Anything).Return(&posdomain.CategoriesResponse{Envelope: ok(), Categories: []posdomain.Category{{Name: "Drinks"}}}, nil).Once()
	sa.On("GetSuppliers", mock.Anything).Return(&posdomain.SuppliersResponse{Envelope: ok(), Suppliers: []posdomain.Supplier{{Name: "Jack"}}}, nil).Once()

	opts := svc.FilterOptions(ctx, "Drinks", "Gone")
	assert.Equal(t, "All Categories", opts.Categories.Placeholder)
	assert.Equal(t, "Drinks", opts.Categories.Selected)
	assert.Equal(t, "All Suppliers", opts.Suppliers.Placeholder)
	assert.Equal(t, "Gone", opts.Suppliers.Selected)
}

func TestInventoryService_SaveItem(t *testing.T) {
	ctx := context.TODO()

	t.Run("create", func(t *testing.T) {
		ia := new(mocks.MockInventoryAPI)
		svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))
		expected := posdomain.InventoryItemRequest{Name: "Rice", Category: "Grains", Stock: 10, Price: 52.5, Supplier: "Farm"}
		ia.On("CreateInventoryItem", ctx, expected).Return(&posdomain.Result{Envelope: ok(), ItemID: "new-1"}, nil).Once()

		msg, err := svc.SaveItem(ctx, domain.ItemInput{Name: " Rice ", Category: "Grains", Quantity: "10", Price: "52.5", Supplier: "Farm"})
		require.NoError(t, err)
		assert.Equal(t, "Item created successfully", msg)
		ia.AssertExpectations(t)
	})

	t.Run("update reports backend refusal", func(t *testing.T) {
		ia := new(mocks.MockInventoryAPI)
		svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))
		ia.On("UpdateInventoryItem", ctx, "1", mock.Anything).Return(&posdomain.Result{Envelope: posdomain.Envelope{Error: "Item not found"}}, nil).Once()

		_, err := svc.SaveItem(ctx, domain.ItemInput{ID: "1", Name: "Coke", Quantity: "3", Price: "25"})
		var actionErr *posapi.ActionError
		require.True(t, errors.As(err, &actionErr))
		assert.Equal(t, "Item not found", actionErr.Message)
		assert.Nil(t, actionErr.Err)
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		ia := new(mocks.MockInventoryAPI)
		svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))

		_, err := svc.SaveItem(ctx, domain.ItemInput{Name: "Rice", Quantity: "many", Price: "1"})
		assert.ErrorIs(t, err, posapi.ErrInvalidInput)
		_, err = svc.SaveItem(ctx, domain.ItemInput{Name: "Rice", Quantity: "1", Price: "free"})
		assert.ErrorIs(t, err, posapi.ErrInvalidInput)
		_, err = svc.SaveItem(ctx, domain.ItemInput{Quantity: "1", Price: "1"})
		assert.ErrorIs(t, err, posapi.ErrInvalidInput)
		ia.AssertNotCalled(t, "CreateInventoryItem", mock.Anything, mock.Anything)
	})
}

func TestInventoryService_DeleteItem(t *testing.T) {
	ctx := context.TODO()
	ia := new(mocks.MockInventoryAPI)
	svc := NewInventoryService(ia, new(mocks.MockCategoryAPI), new(mocks.MockSupplierAPI))

	ia.On("DeleteInventoryItem", ctx, "1").Return(&posdomain.Result{Envelope: ok()}, nil).Once()
	msg, err := svc.DeleteItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Item deleted successfully", msg)

	ia.On("DeleteInventoryItem", ctx, "2").Return(nil, &posapi.StatusError{StatusCode: 500}).Once()
	_, err = svc.DeleteItem(ctx, "2")
	var actionErr *posapi.ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "Error deleting item", actionErr.Message)
}

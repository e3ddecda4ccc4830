package service

import (
	"context"
	"strings"

	"github.com/ridloal/pos-web-client/internal/inventory/domain"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

// CatalogService manages the suppliers and categories items refer to.
type CatalogService interface {
	Suppliers(ctx context.Context) (*domain.SupplierTable, error)
	SupplierForm(ctx context.Context, supplierID string) (*domain.SupplierForm, error)
	SaveSupplier(ctx context.Context, input domain.SupplierInput) (string, error)
	DeleteSupplier(ctx context.Context, supplierID string) (string, error)

	Categories(ctx context.Context) (*domain.CategoryTable, error)
	CategoryForm(ctx context.Context, categoryID string) (*domain.CategoryForm, error)
	SaveCategory(ctx context.Context, input domain.CategoryInput) (string, error)
	DeleteCategory(ctx context.Context, categoryID string) (string, error)
}

type catalogServiceImpl struct {
	supplierAPI posapi.SupplierAPI
	categoryAPI posapi.CategoryAPI
}

func NewCatalogService(sa posapi.SupplierAPI, ca posapi.CategoryAPI) CatalogService {
	return &catalogServiceImpl{supplierAPI: sa, categoryAPI: ca}
}

func (s *catalogServiceImpl) Suppliers(ctx context.Context) (*domain.SupplierTable, error) {
	resp, err := s.supplierAPI.GetSuppliers(ctx)
	if err != nil {
		logger.Error("CatalogService.Suppliers: failed to load suppliers", err)
		return nil, err
	}
	if !resp.Success {
		return &domain.SupplierTable{Error: "Error: " + resp.MessageOr("Failed to load suppliers.")}, nil
	}
	return &domain.SupplierTable{Rows: resp.Suppliers}, nil
}

func (s *catalogServiceImpl) SupplierForm(ctx context.Context, supplierID string) (*domain.SupplierForm, error) {
	if supplierID == "" {
		return &domain.SupplierForm{Title: "Add Supplier"}, nil
	}
	resp, err := s.supplierAPI.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, posapi.Failed(err, "Error loading supplier details")
	}
	if !resp.Success || resp.Supplier == nil {
		return nil, posapi.Rejected(resp.Envelope, "Error loading supplier details")
	}
	sp := resp.Supplier
	return &domain.SupplierForm{
		Title:         "Edit Supplier",
		ID:            supplierID,
		Name:          sp.Name,
		ContactPerson: sp.ContactPerson,
		Phone:         sp.Phone,
		Email:         sp.Email,
		Address:       sp.Address,
	}, nil
}

func (s *catalogServiceImpl) SaveSupplier(ctx context.Context, input domain.SupplierInput) (string, error) {
	req := posdomain.SupplierRequest{
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
	}
	if req.Name == "" {
		return "", posapi.Invalid("Please enter a supplier name.")
	}
	if input.ID != "" {
		resp, err := s.supplierAPI.UpdateSupplier(ctx, input.ID, req)
		return posapi.Outcome(resp, err, "Supplier updated successfully", "Error saving supplier")
	}
	resp, err := s.supplierAPI.CreateSupplier(ctx, req)
	return posapi.Outcome(resp, err, "Supplier created successfully", "Error saving supplier")
}

func (s *catalogServiceImpl) DeleteSupplier(ctx context.Context, supplierID string) (string, error) {
	resp, err := s.supplierAPI.DeleteSupplier(ctx, supplierID)
	return posapi.Outcome(resp, err, "Supplier deleted successfully", "Error deleting supplier")
}

func (s *catalogServiceImpl) Categories(ctx context.Context) (*domain.CategoryTable, error) {
	resp, err := s.categoryAPI.GetCategories(ctx)
	if err != nil {
		logger.Error("CatalogService.Categories: failed to load categories", err)
		return nil, err
	}
	if !resp.Success {
		return &domain.CategoryTable{Error: "Error: " + resp.MessageOr("Failed to load categories.")}, nil
	}
	return &domain.CategoryTable{Rows: resp.Categories}, nil
}

func (s *catalogServiceImpl) CategoryForm(ctx context.Context, categoryID string) (*domain.CategoryForm, error) {
	if categoryID == "" {
		return &domain.CategoryForm{Title: "Add Category"}, nil
	}
	resp, err := s.categoryAPI.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, posapi.Failed(err, "Error loading category details")
	}
	if !resp.Success || resp.Category == nil {
		return nil, posapi.Rejected(resp.Envelope, "Error loading category details")
	}
	return &domain.CategoryForm{Title: "Edit Category", ID: categoryID, Name: resp.Category.Name}, nil
}

func (s *catalogServiceImpl) SaveCategory(ctx context.Context, input domain.CategoryInput) (string, error) {
	req := posdomain.CategoryRequest{Name: strings.TrimSpace(input.Name)}
	if req.Name == "" {
		return "", posapi.Invalid("Please enter a category name.")
	}
	if input.ID != "" {
		resp, err := s.categoryAPI.UpdateCategory(ctx, input.ID, req)
		return posapi.Outcome(resp, err, "Category updated successfully", "Error saving category")
	}
	resp, err := s.categoryAPI.CreateCategory(ctx, req)
	return posapi.Outcome(resp, err, "Category created successfully", "Error saving category")
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, categoryID string) (string, error) {
	resp, err := s.categoryAPI.DeleteCategory(ctx, categoryID)
	return posapi.Outcome(resp, err, "Category deleted successfully", "Error deleting category")
}

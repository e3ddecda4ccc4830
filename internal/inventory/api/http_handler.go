package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/inventory/domain"
	"github.com/ridloal/pos-web-client/internal/inventory/service"
	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	catalogService   service.CatalogService
	views            *view.Renderer
}

func NewInventoryHandler(is service.InventoryService, cs service.CatalogService, views *view.Renderer) *InventoryHandler {
	return &InventoryHandler{inventoryService: is, catalogService: cs, views: views}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventoryRoutes := router.Group("/inventory")
	{
		inventoryRoutes.GET("", h.Table)
		inventoryRoutes.GET("/filters", h.FilterOptions)
		inventoryRoutes.GET("/form", h.ItemForm)
		inventoryRoutes.GET("/supplier/:name", h.BySupplier)
		inventoryRoutes.POST("/items", h.SaveItem)
		inventoryRoutes.DELETE("/items/:id", h.DeleteItem)
	}

	supplierRoutes := router.Group("/suppliers")
	{
		supplierRoutes.GET("", h.Suppliers)
		supplierRoutes.GET("/form", h.SupplierForm)
		supplierRoutes.POST("", h.SaveSupplier)
		supplierRoutes.DELETE("/:id", h.DeleteSupplier)
	}

	categoryRoutes := router.Group("/categories")
	{
		categoryRoutes.GET("", h.Categories)
		categoryRoutes.GET("/form", h.CategoryForm)
		categoryRoutes.POST("", h.SaveCategory)
		categoryRoutes.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *InventoryHandler) Table(c *gin.Context) {
	var filter domain.Filter
	_ = c.ShouldBindQuery(&filter)

	view, err := h.inventoryService.Table(web.BackendContext(c), filter)
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading inventory")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "inventory/table", view)
}

func (h *InventoryHandler) FilterOptions(c *gin.Context) {
	opts := h.inventoryService.FilterOptions(web.BackendContext(c), c.Query("category"), c.Query("supplier"))
	web.Fragment(c, h.views, http.StatusOK, "inventory/filters", opts)
}

func (h *InventoryHandler) BySupplier(c *gin.Context) {
	view, err := h.inventoryService.BySupplier(web.BackendContext(c), c.Param("name"))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading inventory")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "inventory/by-supplier", view)
}

// ItemForm renders the add form, or the edit form for ?id=.
func (h *InventoryHandler) ItemForm(c *gin.Context) {
	form, err := h.inventoryService.ItemForm(web.BackendContext(c), c.Query("id"))
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "inventory/form", form)
}

func (h *InventoryHandler) SaveItem(c *gin.Context) {
	var input domain.ItemInput
	if err := c.ShouldBind(&input); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}
	h.mutation(c, func() (string, error) {
		return h.inventoryService.SaveItem(web.BackendContext(c), input)
	})
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	h.mutation(c, func() (string, error) {
		return h.inventoryService.DeleteItem(web.BackendContext(c), c.Param("id"))
	})
}

func (h *InventoryHandler) Suppliers(c *gin.Context) {
	table, err := h.catalogService.Suppliers(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading suppliers")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "suppliers/table", table)
}

func (h *InventoryHandler) SupplierForm(c *gin.Context) {
	form, err := h.catalogService.SupplierForm(web.BackendContext(c), c.Query("id"))
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "suppliers/form", form)
}

func (h *InventoryHandler) SaveSupplier(c *gin.Context) {
	var input domain.SupplierInput
	if err := c.ShouldBind(&input); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}
	h.mutation(c, func() (string, error) {
		return h.catalogService.SaveSupplier(web.BackendContext(c), input)
	})
}

func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	h.mutation(c, func() (string, error) {
		return h.catalogService.DeleteSupplier(web.BackendContext(c), c.Param("id"))
	})
}

func (h *InventoryHandler) Categories(c *gin.Context) {
	table, err := h.catalogService.Categories(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading categories")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "categories/table", table)
}

func (h *InventoryHandler) CategoryForm(c *gin.Context) {
	form, err := h.catalogService.CategoryForm(web.BackendContext(c), c.Query("id"))
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "categories/form", form)
}

func (h *InventoryHandler) SaveCategory(c *gin.Context) {
	var input domain.CategoryInput
	if err := c.ShouldBind(&input); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}
	h.mutation(c, func() (string, error) {
		return h.catalogService.SaveCategory(web.BackendContext(c), input)
	})
}

func (h *InventoryHandler) DeleteCategory(c *gin.Context) {
	h.mutation(c, func() (string, error) {
		return h.catalogService.DeleteCategory(web.BackendContext(c), c.Param("id"))
	})
}

func (h *InventoryHandler) mutation(c *gin.Context, fn func() (string, error)) {
	msg, err := fn()
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Respond(c, http.StatusOK, notify.Ok(msg, notify.Success))
}

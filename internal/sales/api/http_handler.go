package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/platform/session"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/sales/domain"
	"github.com/ridloal/pos-web-client/internal/sales/service"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

type SalesHandler struct {
	salesService service.SalesService
	views        *view.Renderer
}

func NewSalesHandler(ss service.SalesService, views *view.Renderer) *SalesHandler {
	return &SalesHandler{salesService: ss, views: views}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	salesRoutes := router.Group("/sales")
	{
		salesRoutes.GET("/history", h.History)
		salesRoutes.GET("/filtered", h.FilteredHistory)
		salesRoutes.GET("/recent", h.RecentSales)
		salesRoutes.GET("/top-items", h.TopItems)
		salesRoutes.POST("/checkout", h.CompleteSale)
		salesRoutes.DELETE("/:id", h.DeleteSale)
	}

	makeSaleRoutes := router.Group("/make-sale")
	{
		makeSaleRoutes.GET("/inventory", h.SaleInventory)
		makeSaleRoutes.POST("/pending", h.ChangePending)
	}

	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.DELETE("", h.ClearCart)
		cartRoutes.POST("/reset", h.ResetCart)
		cartRoutes.POST("/items/:id", h.AddToCart)
		cartRoutes.DELETE("/items/:id", h.RemoveFromCart)
	}
}

func (h *SalesHandler) History(c *gin.Context) {
	view, err := h.salesService.History(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading sales history")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "sales/history", view)
}

func (h *SalesHandler) FilteredHistory(c *gin.Context) {
	var filter posdomain.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid filter: "+err.Error()))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	view, err := h.salesService.FilteredHistory(web.BackendContext(c), filter, page)
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading filtered sales")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "sales/filtered", view)
}

// RecentSales renders the dashboard table or, with format=list, the sales
// page list.
func (h *SalesHandler) RecentSales(c *gin.Context) {
	view := h.salesService.RecentSales(web.BackendContext(c))
	name := "sales/recent-table"
	if c.Query("format") == "list" {
		name = "sales/recent-list"
	}
	web.Fragment(c, h.views, http.StatusOK, name, view)
}

func (h *SalesHandler) TopItems(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = posapi.DefaultTopItemsLimit
	}
	period := c.DefaultQuery("period", posapi.DefaultTopItemsPeriod)

	view := h.salesService.TopItems(web.BackendContext(c), limit, period)
	web.Fragment(c, h.views, http.StatusOK, "sales/top-items", view)
}

func (h *SalesHandler) DeleteSale(c *gin.Context) {
	msg, err := h.salesService.DeleteSale(web.BackendContext(c), c.Param("id"))
	if err != nil {
		var rejected *service.SaleRejectedError
		if errors.As(err, &rejected) {
			web.Respond(c, http.StatusOK, notify.Fail(rejected.Message))
			return
		}
		logger.Error("DeleteSale: service error", err, "sale_id", c.Param("id"))
		web.BackendError(c, err, "Error deleting sale")
		return
	}
	web.Respond(c, http.StatusOK, notify.Ok(msg, notify.Success))
}

func (h *SalesHandler) SaleInventory(c *gin.Context) {
	view, err := h.salesService.SaleInventory(web.BackendContext(c), session.ID(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading inventory")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "sales/sale-inventory", view)
}

func (h *SalesHandler) ChangePending(c *gin.Context) {
	var req domain.PendingChange
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload: " + err.Error()})
		return
	}
	req.Pending = h.salesService.ChangePending(session.ID(c), req.ItemID, req.Action)
	c.JSON(http.StatusOK, gin.H{"success": true, "itemId": req.ItemID, "pending": req.Pending})
}

func (h *SalesHandler) GetCart(c *gin.Context) {
	web.Fragment(c, h.views, http.StatusOK, "sales/cart", h.salesService.Cart(session.ID(c)))
}

func (h *SalesHandler) AddToCart(c *gin.Context) {
	sessionID := session.ID(c)
	added, err := h.salesService.AddToCart(web.BackendContext(c), sessionID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuantityNotSelected):
			web.Respond(c, http.StatusBadRequest, notify.Fail("Please select a quantity first"))
		case errors.Is(err, service.ErrOutOfStock):
			web.Respond(c, http.StatusConflict, notify.Fail("Item is out of stock"))
		case errors.Is(err, service.ErrItemUnavailable):
			message := "Item not found"
			var actionErr *posapi.ActionError
			if errors.As(err, &actionErr) {
				message = actionErr.Message
			}
			web.Respond(c, http.StatusNotFound, notify.Fail(message))
		default:
			logger.Error("AddToCart: service error", err, "item_id", c.Param("id"))
			web.BackendError(c, err, posapi.UserMessage(err))
		}
		return
	}
	h.respondWithCart(c, sessionID, notify.Ok(fmt.Sprintf("%dx %s added to cart", added.Quantity, added.Name), notify.Success))
}

func (h *SalesHandler) RemoveFromCart(c *gin.Context) {
	sessionID := session.ID(c)
	h.salesService.RemoveFromCart(sessionID, c.Param("id"))
	h.respondWithCart(c, sessionID, notify.Ok("Item removed from cart", notify.Info))
}

func (h *SalesHandler) ClearCart(c *gin.Context) {
	sessionID := session.ID(c)
	h.salesService.ClearCart(sessionID)
	h.respondWithCart(c, sessionID, notify.Ok("Cart cleared", notify.Info))
}

// ResetCart starts the visitor's cart over on a fresh page load.
func (h *SalesHandler) ResetCart(c *gin.Context) {
	sessionID := session.ID(c)
	h.salesService.ResetSession(sessionID)
	web.Fragment(c, h.views, http.StatusOK, "sales/cart", h.salesService.Cart(sessionID))
}

func (h *SalesHandler) CompleteSale(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}

	sessionID := session.ID(c)
	result, err := h.salesService.CompleteSale(web.BackendContext(c), sessionID, req)
	if err != nil {
		if errors.Is(err, posapi.ErrUnauthorized) {
			web.Unauthorized(c)
			return
		}
		status, msg := checkoutFailure(err)
		web.Respond(c, status, notify.Fail(msg))
		return
	}

	res := notify.Ok(result.Message, notify.Success)
	res.HTML = h.cartHTML(sessionID)
	c.JSON(http.StatusCreated, gin.H{
		"success":      res.Success,
		"message":      res.Message,
		"notification": res.Notification,
		"html":         res.HTML,
		"sale_id":      result.SaleID,
	})
}

func checkoutFailure(err error) (int, string) {
	var rejected *service.SaleRejectedError
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, service.ErrCustomerInvalid):
		return http.StatusBadRequest, "Please fix customer validation errors before completing the sale."
	case errors.Is(err, service.ErrCustomerNameRequired):
		return http.StatusBadRequest, "Please enter a customer name for new customers."
	case errors.Is(err, service.ErrCustomerNotSelected):
		return http.StatusBadRequest, "Please select an existing customer."
	case errors.Is(err, service.ErrCustomerNotFound):
		return http.StatusBadRequest, "Customer not found. Please select a valid existing customer."
	case errors.Is(err, service.ErrCustomerLookupFailed):
		return http.StatusBadGateway, "Error validating customer. Please try again."
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity, rejected.Message
	}
	logger.Error("CompleteSale: service error", err)
	return http.StatusInternalServerError, "Error completing sale"
}

func (h *SalesHandler) respondWithCart(c *gin.Context, sessionID string, res notify.Result) {
	res.HTML = h.cartHTML(sessionID)
	web.Respond(c, http.StatusOK, res)
}

func (h *SalesHandler) cartHTML(sessionID string) string {
	html, err := h.views.RenderString("sales/cart", h.salesService.Cart(sessionID))
	if err != nil {
		logger.Error("SalesHandler: cart render failed", err)
		return ""
	}
	return html
}

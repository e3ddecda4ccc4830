package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/staff/domain"
	"github.com/ridloal/pos-web-client/internal/staff/service"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

type StaffHandler struct {
	staffService service.StaffService
	views        *view.Renderer
}

func NewStaffHandler(ss service.StaffService, views *view.Renderer) *StaffHandler {
	return &StaffHandler{staffService: ss, views: views}
}

func (h *StaffHandler) RegisterRoutes(router *gin.RouterGroup) {
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", h.Users)
		userRoutes.POST("", h.SaveUser)
		userRoutes.DELETE("/:id", h.DeleteUser)
	}
}

func (h *StaffHandler) Users(c *gin.Context) {
	table, err := h.staffService.Users(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading users")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "staff/table", table)
}

func (h *StaffHandler) SaveUser(c *gin.Context) {
	var input domain.UserInput
	if err := c.ShouldBind(&input); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}
	msg, err := h.staffService.SaveUser(web.BackendContext(c), input)
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Respond(c, http.StatusOK, notify.Ok(msg, notify.Success))
}

func (h *StaffHandler) DeleteUser(c *gin.Context) {
	msg, err := h.staffService.DeleteUser(web.BackendContext(c), c.Param("id"))
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Respond(c, http.StatusOK, notify.Ok(msg, notify.Success))
}

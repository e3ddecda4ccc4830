package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/customers/domain"
	"github.com/ridloal/pos-web-client/internal/customers/service"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/platform/notify"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

const pictureField = "profile_picture"

type CustomerHandler struct {
	customerService service.CustomerService
	views           *view.Renderer
}

func NewCustomerHandler(cs service.CustomerService, views *view.Renderer) *CustomerHandler {
	return &CustomerHandler{customerService: cs, views: views}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customerRoutes := router.Group("/customers")
	{
		customerRoutes.GET("", h.List)
		customerRoutes.GET("/profile", h.Profile)
		customerRoutes.GET("/form", h.EditForm)
		customerRoutes.POST("/update", h.Update)
		customerRoutes.GET("/sales", h.Sales)
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.customerService.List(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading customers")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "customers/list", list)
}

func (h *CustomerHandler) Profile(c *gin.Context) {
	profile, err := h.customerService.Profile(web.BackendContext(c), c.Query("name"))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading customer profile")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "customers/profile", profile)
}

func (h *CustomerHandler) EditForm(c *gin.Context) {
	form, err := h.customerService.EditForm(web.BackendContext(c), c.Query("name"))
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "customers/form", form)
}

// Update accepts the multipart edit form. The picture is optional; an
// oversized one is read only far enough to be rejected.
func (h *CustomerHandler) Update(c *gin.Context) {
	var input domain.UpdateInput
	if err := c.ShouldBind(&input); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}

	picture, err := readPicture(c)
	if err != nil {
		logger.Warn("CustomerHandler.Update: unreadable picture", "error", err)
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}

	msg, err := h.customerService.Update(web.BackendContext(c), input, picture)
	if err != nil {
		web.ActionFailed(c, err)
		return
	}
	web.Respond(c, http.StatusOK, notify.Ok(msg, notify.Success))
}

func readPicture(c *gin.Context) (*posdomain.ProfilePicture, error) {
	header, err := c.FormFile(pictureField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Filename == "" {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, domain.MaxPictureBytes+1))
	if err != nil {
		return nil, err
	}
	return &posdomain.ProfilePicture{Filename: header.Filename, Content: content}, nil
}

func (h *CustomerHandler) Sales(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	sales, err := h.customerService.Sales(web.BackendContext(c), c.Query("name"), page, limit)
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading customer sales")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "customers/sales", sales)
}

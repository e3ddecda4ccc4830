package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/statistics/domain"
	"github.com/ridloal/pos-web-client/internal/statistics/service"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	views             *view.Renderer
}

func NewStatisticsHandler(ss service.StatisticsService, views *view.Renderer) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: ss, views: views}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statisticsRoutes := router.Group("/statistics")
	{
		statisticsRoutes.GET("/options", h.Options)
		statisticsRoutes.GET("/chart", h.Chart)
	}
}

func (h *StatisticsHandler) Options(c *gin.Context) {
	opts, err := h.statisticsService.Options(web.BackendContext(c))
	if err != nil {
		web.FragmentError(c, h.views, err, "Error loading statistics")
		return
	}
	web.Fragment(c, h.views, http.StatusOK, "statistics/options", opts)
}

// Chart answers with Chart.js data for ?type=bar|pie and the repeated
// customers and products parameters.
func (h *StatisticsHandler) Chart(c *gin.Context) {
	var query domain.ChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Invalid request payload: "+err.Error()))
		return
	}
	data, err := h.statisticsService.ChartData(web.BackendContext(c), query)
	if err != nil {
		web.BackendError(c, err, "Error loading statistics")
		return
	}
	c.JSON(http.StatusOK, data)
}

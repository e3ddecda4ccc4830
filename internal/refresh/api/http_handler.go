package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/platform/session"
	"github.com/ridloal/pos-web-client/internal/refresh"
	"github.com/ridloal/pos-web-client/internal/web"
)

// sectionRoutes maps the fragment route of each tracked section, relative
// to the group the middleware is installed on.
var sectionRoutes = map[string]string{
	"/inventory":           refresh.SectionInventory,
	"/make-sale/inventory": refresh.SectionMakeSale,
}

type RefreshHandler struct {
	tracker *refresh.Tracker
}

func NewRefreshHandler(tracker *refresh.Tracker) *RefreshHandler {
	return &RefreshHandler{tracker: tracker}
}

func (h *RefreshHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/refresh", h.Check)
}

// Check is called when a section becomes visible again. The browser
// reloads the section when refresh is true.
func (h *RefreshHandler) Check(c *gin.Context) {
	section := c.Query("section")
	due, err := h.tracker.Due(session.ID(c), section)
	if errors.Is(err, refresh.ErrUnknownSection) {
		web.Respond(c, http.StatusBadRequest, notify.Fail("Unknown section: "+section))
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "refresh": due})
}

// TrackLoads marks a section refreshed whenever its fragment loads
// successfully, so a manual reload restarts the stale timer. prefix is the
// group path the middleware is installed on.
func (h *RefreshHandler) TrackLoads(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		section, ok := sectionRoutes[strings.TrimPrefix(c.FullPath(), prefix)]
		if !ok {
			return
		}
		h.tracker.Mark(session.ID(c), section)
	}
}

// Package web holds the gin glue shared by the UI handlers: fragment
// rendering, notification results and backend error mapping.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/posapi"
	"github.com/ridloal/pos-web-client/internal/view"
)

const (
	// NotificationHeader carries a JSON notification alongside a fragment.
	NotificationHeader = "X-Notification"
	LoginPath          = "/login"
	SessionExpired     = "Session expired. Please login again."
)

var loadingText = map[string]string{
	"categories": "Loading categories...",
	"customers":  "Loading customers...",
	"filtered":   "Loading filtered sales...",
	"inventory":  "Loading inventory...",
	"profile":    "Loading profile...",
	"sales":      "Loading sales history...",
	"suppliers":  "Loading suppliers...",
}

// LoadingText is the placeholder shown while a section loads.
func LoadingText(section string) string {
	if text, ok := loadingText[section]; ok {
		return text
	}
	return "Loading..."
}

// Loading serves the placeholder fragment for ?section=.
func Loading(r *view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		Fragment(c, r, http.StatusOK, "common/loading", LoadingText(c.Query("section")))
	}
}

// BackendContext returns the request context carrying the visitor's
// cookies for the POS API.
func BackendContext(c *gin.Context) context.Context {
	return posapi.WithCookies(c.Request.Context(), c.Request.Cookies())
}

// Fragment renders the named template as the response body.
func Fragment(c *gin.Context, r *view.Renderer, status int, name string, data interface{}) {
	html, err := r.RenderString(name, data)
	if err != nil {
		logger.Error("Fragment: render failed", err, "template", name)
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(`<p class="error">An error occurred. Please try again.</p>`))
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

// FragmentWithNotice renders a fragment and attaches a toast for the
// browser to show.
func FragmentWithNotice(c *gin.Context, r *view.Renderer, status int, name string, data interface{}, n notify.Notification) {
	SetNotification(c, n)
	Fragment(c, r, status, name, data)
}

func SetNotification(c *gin.Context, n notify.Notification) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.Header(NotificationHeader, string(raw))
}

func Respond(c *gin.Context, status int, result notify.Result) {
	c.JSON(status, result)
}

// Unauthorized sends the visitor to the login page. Page navigations get a
// redirect; fetch calls get a JSON body the browser glue follows.
func Unauthorized(c *gin.Context) {
	if isNavigation(c.Request) {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	result := notify.Fail(SessionExpired)
	result.Redirect = LoginPath
	c.AbortWithStatusJSON(http.StatusUnauthorized, result)
}

func isNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("X-Requested-With") != "" || r.Header.Get("HX-Request") != "" {
		return false
	}
	if mode := r.Header.Get("Sec-Fetch-Mode"); mode != "" {
		return mode == "navigate"
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// BackendError answers a failed POS API call. A 401 logs the visitor out;
// other failures become an error toast with fallback unless the backend
// supplied its own message.
func BackendError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, posapi.ErrUnauthorized) {
		Unauthorized(c)
		return
	}
	Respond(c, StatusFor(err), notify.Fail(posapi.MessageOr(err, fallback)))
}

// FragmentError answers a failed fragment load with an error fragment and
// a toast, both reading text.
func FragmentError(c *gin.Context, r *view.Renderer, err error, text string) {
	if errors.Is(err, posapi.ErrUnauthorized) {
		Unauthorized(c)
		return
	}
	FragmentWithNotice(c, r, StatusFor(err), "common/error", text, notify.New(text, notify.Error))
}

// ActionFailed answers a failed mutation or detail load. The status
// follows the transport cause; a plain backend refusal is 422.
func ActionFailed(c *gin.Context, err error) {
	if errors.Is(err, posapi.ErrUnauthorized) {
		Unauthorized(c)
		return
	}
	var actionErr *posapi.ActionError
	if errors.As(err, &actionErr) {
		status := http.StatusUnprocessableEntity
		if actionErr.Err != nil {
			status = StatusFor(actionErr.Err)
		}
		Respond(c, status, notify.Fail(actionErr.Message))
		return
	}
	logger.Error("ActionFailed: unexpected error", err, "path", c.Request.URL.Path)
	Respond(c, http.StatusInternalServerError, notify.Fail("An error occurred. Please try again."))
}

// StatusFor picks the status a UI response uses for a backend failure.
func StatusFor(err error) int {
	var statusErr *posapi.StatusError
	switch {
	case errors.Is(err, posapi.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &statusErr):
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			return statusErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.Is(err, posapi.ErrNetwork), errors.Is(err, posapi.ErrBadResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

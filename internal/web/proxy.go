package web

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/platform/logger"
)

// NewAPIProxy forwards requests to the POS backend with their path intact.
func NewAPIProxy(targetHost string) (*httputil.ReverseProxy, error) {
	targetURL, err := url.Parse(targetHost)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target URL '%s': %w", targetHost, err)
	}
	if targetURL.Scheme == "" || targetURL.Host == "" {
		return nil, fmt.Errorf("target URL '%s' needs a scheme and host", targetHost)
	}

	proxy := httputil.NewSingleHostReverseProxy(targetURL)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		// The backend scopes its session cookie to its own host
		req.Host = targetURL.Host
	}

	proxy.ErrorHandler = func(rw http.ResponseWriter, req *http.Request, err error) {
		logger.Error(fmt.Sprintf("Proxy: error for %s %s to %s", req.Method, req.URL.Path, targetURL), err)
		http.Error(rw, "Service unavailable or proxy error", http.StatusBadGateway)
	}
	return proxy, nil
}

// ProxyHandler adapts a reverse proxy to a gin route.
func ProxyHandler(proxy *httputil.ReverseProxy) gin.HandlerFunc {
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}

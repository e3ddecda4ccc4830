// Package posapi is the client for the backend POS JSON API.
package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ridloal/pos-web-client/internal/platform/config"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/platform/retry"
	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

var (
	ErrUnauthorized = errors.New("session expired")
	ErrNetwork      = errors.New("network error")
	ErrBadResponse  = errors.New("unreadable response from POS API")
)

// StatusError is returned for non-2xx answers other than 401.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("POS API returned status %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("POS API returned status %d", e.StatusCode)
}

type cookiesKey struct{}

// WithCookies attaches the visitor's backend cookies to ctx so every call
// made with it is authenticated as that visitor.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func cookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}

// FormFile is a file part of a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

type Client struct {
	BaseURL       string
	HTTPClient    *http.Client
	retryAttempts int
	retryDelay    time.Duration
}

func NewHTTPClient(cfg config.APIConfig) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    retry.DefaultDelay,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.request(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.request(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string, out interface{}) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, out)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			logger.Error("POSAPI: marshal failed", err, "endpoint", endpoint)
			return fmt.Errorf("failed to marshal request for %s: %w", endpoint, err)
		}
	}

	call := func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
		if err != nil {
			return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return c.do(req, out)
	}

	if method != http.MethodGet || c.retryAttempts <= 1 {
		return call(ctx)
	}
	return retry.Do(ctx, c.retryAttempts, c.retryDelay, func(ctx context.Context) error {
		err := call(ctx)
		if err == nil || retryable(err) {
			return err
		}
		return retry.Permanent(err)
	})
}

// postForm sends a multipart form, used for uploads.
func (c *Client) postForm(ctx context.Context, endpoint string, fields [][2]string, file *FormFile, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", f[0], err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	for _, cookie := range cookiesFrom(req.Context()) {
		req.AddCookie(cookie)
	}

	endpoint := req.URL.Path
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("POSAPI: request failed", err, "method", req.Method, "endpoint", endpoint)
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		logger.Warn("POSAPI: session expired", "endpoint", endpoint)
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp domain.Envelope
		// body may not be JSON; the status alone is enough
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: errResp.Text()}
		logger.Error("POSAPI: unexpected status", statusErr, "method", req.Method, "endpoint", endpoint)
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("POSAPI: decode failed", err, "endpoint", endpoint)
		return fmt.Errorf("%w: %s: %v", ErrBadResponse, endpoint, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusInternalServerError
}

// UserMessage turns a client error into notification text.
func UserMessage(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "Session expired. Please login again."
	case errors.As(err, &statusErr):
		switch statusErr.StatusCode {
		case http.StatusBadRequest:
			return "Invalid request. Please check your input."
		case http.StatusUnauthorized:
			return "Session expired. Please login again."
		case http.StatusForbidden:
			return "Access denied. You don't have permission."
		case http.StatusNotFound:
			return "Resource not found."
		case http.StatusInternalServerError:
			return "Server error. Please try again later."
		default:
			return fmt.Sprintf("Server error (%d). Please try again.", statusErr.StatusCode)
		}
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your connection."
	default:
		return "An error occurred. Please try again."
	}
}

// MessageOr prefers the backend's own explanation of a failed call, then
// fallback.
func MessageOr(err error, fallback string) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return fallback
}

func pathSegment(s string) string {
	return url.PathEscape(s)
}

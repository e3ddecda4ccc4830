package posapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ridloal/pos-web-client/internal/platform/config"
	"github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(config.APIConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second, RetryAttempts: 1})
}

func TestClient_GetSales(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sales", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "abc", cookie.Value)

		fmt.Fprint(w, `{"success": true, "sales": [{"id": "s1", "customer_name": "Ana", "total": 150.5, "items": [{"id": "i1", "name": "Rice", "price": 50.25, "quantity": 3}]}]}`)
	})

	ctx := WithCookies(context.Background(), []*http.Cookie{{Name: "session", Value: "abc"}})
	resp, err := client.GetSales(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, "Ana", resp.Sales[0].CustomerName)
	assert.Equal(t, "150.5", resp.Sales[0].Total.String())
	assert.Equal(t, domain.Int(3), resp.Sales[0].Items[0].Quantity)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("401 is unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": "Session expired"}`)
		})
		_, err := client.GetInventory(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "Session expired. Please login again.", UserMessage(err))
	})

	t.Run("non-2xx carries status and body text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"success": false, "error": "Invalid age"}`)
		})
		_, err := client.GetCustomers(context.Background())
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "Invalid age", statusErr.Message)
		assert.Equal(t, "Invalid request. Please check your input.", UserMessage(err))
		assert.Equal(t, "Invalid age", MessageOr(err, "Error updating customer profile"))
	})

	t.Run("non-JSON error body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})
		_, err := client.GetSuppliers(context.Background())
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Empty(t, statusErr.Message)
		assert.Equal(t, "Server error (502). Please try again.", UserMessage(err))
		assert.Equal(t, "Error loading suppliers", MessageOr(err, "Error loading suppliers"))
	})

	t.Run("unreadable success body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>login</html>`)
		})
		_, err := client.GetCategories(context.Background())
		assert.ErrorIs(t, err, ErrBadResponse)
		assert.Equal(t, "An error occurred. Please try again.", UserMessage(err))
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		client := NewHTTPClient(config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second, RetryAttempts: 1})
		_, err := client.GetUsers(context.Background())
		assert.ErrorIs(t, err, ErrNetwork)
		assert.Equal(t, "Network error. Please check your connection.", UserMessage(err))
	})
}

func TestUserMessage_StatusCodes(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          "Invalid request. Please check your input.",
		http.StatusUnauthorized:        "Session expired. Please login again.",
		http.StatusForbidden:           "Access denied. You don't have permission.",
		http.StatusNotFound:            "Resource not found.",
		http.StatusInternalServerError: "Server error. Please try again later.",
		http.StatusTeapot:              "Server error (418). Please try again.",
	}
	for code, want := range cases {
		assert.Equal(t, want, UserMessage(&StatusError{StatusCode: code}), code)
	}
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "An error occurred. Please try again.", UserMessage(errors.New("other")))
}

func TestClient_PathsAndQueries(t *testing.T) {
	var gotPath, gotRawQuery, gotMethod string
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotRawQuery = r.URL.RawQuery
		gotBody = nil
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &gotBody)
			}
		}
		fmt.Fprint(w, `{"success": true}`)
	})
	ctx := context.Background()

	_, err := client.GetCustomerProfile(ctx, "Juan Dela Cruz/Jr")
	require.NoError(t, err)
	assert.Equal(t, "/api/customers/Juan%20Dela%20Cruz%2FJr", gotPath)

	_, err = client.GetInventoryBySupplier(ctx, "Acme & Co")
	require.NoError(t, err)
	assert.Equal(t, "/api/inventory/supplier/Acme%20&%20Co", gotPath)

	_, err = client.GetCustomerSales(ctx, "Ana", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/customers/Ana/sales", gotPath)
	assert.Equal(t, "page=1&limit=20", gotRawQuery)

	_, err = client.GetTopSellingItems(ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "/api/sales/top-items", gotPath)
	assert.Equal(t, "limit=5&period=all", gotRawQuery)

	_, err = client.GetFilteredSales(ctx, domain.SalesFilter{CustomerFilter: "Ana", AmountFilter: "0-1000"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "/api/sales/filtered", gotPath)
	assert.Equal(t, "amountFilter=0-1000&customerFilter=Ana&dateFilter=all&endDate=&page=2&startDate=", gotRawQuery)

	_, err = client.CreateSale(ctx, domain.CreateSaleRequest{
		CustomerName: "Walk-in Customer",
		CustomerType: "new",
		Items:        []domain.SaleLineRequest{{ID: "i1", Name: "Rice", Price: 50.25, Quantity: 2}},
		Total:        100.5,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/sales", gotPath)
	assert.Equal(t, "Walk-in Customer", gotBody["customerName"])
	assert.Equal(t, 100.5, gotBody["total"])

	_, err = client.UpdateInventoryItem(ctx, "item-9", domain.InventoryItemRequest{Name: "Rice", Stock: 4, Price: 50})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/inventory/item-9", gotPath)
	assert.Equal(t, float64(4), gotBody["stock"])

	_, err = client.DeleteCategory(ctx, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/categories/cat-1", gotPath)

	_, err = client.UpdateUser(ctx, "u1", domain.UserRequest{Name: "Staff"})
	require.NoError(t, err)
	assert.Equal(t, "/api/users/u1", gotPath)

	_, err = client.DeleteSale(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "/api/sales/s1", gotPath)
}

func TestClient_UpdateCustomerProfile_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/update", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ana Cruz", r.FormValue("name"))
		assert.Equal(t, "Ana", r.FormValue("original_name"))
		assert.Equal(t, "31", r.FormValue("age"))
		assert.Equal(t, "", r.FormValue("notes"))

		file, header, err := r.FormFile("profile_picture")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "me.png", header.Filename)
		assert.Equal(t, []byte("png-bytes"), content)

		fmt.Fprint(w, `{"success": true, "message": "Customer profile updated successfully"}`)
	})

	resp, err := client.UpdateCustomerProfile(context.Background(), domain.CustomerUpdate{
		Name:         "Ana Cruz",
		OriginalName: "Ana",
		Age:          "31",
		Picture:      &domain.ProfilePicture{Filename: "me.png", Content: []byte("png-bytes")},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestClient_RetryOnlyForGets(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if r.Method == http.MethodGet && n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"success": true, "inventory": []}`)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second, RetryAttempts: 3})
	client.retryDelay = time.Millisecond

	resp, err := client.GetInventory(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	atomic.StoreInt32(&calls, 0)
	_, err = client.CreateCategory(context.Background(), domain.CategoryRequest{Name: "Snacks"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RetryStopsOnClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second, RetryAttempts: 3})
	client.retryDelay = time.Millisecond

	_, err := client.GetSupplier(context.Background(), "missing")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

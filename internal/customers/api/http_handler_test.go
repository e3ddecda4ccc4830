package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/pos-web-client/internal/customers/domain"
	"github.com/ridloal/pos-web-client/internal/customers/service/mocks"
	"github.com/ridloal/pos-web-client/internal/platform/notify"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/view"
)

func setupRouter() (*gin.Engine, *mocks.MockCustomerService) {
	gin.SetMode(gin.TestMode)
	cs := new(mocks.MockCustomerService)
	router := gin.New()
	NewCustomerHandler(cs, view.MustNew()).RegisterRoutes(router.Group("/ui"))
	return router, cs
}

func result(t *testing.T, w *httptest.ResponseRecorder) notify.Result {
	t.Helper()
	var res notify.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("grouped cards", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("List", mock.Anything).Return(&domain.ListView{Groups: []domain.Group{{
			Letter: "A",
			Customers: []domain.Card{{
				Name:       "Ana <Cruz>",
				Age:        "34",
				ProfileURL: "/customer_profile?name=Ana%20%3CCruz%3E",
				Picture:    "https://ui-avatars.com/api/?name=Ana%20%3CCruz%3E&background=3498db&color=fff&size=64",
			}},
		}}}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers", nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<b>A</b>")
		assert.Contains(t, body, "Ana &lt;Cruz&gt;")
		assert.Contains(t, body, `href="/customer_profile?name=Ana%20%3CCruz%3E"`)
		assert.Contains(t, body, "ui-avatars.com")
		assert.Contains(t, body, `<span class="customer-item-value">N/A</span>`)
	})

	t.Run("empty and failed", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("List", mock.Anything).Return(&domain.ListView{}, nil).Once()
		cs.On("List", mock.Anything).Return(&domain.ListView{Failed: true}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers", nil))
		assert.Contains(t, w.Body.String(), "No customers found")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers", nil))
		assert.Contains(t, w.Body.String(), "Error loading customers")
	})

	t.Run("backend unauthorized", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("List", mock.Anything).Return(nil, posapi.ErrUnauthorized).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/login", result(t, w).Redirect)
	})
}

func TestCustomerHandler_Profile(t *testing.T) {
	router, cs := setupRouter()
	cs.On("Profile", mock.Anything, "Ana").Return(&domain.ProfileView{
		Name:       "Ana",
		Initial:    "A",
		TotalSales: 2,
		TotalSpent: decimal.NewFromInt(1500),
		Phone:      "0917",
	}, nil).Once()
	cs.On("Profile", mock.Anything, "Bea").Return(&domain.ProfileView{
		Name:    "Bea",
		Picture: "data:image/png;base64,AAAA",
		History: []domain.HistoryEntry{{Date: "Jan 15, 2024, 02:30 PM", Items: "Rice (2)", Total: decimal.NewFromInt(90)}},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers/profile?name=Ana", nil))
	body := w.Body.String()
	assert.Contains(t, body, `<span class="profile-avatar-text">A</span>`)
	assert.Contains(t, body, "2 purchases")
	assert.Contains(t, body, "₱1,500.00 total spent")
	assert.Contains(t, body, "<span>0917</span>")
	assert.NotContains(t, body, "Age:")
	assert.Contains(t, body, "No purchase history available")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers/profile?name=Bea", nil))
	body = w.Body.String()
	assert.Contains(t, body, `src="data:image/png;base64,AAAA"`)
	assert.Contains(t, body, "Rice (2)")
	assert.Contains(t, body, "₱90.00")
	cs.AssertExpectations(t)
}

func TestCustomerHandler_EditForm(t *testing.T) {
	router, cs := setupRouter()
	cs.On("EditForm", mock.Anything, "").Return(nil, posapi.Invalid("No customer selected")).Once()
	cs.On("EditForm", mock.Anything, "Ana").Return(&domain.EditForm{Title: "Edit Profile: Ana", Name: "Ana", Sex: "Female"}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers/form", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No customer selected", result(t, w).Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers/form?name=Ana", nil))
	body := w.Body.String()
	assert.Contains(t, body, `name="original_name" value="Ana"`)
	assert.Contains(t, body, `<option value="Female" selected>Female</option>`)
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("profile_picture", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("with picture", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("Update", mock.Anything, domain.UpdateInput{Name: "Ana", OriginalName: "Ana", Age: "35"},
			&posdomain.ProfilePicture{Filename: "me.png", Content: []byte("png-bytes")}).
			Return("Customer profile updated successfully!", nil).Once()

		body, contentType := multipartBody(t, map[string]string{"name": "Ana", "original_name": "Ana", "age": "35"}, "me.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/ui/customers/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		res := result(t, w)
		assert.True(t, res.Success)
		assert.Equal(t, notify.Success, res.Notification.Type)
		cs.AssertExpectations(t)
	})

	t.Run("without picture", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("Update", mock.Anything, domain.UpdateInput{Name: "Ana", OriginalName: "Ana"}, (*posdomain.ProfilePicture)(nil)).
			Return("", &posapi.ActionError{Message: "Customer not found"}).Once()

		form := url.Values{"name": {"Ana"}, "original_name": {"Ana"}}
		req := httptest.NewRequest(http.MethodPost, "/ui/customers/update", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Customer not found", result(t, w).Message)
	})

	t.Run("invalid input", func(t *testing.T) {
		router, cs := setupRouter()
		cs.On("Update", mock.Anything, mock.Anything, mock.Anything).
			Return("", posapi.Invalid("Please enter a valid age between 1 and 120.")).Once()

		body, contentType := multipartBody(t, map[string]string{"name": "Ana", "age": "200"}, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/ui/customers/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please enter a valid age between 1 and 120.", result(t, w).Message)
	})
}

func TestCustomerHandler_Sales(t *testing.T) {
	router, cs := setupRouter()
	cs.On("Sales", mock.Anything, "Ana", 2, 0).Return(&domain.SalesPage{
		Name: "Ana", Page: 2, Limit: 20, Total: 45, TotalPages: 3,
		Entries: []domain.HistoryEntry{{Date: "N/A", Items: "No items", Total: decimal.NewFromInt(5)}},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ui/customers/sales?name=Ana&page=2", nil))
	body := w.Body.String()
	assert.Contains(t, body, "Page 2 of 3 (45 sales)")
	assert.Contains(t, body, `data-page="1"`)
	assert.Contains(t, body, `data-page="3"`)
	cs.AssertExpectations(t)
}

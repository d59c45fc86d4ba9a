package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weddingplanner/middleware"
	"weddingplanner/models"
	"weddingplanner/services/auth"
	"weddingplanner/services/booking"
	"weddingplanner/services/catalog"
	"weddingplanner/services/directory"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.LocaleMiddleware("es"))
	return r
}

func do(r *gin.Engine, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRespondError_Mapping(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		status    int
		retryable bool
	}{
		{"validation", utils.NewValidationError("clientName", "required"), http.StatusBadRequest, false},
		{"not found", fmt.Errorf("get: %w", booking.ErrSessionNotFound), http.StatusNotFound, false},
		{"transition", &booking.TransitionError{From: models.CheckoutEditing, Op: "confirm"}, http.StatusConflict, false},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, false},
		{"unknown category", &catalog.UnknownCategoryError{Category: "cake"}, http.StatusNotFound, false},
		{"submission", &booking.SubmissionError{Err: errors.New("down")}, http.StatusBadGateway, true},
		{"write", &utils.WriteError{Resource: "user", Op: "delete", Err: errors.New("down")}, http.StatusBadGateway, true},
		{"other", errors.New("boom"), http.StatusInternalServerError, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter()
			r.GET("/", func(c *gin.Context) { respondError(c, tc.err, utils.MsgInternal) })

			w := do(r, http.MethodGet, "/", "")
			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.NotEmpty(t, body["message"])
			if tc.retryable {
				assert.Equal(t, true, body["retryable"])
			} else {
				assert.Nil(t, body["retryable"])
			}
		})
	}
}

func TestRespondError_WriteMessageIsLocalized(t *testing.T) {
	r := newRouter()
	r.GET("/", func(c *gin.Context) {
		respondError(c, &utils.WriteError{Resource: "user", Op: "delete", Err: errors.New("x")}, utils.MsgInternal)
	})

	body := decode(t, do(r, http.MethodGet, "/", "", "Accept-Language", "es"))
	assert.Equal(t, utils.Message("es", utils.MsgDeleteFailed), body["message"])
	body = decode(t, do(r, http.MethodGet, "/", "", "Accept-Language", "en"))
	assert.Equal(t, utils.Message("en", utils.MsgDeleteFailed), body["message"])
}

type stubUsers struct {
	list directory.UserList
	err  error
}

func (s *stubUsers) ListUsers(context.Context) directory.UserList { return s.list }

func (s *stubUsers) CreateUser(_ context.Context, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DirectoryUser{ID: "1", Name: in.Name, Email: in.Email}, nil
}

func (s *stubUsers) UpdateUser(_ context.Context, id string, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	return &models.DirectoryUser{ID: id, Name: in.Name, Email: in.Email}, s.err
}

func (s *stubUsers) DeleteUser(context.Context, string) error { return s.err }

func TestListUsersHandler_PlaceholderBanner(t *testing.T) {
	users := &stubUsers{list: directory.UserList{
		Users:       directory.DefaultPlaceholders,
		Placeholder: true,
		Err:         directory.ErrDirectoryUnavailable,
	}}
	h := NewAdminHandler(users, nil, nil)
	r := newRouter()
	r.GET("/users", h.ListUsersHandler)

	w := do(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["placeholder"])
	assert.Len(t, body["users"], 3)
	banner, ok := body["banner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, banner["retryable"])
	assert.Equal(t, utils.Message("es", utils.MsgDirectoryUnavailable), banner["message"])

	users.list = directory.UserList{Users: []models.DirectoryUser{{ID: "7", Name: "Eva"}}}
	body = decode(t, do(r, http.MethodGet, "/users", ""))
	assert.Nil(t, body["banner"])
	assert.Equal(t, false, body["placeholder"])
}

func TestCreateUserHandler_Validation(t *testing.T) {
	h := NewAdminHandler(&stubUsers{}, nil, nil)
	r := newRouter()
	r.POST("/users", h.CreateUserHandler)

	w := do(r, http.MethodPost, "/users", `{"name":"Eva","email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields, ok := decode(t, w)["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "email", fields["email"])

	w = do(r, http.MethodPost, "/users", `{"name":"Eva","email":"eva@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/users", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUserHandler_WriteFailure(t *testing.T) {
	h := NewAdminHandler(&stubUsers{err: &utils.WriteError{Resource: "user", Op: "delete", Err: errors.New("down")}}, nil, nil)
	r := newRouter()
	r.DELETE("/users/:id", h.DeleteUserHandler)

	w := do(r, http.MethodDelete, "/users/7", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

type stubReader struct {
	category models.Category
	err      error
}

func (s stubReader) Category() models.Category { return s.category }

func (s stubReader) ListAll(context.Context) ([]models.ServiceOffering, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.ServiceOffering{{ID: "x", Name: "Item", Price: decimal.NewFromInt(10), Category: s.category}}, nil
}

func TestListServicesHandler_PartialFailure(t *testing.T) {
	readers := []catalog.Reader{
		stubReader{category: models.CategoryCatering},
		stubReader{category: models.CategoryMusic, err: errors.New("timeout")},
		stubReader{category: models.CategoryDecoration},
		stubReader{category: models.CategoryPhotography},
	}
	reg := catalog.NewRegistry(readers, nil)
	svc := &catalog.AdminService{Registry: reg, Loader: &catalog.Loader{Registry: reg}}
	h := NewAdminHandler(nil, svc, nil)
	r := newRouter()
	r.GET("/services", h.ListServicesHandler)

	body := decode(t, do(r, http.MethodGet, "/services", ""))
	cat, ok := body["catalog"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, cat["catering"], 1)
	assert.Equal(t, []any{}, cat["music"])
	assert.Equal(t, []any{"music"}, body["failedCategories"])
	assert.NotNil(t, body["banner"])
}

func TestSetSelectionHandler_UnknownCategory(t *testing.T) {
	h := NewCheckoutHandler(nil)
	r := newRouter()
	r.PUT("/:id/selections/:category", h.SetSelectionHandler)

	w := do(r, http.MethodPut, "/s1/selections/cake", `{"offeringId":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

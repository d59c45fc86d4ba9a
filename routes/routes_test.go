package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weddingplanner/config"
	"weddingplanner/handlers"
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
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticReader struct {
	category models.Category
	items    []models.ServiceOffering
}

func (s staticReader) Category() models.Category { return s.category }

func (s staticReader) ListAll(context.Context) ([]models.ServiceOffering, error) {
	return s.items, nil
}

type emptyDirectory struct{}

func (emptyDirectory) List(context.Context) ([]models.DirectoryUser, error) {
	return []models.DirectoryUser{{ID: "1", Name: "Eva", Email: "eva@example.com"}}, nil
}

func (emptyDirectory) Create(_ context.Context, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	return &models.DirectoryUser{ID: "2", Name: in.Name, Email: in.Email}, nil
}

func (emptyDirectory) Update(_ context.Context, id string, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	return &models.DirectoryUser{ID: id, Name: in.Name, Email: in.Email}, nil
}

func (emptyDirectory) Delete(context.Context, string) error { return nil }

type app struct {
	router    *gin.Engine
	redirects *booking.TimerRedirector
}

func newApp(t *testing.T) *app {
	t.Helper()
	logger := zaptest.NewLogger(t)

	reader := func(c models.Category, id string, price int64) catalog.Reader {
		return staticReader{category: c, items: []models.ServiceOffering{
			{ID: id, Name: strings.ToUpper(id), Price: decimal.NewFromInt(price), Category: c},
		}}
	}
	reg := catalog.NewRegistry([]catalog.Reader{
		reader(models.CategoryCatering, "c1", 500),
		reader(models.CategoryMusic, "m1", 300),
		reader(models.CategoryDecoration, "d1", 120),
		reader(models.CategoryPhotography, "p1", 800),
	}, nil)
	loader := &catalog.Loader{Registry: reg, Logger: logger}

	redirects := booking.NewTimerRedirector()
	t.Cleanup(redirects.Stop)
	checkout := &booking.DefaultCheckoutService{
		Store:         booking.NewMemorySessionStore(),
		Catalog:       loader,
		Submitter:     booking.DisabledSubmitter{},
		Redirects:     redirects,
		Policy:        booking.SubmitConfirmAlways,
		RedirectDelay: time.Hour,
		Logger:        logger,
	}

	signer, err := utils.NewTokenSigner("route-test-secret")
	require.NoError(t, err)
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	authSvc := auth.NewAuthService([]config.Operator{
		{Email: "admin@example.com", PasswordHash: string(adminHash), Role: auth.RoleAdministrator},
		{Email: "client@example.com", PasswordHash: string(adminHash), Role: auth.RoleUser},
	}, signer, time.Hour)

	users := &directory.DefaultUserService{Directory: emptyDirectory{}, Logger: logger}
	adminH := handlers.NewAdminHandler(users, &catalog.AdminService{Registry: reg, Loader: loader, Logger: logger}, nil)
	hb := handlers.NewHandlerBundle(authSvc, handlers.NewAuthHandler(authSvc), handlers.NewCheckoutHandler(checkout), adminH)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(middleware.LocaleMiddleware("es"))
	RegisterRoutes(r, hb)
	return &app{router: r, redirects: redirects}
}

func (a *app) call(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (a *app) login(t *testing.T, email string) (string, string) {
	t.Helper()
	code, body := a.call(t, http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"admin123"}`)
	require.Equal(t, http.StatusOK, code, body)
	return body["token"].(string), body["landing"].(string)
}

func TestHealth(t *testing.T) {
	code, body := newApp(t).call(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestLogin(t *testing.T) {
	a := newApp(t)
	_, landing := a.login(t, "admin@example.com")
	assert.Equal(t, "/admin", landing)
	_, landing = a.login(t, "client@example.com")
	assert.Equal(t, "/client", landing)

	code, _ := a.call(t, http.MethodPost, "/api/auth/login", "", `{"email":"admin@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = a.call(t, http.MethodPost, "/api/auth/login", "", `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCheckoutFlow(t *testing.T) {
	a := newApp(t)
	token, _ := a.login(t, "client@example.com")

	code, _ := a.call(t, http.MethodPost, "/api/checkout", "", "")
	require.Equal(t, http.StatusUnauthorized, code)

	code, body := a.call(t, http.MethodPost, "/api/checkout", token, "")
	require.Equal(t, http.StatusCreated, code)
	id := body["id"].(string)
	assert.Equal(t, "editing", body["state"])
	assert.Nil(t, body["banner"])

	base := "/api/checkout/" + id
	code, _ = a.call(t, http.MethodPost, base+"/review", token, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.call(t, http.MethodPut, base+"/customer", token,
		`{"clientName":"Ana","eventDate":"2026-06-20","location":"Quito"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = a.call(t, http.MethodPut, base+"/selections/catering", token, `{"offeringId":"c1"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = a.call(t, http.MethodPut, base+"/selections/music", token, `{"offeringId":"m1"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = a.call(t, http.MethodPost, base+"/review", token, "")
	require.Equal(t, http.StatusOK, code)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "800", summary["total"])
	assert.Len(t, summary["lineItems"], 2)

	code, _ = a.call(t, http.MethodPut, base+"/selections/music", token, `{"offeringId":""}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body = a.call(t, http.MethodPost, base+"/confirm", token, "")
	require.Equal(t, http.StatusOK, code)
	session := body["session"].(map[string]any)
	assert.Equal(t, "confirmed", session["state"])
	assert.Equal(t, "/", session["redirectTo"])
	assert.NotEmpty(t, session["submissionError"])
	assert.Equal(t, utils.Message("es", utils.MsgBookingConfirmed), body["title"])
	assert.Equal(t, 1, a.redirects.Pending())

	code, _ = a.call(t, http.MethodDelete, base, token, "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Zero(t, a.redirects.Pending())

	code, _ = a.call(t, http.MethodGet, base, token, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCheckoutSessionsBelongToTheirOwner(t *testing.T) {
	a := newApp(t)
	owner, _ := a.login(t, "client@example.com")
	other, _ := a.login(t, "admin@example.com")

	code, body := a.call(t, http.MethodPost, "/api/checkout", owner, "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "client@example.com", body["owner"])
	base := "/api/checkout/" + body["id"].(string)

	code, _ = a.call(t, http.MethodGet, base, other, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.call(t, http.MethodPut, base+"/customer", other, `{"clientName":"Eve"}`)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.call(t, http.MethodPost, base+"/confirm", other, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.call(t, http.MethodDelete, base, other, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = a.call(t, http.MethodGet, base, owner, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "editing", body["state"])
	assert.Equal(t, "", body["selection"].(map[string]any)["clientName"])
}

func TestAdminRoutesRequireAdministrator(t *testing.T) {
	a := newApp(t)
	clientToken, _ := a.login(t, "client@example.com")
	adminToken, _ := a.login(t, "admin@example.com")

	code, _ := a.call(t, http.MethodGet, "/api/admin/users", clientToken, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, body := a.call(t, http.MethodGet, "/api/admin/users", adminToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["users"], 1)

	code, body = a.call(t, http.MethodGet, "/api/admin/services", adminToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "catalog")
}

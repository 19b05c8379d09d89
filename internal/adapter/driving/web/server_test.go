package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/userstore"
	"github.com/costdash/cost-dashboard-go/internal/application/usecase"
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	ds := &entity.Dataset{
		Organization: "Acme Group",
		Records: []entity.CostRecord{
			{Region: "Europe", Country: "Germany", Division: "IT", Service: "Cloud Hosting", Amount: 100},
			{Region: "Europe", Country: "France", Division: "Sales", Service: "CRM", Amount: 50},
			{Region: "North America", Country: "USA", Division: "IT", Service: "Cloud Hosting", Amount: 30},
		},
	}

	userRepo := userstore.NewJSONRepository(filepath.Join(t.TempDir(), "users.json"))
	auth := usecase.NewAuthUseCase(userRepo)
	require.NoError(t, auth.SeedDefaultUsers())

	consoleImpl := console.NewConsole()
	server, err := NewServer(
		usecase.NewDashboardUseCase(ds, nil, consoleImpl),
		auth,
		usecase.NewPredictionUseCase(ds),
		consoleImpl,
	)
	require.NoError(t, err)
	return server
}

func login(t *testing.T, server *Server) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestIndexRendersOrganization(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Group")

	// Any non-API path serves the page; the client decides what to show.
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some/client/route", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Group")

	// Unknown API paths stay 404.
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/no-such-endpoint", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRequiresSession(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/api/dashboard", "/api/filters", "/api/profile", "/api/models"} {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var data entity.DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.InDelta(t, 180.0, data.KPIs.TotalCost, 1e-9)
	assert.NotEmpty(t, data.Sankey.Nodes)
	assert.Len(t, data.RegionBar.Items, 2)
	assert.NotEmpty(t, data.Sunburst.Nodes)
	assert.NotEmpty(t, data.BoxPlot.Series)
	assert.NotEmpty(t, data.Radar.Axes)
}

func TestDashboardEndpointWithFilter(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?region=Europe&region=ALL", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var data entity.DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.InDelta(t, 150.0, data.KPIs.TotalCost, 1e-9)
	assert.Len(t, data.RegionBar.Items, 1)
}

func TestFiltersEndpointCascades(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/filters?region=North+America", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var options entity.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, []string{"Europe", "North America"}, options.Regions)
	assert.Equal(t, []string{"USA"}, options.Countries)
}

func TestSessionLifecycle(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var session struct {
		Username      string `json:"username"`
		Authenticated bool   `json:"authenticated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.True(t, session.Authenticated)
	assert.Equal(t, "admin", session.Username)

	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	req := httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"department":"Platform"}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile entity.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Platform", profile.Department)
	assert.Equal(t, "Administrator", profile.FullName)
}

func TestTrainAndPredict(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	// Predicting before training is a client error.
	req := httptest.NewRequest(http.MethodPost, "/api/predict",
		strings.NewReader(`{"model":"small","region":"Europe","country":"Germany","division":"IT","service":"Cloud Hosting"}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/train",
		strings.NewReader(`{"model":"small","epochs":50,"learning_rate":0.001}`))
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.TrainingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.TestLoss, result.TrainLoss)

	req = httptest.NewRequest(http.MethodPost, "/api/predict",
		strings.NewReader(`{"model":"small","region":"Europe","country":"Germany","division":"IT","service":"Cloud Hosting"}`))
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var prediction entity.Prediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prediction))
	assert.Equal(t, 1, prediction.MatchCount)
	assert.InDelta(t, 100.0*1.05, prediction.Amount, 1e-9)

	req = httptest.NewRequest(http.MethodPost, "/api/train",
		strings.NewReader(`{"model":"huge"}`))
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

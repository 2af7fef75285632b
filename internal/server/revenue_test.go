package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	revenuedomain "github.com/subtally/subtally/internal/revenue/domain"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRevenueService struct {
	lastFilters revenuedomain.Filters
	result      revenuedomain.MetricsResult
}

func (f *fakeRevenueService) Overview(ctx context.Context, filters revenuedomain.Filters) (revenuedomain.MetricsResult, error) {
	_ = ctx
	f.lastFilters = filters
	return f.result, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) Get(ctx context.Context, db *gorm.DB) (settingsdomain.Settings, error) {
	_ = ctx
	_ = db
	return settingsdomain.Settings{
		BaseCurrency:    "PKR",
		DisplayCurrency: "USD",
		Locale:          "en-US",
		WindowDays:      30,
		Currencies: map[string]settingsdomain.Currency{
			"PKR": {Code: "PKR", Rate: decimal.NewFromInt(1)},
			"USD": {Code: "USD", Rate: decimal.NewFromInt(280)},
		},
	}, nil
}

func (fakeSettingsRepo) ListCurrencies(ctx context.Context, db *gorm.DB) ([]settingsdomain.Currency, error) {
	_ = ctx
	_ = db
	return nil, nil
}

func newTestServer(svc revenuedomain.Service) *Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	s := &Server{
		engine:       engine,
		log:          zap.NewNop(),
		revenueSvc:   svc,
		settingsRepo: fakeSettingsRepo{},
	}
	RegisterRoutes(s)
	return s
}

func TestGetRevenueMetrics_ParsesFilters(t *testing.T) {
	fake := &fakeRevenueService{
		result: revenuedomain.MetricsResult{
			BaseCurrency:    "PKR",
			DisplayCurrency: "USD",
			MRRBase:         decimal.NewFromInt(28050),
			ARRBase:         decimal.NewFromInt(336600),
			MRRDisplay:      decimal.RequireFromString("100.18"),
			ARRDisplay:      decimal.RequireFromString("1202.14"),
		},
	}
	s := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/revenue/metrics?q=acme&status=paused&currency=USD&window_days=14", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", fake.lastFilters.Query)
	assert.Equal(t, revenuedomain.StatusFilterPaused, fake.lastFilters.Status)
	assert.Equal(t, "USD", fake.lastFilters.Currency)
	assert.Equal(t, 14, fake.lastFilters.WindowDays)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "$100.18", body["mrr_formatted"])
	assert.Equal(t, "$1,202.14", body["arr_formatted"])
}

func TestGetRevenueMetrics_RejectsBadInput(t *testing.T) {
	s := newTestServer(&fakeRevenueService{})

	for _, target := range []string{
		"/api/v1/revenue/metrics?status=bogus",
		"/api/v1/revenue/metrics?window_days=0",
		"/api/v1/revenue/metrics?window_days=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestGetRevenueMetrics_DefaultsToAll(t *testing.T) {
	fake := &fakeRevenueService{}
	s := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/revenue/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, revenuedomain.StatusFilterAll, fake.lastFilters.Status)
	assert.Equal(t, revenuedomain.CurrencyFilterAll, fake.lastFilters.Currency)
	assert.Equal(t, 0, fake.lastFilters.WindowDays)
}

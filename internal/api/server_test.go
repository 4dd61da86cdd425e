package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/config"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
	authmocks "github.com/vfg2006/offer-dashboard-api/internal/usecases/authenticating/mocks"
	creativemocks "github.com/vfg2006/offer-dashboard-api/internal/usecases/creative/mocks"
	lookupmocks "github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup/mocks"
	metricsmocks "github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics/mocks"
	offermocks "github.com/vfg2006/offer-dashboard-api/internal/usecases/offering/mocks"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Location = time.UTC
	cfg.Server.AllowedOrigins = []string{"https://painel.exemplo.com"}
	return cfg
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	offers := offermocks.NewMockOfferService(ctrl)
	lookups := lookupmocks.NewMockLookupService(ctrl)
	m := metrics.New()

	h := NewHandler(newTestConfig(), Services{
		Offers:        offers,
		Creatives:     creativemocks.NewMockCreativeService(ctrl),
		Metrics:       metricsmocks.NewMockMetricsService(ctrl),
		Lookups:       lookups,
		Authenticator: auth,
	}, m)

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderCorrelationID))
	})

	t.Run("sem credenciais", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/offers", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrMissingCredentials, body.Code)
	})

	t.Run("chave de serviço lista ofertas", func(t *testing.T) {
		auth.EXPECT().ValidateAPIKey("chave").Return(&domain.Claims{Role: domain.RoleService}, nil)
		offers.EXPECT().ListOffers(gomock.Any(), domain.Status("")).Return([]*domain.Offer{{ID: "of1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers", nil)
		req.Header.Set(middleware.HeaderAPIKey, "chave")
		req.Header.Set("Origin", "https://painel.exemplo.com")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://painel.exemplo.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/offers", "200")))
	})

	t.Run("token do painel lista nichos", func(t *testing.T) {
		auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{Role: domain.RoleAuthenticated}, nil)
		lookups.EXPECT().ListNiches(gomock.Any()).Return([]*domain.Niche{{ID: "n1", Name: "Saúde"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/niches", nil)
		req.Header.Set("Authorization", "Bearer abc")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []domain.Niche
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "Saúde", body[0].Name)
	})

	t.Run("rota inexistente", func(t *testing.T) {
		auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{Role: domain.RoleAuthenticated}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/nada", nil)
		req.Header.Set("Authorization", "Bearer abc")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("métricas do prometheus", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}

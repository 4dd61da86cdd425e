package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

var brt = time.FixedZone("BRT", -3*60*60)

var panelUser = &domain.Claims{Role: domain.RoleAuthenticated}

// fixNow congela o relógio dos handlers durante o teste
func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	previous := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = previous })
}

// serve executa a requisição contra as rotas informadas como se o AuthMiddleware
// já tivesse autenticado claims
func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

func TestRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "usuário em rota autenticada", middleware: Authenticated(), claims: &domain.Claims{Role: domain.RoleAuthenticated}, wantStatus: http.StatusNoContent},
		{name: "serviço em rota autenticada", middleware: Authenticated(), claims: &domain.Claims{Role: domain.RoleService}, wantStatus: http.StatusNoContent},
		{name: "usuário em rota de serviço", middleware: ServiceOnly(), claims: &domain.Claims{Role: domain.RoleAuthenticated}, wantStatus: http.StatusForbidden},
		{name: "role desconhecido", middleware: Authenticated(), claims: &domain.Claims{Role: "anon"}, wantStatus: http.StatusForbidden},
		{name: "sem claims", middleware: Authenticated(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/offers", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

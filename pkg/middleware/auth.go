package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	HeaderAPIKey = "X-API-Key"
)

// rotas que não exigem credenciais
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

// AuthMiddleware aceita um Bearer JWT ou a chave de serviço em X-API-Key
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authenticate(authService, r)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithField("path", r.URL.Path).WithError(err).Warn("Requisição não autenticada")
				apiErrors.WriteError(w, code, "Não autenticado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(authService authenticating.Authenticator, r *http.Request) (*domain.Claims, error) {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return authService.ValidateAPIKey(key)
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, authenticating.NewAuthError(authenticating.ErrMissingCredentials, apiErrors.ErrMissingCredentials, "Authorization header is required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "Bearer token is required")
	}

	return authService.ValidateToken(strings.TrimSpace(tokenString))
}

// ClaimsFromContext devolve as credenciais validadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

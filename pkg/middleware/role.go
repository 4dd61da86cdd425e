package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é a lista de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":   claims.Subject,
					"user_role": claims.Role,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated permite usuários do painel e integrações de serviço
func Authenticated() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAuthenticated, domain.RoleService})
}

// ServiceOnly permite apenas a chave ou token de serviço
func ServiceOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleService})
}

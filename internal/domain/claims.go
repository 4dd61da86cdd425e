package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

// Claims são as informações carregadas no token de acesso do painel
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IsService informa se o token pertence a uma integração de serviço
func (c *Claims) IsService() bool {
	return c != nil && c.Role == RoleService
}

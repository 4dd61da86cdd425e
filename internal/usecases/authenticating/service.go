package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/offer-dashboard-api/internal/config"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const serviceSubject = "service"

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidateAPIKey(key string) (*domain.Claims, error)
	IssueToken(subject, email, role string, ttl time.Duration) (string, error)
}

type Service struct {
	secret         []byte
	serviceKeyHash []byte
	now            func() time.Time
}

func NewService(cfg config.Auth) *Service {
	return &Service{
		secret:         []byte(cfg.Secret),
		serviceKeyHash: []byte(strings.TrimSpace(cfg.ServiceKeyHash)),
		now:            time.Now,
	}
}

// ValidateToken valida um JWT HS256 assinado com o segredo do projeto.
// Tokens sem role são tratados como usuários autenticados.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingCredentials, apiErrors.ErrMissingCredentials, "Token não informado")
	}
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrSecretNotSet, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	if claims.Role == "" {
		claims.Role = domain.RoleAuthenticated
	}

	return claims, nil
}

// ValidateAPIKey compara a chave de serviço com o hash bcrypt configurado
func (s *Service) ValidateAPIKey(key string) (*domain.Claims, error) {
	if key == "" {
		return nil, NewAuthError(ErrMissingCredentials, apiErrors.ErrMissingCredentials, "Chave não informada")
	}
	if len(s.serviceKeyHash) == 0 {
		return nil, NewAuthError(ErrAPIKeyDisabled, apiErrors.ErrInvalidAPIKey, "Chave de serviço não configurada")
	}

	if err := bcrypt.CompareHashAndPassword(s.serviceKeyHash, []byte(key)); err != nil {
		return nil, NewAuthError(ErrInvalidAPIKey, apiErrors.ErrInvalidAPIKey, "Chave de serviço inválida")
	}

	return &domain.Claims{
		Role: domain.RoleService,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: serviceSubject,
		},
	}, nil
}

// IssueToken assina um token de acesso; usado pela linha de comando para integrações
func (s *Service) IssueToken(subject, email, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", NewAuthError(ErrSecretNotSet, apiErrors.ErrInternalServer, "")
	}
	if role == "" {
		role = domain.RoleAuthenticated
	}

	now := s.now()
	claims := domain.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// HashAPIKey gera o hash bcrypt a ser configurado em AUTH_SERVICE_KEY_HASH
func HashAPIKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrMissingCredentials    = "AUTH_003" // Nenhuma credencial enviada
	ErrInvalidAPIKey         = "AUTH_004" // Chave de serviço inválida
	ErrInsufficientPrivilege = "AUTH_005" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Período desconhecido
	ErrInvalidStatus       = "VAL_005" // Status desconhecido
	ErrRouteNotFound       = "VAL_006" // Rota inexistente

	// Erros de ofertas e criativos
	ErrOfferNotFound        = "OFR_001" // Oferta não encontrada
	ErrDeleteConfirmation   = "OFR_002" // Nome digitado não confere com o da oferta
	ErrOfferHasCreatives    = "OFR_003" // Oferta ainda possui criativos vinculados
	ErrCreativeNotFound     = "CRT_001" // Criativo não encontrado
	ErrDailyMetricNotFound  = "MET_001" // Métrica diária não encontrada
	ErrDuplicateDailyMetric = "MET_002" // Já existe métrica para o criativo na data
	ErrLookupNotFound       = "LKP_001" // Registro auxiliar não encontrado
	ErrLookupDuplicate      = "LKP_002" // Registro auxiliar já existe
	ErrLookupInUse          = "LKP_003" // Registro auxiliar em uso

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation  = "SRV_002" // Erro de operação de banco de dados
	ErrServiceUnavailable = "SRV_003" // Serviço indisponível
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrMissingCredentials:    http.StatusUnauthorized,
	ErrInvalidAPIKey:         http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrInvalidStatus:         http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrOfferNotFound:         http.StatusNotFound,
	ErrDeleteConfirmation:    http.StatusBadRequest,
	ErrOfferHasCreatives:     http.StatusConflict,
	ErrCreativeNotFound:      http.StatusNotFound,
	ErrDailyMetricNotFound:   http.StatusNotFound,
	ErrDuplicateDailyMetric:  http.StatusConflict,
	ErrLookupNotFound:        http.StatusNotFound,
	ErrLookupDuplicate:       http.StatusConflict,
	ErrLookupInUse:           http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

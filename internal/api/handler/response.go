package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeJSON lê o corpo da requisição; em caso de erro a resposta já foi escrita
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
		return false
	}
	return true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		offerErr    *offering.OfferError
		creativeErr *creative.CreativeError
		metricsErr  *metrics.MetricsError
		lookupErr   *lookup.LookupError
	)

	code := apiErrors.ErrInternalServer
	switch {
	case errors.As(err, &offerErr):
		code = offerErr.Code
	case errors.As(err, &creativeErr):
		code = creativeErr.Code
	case errors.As(err, &metricsErr):
		code = metricsErr.Code
	case errors.As(err, &lookupErr):
		code = lookupErr.Code
	case errors.Is(err, domain.ErrInvalidPeriod):
		code = apiErrors.ErrInvalidPeriod
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	logger.Warn(message)
	apiErrors.WriteError(w, code, err.Error(), nil)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics"
)

// dateRange lê start_date e end_date opcionais
func dateRange(w http.ResponseWriter, r *http.Request, loc *time.Location) (*domain.Date, *domain.Date, bool) {
	query := r.URL.Query()

	start, ok := queryDate(w, query, "start_date", loc)
	if !ok {
		return nil, nil, false
	}
	end, ok := queryDate(w, query, "end_date", loc)
	if !ok {
		return nil, nil, false
	}
	return start, end, true
}

func ListDailyMetrics(service metrics.MetricsService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, end, ok := dateRange(w, r, loc)
		if !ok {
			return
		}

		result, err := service.ListDailyMetrics(r.Context(), domain.MetricFilter{
			CreativeID: strings.TrimSpace(r.URL.Query().Get("criativo_id")),
			StartDate:  start,
			EndDate:    end,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar métricas diárias")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func CreateDailyMetric(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var metric domain.DailyMetric
		if !decodeJSON(w, r, &metric) {
			return
		}

		created, err := service.CreateDailyMetric(r.Context(), &metric)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar métrica diária")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

// UpsertDailyMetric grava a métrica do criativo na data, criando ou substituindo
func UpsertDailyMetric(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var metric domain.DailyMetric
		if !decodeJSON(w, r, &metric) {
			return
		}

		saved, err := service.UpsertDailyMetric(r.Context(), &metric)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar métrica diária")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	})
}

func UpdateDailyMetric(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update domain.UpdateDailyMetricRequest
		if !decodeJSON(w, r, &update) {
			return
		}

		updated, err := service.UpdateDailyMetric(r.Context(), pathParam(r, "id"), &update)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar métrica diária")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func ListOfferDailyMetrics(service metrics.MetricsService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, end, ok := dateRange(w, r, loc)
		if !ok {
			return
		}

		result, err := service.ListOfferDailyMetrics(r.Context(), domain.OfferMetricFilter{
			OfferID:   strings.TrimSpace(r.URL.Query().Get("oferta_id")),
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar métricas das ofertas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// ListOfferDailyMetricsWithOffer usa status para filtrar as ofertas; sem ele as arquivadas ficam de fora
func ListOfferDailyMetricsWithOffer(service metrics.MetricsService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, ok := queryStatus(w, r.URL.Query())
		if !ok {
			return
		}

		start, end, ok := dateRange(w, r, loc)
		if !ok {
			return
		}

		result, err := service.ListOfferDailyMetricsWithOffer(r.Context(), domain.OfferMetricWithOfferFilter{
			StartDate:   start,
			EndDate:     end,
			OfferStatus: status,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar métricas com ofertas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// AggregatedOfferMetrics soma e classifica as métricas de cada oferta no período selecionado
func AggregatedOfferMetrics(service metrics.MetricsService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, ok := queryPeriod(w, r.URL.Query(), now().In(loc))
		if !ok {
			return
		}

		result, err := service.AggregatedByOffer(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar métricas das ofertas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"periodo": period,
			"ofertas": result,
		})
	})
}

func CreativesCountByOffer(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.CreativesCountByOffer(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao contar criativos por oferta")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

// GetPeriod resolve a tag do seletor de período para o intervalo de datas.
// Para custom, start_date e end_date vêm na query.
func GetPeriod(loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := pathParam(r, "tag")
		if _, err := domain.ParsePeriodTag(tag); err != nil || tag == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido. Valores aceitos: today, 7d, 30d, custom, all", tag)
			return
		}

		query := r.URL.Query()
		query.Set("periodo", tag)

		period, ok := queryPeriod(w, query, now().In(loc))
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, period)
	})
}

package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
)

// Metrics registra contagem e duração das requisições pela rota declarada
// (ex.: /v1/offers/:id) e não pelo caminho recebido
func Metrics(m *metrics.Metrics, method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			m.ObserveRequest(method, route, lrw.statusCode, time.Since(start))
		})
	}
}

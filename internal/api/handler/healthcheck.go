package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

// Pinger é qualquer dependência verificada pelo healthcheck
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Banco de dados indisponível", nil)
				return
			}
		}

		if _, err := w.Write([]byte(now().String())); err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

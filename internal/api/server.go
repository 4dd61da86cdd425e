package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/offer-dashboard-api/internal/api/handler"
	"github.com/vfg2006/offer-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/offer-dashboard-api/internal/config"
	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
	appmetrics "github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/middleware"
)

// Services reúne as dependências expostas pela API
type Services struct {
	Offers        offering.OfferService
	Creatives     creative.CreativeService
	Metrics       appmetrics.MetricsService
	Lookups       lookup.LookupService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	DB            handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services, m *metrics.Metrics) http.Handler {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.UTC
	}

	var metricsHandler http.Handler
	if m != nil {
		metricsHandler = m.Handler()
	}

	rt := router.New(
		router.WithRouteMiddleware(func(method, path string) func(http.Handler) http.Handler {
			return middleware.Metrics(m, method, path)
		}),
		router.WithRoutes(handler.Healthcheck(services.DB, metricsHandler)...),
		router.WithRoutes(handler.Offers(services.Offers, loc)...),
		router.WithRoutes(handler.Creatives(services.Creatives)...),
		router.WithRoutes(handler.Metrics(services.Metrics, loc)...),
		router.WithRoutes(handler.Lookups(services.Lookups)...),
		router.WithRoutes(handler.Periods(loc)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)
	rt.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", r.URL.Path)
	}))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services, m *metrics.Metrics) *Server {
	readTimeout := cfg.Server.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 2 * time.Second
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, m),
			ReadHeaderTimeout: readTimeout,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

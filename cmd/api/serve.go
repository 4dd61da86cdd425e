package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/api"
	"github.com/vfg2006/offer-dashboard-api/internal/api/handler"
	"github.com/vfg2006/offer-dashboard-api/internal/config"
	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/scheduler"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
	metricsusecase "github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe a API HTTP e o agendador de consolidação",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	m := metrics.New()

	offerRepo := repository.NewOfferRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	dailyMetricRepo := repository.NewDailyMetricRepository(pgConn)
	offerDailyMetricRepo := repository.NewOfferDailyMetricRepository(pgConn)

	metricsService := metricsusecase.NewService(dailyMetricRepo, offerDailyMetricRepo, creativeRepo, m)

	// O cache das métricas agregadas é opcional
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, métricas agregadas sem cache")
		} else {
			defer redisClient.Close()
			metricsService = metricsService.WithCache(cache.NewAggregatedMetricsCache(redisClient, cfg.Redis.TTL))
			logrus.Info("Cache de métricas agregadas habilitado")
		}
	}

	offerService := offering.NewService(offerRepo, creativeRepo, m).WithCacheInvalidator(metricsService)
	creativeService := creative.NewService(creativeRepo, offerRepo).WithCacheInvalidator(metricsService)
	lookupService := lookup.NewService(
		repository.NewNicheRepository(pgConn),
		repository.NewCopywriterRepository(pgConn),
		repository.NewCountryRepository(pgConn),
	)
	authenticator := authenticating.NewService(cfg.Auth)

	rollupService := scheduler.NewOfferMetricsRollupService(offerDailyMetricRepo, metricsService, m, cfg)
	if err := rollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de métricas por oferta")
	} else {
		logrus.Info("Agendador de consolidação de métricas por oferta iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Offers:        offerService,
		Creatives:     creativeService,
		Metrics:       metricsService,
		Lookups:       lookupService,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{OfferMetricsRollup: rollupService},
		DB:            pgConn,
	}, m)

	return server.Run(ctx)
}

// loadConfig lê a configuração e prepara o logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	return cfg, nil
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

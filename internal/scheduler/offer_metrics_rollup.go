package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/config"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
)

var ErrRollupRunning = errors.New("consolidação de métricas já em andamento")

// CacheInvalidator descarta dados derivados das métricas por oferta
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// OfferMetricsRollupConfig representa a configuração do agendador de consolidação
type OfferMetricsRollupConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
	Location     *time.Location
}

// OfferMetricsRollupService reconstrói metricas_diarias_oferta a partir das
// métricas dos criativos nos últimos dias
type OfferMetricsRollupService struct {
	scheduler   *gocron.Scheduler
	config      OfferMetricsRollupConfig
	repo        repository.OfferDailyMetricRepository
	cache       CacheInvalidator
	metrics     *metrics.Metrics
	now         func() time.Time
	syncRunning bool
	syncMutex   sync.Mutex

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRows            int64
	lastError           string
}

// NewOfferMetricsRollupService cria o serviço de consolidação; cache pode ser nil
func NewOfferMetricsRollupService(
	repo repository.OfferDailyMetricRepository,
	cache CacheInvalidator,
	m *metrics.Metrics,
	appConfig *config.Config,
) *OfferMetricsRollupService {
	rollupConfig := OfferMetricsRollupConfig{
		CronSchedule: appConfig.OfferMetricsRollup.CronSchedule,
		LookbackDays: appConfig.OfferMetricsRollup.LookbackDays,
		SyncEnabled:  appConfig.OfferMetricsRollup.Enabled,
		Location:     appConfig.App.Location,
	}
	if rollupConfig.Location == nil {
		rollupConfig.Location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"lookback_days": rollupConfig.LookbackDays,
		"sync_enabled":  rollupConfig.SyncEnabled,
		"timezone":      rollupConfig.Location.String(),
	}).Info("Configuração do agendador de consolidação de métricas carregada")

	return &OfferMetricsRollupService{
		scheduler: gocron.NewScheduler(rollupConfig.Location),
		config:    rollupConfig,
		repo:      repo,
		cache:     cache,
		metrics:   m,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *OfferMetricsRollupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação de métricas por oferta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de métricas por oferta")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrRollupRunning) {
			logrus.WithError(err).Error("Erro na consolidação agendada de métricas por oferta")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de métricas por oferta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de métricas por oferta")
		s.scheduler.Stop()
	}()

	return nil
}

// window devolve os últimos LookbackDays dias, terminando hoje
func (s *OfferMetricsRollupService) window() (domain.Date, domain.Date) {
	days := s.config.LookbackDays
	if days < 1 {
		days = 1
	}
	end := domain.NewDate(s.now().In(s.config.Location))
	return end.AddDays(-(days - 1)), end
}

// RunOnce executa uma consolidação e devolve o número de linhas gravadas.
// Retorna ErrRollupRunning se outra execução estiver em andamento.
func (s *OfferMetricsRollupService) RunOnce(ctx context.Context) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de métricas por oferta já em andamento, ignorando")
		return 0, ErrRollupRunning
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	start, end := s.window()
	logger := logrus.WithFields(logrus.Fields{
		"start_date": start.String(),
		"end_date":   end.String(),
	})
	logger.Info("Iniciando consolidação de métricas por oferta")

	rows, err := s.repo.RollupFromCreatives(ctx, start, end)
	duration := s.now().Sub(startTime)
	s.metrics.ObserveRollup(rows, duration, err)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastRows = rows
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro ao consolidar métricas por oferta")
		return 0, err
	}

	if s.cache != nil {
		s.cache.InvalidateCache(ctx)
	}

	logger.WithFields(logrus.Fields{
		"rows":     rows,
		"duration": duration.String(),
	}).Info("Consolidação de métricas por oferta concluída")

	return rows, nil
}

// TriggerManualSync inicia manualmente uma consolidação em segundo plano
func (s *OfferMetricsRollupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de métricas por oferta já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de métricas por oferta")
	go func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrRollupRunning) {
			logrus.WithError(err).Error("Erro na consolidação manual de métricas por oferta")
		}
	}()

	return true
}

// GetStatus retorna o status atual da consolidação
func (s *OfferMetricsRollupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_rows":              s.lastRows,
		"last_error":             s.lastError,
	}
}

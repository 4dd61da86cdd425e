package metrics

import (
	"context"
	"errors"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	appmetrics "github.com/vfg2006/offer-dashboard-api/internal/metrics"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type MetricsService interface {
	ListDailyMetrics(ctx context.Context, filter domain.MetricFilter) ([]*domain.DailyMetric, error)
	CreateDailyMetric(ctx context.Context, metric *domain.DailyMetric) (*domain.DailyMetric, error)
	UpdateDailyMetric(ctx context.Context, id string, update *domain.UpdateDailyMetricRequest) (*domain.DailyMetric, error)
	UpsertDailyMetric(ctx context.Context, metric *domain.DailyMetric) (*domain.DailyMetric, error)

	ListOfferDailyMetrics(ctx context.Context, filter domain.OfferMetricFilter) ([]*domain.OfferDailyMetric, error)
	ListOfferDailyMetricsWithOffer(ctx context.Context, filter domain.OfferMetricWithOfferFilter) ([]*domain.OfferDailyMetricWithOffer, error)
	AggregatedByOffer(ctx context.Context, period domain.Period) (map[string]*domain.AggregatedMetrics, error)
	CreativesCountByOffer(ctx context.Context) (map[string]int64, error)
}

type Service struct {
	dailyRepo    repository.DailyMetricRepository
	offerRepo    repository.OfferDailyMetricRepository
	creativeRepo repository.CreativeRepository
	metrics      *appmetrics.Metrics

	cache    cache.AggregatedMetricsCache
	useCache bool
}

func NewService(
	dailyRepo repository.DailyMetricRepository,
	offerRepo repository.OfferDailyMetricRepository,
	creativeRepo repository.CreativeRepository,
	m *appmetrics.Metrics,
) *Service {
	return &Service{
		dailyRepo:    dailyRepo,
		offerRepo:    offerRepo,
		creativeRepo: creativeRepo,
		metrics:      m,
		useCache:     false,
	}
}

// WithCache habilita o cache das métricas agregadas
func (s *Service) WithCache(c cache.AggregatedMetricsCache) *Service {
	s.cache = c
	s.useCache = c != nil
	return s
}

func (s *Service) ListDailyMetrics(ctx context.Context, filter domain.MetricFilter) ([]*domain.DailyMetric, error) {
	metrics, err := s.dailyRepo.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithField("criativo_id", filter.CreativeID).WithError(err).Error("Erro ao listar métricas diárias")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas diárias")
	}

	return metrics, nil
}

func validateDailyMetric(metric *domain.DailyMetric) error {
	if metric.CreativeID == "" {
		return NewMetricsError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "O criativo da métrica é obrigatório")
	}
	if metric.Date.IsZero() {
		return NewMetricsError(ErrDateRequired, apiErrors.ErrMissingRequiredData, "A data da métrica é obrigatória")
	}

	m := metric.Measures
	if m.Spend.IsNegative() || m.Revenue.IsNegative() || m.Impressions < 0 || m.Clicks < 0 ||
		m.InitiatedCheckouts < 0 || m.Sales < 0 {
		return NewMetricsError(ErrNegativeValue, apiErrors.ErrInvalidFormat, "As métricas não podem ser negativas")
	}

	return nil
}

// fromRepository converte erros de gravação de métricas diárias
func fromRepository(err error, details string) *MetricsError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewMetricsError(ErrDailyMetricNotFound, apiErrors.ErrDailyMetricNotFound, "Métrica diária não encontrada")
	case errors.Is(err, repository.ErrDuplicate):
		return NewMetricsError(ErrDuplicateMetric, apiErrors.ErrDuplicateDailyMetric, "Já existe métrica para o criativo nesta data")
	case errors.Is(err, repository.ErrReferenced):
		return NewMetricsError(ErrCreativeNotFound, apiErrors.ErrCreativeNotFound, "Criativo não encontrado")
	}
	return NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, details)
}

func (s *Service) CreateDailyMetric(ctx context.Context, metric *domain.DailyMetric) (*domain.DailyMetric, error) {
	if err := validateDailyMetric(metric); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewMetricsError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da métrica")
	}
	metric.ID = id

	if err := s.dailyRepo.Create(ctx, metric); err != nil {
		log.ForContext(ctx).WithField("criativo_id", metric.CreativeID).WithError(err).Error("Erro ao criar métrica diária")
		return nil, fromRepository(err, "Falha ao criar métrica diária")
	}

	s.invalidateCache(ctx)
	return metric, nil
}

func (s *Service) UpdateDailyMetric(ctx context.Context, id string, update *domain.UpdateDailyMetricRequest) (*domain.DailyMetric, error) {
	if update.IsEmpty() {
		return nil, NewMetricsError(ErrEmptyUpdate, apiErrors.ErrInvalidRequest, "Nenhum campo para atualizar")
	}

	metric, err := s.dailyRepo.Update(ctx, id, update)
	if err != nil {
		log.ForContext(ctx).WithField("metrica_id", id).WithError(err).Error("Erro ao atualizar métrica diária")
		return nil, fromRepository(err, "Falha ao atualizar métrica diária")
	}

	s.invalidateCache(ctx)
	return metric, nil
}

// UpsertDailyMetric grava a métrica do criativo no dia, substituindo a existente
func (s *Service) UpsertDailyMetric(ctx context.Context, metric *domain.DailyMetric) (*domain.DailyMetric, error) {
	if err := validateDailyMetric(metric); err != nil {
		return nil, err
	}

	if metric.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewMetricsError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da métrica")
		}
		metric.ID = id
	}

	saved, err := s.dailyRepo.Upsert(ctx, metric)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"criativo_id": metric.CreativeID,
			"data":        metric.Date.String(),
		}).WithError(err).Error("Erro ao gravar métrica diária")
		return nil, fromRepository(err, "Falha ao gravar métrica diária")
	}

	s.invalidateCache(ctx)
	return saved, nil
}

func (s *Service) ListOfferDailyMetrics(ctx context.Context, filter domain.OfferMetricFilter) ([]*domain.OfferDailyMetric, error) {
	metrics, err := s.offerRepo.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithField("oferta_id", filter.OfferID).WithError(err).Error("Erro ao listar métricas das ofertas")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas das ofertas")
	}

	return metrics, nil
}

// ListOfferDailyMetricsWithOffer lista as métricas por oferta com os dados da
// oferta. Sem status informado, ofertas arquivadas ficam de fora.
func (s *Service) ListOfferDailyMetricsWithOffer(ctx context.Context, filter domain.OfferMetricWithOfferFilter) ([]*domain.OfferDailyMetricWithOffer, error) {
	if filter.OfferStatus.IsFilter() && !filter.OfferStatus.IsValid() {
		return nil, NewMetricsError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, string(filter.OfferStatus))
	}

	metrics, err := s.offerRepo.ListWithOffer(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar métricas com ofertas")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas das ofertas")
	}

	return metrics, nil
}

// AggregatedByOffer soma as métricas de cada oferta no período e classifica
// os indicadores pelos thresholds da própria oferta
func (s *Service) AggregatedByOffer(ctx context.Context, period domain.Period) (map[string]*domain.AggregatedMetrics, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": period.Start.String(),
		"end_date":   period.End.String(),
	})

	if s.useCache {
		cached, ok, err := s.cache.Get(ctx, period.Start, period.End)
		switch {
		case err != nil:
			s.metrics.ObserveCache("error")
			logger.WithError(err).Warn("Erro ao ler cache de métricas agregadas")
		case ok:
			s.metrics.ObserveCache("hit")
			return cached, nil
		default:
			s.metrics.ObserveCache("miss")
		}
	}

	rows, err := s.offerRepo.AggregateByOffer(ctx, period.Start, period.End)
	if err != nil {
		logger.WithError(err).Error("Erro ao agregar métricas por oferta")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao agregar métricas")
	}

	result := make(map[string]*domain.AggregatedMetrics, len(rows))
	for _, agg := range rows {
		agg.Evaluate(agg.Thresholds)
		result[agg.OfferID] = agg
	}

	if s.useCache {
		if err := s.cache.Set(ctx, period.Start, period.End, result); err != nil {
			logger.WithError(err).Warn("Erro ao gravar cache de métricas agregadas")
		}
	}

	return result, nil
}

func (s *Service) CreativesCountByOffer(ctx context.Context) (map[string]int64, error) {
	counts, err := s.creativeRepo.CountByOffer(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao contar criativos por oferta")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao contar criativos")
	}

	return counts, nil
}

// InvalidateCache descarta as métricas agregadas em cache
func (s *Service) InvalidateCache(ctx context.Context) {
	s.invalidateCache(ctx)
}

func (s *Service) invalidateCache(ctx context.Context) {
	if !s.useCache {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar cache de métricas agregadas")
	}
}

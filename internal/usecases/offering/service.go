package offering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/metrics"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/utils"
)

const restoreCreativesWarning = "A oferta foi restaurada, mas ocorreu um erro ao restaurar os criativos"

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type OfferService interface {
	ListOffers(ctx context.Context, status domain.Status) ([]*domain.Offer, error)
	ListArchivedOffers(ctx context.Context, filter domain.ArchivedOfferFilter) ([]*domain.Offer, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	CreateOffer(ctx context.Context, request *domain.CreateOfferRequest) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, id string, update *domain.OfferUpdate) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id string, confirmName string) error

	ArchiveOffer(ctx context.Context, id string) (*domain.ArchiveOfferResult, error)
	RestoreOffer(ctx context.Context, id string, restoreCreatives bool) (*domain.RestoreOfferResult, error)
	CountArchivedWithOffer(ctx context.Context, id string) (int64, error)
	PrepareRestore(ctx context.Context, id string) (*domain.RestorePreview, error)
}

// CacheInvalidator descarta as métricas agregadas derivadas das ofertas
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

type Service struct {
	offerRepo    repository.OfferRepository
	creativeRepo repository.CreativeRepository
	metrics      *metrics.Metrics
	cache        CacheInvalidator
	now          func() time.Time
}

func NewService(
	offerRepo repository.OfferRepository,
	creativeRepo repository.CreativeRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		offerRepo:    offerRepo,
		creativeRepo: creativeRepo,
		metrics:      m,
		now:          time.Now,
	}
}

// WithCacheInvalidator faz edições de limites, exclusões e arquivamentos
// descartarem as métricas agregadas em cache
func (s *Service) WithCacheInvalidator(c CacheInvalidator) *Service {
	s.cache = c
	return s
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidateCache(ctx)
	}
}

// archiveTimestamp é gerado uma vez por arquivamento. O truncamento em
// microssegundos garante que o valor volte igual do timestamptz do Postgres.
func (s *Service) archiveTimestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) ListOffers(ctx context.Context, status domain.Status) ([]*domain.Offer, error) {
	if status.IsFilter() && !status.IsValid() {
		return nil, NewOfferError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, string(status))
	}

	offers, err := s.offerRepo.List(ctx, status)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar ofertas")
		return nil, NewOfferError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar ofertas")
	}

	return offers, nil
}

func (s *Service) ListArchivedOffers(ctx context.Context, filter domain.ArchivedOfferFilter) ([]*domain.Offer, error) {
	offers, err := s.offerRepo.List(ctx, domain.StatusArchived)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar ofertas arquivadas")
		return nil, NewOfferError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar ofertas arquivadas")
	}

	return filter.Apply(offers), nil
}

func (s *Service) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	if id == "" {
		return nil, NewOfferError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithField("oferta_id", id).WithError(err).Warn("Erro ao buscar oferta")
		return nil, fromRepository(err, id, "Falha ao buscar oferta")
	}

	return offer, nil
}

func (s *Service) CreateOffer(ctx context.Context, request *domain.CreateOfferRequest) (*domain.Offer, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewOfferError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "O nome da oferta é obrigatório")
	}

	status := request.Status
	if status == "" {
		status = domain.StatusInTest
	}
	if !status.IsValid() {
		return nil, NewOfferError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, string(status))
	}

	thresholds := domain.DefaultThresholds()
	if request.Thresholds != nil {
		thresholds = *request.Thresholds
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewOfferError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da oferta")
	}

	offer := &domain.Offer{
		ID:         id,
		Name:       name,
		Niche:      request.Niche,
		Country:    request.Country,
		Status:     status,
		Thresholds: thresholds,
	}
	if status == domain.StatusArchived {
		ts := s.archiveTimestamp()
		offer.ArchivedAt = &ts
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar oferta")
		return nil, NewOfferError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar oferta")
	}

	return offer, nil
}

// UpdateOffer aplica uma edição parcial. O status "arquivado" só é atribuído
// pelo fluxo de arquivamento, que também grava archived_at.
func (s *Service) UpdateOffer(ctx context.Context, id string, update *domain.OfferUpdate) (*domain.Offer, error) {
	if id == "" {
		return nil, NewOfferError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, NewOfferErrorWithID(ErrNameRequired, apiErrors.ErrMissingRequiredData, id, "O nome da oferta é obrigatório")
		}
		update.Name = &name
	}

	if update.Status != nil && (!update.Status.IsValid() || *update.Status == domain.StatusArchived) {
		return nil, NewOfferErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidStatus, id, string(*update.Status))
	}

	// archived_at não é editável por aqui
	update.ArchivedAt = nil
	update.ClearArchivedAt = false

	if update.IsEmpty() {
		return s.GetOffer(ctx, id)
	}

	offer, err := s.offerRepo.Update(ctx, id, update)
	if err != nil {
		log.ForContext(ctx).WithField("oferta_id", id).WithError(err).Error("Erro ao atualizar oferta")
		return nil, fromRepository(err, id, "Falha ao atualizar oferta")
	}

	// a classificação agregada depende dos limites da oferta
	if update.Thresholds != nil {
		s.invalidateCache(ctx)
	}

	return offer, nil
}

// DeleteOffer exclui permanentemente a oferta se confirmName for exatamente o nome dela
func (s *Service) DeleteOffer(ctx context.Context, id string, confirmName string) error {
	offer, err := s.GetOffer(ctx, id)
	if err != nil {
		return err
	}

	if confirmName != offer.Name {
		return NewOfferErrorWithID(ErrDeleteConfirmation, apiErrors.ErrDeleteConfirmation, id, "Digite o nome exato da oferta para confirmar")
	}

	if err := s.offerRepo.Delete(ctx, id); err != nil {
		logger := log.ForContext(ctx).WithField("oferta_id", id).WithError(err)
		if errors.Is(err, repository.ErrReferenced) {
			logger.Warn("Oferta possui criativos vinculados")
			return NewOfferErrorWithID(ErrOfferHasCreatives, apiErrors.ErrOfferHasCreatives, id, "Exclua ou mova os criativos antes de excluir a oferta")
		}
		logger.Error("Erro ao excluir oferta")
		return fromRepository(err, id, "Falha ao excluir oferta")
	}

	s.invalidateCache(ctx)
	log.ForContext(ctx).WithField("oferta_id", id).Info("Oferta excluída")
	return nil
}

// ArchiveOffer arquiva os criativos ativos da oferta e depois a própria oferta,
// ambos com o mesmo timestamp. As etapas não são transacionais: se a segunda
// falhar os criativos continuam arquivados.
func (s *Service) ArchiveOffer(ctx context.Context, id string) (*domain.ArchiveOfferResult, error) {
	if id == "" {
		return nil, NewOfferError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	logger := log.ForContext(ctx).WithField("oferta_id", id)
	ts := s.archiveTimestamp()

	archived, err := s.creativeRepo.ArchiveByOffer(ctx, id, ts)
	if err != nil {
		logger.WithError(err).Error("Erro ao arquivar criativos da oferta")
		return nil, NewOfferErrorWithID(ErrArchiveCreatives, apiErrors.ErrDatabaseOperation, id, "Falha ao arquivar criativos da oferta")
	}

	status := domain.StatusArchived
	offer, err := s.offerRepo.Update(ctx, id, &domain.OfferUpdate{Status: &status, ArchivedAt: &ts})
	if err != nil {
		logger.WithError(err).WithField("criativos_arquivados", archived).
			Error("Erro ao arquivar oferta; criativos permanecem arquivados")
		return nil, fromRepository(err, id, "Falha ao arquivar oferta")
	}

	s.metrics.ObserveArchive(archived)
	s.invalidateCache(ctx)
	logger.WithField("criativos_arquivados", archived).Info("Oferta arquivada")

	return &domain.ArchiveOfferResult{Offer: offer, CreativesArchived: archived}, nil
}

// RestoreOffer restaura a oferta como pausada. Com restoreCreatives, restaura
// antes os criativos arquivados junto com ela; uma falha nessa etapa vira aviso
// e não impede a restauração da oferta.
func (s *Service) RestoreOffer(ctx context.Context, id string, restoreCreatives bool) (*domain.RestoreOfferResult, error) {
	if id == "" {
		return nil, NewOfferError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	logger := log.ForContext(ctx).WithField("oferta_id", id)
	result := &domain.RestoreOfferResult{}
	creativeStepFailed := false

	if restoreCreatives {
		restored, err := s.restoreArchivedCreatives(ctx, id)
		if err != nil {
			logger.WithError(err).Warn("Erro ao restaurar criativos; a oferta será restaurada mesmo assim")
			result.Warning = restoreCreativesWarning
			creativeStepFailed = true
		} else {
			result.CreativesRestored = restored
		}
	}

	status := domain.StatusPaused
	offer, err := s.offerRepo.Update(ctx, id, &domain.OfferUpdate{Status: &status, ClearArchivedAt: true})
	if err != nil {
		logger.WithError(err).Error("Erro ao restaurar oferta")
		return nil, fromRepository(err, id, "Falha ao restaurar oferta")
	}

	s.metrics.ObserveRestore(result.CreativesRestored, creativeStepFailed)
	s.invalidateCache(ctx)
	logger.WithField("criativos_restaurados", result.CreativesRestored).Info("Oferta restaurada")

	result.Offer = offer
	return result, nil
}

// restoreArchivedCreatives lê o archived_at gravado na oferta e restaura só os
// criativos com exatamente o mesmo valor
func (s *Service) restoreArchivedCreatives(ctx context.Context, id string) (int64, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if offer.ArchivedAt == nil {
		return 0, nil
	}

	return s.creativeRepo.RestoreArchivedWith(ctx, id, *offer.ArchivedAt)
}

// CountArchivedWithOffer conta os criativos arquivados junto com a oferta
func (s *Service) CountArchivedWithOffer(ctx context.Context, id string) (int64, error) {
	offer, err := s.GetOffer(ctx, id)
	if err != nil {
		return 0, err
	}

	return s.countArchivedWith(ctx, offer)
}

func (s *Service) countArchivedWith(ctx context.Context, offer *domain.Offer) (int64, error) {
	if offer.ArchivedAt == nil {
		return 0, nil
	}

	count, err := s.creativeRepo.CountArchivedWith(ctx, offer.ID, *offer.ArchivedAt)
	if err != nil {
		log.ForContext(ctx).WithField("oferta_id", offer.ID).WithError(err).Error("Erro ao contar criativos arquivados")
		return 0, NewOfferErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, offer.ID, "Falha ao contar criativos arquivados")
	}

	return count, nil
}

// PrepareRestore devolve os dados do diálogo de restauração; restaurar os
// criativos vem marcado quando há criativos arquivados junto
func (s *Service) PrepareRestore(ctx context.Context, id string) (*domain.RestorePreview, error) {
	offer, err := s.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.countArchivedWith(ctx, offer)
	if err != nil {
		return nil, err
	}

	return &domain.RestorePreview{
		Offer:            offer,
		CreativesCount:   count,
		RestoreCreatives: count > 0,
	}, nil
}

package creative

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type CreativeService interface {
	List(ctx context.Context, filter domain.CreativeFilter) ([]*domain.Creative, error)
	ListWithAverages(ctx context.Context, offerID string, status domain.Status) ([]*domain.CreativeWithAverages, error)
	Get(ctx context.Context, id string) (*domain.Creative, error)
	Create(ctx context.Context, request *domain.CreateCreativeRequest) (*domain.Creative, error)
	Update(ctx context.Context, id string, update *domain.CreativeUpdate) (*domain.Creative, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*domain.Creative, error)
	Restore(ctx context.Context, id string) (*domain.Creative, error)
}

// CacheInvalidator descarta as métricas agregadas derivadas dos criativos
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

type Service struct {
	creativeRepo repository.CreativeRepository
	offerRepo    repository.OfferRepository
	cache        CacheInvalidator
	now          func() time.Time
}

func NewService(creativeRepo repository.CreativeRepository, offerRepo repository.OfferRepository) *Service {
	return &Service{
		creativeRepo: creativeRepo,
		offerRepo:    offerRepo,
		now:          time.Now,
	}
}

// WithCacheInvalidator faz a exclusão de criativos descartar as métricas agregadas em cache
func (s *Service) WithCacheInvalidator(c CacheInvalidator) *Service {
	s.cache = c
	return s
}

func (s *Service) List(ctx context.Context, filter domain.CreativeFilter) ([]*domain.Creative, error) {
	if filter.Status.IsFilter() && !filter.Status.IsValid() {
		return nil, NewCreativeError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, "", string(filter.Status))
	}

	creatives, err := s.creativeRepo.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar criativos")
		return nil, NewCreativeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar criativos")
	}

	return creatives, nil
}

// ListWithAverages lê a view de médias; offerID vazio lista todas as ofertas
func (s *Service) ListWithAverages(ctx context.Context, offerID string, status domain.Status) ([]*domain.CreativeWithAverages, error) {
	if status.IsFilter() && !status.IsValid() {
		return nil, NewCreativeError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, "", string(status))
	}

	creatives, err := s.creativeRepo.ListWithAverages(ctx, offerID, status)
	if err != nil {
		log.ForContext(ctx).WithField("oferta_id", offerID).WithError(err).Error("Erro ao listar médias dos criativos")
		return nil, NewCreativeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar médias dos criativos")
	}

	return creatives, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Creative, error) {
	if id == "" {
		return nil, NewCreativeError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	c, err := s.creativeRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithField("criativo_id", id).WithError(err).Warn("Erro ao buscar criativo")
		return nil, fromRepository(err, id, "Falha ao buscar criativo")
	}

	return c, nil
}

func (s *Service) Create(ctx context.Context, request *domain.CreateCreativeRequest) (*domain.Creative, error) {
	if request.OfferID == "" {
		return nil, NewCreativeError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "", "A oferta do criativo é obrigatória")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewCreativeError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "O nome do criativo é obrigatório")
	}

	status := request.Status
	if status == "" {
		status = domain.StatusInTest
	}
	if !status.IsValid() {
		return nil, NewCreativeError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, "", string(status))
	}

	if _, err := s.offerRepo.GetByID(ctx, request.OfferID); err != nil {
		logger := log.ForContext(ctx).WithField("oferta_id", request.OfferID).WithError(err)
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Criativo para oferta inexistente")
			return nil, NewCreativeError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, "", "Oferta não encontrada")
		}
		logger.Error("Erro ao buscar oferta do criativo")
		return nil, NewCreativeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao buscar oferta")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCreativeError(ErrGenerateID, apiErrors.ErrInternalServer, "", "Falha ao gerar identificador do criativo")
	}

	c := &domain.Creative{
		ID:         id,
		OfferID:    request.OfferID,
		Name:       name,
		Status:     status,
		Source:     request.Source,
		Copywriter: request.Copywriter,
	}
	if status == domain.StatusArchived {
		ts := s.now().UTC().Truncate(time.Microsecond)
		c.ArchivedAt = &ts
	}

	if err := s.creativeRepo.Create(ctx, c); err != nil {
		log.ForContext(ctx).WithField("oferta_id", request.OfferID).WithError(err).Error("Erro ao criar criativo")
		return nil, NewCreativeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao criar criativo")
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, update *domain.CreativeUpdate) (*domain.Creative, error) {
	if id == "" {
		return nil, NewCreativeError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, NewCreativeError(ErrNameRequired, apiErrors.ErrMissingRequiredData, id, "O nome do criativo é obrigatório")
		}
		update.Name = &name
	}

	if update.Status != nil && (!update.Status.IsValid() || *update.Status == domain.StatusArchived) {
		return nil, NewCreativeError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, id, string(*update.Status))
	}

	update.ArchivedAt = nil
	update.ClearArchivedAt = false

	if update.IsEmpty() {
		return s.Get(ctx, id)
	}

	c, err := s.creativeRepo.Update(ctx, id, update)
	if err != nil {
		log.ForContext(ctx).WithField("criativo_id", id).WithError(err).Error("Erro ao atualizar criativo")
		return nil, fromRepository(err, id, "Falha ao atualizar criativo")
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewCreativeError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if err := s.creativeRepo.Delete(ctx, id); err != nil {
		log.ForContext(ctx).WithField("criativo_id", id).WithError(err).Error("Erro ao excluir criativo")
		return fromRepository(err, id, "Falha ao excluir criativo")
	}

	// as métricas do criativo saem junto, em cascata
	if s.cache != nil {
		s.cache.InvalidateCache(ctx)
	}

	return nil
}

// Archive arquiva um único criativo com timestamp próprio, que não coincide com
// o de nenhuma oferta e por isso não volta na restauração da oferta
func (s *Service) Archive(ctx context.Context, id string) (*domain.Creative, error) {
	if id == "" {
		return nil, NewCreativeError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	ts := s.now().UTC().Truncate(time.Microsecond)
	status := domain.StatusArchived

	c, err := s.creativeRepo.Update(ctx, id, &domain.CreativeUpdate{Status: &status, ArchivedAt: &ts})
	if err != nil {
		log.ForContext(ctx).WithField("criativo_id", id).WithError(err).Error("Erro ao arquivar criativo")
		return nil, fromRepository(err, id, "Falha ao arquivar criativo")
	}

	return c, nil
}

func (s *Service) Restore(ctx context.Context, id string) (*domain.Creative, error) {
	if id == "" {
		return nil, NewCreativeError(ErrCreativeIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	status := domain.StatusInTest

	c, err := s.creativeRepo.Update(ctx, id, &domain.CreativeUpdate{Status: &status, ClearArchivedAt: true})
	if err != nil {
		log.ForContext(ctx).WithField("criativo_id", id).WithError(err).Error("Erro ao restaurar criativo")
		return nil, fromRepository(err, id, "Falha ao restaurar criativo")
	}

	return c, nil
}

package lookup

import (
	"context"
	"strings"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"github.com/vfg2006/offer-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	KindNiche      = "nicho"
	KindCopywriter = "copywriter"
	KindCountry    = "pais"
)

type LookupService interface {
	ListNiches(ctx context.Context) ([]*domain.Niche, error)
	CreateNiche(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Niche, error)
	DeleteNiche(ctx context.Context, id string) error

	ListCopywriters(ctx context.Context) ([]*domain.Copywriter, error)
	CreateCopywriter(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Copywriter, error)
	DeleteCopywriter(ctx context.Context, id string) error

	ListCountries(ctx context.Context) ([]*domain.Country, error)
	CreateCountry(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Country, error)
	DeleteCountry(ctx context.Context, id string) error
}

type Service struct {
	niches      repository.NicheRepository
	copywriters repository.CopywriterRepository
	countries   repository.CountryRepository
}

func NewService(
	niches repository.NicheRepository,
	copywriters repository.CopywriterRepository,
	countries repository.CountryRepository,
) *Service {
	return &Service{
		niches:      niches,
		copywriters: copywriters,
		countries:   countries,
	}
}

// newEntry valida o nome e gera o identificador de um novo registro
func newEntry(kind string, request *domain.CreateLookupRequest) (string, string, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return "", "", NewLookupError(ErrNameRequired, apiErrors.ErrMissingRequiredData, kind, "O nome é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", "", NewLookupError(ErrGenerateID, apiErrors.ErrInternalServer, kind, "")
	}

	return id, name, nil
}

func failed(ctx context.Context, kind, action string, err error) error {
	log.ForContext(ctx).WithField("tabela", kind).WithError(err).Errorf("Erro ao %s registro auxiliar", action)
	return fromRepository(err, kind)
}

func (s *Service) ListNiches(ctx context.Context) ([]*domain.Niche, error) {
	niches, err := s.niches.List(ctx)
	if err != nil {
		return nil, failed(ctx, KindNiche, "listar", err)
	}
	return niches, nil
}

func (s *Service) CreateNiche(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Niche, error) {
	id, name, err := newEntry(KindNiche, request)
	if err != nil {
		return nil, err
	}

	niche := &domain.Niche{ID: id, Name: name}
	if err := s.niches.Create(ctx, niche); err != nil {
		return nil, failed(ctx, KindNiche, "criar", err)
	}
	return niche, nil
}

func (s *Service) DeleteNiche(ctx context.Context, id string) error {
	if id == "" {
		return NewLookupError(ErrIDRequired, apiErrors.ErrMissingRequiredData, KindNiche, "")
	}
	if err := s.niches.Delete(ctx, id); err != nil {
		return failed(ctx, KindNiche, "excluir", err)
	}
	return nil
}

func (s *Service) ListCopywriters(ctx context.Context) ([]*domain.Copywriter, error) {
	copywriters, err := s.copywriters.List(ctx)
	if err != nil {
		return nil, failed(ctx, KindCopywriter, "listar", err)
	}
	return copywriters, nil
}

func (s *Service) CreateCopywriter(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Copywriter, error) {
	id, name, err := newEntry(KindCopywriter, request)
	if err != nil {
		return nil, err
	}

	copywriter := &domain.Copywriter{ID: id, Name: name}
	if err := s.copywriters.Create(ctx, copywriter); err != nil {
		return nil, failed(ctx, KindCopywriter, "criar", err)
	}
	return copywriter, nil
}

func (s *Service) DeleteCopywriter(ctx context.Context, id string) error {
	if id == "" {
		return NewLookupError(ErrIDRequired, apiErrors.ErrMissingRequiredData, KindCopywriter, "")
	}
	if err := s.copywriters.Delete(ctx, id); err != nil {
		return failed(ctx, KindCopywriter, "excluir", err)
	}
	return nil
}

func (s *Service) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	countries, err := s.countries.List(ctx)
	if err != nil {
		return nil, failed(ctx, KindCountry, "listar", err)
	}
	return countries, nil
}

func (s *Service) CreateCountry(ctx context.Context, request *domain.CreateLookupRequest) (*domain.Country, error) {
	id, name, err := newEntry(KindCountry, request)
	if err != nil {
		return nil, err
	}

	country := &domain.Country{ID: id, Name: name}
	if request.Code != nil {
		// código ISO em maiúsculas; vazio vira nulo
		if code := strings.ToUpper(strings.TrimSpace(*request.Code)); code != "" {
			country.Code = &code
		}
	}

	if err := s.countries.Create(ctx, country); err != nil {
		return nil, failed(ctx, KindCountry, "criar", err)
	}
	return country, nil
}

func (s *Service) DeleteCountry(ctx context.Context, id string) error {
	if id == "" {
		return NewLookupError(ErrIDRequired, apiErrors.ErrMissingRequiredData, KindCountry, "")
	}
	if err := s.countries.Delete(ctx, id); err != nil {
		return failed(ctx, KindCountry, "excluir", err)
	}
	return nil
}

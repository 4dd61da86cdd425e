package creative

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T) (*Service, *mocks.MockCreativeRepository, *mocks.MockOfferRepository) {
	ctrl := gomock.NewController(t)
	creativeRepo := mocks.NewMockCreativeRepository(ctrl)
	offerRepo := mocks.NewMockOfferRepository(ctrl)

	return NewService(creativeRepo, offerRepo), creativeRepo, offerRepo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *domain.CreateCreativeRequest
		setup    func(creativeRepo *mocks.MockCreativeRepository, offerRepo *mocks.MockOfferRepository)
		wantErr  error
		validate func(t *testing.T, c *domain.Creative)
	}{
		{
			name:    "status padrão em teste",
			request: &domain.CreateCreativeRequest{OfferID: "of1", Name: " VSL 01 "},
			setup: func(creativeRepo *mocks.MockCreativeRepository, offerRepo *mocks.MockOfferRepository) {
				offerRepo.EXPECT().GetByID(gomock.Any(), "of1").Return(&domain.Offer{ID: "of1"}, nil)
				creativeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, c *domain.Creative) {
				assert.Equal(t, "VSL 01", c.Name)
				assert.Equal(t, "of1", c.OfferID)
				assert.Equal(t, domain.StatusInTest, c.Status)
				assert.Nil(t, c.ArchivedAt)
				assert.NotEmpty(t, c.ID)
			},
		},
		{
			name:    "oferta inexistente",
			request: &domain.CreateCreativeRequest{OfferID: "nao-existe", Name: "VSL"},
			setup: func(_ *mocks.MockCreativeRepository, offerRepo *mocks.MockOfferRepository) {
				offerRepo.EXPECT().GetByID(gomock.Any(), "nao-existe").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrOfferNotFound,
		},
		{
			name:    "sem oferta",
			request: &domain.CreateCreativeRequest{Name: "VSL"},
			setup:   func(_ *mocks.MockCreativeRepository, _ *mocks.MockOfferRepository) {},
			wantErr: ErrOfferIDRequired,
		},
		{
			name:    "sem nome",
			request: &domain.CreateCreativeRequest{OfferID: "of1", Name: "  "},
			setup:   func(_ *mocks.MockCreativeRepository, _ *mocks.MockOfferRepository) {},
			wantErr: ErrNameRequired,
		},
		{
			name:    "status desconhecido",
			request: &domain.CreateCreativeRequest{OfferID: "of1", Name: "VSL", Status: "rascunho"},
			setup:   func(_ *mocks.MockCreativeRepository, _ *mocks.MockOfferRepository) {},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, creativeRepo, offerRepo := newTestService(t)
			tt.setup(creativeRepo, offerRepo)

			c, err := service.Create(ctx, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, c)
		})
	}
}

func TestService_ArchiveAndRestore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 10, 9, 0, 0, 987654321, time.UTC)

	t.Run("arquivar usa timestamp próprio", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		service.now = func() time.Time { return now }

		creativeRepo.EXPECT().
			Update(gomock.Any(), "cr1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, u *domain.CreativeUpdate) (*domain.Creative, error) {
				require.NotNil(t, u.ArchivedAt)
				assert.Equal(t, domain.StatusArchived, *u.Status)
				assert.Equal(t, now.Truncate(time.Microsecond), *u.ArchivedAt)
				return &domain.Creative{ID: id, Status: *u.Status, ArchivedAt: u.ArchivedAt}, nil
			})

		c, err := service.Archive(ctx, "cr1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusArchived, c.Status)
	})

	t.Run("restaurar volta para em teste e limpa archived_at", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)

		creativeRepo.EXPECT().
			Update(gomock.Any(), "cr1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, u *domain.CreativeUpdate) (*domain.Creative, error) {
				assert.Equal(t, domain.StatusInTest, *u.Status)
				assert.True(t, u.ClearArchivedAt)
				return &domain.Creative{ID: id, Status: *u.Status}, nil
			})

		c, err := service.Restore(ctx, "cr1")
		require.NoError(t, err)
		assert.Nil(t, c.ArchivedAt)
	})

	t.Run("criativo inexistente", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		creativeRepo.EXPECT().Update(gomock.Any(), "cr9", gomock.Any()).Return(nil, repository.ErrNotFound)

		_, err := service.Restore(ctx, "cr9")

		var creativeErr *CreativeError
		require.ErrorAs(t, err, &creativeErr)
		assert.Equal(t, apiErrors.ErrCreativeNotFound, creativeErr.Code)
		assert.Equal(t, "cr9", creativeErr.CreativeID)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("não aceita arquivar por edição", func(t *testing.T) {
		service, _, _ := newTestService(t)
		status := domain.StatusArchived

		_, err := service.Update(ctx, "cr1", &domain.CreativeUpdate{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("erro do banco", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		name := "Novo nome"
		creativeRepo.EXPECT().Update(gomock.Any(), "cr1", gomock.Any()).Return(nil, errors.New("falhou"))

		_, err := service.Update(ctx, "cr1", &domain.CreativeUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})

	t.Run("edição vazia devolve o criativo atual", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		creativeRepo.EXPECT().GetByID(gomock.Any(), "cr1").Return(&domain.Creative{ID: "cr1"}, nil)

		c, err := service.Update(ctx, "cr1", &domain.CreativeUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "cr1", c.ID)
	})
}

func TestService_List(t *testing.T) {
	service, creativeRepo, _ := newTestService(t)
	filter := domain.CreativeFilter{OfferID: "of1", Status: domain.StatusAll}

	creativeRepo.EXPECT().List(gomock.Any(), filter).Return([]*domain.Creative{{ID: "cr1"}}, nil)

	creatives, err := service.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, creatives, 1)

	_, err = service.List(context.Background(), domain.CreativeFilter{Status: "xyz"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) InvalidateCache(context.Context) {
	c.calls++
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("exclusão descarta as métricas agregadas em cache", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		invalidator := &countingInvalidator{}
		service.WithCacheInvalidator(invalidator)
		creativeRepo.EXPECT().Delete(gomock.Any(), "cr1").Return(nil)

		require.NoError(t, service.Delete(ctx, "cr1"))
		assert.Equal(t, 1, invalidator.calls)
	})

	t.Run("falha na exclusão mantém o cache", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		invalidator := &countingInvalidator{}
		service.WithCacheInvalidator(invalidator)
		creativeRepo.EXPECT().Delete(gomock.Any(), "cr1").Return(errors.New("falhou"))

		assert.ErrorIs(t, service.Delete(ctx, "cr1"), ErrDatabaseOperation)
		assert.Equal(t, 0, invalidator.calls)
	})

	t.Run("sem cache configurado", func(t *testing.T) {
		service, creativeRepo, _ := newTestService(t)
		creativeRepo.EXPECT().Delete(gomock.Any(), "cr1").Return(nil)

		assert.NoError(t, service.Delete(ctx, "cr1"))
	})
}

package lookup

import (
	"context"
	"errors"
	"testing"

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

func newTestService(t *testing.T) (*Service, *mocks.MockNicheRepository, *mocks.MockCopywriterRepository, *mocks.MockCountryRepository) {
	ctrl := gomock.NewController(t)
	niches := mocks.NewMockNicheRepository(ctrl)
	copywriters := mocks.NewMockCopywriterRepository(ctrl)
	countries := mocks.NewMockCountryRepository(ctrl)

	return NewService(niches, copywriters, countries), niches, copywriters, countries
}

func TestService_CreateNiche(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		repoErr  error
		callRepo bool
		wantErr  error
		wantCode string
	}{
		{name: "nome com espaços", input: "  Saúde  ", callRepo: true},
		{name: "nome vazio", input: "   ", wantErr: ErrNameRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "nome repetido", input: "Saúde", callRepo: true, repoErr: repository.ErrDuplicate, wantErr: ErrDuplicate, wantCode: apiErrors.ErrLookupDuplicate},
		{name: "falha no banco", input: "Saúde", callRepo: true, repoErr: errors.New("falhou"), wantErr: ErrDatabaseOperation, wantCode: apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, niches, _, _ := newTestService(t)
			if tt.callRepo {
				niches.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n *domain.Niche) error {
						assert.Equal(t, "Saúde", n.Name)
						assert.NotEmpty(t, n.ID)
						return tt.repoErr
					})
			}

			niche, err := service.CreateNiche(ctx, &domain.CreateLookupRequest{Name: tt.input})
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Saúde", niche.Name)
				return
			}

			var lookupErr *LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, lookupErr.Code)
			assert.Equal(t, KindNiche, lookupErr.Kind)
		})
	}
}

func TestService_DeleteCopywriter_InUse(t *testing.T) {
	service, _, copywriters, _ := newTestService(t)
	copywriters.EXPECT().Delete(gomock.Any(), "cw1").Return(repository.ErrReferenced)

	err := service.DeleteCopywriter(context.Background(), "cw1")
	assert.ErrorIs(t, err, ErrInUse)
}

func TestService_CreateCountry_NormalizesCode(t *testing.T) {
	service, _, _, countries := newTestService(t)
	code := " br "

	countries.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Country) error {
			require.NotNil(t, c.Code)
			assert.Equal(t, "BR", *c.Code)
			return nil
		})

	country, err := service.CreateCountry(context.Background(), &domain.CreateLookupRequest{Name: "Brasil", Code: &code})
	require.NoError(t, err)
	assert.Equal(t, "Brasil", country.Name)
}

func TestService_ListCountries(t *testing.T) {
	service, _, _, countries := newTestService(t)
	countries.EXPECT().List(gomock.Any()).Return([]*domain.Country{{ID: "1", Name: "Brasil"}}, nil)

	list, err := service.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup/mocks"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLookups(t *testing.T) {
	t.Run("lista nichos", func(t *testing.T) {
		service := mocks.NewMockLookupService(gomock.NewController(t))
		service.EXPECT().ListNiches(gomock.Any()).Return([]*domain.Niche{{ID: "n1", Name: "Saúde"}}, nil)

		rec := serve(Lookups(service), panelUser, http.MethodGet, "/v1/niches", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"nome":"Saúde"`)
	})

	t.Run("cria país", func(t *testing.T) {
		code := "BR"
		service := mocks.NewMockLookupService(gomock.NewController(t))
		service.EXPECT().
			CreateCountry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request *domain.CreateLookupRequest) (*domain.Country, error) {
				assert.Equal(t, "Brasil", request.Name)
				return &domain.Country{ID: "p1", Name: request.Name, Code: &code}, nil
			})

		rec := serve(Lookups(service), panelUser, http.MethodPost, "/v1/countries", `{"nome":"Brasil","codigo":"br"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"codigo":"BR"`)
	})

	t.Run("copywriter duplicado", func(t *testing.T) {
		service := mocks.NewMockLookupService(gomock.NewController(t))
		service.EXPECT().CreateCopywriter(gomock.Any(), gomock.Any()).
			Return(nil, lookup.NewLookupError(lookup.ErrDuplicate, apiErrors.ErrLookupDuplicate, lookup.KindCopywriter, "Ana"))

		rec := serve(Lookups(service), panelUser, http.MethodPost, "/v1/copywriters", `{"nome":"Ana"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrLookupDuplicate, decodeAPIError(t, rec).Code)
	})

	t.Run("nicho em uso não é excluído", func(t *testing.T) {
		service := mocks.NewMockLookupService(gomock.NewController(t))
		service.EXPECT().DeleteNiche(gomock.Any(), "n1").
			Return(lookup.NewLookupError(lookup.ErrInUse, apiErrors.ErrLookupInUse, lookup.KindNiche, ""))

		rec := serve(Lookups(service), panelUser, http.MethodDelete, "/v1/niches/n1", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("exclui país", func(t *testing.T) {
		service := mocks.NewMockLookupService(gomock.NewController(t))
		service.EXPECT().DeleteCountry(gomock.Any(), "p1").Return(nil)

		rec := serve(Lookups(service), panelUser, http.MethodDelete, "/v1/countries/p1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

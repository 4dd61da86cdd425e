package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering/mocks"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListArchivedOffers(t *testing.T) {
	fixNow(t, time.Date(2024, time.June, 10, 1, 0, 0, 0, time.UTC))

	t.Run("período custom com filtros", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().
			ListArchivedOffers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.ArchivedOfferFilter) ([]*domain.Offer, error) {
				assert.Equal(t, "turbo", filter.Search)
				assert.Equal(t, "Saúde", filter.Niche)
				assert.Equal(t, "all", filter.Country)
				assert.Equal(t, domain.PeriodCustom, filter.Period.Tag)
				assert.Equal(t, "2024-06-01", filter.Period.Start.String())
				assert.Equal(t, "2024-06-07", filter.Period.End.String())
				assert.Equal(t, brt, filter.Period.Start.Location())
				return []*domain.Offer{{ID: "of1", Name: "Turbo"}}, nil
			})

		rec := serve(Offers(service, brt), panelUser, http.MethodGet,
			"/v1/archived-offers?search=turbo&nicho=Sa%C3%BAde&pais=all&periodo=custom&start_date=2024-06-01&end_date=2024-06-07", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var offers []domain.Offer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offers))
		require.Len(t, offers, 1)
		assert.Equal(t, "of1", offers[0].ID)
	})

	t.Run("hoje usa o dia do fuso configurado", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().
			ListArchivedOffers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.ArchivedOfferFilter) ([]*domain.Offer, error) {
				// 01:00 UTC do dia 10 ainda é dia 9 em BRT
				assert.Equal(t, "2024-06-09", filter.Period.Start.String())
				assert.Equal(t, "2024-06-09", filter.Period.End.String())
				return nil, nil
			})

		rec := serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/archived-offers?periodo=today", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("período desconhecido", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))

		rec := serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/archived-offers?periodo=90d", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, rec).Code)
	})

	t.Run("data custom inválida", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))

		rec := serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/archived-offers?periodo=custom&start_date=01/06/2024", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestListOffers_InvalidStatus(t *testing.T) {
	service := mocks.NewMockOfferService(gomock.NewController(t))

	rec := serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/offers?status=deletado", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidStatus, decodeAPIError(t, rec).Code)
}

func TestListOffers_RequiresClaims(t *testing.T) {
	service := mocks.NewMockOfferService(gomock.NewController(t))

	rec := serve(Offers(service, brt), nil, http.MethodGet, "/v1/offers", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteOffer(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(s *mocks.MockOfferService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "sem confirm_name",
			target:     "/v1/offers/of1",
			setup:      func(*mocks.MockOfferService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "nome não confere",
			target: "/v1/offers/of1?confirm_name=Outra",
			setup: func(s *mocks.MockOfferService) {
				s.EXPECT().DeleteOffer(gomock.Any(), "of1", "Outra").
					Return(offering.NewOfferErrorWithID(offering.ErrDeleteConfirmation, apiErrors.ErrDeleteConfirmation, "of1", ""))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrDeleteConfirmation,
		},
		{
			name:   "oferta com criativos",
			target: "/v1/offers/of1?confirm_name=Turbo",
			setup: func(s *mocks.MockOfferService) {
				s.EXPECT().DeleteOffer(gomock.Any(), "of1", "Turbo").
					Return(offering.NewOfferErrorWithID(offering.ErrOfferHasCreatives, apiErrors.ErrOfferHasCreatives, "of1", ""))
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrOfferHasCreatives,
		},
		{
			name:   "excluída",
			target: "/v1/offers/of1?confirm_name=Turbo%20Max",
			setup: func(s *mocks.MockOfferService) {
				s.EXPECT().DeleteOffer(gomock.Any(), "of1", "Turbo Max").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockOfferService(gomock.NewController(t))
			tt.setup(service)

			rec := serve(Offers(service, brt), panelUser, http.MethodDelete, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestArchiveOffer(t *testing.T) {
	t.Run("arquivada", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().ArchiveOffer(gomock.Any(), "of1").Return(&domain.ArchiveOfferResult{
			Offer:             &domain.Offer{ID: "of1", Status: domain.StatusArchived},
			CreativesArchived: 3,
		}, nil)

		rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/of1/archive", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ArchiveOfferResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.CreativesArchived)
		assert.Equal(t, domain.StatusArchived, result.Offer.Status)
	})

	t.Run("evento de arquivamento fica a cargo do serviço", func(t *testing.T) {
		hook := logtest.NewGlobal()
		t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().ArchiveOffer(gomock.Any(), "of1").Return(&domain.ArchiveOfferResult{
			Offer: &domain.Offer{ID: "of1", Status: domain.StatusArchived},
		}, nil)

		rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/of1/archive", "")
		require.Equal(t, http.StatusOK, rec.Code)

		for _, entry := range hook.AllEntries() {
			assert.NotEqual(t, "Oferta arquivada", entry.Message)
		}
	})

	t.Run("oferta inexistente", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().ArchiveOffer(gomock.Any(), "nada").
			Return(nil, offering.NewOfferErrorWithID(offering.ErrOfferNotFound, apiErrors.ErrOfferNotFound, "nada", ""))

		rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/nada/archive", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrOfferNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("falha de banco não expõe detalhes", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))
		service.EXPECT().ArchiveOffer(gomock.Any(), "of1").
			Return(nil, offering.NewOfferErrorWithID(offering.ErrArchiveCreatives, apiErrors.ErrDatabaseOperation, "of1", "pq: deadlock"))

		rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/of1/archive", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, body.Code)
		assert.NotContains(t, body.Message, "deadlock")
	})
}

func TestRestoreOffer(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		restoreCreatives bool
		result           *domain.RestoreOfferResult
	}{
		{
			name:             "com criativos",
			body:             `{"restore_criativos":true}`,
			restoreCreatives: true,
			result: &domain.RestoreOfferResult{
				Offer:             &domain.Offer{ID: "of1", Status: domain.StatusPaused},
				CreativesRestored: 2,
			},
		},
		{
			name:             "corpo vazio restaura só a oferta",
			restoreCreatives: false,
			result: &domain.RestoreOfferResult{
				Offer: &domain.Offer{ID: "of1", Status: domain.StatusPaused},
			},
		},
		{
			name:             "aviso quando criativos falham",
			body:             `{"restore_criativos":true}`,
			restoreCreatives: true,
			result: &domain.RestoreOfferResult{
				Offer:   &domain.Offer{ID: "of1", Status: domain.StatusPaused},
				Warning: "criativos não restaurados",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockOfferService(gomock.NewController(t))
			service.EXPECT().RestoreOffer(gomock.Any(), "of1", tt.restoreCreatives).Return(tt.result, nil)

			rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/of1/restore", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)

			var got domain.RestoreOfferResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.result.CreativesRestored, got.CreativesRestored)
			assert.Equal(t, tt.result.Warning, got.Warning)
			assert.Equal(t, domain.StatusPaused, got.Offer.Status)
		})
	}

	t.Run("corpo inválido", func(t *testing.T) {
		service := mocks.NewMockOfferService(gomock.NewController(t))

		rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers/of1/restore", `{"restore_criativos":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestRestorePreviewAndCount(t *testing.T) {
	service := mocks.NewMockOfferService(gomock.NewController(t))
	service.EXPECT().PrepareRestore(gomock.Any(), "of1").Return(&domain.RestorePreview{
		Offer:            &domain.Offer{ID: "of1"},
		CreativesCount:   4,
		RestoreCreatives: true,
	}, nil)
	service.EXPECT().CountArchivedWithOffer(gomock.Any(), "of1").Return(int64(4), nil)

	rec := serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/offers/of1/restore-preview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var preview domain.RestorePreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Equal(t, int64(4), preview.CreativesCount)
	assert.True(t, preview.RestoreCreatives)

	rec = serve(Offers(service, brt), panelUser, http.MethodGet, "/v1/offers/of1/archived-creatives/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":4}`, rec.Body.String())
}

func TestCreateOffer(t *testing.T) {
	service := mocks.NewMockOfferService(gomock.NewController(t))
	service.EXPECT().
		CreateOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *domain.CreateOfferRequest) (*domain.Offer, error) {
			assert.Equal(t, "Turbo", request.Name)
			require.NotNil(t, request.Niche)
			assert.Equal(t, "Saúde", *request.Niche)
			return &domain.Offer{ID: "of1", Name: request.Name, Status: domain.StatusInTest}, nil
		})

	rec := serve(Offers(service, brt), panelUser, http.MethodPost, "/v1/offers", `{"nome":"Turbo","nicho":"Saúde"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"em_teste"`)
}

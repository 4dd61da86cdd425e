package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

// now é substituído nos testes
var now = time.Now

func ListOffers(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, ok := queryStatus(w, r.URL.Query())
		if !ok {
			return
		}

		offers, err := service.ListOffers(r.Context(), status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar ofertas")
			return
		}

		writeJSON(w, http.StatusOK, offers)
	})
}

// ListArchivedOffers aplica busca, nicho, país e período sobre as ofertas arquivadas
func ListArchivedOffers(service offering.OfferService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		period, ok := queryPeriod(w, query, now().In(loc))
		if !ok {
			return
		}

		filter := domain.ArchivedOfferFilter{
			Search:  strings.TrimSpace(query.Get("search")),
			Niche:   strings.TrimSpace(query.Get("nicho")),
			Country: strings.TrimSpace(query.Get("pais")),
			Period:  period,
		}

		offers, err := service.ListArchivedOffers(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar ofertas arquivadas")
			return
		}

		writeJSON(w, http.StatusOK, offers)
	})
}

func GetOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offer, err := service.GetOffer(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar oferta")
			return
		}

		writeJSON(w, http.StatusOK, offer)
	})
}

func CreateOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateOfferRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		offer, err := service.CreateOffer(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar oferta")
			return
		}

		writeJSON(w, http.StatusCreated, offer)
	})
}

func UpdateOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update domain.OfferUpdate
		if !decodeJSON(w, r, &update) {
			return
		}

		offer, err := service.UpdateOffer(r.Context(), pathParam(r, "id"), &update)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar oferta")
			return
		}

		writeJSON(w, http.StatusOK, offer)
	})
}

// DeleteOffer exige o nome da oferta digitado em confirm_name
func DeleteOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		confirmName := r.URL.Query().Get("confirm_name")
		if confirmName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe confirm_name com o nome da oferta", nil)
			return
		}

		if err := service.DeleteOffer(r.Context(), pathParam(r, "id"), confirmName); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir oferta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ArchiveOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.ArchiveOffer(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao arquivar oferta")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// RestoreOffer aceita corpo vazio, equivalente a restore_criativos=false
func RestoreOffer(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.RestoreOfferRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &request) {
			return
		}

		result, err := service.RestoreOffer(r.Context(), pathParam(r, "id"), request.RestoreCreatives)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar oferta")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func RestorePreview(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		preview, err := service.PrepareRestore(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao preparar restauração")
			return
		}

		writeJSON(w, http.StatusOK, preview)
	})
}

func CountArchivedCreatives(service offering.OfferService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := service.CountArchivedWithOffer(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao contar criativos arquivados")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{"count": count})
	})
}

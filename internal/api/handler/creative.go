package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

// ListCreatives filtra por oferta_id, status, fonte e copy_responsavel
func ListCreatives(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		status, ok := queryStatus(w, query)
		if !ok {
			return
		}

		creatives, err := service.List(r.Context(), domain.CreativeFilter{
			OfferID:    strings.TrimSpace(query.Get("oferta_id")),
			Status:     status,
			Source:     strings.TrimSpace(query.Get("fonte")),
			Copywriter: strings.TrimSpace(query.Get("copy_responsavel")),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar criativos")
			return
		}

		writeJSON(w, http.StatusOK, creatives)
	})
}

func ListCreativeAverages(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		status, ok := queryStatus(w, query)
		if !ok {
			return
		}

		creatives, err := service.ListWithAverages(r.Context(), strings.TrimSpace(query.Get("oferta_id")), status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar médias dos criativos")
			return
		}

		writeJSON(w, http.StatusOK, creatives)
	})
}

func GetCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar criativo")
			return
		}

		writeJSON(w, http.StatusOK, c)
	})
}

func CreateCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCreativeRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		c, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar criativo")
			return
		}

		writeJSON(w, http.StatusCreated, c)
	})
}

func UpdateCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update domain.CreativeUpdate
		if !decodeJSON(w, r, &update) {
			return
		}

		c, err := service.Update(r.Context(), pathParam(r, "id"), &update)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar criativo")
			return
		}

		writeJSON(w, http.StatusOK, c)
	})
}

func DeleteCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir criativo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ArchiveCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := service.Archive(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao arquivar criativo")
			return
		}

		log.ForContext(r.Context()).WithField("criativo_id", c.ID).Info("Criativo arquivado")
		writeJSON(w, http.StatusOK, c)
	})
}

func RestoreCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := service.Restore(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar criativo")
			return
		}

		log.ForContext(r.Context()).WithField("criativo_id", c.ID).Info("Criativo restaurado")
		writeJSON(w, http.StatusOK, c)
	})
}

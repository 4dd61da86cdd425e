package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
)

// lookupHandlers agrupa as três operações de uma tabela auxiliar
type lookupHandlers[T any] struct {
	kind   string
	list   func(ctx context.Context) ([]*T, error)
	create func(ctx context.Context, request *domain.CreateLookupRequest) (*T, error)
	remove func(ctx context.Context, id string) error
}

func (h lookupHandlers[T]) List() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := h.list(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar "+h.kind)
			return
		}

		writeJSON(w, http.StatusOK, items)
	})
}

func (h lookupHandlers[T]) Create() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateLookupRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		item, err := h.create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar "+h.kind)
			return
		}

		writeJSON(w, http.StatusCreated, item)
	})
}

func (h lookupHandlers[T]) Delete() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.remove(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir "+h.kind)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func niches(service lookup.LookupService) lookupHandlers[domain.Niche] {
	return lookupHandlers[domain.Niche]{
		kind:   lookup.KindNiche,
		list:   service.ListNiches,
		create: service.CreateNiche,
		remove: service.DeleteNiche,
	}
}

func copywriters(service lookup.LookupService) lookupHandlers[domain.Copywriter] {
	return lookupHandlers[domain.Copywriter]{
		kind:   lookup.KindCopywriter,
		list:   service.ListCopywriters,
		create: service.CreateCopywriter,
		remove: service.DeleteCopywriter,
	}
}

func countries(service lookup.LookupService) lookupHandlers[domain.Country] {
	return lookupHandlers[domain.Country]{
		kind:   lookup.KindCountry,
		list:   service.ListCountries,
		create: service.CreateCountry,
		remove: service.DeleteCountry,
	}
}

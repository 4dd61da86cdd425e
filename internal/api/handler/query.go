package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// queryStatus lê o filtro de status; vazio e "all" são aceitos
func queryStatus(w http.ResponseWriter, query url.Values) (domain.Status, bool) {
	status := domain.Status(strings.TrimSpace(query.Get("status")))
	if status.IsFilter() && !status.IsValid() {
		apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, "Status inválido", string(status))
		return "", false
	}
	return status, true
}

// queryDate lê uma data opcional no formato YYYY-MM-DD
func queryDate(w http.ResponseWriter, query url.Values, name string, loc *time.Location) (*domain.Date, bool) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil, true
	}

	d, err := domain.ParseDateIn(raw, loc)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", name)
		return nil, false
	}
	return &d, true
}

// queryPeriod resolve periodo, start_date e end_date para um intervalo de datas.
// "custom" com start_date usa as datas informadas; sem elas cai no intervalo padrão da tag.
func queryPeriod(w http.ResponseWriter, query url.Values, now time.Time) (domain.Period, bool) {
	tag, err := domain.ParsePeriodTag(strings.TrimSpace(query.Get("periodo")))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), query.Get("periodo"))
		return domain.Period{}, false
	}

	if tag == domain.PeriodCustom {
		start, ok := queryDate(w, query, "start_date", now.Location())
		if !ok {
			return domain.Period{}, false
		}
		end, ok := queryDate(w, query, "end_date", now.Location())
		if !ok {
			return domain.Period{}, false
		}
		if start != nil {
			return domain.NewCustomPeriod(*start, end), true
		}
	}

	return domain.RangeFor(tag, now), true
}

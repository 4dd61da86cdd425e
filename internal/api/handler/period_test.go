package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

func TestGetPeriod(t *testing.T) {
	fixNow(t, time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		target    string
		wantTag   domain.PeriodTag
		wantStart string
		wantEnd   string
	}{
		{name: "hoje", target: "/v1/periods/today", wantTag: domain.PeriodToday, wantStart: "2024-03-10", wantEnd: "2024-03-10"},
		{name: "30 dias", target: "/v1/periods/30d", wantTag: domain.Period30Days, wantStart: "2024-02-10", wantEnd: "2024-03-10"},
		{name: "todos", target: "/v1/periods/all", wantTag: domain.PeriodAll, wantStart: "2020-01-01", wantEnd: "2024-03-10"},
		{
			name:      "custom com datas",
			target:    "/v1/periods/custom?start_date=2024-01-05&end_date=2024-01-20",
			wantTag:   domain.PeriodCustom,
			wantStart: "2024-01-05",
			wantEnd:   "2024-01-20",
		},
		{
			name:      "custom só com início",
			target:    "/v1/periods/custom?start_date=2024-01-05",
			wantTag:   domain.PeriodCustom,
			wantStart: "2024-01-05",
			wantEnd:   "2024-01-05",
		},
		{name: "custom sem datas", target: "/v1/periods/custom", wantTag: domain.PeriodCustom, wantStart: "2024-03-10", wantEnd: "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Periods(brt), panelUser, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)

			var period domain.Period
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &period))
			assert.Equal(t, tt.wantTag, period.Tag)
			assert.Equal(t, tt.wantStart, period.Start.String())
			assert.Equal(t, tt.wantEnd, period.End.String())
		})
	}

	t.Run("tag desconhecida", func(t *testing.T) {
		rec := serve(Periods(brt), panelUser, http.MethodGet, "/v1/periods/ontem", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, rec).Code)
	})
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestArchivedOfferFilter_Matches(t *testing.T) {
	start, _ := ParseDate("2024-06-01")
	end, _ := ParseDate("2024-06-07")
	june := NewCustomPeriod(start, &end)

	archivedLateOnEndDate := &Offer{
		Name:       "Emagrecimento Turbo",
		Niche:      strPtr("Saúde"),
		Country:    strPtr("Brasil"),
		Status:     StatusArchived,
		ArchivedAt: timePtr(time.Date(2024, time.June, 7, 23, 30, 0, 0, time.UTC)),
	}

	tests := []struct {
		name   string
		filter ArchivedOfferFilter
		offer  *Offer
		want   bool
	}{
		{
			name:   "sem filtros aceita tudo",
			filter: ArchivedOfferFilter{Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   true,
		},
		{
			name:   "busca ignora maiúsculas",
			filter: ArchivedOfferFilter{Search: "TURBO", Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   true,
		},
		{
			name:   "busca sem correspondência",
			filter: ArchivedOfferFilter{Search: "crypto", Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   false,
		},
		{
			name:   "nicho all não filtra",
			filter: ArchivedOfferFilter{Niche: "all", Country: "all", Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   true,
		},
		{
			name:   "nicho diferente",
			filter: ArchivedOfferFilter{Niche: "Finanças", Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   false,
		},
		{
			name:   "país igual",
			filter: ArchivedOfferFilter{Country: "Brasil", Period: Period{Tag: PeriodAll}},
			offer:  archivedLateOnEndDate,
			want:   true,
		},
		{
			name:   "oferta sem país com filtro de país",
			filter: ArchivedOfferFilter{Country: "Brasil", Period: Period{Tag: PeriodAll}},
			offer:  &Offer{Name: "Sem país"},
			want:   false,
		},
		{
			name:   "arquivada às 23:30 do último dia entra no período",
			filter: ArchivedOfferFilter{Period: june},
			offer:  archivedLateOnEndDate,
			want:   true,
		},
		{
			name:   "arquivada antes do período",
			filter: ArchivedOfferFilter{Period: june},
			offer: &Offer{
				Name:       "Antiga",
				ArchivedAt: timePtr(time.Date(2024, time.May, 31, 12, 0, 0, 0, time.UTC)),
			},
			want: false,
		},
		{
			name:   "sem archived_at usa updated_at",
			filter: ArchivedOfferFilter{Period: june},
			offer: &Offer{
				Name:      "Legada",
				UpdatedAt: time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name:   "sem nenhuma data fica fora quando há período",
			filter: ArchivedOfferFilter{Period: june},
			offer:  &Offer{Name: "Sem datas"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.offer))
		})
	}
}

func TestArchivedOfferFilter_Apply(t *testing.T) {
	offers := []*Offer{
		{ID: "1", Name: "Alpha"},
		{ID: "2", Name: "Beta"},
		{ID: "3", Name: "Alphabet"},
	}

	got := ArchivedOfferFilter{Search: "alpha", Period: Period{Tag: PeriodAll}}.Apply(offers)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}
}

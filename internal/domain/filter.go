package domain

import (
	"strings"
)

// ArchivedOfferFilter é o filtro da tela de ofertas arquivadas
type ArchivedOfferFilter struct {
	Search  string
	Niche   string
	Country string
	Period  Period
}

// Matches aplica busca por nome, nicho, país e período de arquivamento
func (f ArchivedOfferFilter) Matches(o *Offer) bool {
	if o == nil {
		return false
	}

	if f.Search != "" && !strings.Contains(strings.ToLower(o.Name), strings.ToLower(f.Search)) {
		return false
	}

	if IsFilterValue(f.Niche) && (o.Niche == nil || *o.Niche != f.Niche) {
		return false
	}

	if IsFilterValue(f.Country) && (o.Country == nil || *o.Country != f.Country) {
		return false
	}

	if f.Period.Tag != PeriodAll && f.Period.Tag != "" {
		ref := o.ReferenceTime()
		if ref == nil || !f.Period.Contains(*ref) {
			return false
		}
	}

	return true
}

// Apply retorna as ofertas que passam no filtro, mantendo a ordem
func (f ArchivedOfferFilter) Apply(offers []*Offer) []*Offer {
	filtered := make([]*Offer, 0, len(offers))
	for _, o := range offers {
		if f.Matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

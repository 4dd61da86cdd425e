package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/offer-dashboard-api/pkg/utils"
)

// Measures são os valores acumulados de um dia (ou de um período, quando somados)
type Measures struct {
	Spend              decimal.Decimal `json:"investimento" db:"investimento"`
	Revenue            decimal.Decimal `json:"faturamento" db:"faturamento"`
	Impressions        int64           `json:"impressoes" db:"impressoes"`
	Clicks             int64           `json:"cliques" db:"cliques"`
	InitiatedCheckouts int64           `json:"ics" db:"ics"`
	Sales              int64           `json:"vendas" db:"vendas"`
}

// Add soma outra medição a esta
func (m Measures) Add(o Measures) Measures {
	return Measures{
		Spend:              m.Spend.Add(o.Spend),
		Revenue:            m.Revenue.Add(o.Revenue),
		Impressions:        m.Impressions + o.Impressions,
		Clicks:             m.Clicks + o.Clicks,
		InitiatedCheckouts: m.InitiatedCheckouts + o.InitiatedCheckouts,
		Sales:              m.Sales + o.Sales,
	}
}

// ROAS = faturamento / investimento
func (m Measures) ROAS() (float64, bool) {
	if m.Spend.IsZero() {
		return 0, false
	}
	return utils.RoundWithTwoDecimalPlace(m.Revenue.Div(m.Spend).InexactFloat64()), true
}

// CPC = investimento / cliques
func (m Measures) CPC() (float64, bool) {
	if m.Clicks == 0 {
		return 0, false
	}
	return utils.RoundWithTwoDecimalPlace(m.Spend.Div(decimal.NewFromInt(m.Clicks)).InexactFloat64()), true
}

// IC = investimento / checkouts iniciados
func (m Measures) IC() (float64, bool) {
	if m.InitiatedCheckouts == 0 {
		return 0, false
	}
	return utils.RoundWithTwoDecimalPlace(m.Spend.Div(decimal.NewFromInt(m.InitiatedCheckouts)).InexactFloat64()), true
}

type DailyMetric struct {
	ID         string `json:"id" db:"id"`
	CreativeID string `json:"criativo_id" db:"criativo_id"`
	Date       Date   `json:"data" db:"data"`

	Measures

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type OfferDailyMetric struct {
	ID      string `json:"id" db:"id"`
	OfferID string `json:"oferta_id" db:"oferta_id"`
	Date    Date   `json:"data" db:"data"`

	Measures

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OfferSummary é o recorte da oferta que acompanha as métricas diárias
type OfferSummary struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"nome" db:"nome"`
	Niche      *string    `json:"nicho" db:"nicho"`
	Country    *string    `json:"pais" db:"pais"`
	Status     Status     `json:"status" db:"status"`
	Thresholds Thresholds `json:"thresholds" db:"thresholds"`
}

type OfferDailyMetricWithOffer struct {
	OfferDailyMetric
	Offer *OfferSummary `json:"oferta"`
}

// MetricFilter filtra métricas diárias de criativos
type MetricFilter struct {
	CreativeID string
	StartDate  *Date
	EndDate    *Date
}

// OfferMetricFilter filtra métricas diárias de ofertas
type OfferMetricFilter struct {
	OfferID   string
	StartDate *Date
	EndDate   *Date
}

// OfferMetricWithOfferFilter filtra as métricas de oferta acompanhadas da oferta.
// OfferStatus vazio exclui ofertas arquivadas; "all" não filtra.
type OfferMetricWithOfferFilter struct {
	StartDate   *Date
	EndDate     *Date
	OfferStatus Status
}

// UpdateDailyMetricRequest é uma atualização parcial de métrica diária
type UpdateDailyMetricRequest struct {
	Spend              *decimal.Decimal `json:"investimento,omitempty"`
	Revenue            *decimal.Decimal `json:"faturamento,omitempty"`
	Impressions        *int64           `json:"impressoes,omitempty"`
	Clicks             *int64           `json:"cliques,omitempty"`
	InitiatedCheckouts *int64           `json:"ics,omitempty"`
	Sales              *int64           `json:"vendas,omitempty"`
}

func (u *UpdateDailyMetricRequest) IsEmpty() bool {
	return u == nil || (u.Spend == nil && u.Revenue == nil && u.Impressions == nil && u.Clicks == nil &&
		u.InitiatedCheckouts == nil && u.Sales == nil)
}

type Level string

const (
	LevelGood    Level = "verde"
	LevelWarning Level = "amarelo"
	LevelBad     Level = "vermelho"
)

// classifyHigherIsBetter classifica indicadores em que valores maiores são melhores (ROAS)
func classifyHigherIsBetter(v float64, b Bound) Level {
	switch {
	case v >= b.Good:
		return LevelGood
	case v >= b.Warning:
		return LevelWarning
	default:
		return LevelBad
	}
}

// classifyLowerIsBetter classifica indicadores de custo (CPC, IC)
func classifyLowerIsBetter(v float64, b Bound) Level {
	switch {
	case v <= b.Good:
		return LevelGood
	case v <= b.Warning:
		return LevelWarning
	default:
		return LevelBad
	}
}

type Classification struct {
	ROAS Level `json:"roas"`
	CPC  Level `json:"cpc"`
	IC   Level `json:"ic"`
}

// AggregatedMetrics são as métricas de uma oferta somadas no período
type AggregatedMetrics struct {
	OfferID string `json:"oferta_id" db:"oferta_id"`

	Measures

	ROAS           float64        `json:"roas" db:"-"`
	CPC            float64        `json:"cpc" db:"-"`
	IC             float64        `json:"ic" db:"-"`
	Classification Classification `json:"classificacao" db:"-"`

	// Thresholds da oferta, lidos junto com as somas
	Thresholds Thresholds `json:"-" db:"thresholds"`
}

// Evaluate calcula os indicadores e a classificação segundo os limites informados.
// Indicadores sem denominador ficam sem classificação.
func (a *AggregatedMetrics) Evaluate(t Thresholds) {
	var ok bool

	a.Classification = Classification{}

	if a.ROAS, ok = a.Measures.ROAS(); ok {
		a.Classification.ROAS = classifyHigherIsBetter(a.ROAS, t.ROAS)
	}
	if a.CPC, ok = a.Measures.CPC(); ok {
		a.Classification.CPC = classifyLowerIsBetter(a.CPC, t.CPC)
	}
	if a.IC, ok = a.Measures.IC(); ok {
		a.Classification.IC = classifyLowerIsBetter(a.IC, t.IC)
	}
}

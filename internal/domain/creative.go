package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Creative struct {
	ID         string     `json:"id" db:"id"`
	OfferID    string     `json:"oferta_id" db:"oferta_id"`
	Name       string     `json:"nome" db:"nome"`
	Status     Status     `json:"status" db:"status"`
	Source     *string    `json:"fonte" db:"fonte"`
	Copywriter *string    `json:"copy_responsavel" db:"copy_responsavel"`
	ArchivedAt *time.Time `json:"archived_at" db:"archived_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// CreativeWithAverages corresponde a uma linha da view criativos_com_medias
type CreativeWithAverages struct {
	Creative
	TotalSpend      decimal.Decimal `json:"total_investimento" db:"total_investimento"`
	TotalRevenue    decimal.Decimal `json:"total_faturamento" db:"total_faturamento"`
	AvgROAS         float64         `json:"roas_medio" db:"roas_medio"`
	AvgCPC          float64         `json:"cpc_medio" db:"cpc_medio"`
	AvgIC           float64         `json:"ic_medio" db:"ic_medio"`
	DaysWithMetrics int64           `json:"dias_com_metricas" db:"dias_com_metricas"`
}

// CreativeFilter filtra a listagem de criativos; valores vazios ou "all" não filtram
type CreativeFilter struct {
	OfferID    string
	Status     Status
	Source     string
	Copywriter string
}

type CreateCreativeRequest struct {
	OfferID    string  `json:"oferta_id"`
	Name       string  `json:"nome"`
	Status     Status  `json:"status,omitempty"`
	Source     *string `json:"fonte,omitempty"`
	Copywriter *string `json:"copy_responsavel,omitempty"`
}

// CreativeUpdate é uma atualização parcial de criativo
type CreativeUpdate struct {
	Name            *string    `json:"nome,omitempty"`
	Status          *Status    `json:"status,omitempty"`
	Source          *string    `json:"fonte,omitempty"`
	Copywriter      *string    `json:"copy_responsavel,omitempty"`
	ArchivedAt      *time.Time `json:"-"`
	ClearArchivedAt bool       `json:"-"`
}

func (u *CreativeUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Status == nil && u.Source == nil && u.Copywriter == nil &&
		u.ArchivedAt == nil && !u.ClearArchivedAt)
}

// IsFilterValue informa se um filtro textual restringe a listagem
func IsFilterValue(v string) bool {
	return v != "" && v != string(StatusAll)
}

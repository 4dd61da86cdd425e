package domain

import (
	"time"
)

type Status string

const (
	StatusInTest   Status = "em_teste"
	StatusActive   Status = "ativo"
	StatusPaused   Status = "pausado"
	StatusArchived Status = "arquivado"

	// StatusAll é usado apenas em filtros e significa "sem filtro de status"
	StatusAll Status = "all"
)

// IsValid informa se o status pode ser gravado em uma oferta ou criativo
func (s Status) IsValid() bool {
	switch s {
	case StatusInTest, StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

// IsFilter informa se o valor restringe a listagem (vazio e "all" não restringem)
func (s Status) IsFilter() bool {
	return s != "" && s != StatusAll
}

type Offer struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"nome" db:"nome"`
	Niche      *string    `json:"nicho" db:"nicho"`
	Country    *string    `json:"pais" db:"pais"`
	Status     Status     `json:"status" db:"status"`
	Thresholds Thresholds `json:"thresholds" db:"thresholds"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at" db:"archived_at"`
}

// ReferenceTime é a data usada no filtro de período das ofertas arquivadas:
// archived_at quando existe, senão updated_at
func (o *Offer) ReferenceTime() *time.Time {
	if o.ArchivedAt != nil {
		return o.ArchivedAt
	}
	if !o.UpdatedAt.IsZero() {
		return &o.UpdatedAt
	}
	return nil
}

type CreateOfferRequest struct {
	Name       string      `json:"nome"`
	Niche      *string     `json:"nicho,omitempty"`
	Country    *string     `json:"pais,omitempty"`
	Status     Status      `json:"status,omitempty"`
	Thresholds *Thresholds `json:"thresholds,omitempty"`
}

// OfferUpdate é uma atualização parcial; campos nil não são alterados.
// ClearArchivedAt força archived_at = NULL.
type OfferUpdate struct {
	Name            *string     `json:"nome,omitempty"`
	Niche           *string     `json:"nicho,omitempty"`
	Country         *string     `json:"pais,omitempty"`
	Status          *Status     `json:"status,omitempty"`
	Thresholds      *Thresholds `json:"thresholds,omitempty"`
	ArchivedAt      *time.Time  `json:"-"`
	ClearArchivedAt bool        `json:"-"`
}

// IsEmpty informa se a atualização não altera nenhuma coluna
func (u *OfferUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Niche == nil && u.Country == nil && u.Status == nil &&
		u.Thresholds == nil && u.ArchivedAt == nil && !u.ClearArchivedAt)
}

type RestoreOfferRequest struct {
	RestoreCreatives bool `json:"restore_criativos"`
}

type RestoreOfferResult struct {
	Offer             *Offer `json:"oferta"`
	CreativesRestored int64  `json:"criativos_restaurados"`
	Warning           string `json:"aviso,omitempty"`
}

type ArchiveOfferResult struct {
	Offer             *Offer `json:"oferta"`
	CreativesArchived int64  `json:"criativos_arquivados"`
}

// RestorePreview alimenta o diálogo de restauração
type RestorePreview struct {
	Offer            *Offer `json:"oferta"`
	CreativesCount   int64  `json:"criativos_arquivados_junto"`
	RestoreCreatives bool   `json:"restore_criativos"`
}

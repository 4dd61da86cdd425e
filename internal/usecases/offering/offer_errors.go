package offering

import (
	"errors"
	"fmt"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrOfferIDRequired = errors.New("offer ID is required")
	ErrNameRequired    = errors.New("offer name is required")
	ErrInvalidStatus   = errors.New("invalid offer status")

	ErrOfferNotFound      = errors.New("offer not found")
	ErrDeleteConfirmation = errors.New("confirmation name does not match offer name")
	ErrOfferHasCreatives  = errors.New("offer still has creatives")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrArchiveCreatives  = errors.New("error archiving offer creatives")
	ErrGenerateID        = errors.New("error generating ID")
)

// OfferError é um erro com contexto adicional para ofertas
type OfferError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	OfferID string // ID da oferta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *OfferError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OfferError) Unwrap() error {
	return e.Err
}

func NewOfferError(err error, code string, details string) *OfferError {
	return &OfferError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewOfferErrorWithID(err error, code string, offerID string, details string) *OfferError {
	return &OfferError{
		Err:     err,
		Code:    code,
		OfferID: offerID,
		Details: details,
	}
}

// fromRepository converte erros do repositório, tratando registro ausente como oferta não encontrada
func fromRepository(err error, offerID string, details string) *OfferError {
	if errors.Is(err, repository.ErrNotFound) {
		return NewOfferErrorWithID(ErrOfferNotFound, apiErrors.ErrOfferNotFound, offerID, "Oferta não encontrada")
	}
	return NewOfferErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, offerID, details)
}

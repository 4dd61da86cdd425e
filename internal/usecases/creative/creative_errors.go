package creative

import (
	"errors"
	"fmt"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

var (
	ErrCreativeIDRequired = errors.New("creative ID is required")
	ErrOfferIDRequired    = errors.New("offer ID is required")
	ErrNameRequired       = errors.New("creative name is required")
	ErrInvalidStatus      = errors.New("invalid creative status")

	ErrCreativeNotFound = errors.New("creative not found")
	ErrOfferNotFound    = errors.New("offer not found")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// CreativeError carrega o código de API e o criativo envolvido
type CreativeError struct {
	Err        error
	Code       string
	CreativeID string
	Details    string
}

func (e *CreativeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CreativeError) Unwrap() error {
	return e.Err
}

func NewCreativeError(err error, code string, creativeID string, details string) *CreativeError {
	return &CreativeError{
		Err:        err,
		Code:       code,
		CreativeID: creativeID,
		Details:    details,
	}
}

func fromRepository(err error, creativeID string, details string) *CreativeError {
	if errors.Is(err, repository.ErrNotFound) {
		return NewCreativeError(ErrCreativeNotFound, apiErrors.ErrCreativeNotFound, creativeID, "Criativo não encontrado")
	}
	return NewCreativeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, creativeID, details)
}

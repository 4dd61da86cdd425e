package lookup

import (
	"errors"
	"fmt"

	"github.com/vfg2006/offer-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrIDRequired        = errors.New("ID is required")
	ErrNotFound          = errors.New("lookup entry not found")
	ErrDuplicate         = errors.New("lookup entry already exists")
	ErrInUse             = errors.New("lookup entry is in use")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// LookupError identifica a tabela auxiliar envolvida no erro
type LookupError struct {
	Err     error
	Code    string
	Kind    string
	Details string
}

func (e *LookupError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Kind, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Kind)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func NewLookupError(err error, code string, kind string, details string) *LookupError {
	return &LookupError{
		Err:     err,
		Code:    code,
		Kind:    kind,
		Details: details,
	}
}

func fromRepository(err error, kind string) *LookupError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewLookupError(ErrNotFound, apiErrors.ErrLookupNotFound, kind, "Registro não encontrado")
	case errors.Is(err, repository.ErrDuplicate):
		return NewLookupError(ErrDuplicate, apiErrors.ErrLookupDuplicate, kind, "Já existe um registro com este nome")
	case errors.Is(err, repository.ErrReferenced):
		return NewLookupError(ErrInUse, apiErrors.ErrLookupInUse, kind, "Registro em uso")
	}
	return NewLookupError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, kind, "")
}

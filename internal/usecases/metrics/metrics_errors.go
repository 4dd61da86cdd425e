package metrics

import (
	"errors"
	"fmt"
)

var (
	ErrCreativeIDRequired = errors.New("creative ID is required")
	ErrDateRequired       = errors.New("metric date is required")
	ErrNegativeValue      = errors.New("metric values must not be negative")
	ErrEmptyUpdate        = errors.New("no fields to update")
	ErrInvalidStatus      = errors.New("invalid offer status")

	ErrDailyMetricNotFound = errors.New("daily metric not found")
	ErrDuplicateMetric     = errors.New("daily metric already exists for creative and date")
	ErrCreativeNotFound    = errors.New("creative not found")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// MetricsError é um erro de métricas com o código de API correspondente
type MetricsError struct {
	Err     error
	Code    string
	Details string
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func NewMetricsError(err error, code string, details string) *MetricsError {
	return &MetricsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

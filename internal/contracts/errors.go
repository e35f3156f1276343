package contracts

import (
	"errors"
	"fmt"
)

// Data acquisition errors. Calculation errors live in internal/risk.
var (
	// ErrDataUnavailable means the provider failed or returned nothing
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrMissingData means a required field is absent from an otherwise successful fetch
	ErrMissingData = errors.New("missing data")
)

// MissingFieldError names the line item that was not reported
type MissingFieldError struct {
	Statement string // "balance_sheet", "income_statement", "quote"
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s does not report %q", ErrMissingData, e.Statement, e.Field)
}

// Is makes errors.Is(err, ErrMissingData) match
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingData
}

package analysis

import (
	"errors"

	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/internal/risk"
)

// ErrInvalidRequest means the caller's input was rejected before any fetch
var ErrInvalidRequest = errors.New("invalid request")

// Error kinds, used as metric labels and API error codes
const (
	KindInvalidRequest   = "invalid_request"
	KindDataUnavailable  = "data_unavailable"
	KindMissingData      = "missing_data"
	KindDomain           = "domain"
	KindDivision         = "division"
	KindInsufficientData = "insufficient_data"
	KindInvalidConfig    = "invalid_config"
	KindInternal         = "internal"
)

// Kind classifies an analysis error
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	case errors.Is(err, contracts.ErrMissingData):
		return KindMissingData
	case errors.Is(err, contracts.ErrDataUnavailable):
		return KindDataUnavailable
	case errors.Is(err, risk.ErrDivision):
		return KindDivision
	case errors.Is(err, risk.ErrDomain):
		return KindDomain
	case errors.Is(err, risk.ErrInsufficientData):
		return KindInsufficientData
	case errors.Is(err, risk.ErrInvalidConfig):
		return KindInvalidConfig
	default:
		return KindInternal
	}
}

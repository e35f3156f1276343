package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/creditrisk/internal/analysis"
	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/pkg/logger"
)

// Analyzer runs one credit analysis
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*contracts.CreditReport, error)
}

// CreditHandler handles credit analysis API endpoints
// ⭐ SSOT: 신용 분석 API 핸들러는 이 구조체에서만
type CreditHandler struct {
	analyzer       Analyzer
	defaultRate    float64
	defaultHorizon float64
	logger         *logger.Logger
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(analyzer Analyzer, defaultRate, defaultHorizon float64, log *logger.Logger) *CreditHandler {
	return &CreditHandler{
		analyzer:       analyzer,
		defaultRate:    defaultRate,
		defaultHorizon: defaultHorizon,
		logger:         log,
	}
}

// GetCredit returns the credit report for a ticker
// GET /api/credit/{ticker}?rate=0.05&horizon=1
func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	rate, ok := parseFloatParam(r, "rate", h.defaultRate)
	if !ok {
		respondError(w, http.StatusBadRequest, analysis.KindInvalidRequest, "rate must be a number")
		return
	}
	horizon, ok := parseFloatParam(r, "horizon", h.defaultHorizon)
	if !ok {
		respondError(w, http.StatusBadRequest, analysis.KindInvalidRequest, "horizon must be a number")
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), analysis.Request{
		Ticker:       ticker,
		RiskFreeRate: rate,
		HorizonYears: horizon,
	})
	if err != nil {
		kind := analysis.Kind(err)
		status := StatusForKind(kind)
		if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
			h.logger.WithError(err).WithField("ticker", ticker).Error("Credit analysis error")
			respondError(w, status, kind, "internal error")
			return
		}
		respondError(w, status, kind, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

// StatusForKind maps an analysis error kind to an HTTP status
func StatusForKind(kind string) int {
	switch kind {
	case analysis.KindInvalidRequest:
		return http.StatusBadRequest
	case analysis.KindMissingData, analysis.KindDomain, analysis.KindDivision, analysis.KindInsufficientData:
		return http.StatusUnprocessableEntity
	case analysis.KindDataUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func parseFloatParam(r *http.Request, name string, def float64) (float64, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/internal/rules"
	"github.com/propstack/rentquant/backend/internal/valuation"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ValuationHandler handles valuation API endpoints
// ⭐ SSOT: 감정 API 핸들러는 이 구조체에서만
type ValuationHandler struct {
	pipeline *valuation.Pipeline
	store    *artifacts.Store
	hub      *Hub
	logger   *logger.Logger

	rulesHash string
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(
	pipeline *valuation.Pipeline,
	store *artifacts.Store,
	hub *Hub,
	log *logger.Logger,
) *ValuationHandler {
	hash, err := rules.Hash(pipeline.Rules())
	if err != nil {
		// Hash only fails on unmarshalable content, which a validated
		// table cannot contain
		hash = "unknown"
	}
	return &ValuationHandler{
		pipeline:  pipeline,
		store:     store,
		hub:       hub,
		logger:    log,
		rulesHash: hash,
	}
}

// PredictRequest is a single valuation request
type PredictRequest struct {
	Attributes valuation.RawAttributes `json:"attributes"`
	Options    *valuation.Options      `json:"options,omitempty"`
}

// PredictResponse carries the valuation result; Detail explains a
// degraded (partial) result.
type PredictResponse struct {
	*valuation.ValuationResult
	AmenityBreakdown []valuation.AmenityImpact `json:"amenity_breakdown"`
	Detail           string                    `json:"detail,omitempty"`
}

// Predict runs the valuation pipeline on one property
// POST /api/valuation/predict
func (h *ValuationHandler) Predict(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePredict(w, r)
	if !ok {
		return
	}

	resp := h.valuate(req)
	h.broadcast(req.Attributes, resp)
	respondJSON(w, http.StatusOK, resp)
}

// CompareRequest is a valuation request with a listed price to judge
type CompareRequest struct {
	PredictRequest
	ListedPrice float64 `json:"listed_price"`
}

// CompareResponse adds the price verdict to the valuation
type CompareResponse struct {
	PredictResponse
	ListedPrice float64 `json:"listed_price"`
	Verdict     string  `json:"verdict,omitempty"`
}

// Compare valuates a property and classifies its listed price
// POST /api/valuation/compare
func (h *ValuationHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Attributes) == 0 {
		respondError(w, http.StatusBadRequest, "attributes is required")
		return
	}
	if req.ListedPrice <= 0 {
		respondError(w, http.StatusBadRequest, "listed_price must be positive")
		return
	}

	resp := CompareResponse{
		PredictResponse: h.valuate(req.PredictRequest),
		ListedPrice:     req.ListedPrice,
	}
	if resp.FairRange != nil {
		resp.Verdict = resp.FairRange.Verdict(req.ListedPrice)
	}
	respondJSON(w, http.StatusOK, resp)
}

// StatusResponse reports valuation capability
type StatusResponse struct {
	Artifacts     artifacts.Status `json:"artifacts"`
	RulesHash     string           `json:"rules_hash"`
	WarningDecay  float64          `json:"warning_decay"`
	FairTolerance float64          `json:"fair_tolerance"`
}

// Status reports whether valuation is currently possible
// GET /api/valuation/status
func (h *ValuationHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatusResponse{
		Artifacts:     h.store.Status(),
		RulesHash:     h.rulesHash,
		WarningDecay:  h.pipeline.Rules().WarningDecay,
		FairTolerance: h.pipeline.Rules().FairTolerance,
	})
}

func (h *ValuationHandler) decodePredict(w http.ResponseWriter, r *http.Request) (PredictRequest, bool) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if len(req.Attributes) == 0 {
		respondError(w, http.StatusBadRequest, "attributes is required")
		return req, false
	}
	return req, true
}

// valuate runs the pipeline, keeping partial results on failures.
// 실패해도 경고/편의시설 결과는 그대로 응답에 실림
func (h *ValuationHandler) valuate(req PredictRequest) PredictResponse {
	opts := valuation.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	result, err := h.pipeline.Valuate(req.Attributes, opts)
	resp := PredictResponse{
		ValuationResult:  result,
		AmenityBreakdown: valuation.UpliftBreakdown(req.Attributes, h.pipeline.Rules()),
	}
	if err != nil {
		resp.Detail = err.Error()
		if errors.Is(err, valuation.ErrArtifactsUnavailable) {
			h.logger.Warn("valuation requested while artifacts unavailable")
		} else {
			h.logger.WithError(err).Error("valuation degraded to partial result")
		}
	}
	return resp
}

// broadcast pushes a completed valuation to websocket subscribers
func (h *ValuationHandler) broadcast(raw valuation.RawAttributes, resp PredictResponse) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(ValuationEvent{
		Timestamp:    time.Now().UTC(),
		PropertyType: raw.Label(valuation.AttrPropertyType),
		SizeSqft:     raw.Number(valuation.AttrSizeSqft),
		AdjustedRent: resp.AdjustedRent,
		Warnings:     len(resp.Warnings),
		UpliftPct:    resp.AmenityUpliftPct,
		Degraded:     resp.Detail != "",
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/propstack/rentquant/backend/internal/listings"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ListingsHandler handles listing search endpoints
type ListingsHandler struct {
	service *listings.Service
	logger  *logger.Logger
}

// NewListingsHandler creates a new listings handler
func NewListingsHandler(service *listings.Service, log *logger.Logger) *ListingsHandler {
	return &ListingsHandler{service: service, logger: log}
}

// SearchResponse is a filtered inventory slice
type SearchResponse struct {
	Count      int                 `json:"count"`
	Properties []listings.Property `json:"properties"`
}

// Search filters the inventory. POST carries a JSON criteria body; GET
// takes the same criteria as query parameters, with bound phrases like
// "below 50000" or "between 500 and 2000" on the amount fields.
// GET|POST /api/listings/search
func (h *ListingsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var criteria listings.Criteria
	if r.Method == http.MethodGet {
		c, err := criteriaFromQuery(r.URL.Query())
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		criteria = c
	} else if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	props, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		h.logger.WithError(err).Error("Listing search failed")
		respondError(w, http.StatusInternalServerError, "Failed to search listings")
		return
	}

	respondJSON(w, http.StatusOK, SearchResponse{Count: len(props), Properties: props})
}

// criteriaFromQuery maps search query parameters onto filter criteria
func criteriaFromQuery(q url.Values) (listings.Criteria, error) {
	c := listings.Criteria{
		City:             q.Get("city"),
		Area:             q.Get("area"),
		Zone:             q.Get("zone"),
		PropertyType:     q.Get("property_type"),
		Ownership:        q.Get("ownership"),
		PossessionStatus: q.Get("possession_status"),
		LocationHub:      q.Get("location_hub"),
		PropertyID:       q.Get("property_id"),
		FloorNo:          q.Get("floor_no"),
		Brokerage:        q.Get("brokerage"),
		Negotiable:       q.Get("negotiable"),
		Furnishing:       q.Get("furnishing"),
		Floor:            q.Get("floor"),
	}

	bounds := []struct {
		param    string
		min, max **float64
	}{
		{"rent", &c.MinRent, &c.MaxRent},
		{"size", &c.MinSize, &c.MaxSize},
		{"carpet_area", &c.MinCarpetArea, &c.MaxCarpetArea},
		{"age", &c.MinAge, &c.MaxAge},
		{"security_deposit", &c.MinDeposit, &c.MaxDeposit},
		{"total_floors", &c.MinTotalFloors, &c.MaxTotalFloors},
		{"lock_in_period", &c.MinLockIn, &c.MaxLockIn},
	}
	for _, b := range bounds {
		expr := q.Get(b.param)
		if expr == "" {
			continue
		}
		min, max, err := listings.ParseBound(expr)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %v", b.param, err)
		}
		*b.min, *b.max = min, max
	}

	if raw := q.Get("facilities"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Facilities = append(c.Facilities, f)
			}
		}
	}

	return c, nil
}

// Get returns one listing
// GET /api/listings/{id}
func (h *ListingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	prop, err := h.service.Get(r.Context(), id)
	if errors.Is(err, listings.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Listing lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	respondJSON(w, http.StatusOK, prop)
}

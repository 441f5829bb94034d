// Package listings holds the commercial listing inventory: the record
// model, the pgx-backed repository, the in-memory filter engine and
// the cached search service.
package listings

import (
	"strings"
	"time"
)

// Property is one commercial listing
type Property struct {
	PropertyID       string          `json:"property_id"`
	ListingTitle     string          `json:"listing_title"`
	City             string          `json:"city"`
	Area             string          `json:"area"`
	Zone             string          `json:"zone"`
	LocationHub      string          `json:"location_hub"`
	PropertyType     string          `json:"property_type"`
	Ownership        string          `json:"ownership"`
	SizeSqft         float64         `json:"size_in_sqft"`
	CarpetAreaSqft   float64         `json:"carpet_area_sqft"`
	FloorNo          string          `json:"floor_no"`
	TotalFloors      float64         `json:"total_floors"`
	RentPrice        float64         `json:"rent_price"`
	SecurityDeposit  float64         `json:"security_deposit"`
	Brokerage        string          `json:"brokerage"`
	PossessionStatus string          `json:"possession_status"`
	PropertyAge      float64         `json:"property_age"`
	Negotiable       string          `json:"negotiable"`
	LockInMonths     float64         `json:"lock_in_period_in_months"`
	Facilities       map[string]bool `json:"facilities"`
	Floors           map[string]bool `json:"floor_availability"`
	CollectedAt      time.Time       `json:"collected_at,omitempty"`
}

// HasFacility checks a facility flag under the normalized key
func (p *Property) HasFacility(name string) bool {
	return p.Facilities[NormalizeFacility(name)]
}

// Furnished reports the furnishing facility flag
func (p *Property) Furnished() bool {
	return p.Facilities["furnishing"]
}

// NormalizeFacility canonicalizes facility and floor names:
// "Power Backup " → "power_backup"
func NormalizeFacility(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

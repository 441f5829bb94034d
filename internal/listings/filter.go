package listings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Criteria is one search request. String fields match case-insensitively
// when non-empty; bound pointers apply when non-nil; Facilities requires
// every named facility. All active criteria combine with AND.
type Criteria struct {
	City             string `json:"city,omitempty"`
	Area             string `json:"area,omitempty"`
	Zone             string `json:"zone,omitempty"`
	PropertyType     string `json:"property_type,omitempty"`
	Ownership        string `json:"ownership,omitempty"`
	PossessionStatus string `json:"possession_status,omitempty"`
	LocationHub      string `json:"location_hub,omitempty"`
	PropertyID       string `json:"property_id,omitempty"`
	FloorNo          string `json:"floor_no,omitempty"`
	Brokerage        string `json:"brokerage,omitempty"`
	Negotiable       string `json:"negotiable,omitempty"`

	// "furnished" or "unfurnished"; empty means no constraint
	Furnishing string `json:"furnishing,omitempty"`

	MinRent        *float64 `json:"min_rent,omitempty"`
	MaxRent        *float64 `json:"max_rent,omitempty"`
	MinSize        *float64 `json:"min_size,omitempty"`
	MaxSize        *float64 `json:"max_size,omitempty"`
	MinCarpetArea  *float64 `json:"min_carpet_area,omitempty"`
	MaxCarpetArea  *float64 `json:"max_carpet_area,omitempty"`
	MinAge         *float64 `json:"min_age,omitempty"`
	MaxAge         *float64 `json:"max_age,omitempty"`
	MinDeposit     *float64 `json:"min_security_deposit,omitempty"`
	MaxDeposit     *float64 `json:"max_security_deposit,omitempty"`
	MinTotalFloors *float64 `json:"min_total_floors,omitempty"`
	MaxTotalFloors *float64 `json:"max_total_floors,omitempty"`
	MinLockIn      *float64 `json:"min_lock_in_period,omitempty"`
	MaxLockIn      *float64 `json:"max_lock_in_period,omitempty"`

	// all named facilities must be present
	Facilities []string `json:"facilities,omitempty"`

	// the named floor must be available for rent
	Floor string `json:"floor,omitempty"`
}

// Filter applies the criteria to a record set, preserving input order
func Filter(records []Property, c Criteria) []Property {
	out := make([]Property, 0, len(records))
	for i := range records {
		if matches(&records[i], c) {
			out = append(out, records[i])
		}
	}
	return out
}

func matches(p *Property, c Criteria) bool {
	textChecks := []struct{ want, have string }{
		{c.City, p.City},
		{c.Area, p.Area},
		{c.Zone, p.Zone},
		{c.PropertyType, p.PropertyType},
		{c.Ownership, p.Ownership},
		{c.PossessionStatus, p.PossessionStatus},
		{c.LocationHub, p.LocationHub},
		{c.PropertyID, p.PropertyID},
		{c.FloorNo, p.FloorNo},
		{c.Brokerage, p.Brokerage},
		{c.Negotiable, p.Negotiable},
	}
	for _, tc := range textChecks {
		if tc.want != "" && !strings.EqualFold(tc.want, tc.have) {
			return false
		}
	}

	boundChecks := []struct {
		min, max *float64
		value    float64
	}{
		{c.MinRent, c.MaxRent, p.RentPrice},
		{c.MinSize, c.MaxSize, p.SizeSqft},
		{c.MinCarpetArea, c.MaxCarpetArea, p.CarpetAreaSqft},
		{c.MinAge, c.MaxAge, p.PropertyAge},
		{c.MinDeposit, c.MaxDeposit, p.SecurityDeposit},
		{c.MinTotalFloors, c.MaxTotalFloors, p.TotalFloors},
		{c.MinLockIn, c.MaxLockIn, p.LockInMonths},
	}
	for _, bc := range boundChecks {
		if bc.min != nil && bc.value < *bc.min {
			return false
		}
		if bc.max != nil && bc.value > *bc.max {
			return false
		}
	}

	switch strings.ToLower(c.Furnishing) {
	case "furnished":
		if !p.Furnished() {
			return false
		}
	case "unfurnished":
		if p.Furnished() {
			return false
		}
	}

	for _, fac := range c.Facilities {
		if !p.HasFacility(fac) {
			return false
		}
	}

	if c.Floor != "" && !p.Floors[NormalizeFacility(c.Floor)] {
		return false
	}

	return true
}

var boundExpr = regexp.MustCompile(`(?i)^\s*(below|under|less than|above|over|more than|between)?\s*([\d,.]+)\s*(?:and\s*([\d,.]+))?\s*$`)

// ParseBound reads a free-text amount expression into min/max bounds:
// "below 20000", "above 5000", "between 10000 and 40000", "15000".
// A bare number means an exact match (both bounds).
func ParseBound(expr string) (min, max *float64, err error) {
	m := boundExpr.FindStringSubmatch(expr)
	if m == nil {
		return nil, nil, fmt.Errorf("unrecognized amount expression %q", expr)
	}
	first, err := parseAmount(m[2])
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(strings.TrimSpace(m[1])) {
	case "below", "under", "less than":
		return nil, &first, nil
	case "above", "over", "more than":
		return &first, nil, nil
	case "between":
		if m[3] == "" {
			return nil, nil, fmt.Errorf("between needs two amounts in %q", expr)
		}
		second, err := parseAmount(m[3])
		if err != nil {
			return nil, nil, err
		}
		if second < first {
			first, second = second, first
		}
		return &first, &second, nil
	default:
		return &first, &first, nil
	}
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// Package rules holds the commercial property rule table: size
// guidelines, per-category facility bounds, amenity impact percentages,
// and the valuation tuning knobs (warning decay, fair-price tolerance).
//
// ⭐ SSOT: 검증 규칙과 보정 계수는 전부 이 테이블에서만 정의
package rules

// Range is an inclusive numeric bound
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies inside the range, bounds included
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Window is a fractional band relative to the total property size,
// e.g. built-up area at 0.80–0.90 of the total.
type Window struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CategoryRule bounds the facility counts allowed for one property type
type CategoryRule struct {
	ParkingSlots Range `yaml:"parking_slots"`
	PowerBackup  Range `yaml:"power_backup"`
	WaterSupply  Range `yaml:"water_supply"`
}

// AreaWindows holds the declared-area plausibility bands
type AreaWindows struct {
	BuiltUp Window `yaml:"built_up"`
	Carpet  Window `yaml:"carpet"`
}

// BusinessRules names business types with hard facility expectations
type BusinessRules struct {
	WaterRequired    []string `yaml:"water_required"`
	PowerRecommended []string `yaml:"power_recommended"`
}

// OutlierRules flags structurally unusual facility counts
type OutlierRules struct {
	// ParkingThreshold 이상이면 outlier 검사 대상
	ParkingThreshold float64 `yaml:"parking_threshold"`
	// property types where very high parking counts are normal
	ParkingExemptTypes []string `yaml:"parking_exempt_types"`
	// below this size any flagged parking count is unusual
	MinSizeForHighParking float64 `yaml:"min_size_for_high_parking"`
}

// Table is the complete rule set used by the validator and the
// adjustment stages of the valuation pipeline.
type Table struct {
	SizeGuidelines map[string]Range        `yaml:"size_guidelines"`
	PropertyRules  map[string]CategoryRule `yaml:"property_rules"`
	AmenityImpact  map[string]float64      `yaml:"amenity_impact"`
	Areas          AreaWindows             `yaml:"area_windows"`
	Business       BusinessRules           `yaml:"business_rules"`
	Outliers       OutlierRules            `yaml:"outliers"`

	// WarningDecay is the multiplicative penalty applied once per
	// validation warning to the adjusted rent.
	WarningDecay float64 `yaml:"warning_decay"`

	// FairTolerance is the half-width of the fair price band as a
	// fraction of the adjusted rent.
	FairTolerance float64 `yaml:"fair_tolerance"`
}

// ParkingExempt reports whether high parking counts are normal for the
// given property type.
func (t *Table) ParkingExempt(propertyType string) bool {
	for _, pt := range t.Outliers.ParkingExemptTypes {
		if pt == propertyType {
			return true
		}
	}
	return false
}

// RequiresWater reports whether the business type must have water supply
func (t *Table) RequiresWater(businessType string) bool {
	for _, b := range t.Business.WaterRequired {
		if b == businessType {
			return true
		}
	}
	return false
}

// RecommendsPower reports whether the business type is expected to have
// power backup.
func (t *Table) RecommendsPower(businessType string) bool {
	for _, b := range t.Business.PowerRecommended {
		if b == businessType {
			return true
		}
	}
	return false
}

package rules

import "fmt"

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the structural constraints of a rule table.
// 실패 시 error 반환 (프로그램 중단)
func Validate(t *Table) error {
	if t.WarningDecay <= 0 || t.WarningDecay > 1 {
		return ValidationError{"warning_decay", "must be in (0, 1]"}
	}
	if t.FairTolerance < 0 || t.FairTolerance >= 1 {
		return ValidationError{"fair_tolerance", "must be in [0, 1)"}
	}

	for name, r := range t.SizeGuidelines {
		if r.Min < 0 || r.Max < r.Min {
			return ValidationError{"size_guidelines." + name, "requires 0 <= min <= max"}
		}
	}
	for name, cr := range t.PropertyRules {
		if cr.ParkingSlots.Max < cr.ParkingSlots.Min {
			return ValidationError{"property_rules." + name + ".parking_slots", "max < min"}
		}
		if cr.PowerBackup.Max < cr.PowerBackup.Min {
			return ValidationError{"property_rules." + name + ".power_backup", "max < min"}
		}
		if cr.WaterSupply.Max < cr.WaterSupply.Min {
			return ValidationError{"property_rules." + name + ".water_supply", "max < min"}
		}
	}
	for name, pct := range t.AmenityImpact {
		if pct < 0 {
			return ValidationError{"amenity_impact." + name, "must be >= 0"}
		}
	}

	if err := validateWindow("area_windows.built_up", t.Areas.BuiltUp); err != nil {
		return err
	}
	if err := validateWindow("area_windows.carpet", t.Areas.Carpet); err != nil {
		return err
	}

	if t.Outliers.ParkingThreshold < 0 {
		return ValidationError{"outliers.parking_threshold", "must be >= 0"}
	}
	if t.Outliers.MinSizeForHighParking < 0 {
		return ValidationError{"outliers.min_size_for_high_parking", "must be >= 0"}
	}

	return nil
}

func validateWindow(field string, w Window) error {
	if w.Min <= 0 || w.Max > 1 || w.Max < w.Min {
		return ValidationError{field, "requires 0 < min <= max <= 1"}
	}
	return nil
}

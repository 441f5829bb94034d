package valuation

import (
	"fmt"
	"strconv"

	"github.com/propstack/rentquant/backend/internal/rules"
)

// Validator runs the rule-based plausibility checks. Warnings are
// advisory: they never block a valuation, but each one later shrinks
// the adjusted rent through the warning decay.
type Validator struct {
	table *rules.Table
}

// NewValidator builds a validator over a rule table
func NewValidator(table *rules.Table) *Validator {
	return &Validator{table: table}
}

// Validate returns the warning list for one property, in check order.
// The same defect reported by two independent checks yields two
// warnings; deduplication would weaken the decay on purpose-built
// compound rules.
func (v *Validator) Validate(raw RawAttributes) []string {
	warnings := []string{}

	totalSize := raw.Number(AttrSizeSqft)
	v.checkDeclaredArea(raw, totalSize, &warnings)

	propertyType := raw.Label(AttrPropertyType)
	parking := raw.Number(AttrParkingSlots)
	power := raw.Number(AttrPowerBackup)
	water := raw.Number(AttrWaterSupply)

	if cr, ok := v.table.PropertyRules[propertyType]; ok {
		if !cr.ParkingSlots.Contains(parking) {
			warnings = append(warnings, fmt.Sprintf(
				"For %s, parking slots should be between %s and %s!",
				propertyType, num(cr.ParkingSlots.Min), num(cr.ParkingSlots.Max)))
		}
		if !cr.PowerBackup.Contains(power) {
			warnings = append(warnings, fmt.Sprintf(
				"For %s, power backup should be between %s and %s!",
				propertyType, num(cr.PowerBackup.Min), num(cr.PowerBackup.Max)))
		}
		if !cr.WaterSupply.Contains(water) {
			warnings = append(warnings, fmt.Sprintf(
				"For %s, water supply should be between %s and %s!",
				propertyType, num(cr.WaterSupply.Min), num(cr.WaterSupply.Max)))
		}
	}

	if g, ok := v.table.SizeGuidelines[propertyType]; ok && !g.Contains(totalSize) {
		warnings = append(warnings, fmt.Sprintf(
			"For %s, size should be between %s and %s sq ft!",
			propertyType, num(g.Min), num(g.Max)))
	}

	if raw.Number(AttrFloorNo) > raw.Number(AttrTotalFloors) {
		warnings = append(warnings, "Floor number cannot exceed total floors in building!")
	}

	businessType := raw.Label(AttrBusinessType)
	if businessType != "" {
		if v.table.RequiresWater(businessType) && water == 0 {
			warnings = append(warnings, fmt.Sprintf("%s businesses must have water supply!", businessType))
		}
		if v.table.RecommendsPower(businessType) && power == 0 {
			warnings = append(warnings, fmt.Sprintf("%s businesses should have power backup!", businessType))
		}
	}

	// 주차장 이상치: 면제 유형이 아니면 경고, 소형 건물이면 추가 경고
	if parking >= v.table.Outliers.ParkingThreshold {
		if !v.table.ParkingExempt(propertyType) {
			warnings = append(warnings, fmt.Sprintf(
				"Having %s parking slots in a %s is unusual!", num(parking), propertyType))
		}
		if totalSize < v.table.Outliers.MinSizeForHighParking {
			warnings = append(warnings, fmt.Sprintf(
				"Having %s parking slots in a %s sq ft property is unusual!", num(parking), num(totalSize)))
		}
	}

	return warnings
}

// checkDeclaredArea validates the declared area figure against the
// total size. Super area must match exactly; built-up and carpet areas
// must be strictly smaller and inside their fractional windows.
func (v *Validator) checkDeclaredArea(raw RawAttributes, totalSize float64, warnings *[]string) {
	areaType := raw.Label(AttrAreaType)
	if areaType == "" {
		return
	}
	areaValue := raw.Number(AttrAreaValue)

	switch areaType {
	case AreaTypeSuper:
		if areaValue != totalSize {
			*warnings = append(*warnings, fmt.Sprintf(
				"Super Area (%s sq ft) must match the total size (%s sq ft) exactly!",
				num(areaValue), num(totalSize)))
		}
	case AreaTypeBuiltUp:
		v.checkAreaWindow(areaType, areaValue, totalSize, v.table.Areas.BuiltUp, warnings)
	case AreaTypeCarpet:
		v.checkAreaWindow(areaType, areaValue, totalSize, v.table.Areas.Carpet, warnings)
	}
}

func (v *Validator) checkAreaWindow(areaType string, areaValue, totalSize float64, w rules.Window, warnings *[]string) {
	if areaValue >= totalSize {
		*warnings = append(*warnings, fmt.Sprintf(
			"%s (%s sq ft) must be less than total size (%s sq ft)!",
			areaType, num(areaValue), num(totalSize)))
		return
	}
	expectedMin := totalSize * w.Min
	expectedMax := totalSize * w.Max
	if areaValue < expectedMin || areaValue > expectedMax {
		*warnings = append(*warnings, fmt.Sprintf(
			"%s (%s sq ft) should be between %.0f-%.0f sq ft (%.0f-%.0f%% of total size %s sq ft)!",
			areaType, num(areaValue), expectedMin, expectedMax,
			w.Min*100, w.Max*100, num(totalSize)))
	}
}

// num renders a number the way a person wrote it: no trailing zeros
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package valuation

// RawAttributes is the caller-supplied attribute map for one valuation
// request. Values are numbers, boolean flags, or category labels. The
// pipeline never mutates it; a missing key reads as its zero default.
type RawAttributes map[string]interface{}

// Model-relevant attribute keys (must match the training column names)
const (
	AttrSizeSqft        = "Size_In_Sqft"
	AttrCarpetAreaSqft  = "Carpet_Area_Sqft"
	AttrFloorNo         = "Floor_No"
	AttrTotalFloors     = "Total_floors_In_Building"
	AttrPropertyType    = "Property_Type"
	AttrBusinessType    = "Business_Type"
	AttrParkingSlots    = "Number_Of_Parking_Slots"
	AttrPowerBackup     = "Power_Backup"
	AttrWaterSupply     = "Water_Supply"
)

// Validation-only attribute keys, never sent to the model
const (
	AttrAreaType  = "area_type"
	AttrAreaValue = "area_value"
)

// Declared area types
const (
	AreaTypeSuper   = "Super Area"
	AreaTypeBuiltUp = "Built-up Area"
	AreaTypeCarpet  = "Carpet Area"
)

// Number reads a numeric attribute, treating missing or mistyped values
// as zero. JSON-decoded numbers arrive as float64; int covers literals
// built in Go code.
func (r RawAttributes) Number(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Flag reads a boolean attribute; numeric non-zero also counts as set
func (r RawAttributes) Flag(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// Label reads a category label attribute, missing reads as ""
func (r RawAttributes) Label(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// FeatureVector is the ordered numeric array fed to the model, aligned
// 1:1 with the provider's training column schema.
type FeatureVector []float64

// ProjectionPoint is one year of the forward rent projection
type ProjectionPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// FairRange is a symmetric band around the adjusted estimate. It is
// informational only; the estimate is not constrained to lie inside it.
type FairRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Price verdicts for listed-price comparison
const (
	VerdictUnderpriced = "UNDERPRICED"
	VerdictFair        = "FAIR"
	VerdictOverpriced  = "OVERPRICED"
)

// Verdict classifies a listed price against the fair range
func (f FairRange) Verdict(listed float64) string {
	switch {
	case listed < f.Low:
		return VerdictUnderpriced
	case listed > f.High:
		return VerdictOverpriced
	default:
		return VerdictFair
	}
}

// ValuationResult is the per-request output of the pipeline. BaseRent,
// AdjustedRent and FairRange are nil when inference failed; Warnings and
// AmenityUpliftPct are always populated (partial results are preferable
// to a hard failure).
type ValuationResult struct {
	BaseRent         *float64          `json:"base_rent"`
	AmenityUpliftPct float64           `json:"amenity_uplift_pct"`
	Warnings         []string          `json:"warnings"`
	AdjustedRent     *float64          `json:"adjusted_rent"`
	FairRange        *FairRange        `json:"fair_range"`
	Projection       []ProjectionPoint `json:"projection"`
}

// HasEstimate reports whether the model produced a usable base rent
func (v *ValuationResult) HasEstimate() bool {
	return v.BaseRent != nil
}

package valuation

// FeatureSpec declares which raw attributes are categorical (one-hot
// expanded) and which are numeric (standard-scaled). It must mirror the
// feature engineering used when the model was trained.
type FeatureSpec struct {
	Categorical []string
	Numerical   []string
}

// DefaultFeatureSpec matches the commercial rent model's training setup
func DefaultFeatureSpec() FeatureSpec {
	return FeatureSpec{
		Categorical: []string{
			"City", "Area", "Zone", "Property_Type", "Business_Type",
			"Furnishing_Status", "Maintenance_Charge", "Brokerage",
			"Zone_Type", "Facing",
		},
		Numerical: []string{
			"Size_In_Sqft", "Carpet_Area_Sqft", "Floor_No",
			"Total_floors_In_Building", "Road_Connectivity",
			"Security_Deposit", "Property_Age", "Number_Of_Parking_Slots",
			"Power_Backup", "Water_Supply", "ATM_Near_me", "Airport_Near_me",
			"Bus_Stop_Near_me", "Hospital_Near_me", "Mall_Near_me",
			"Market_Near_me", "Metro_Station_Near_me", "Park_Near_me",
			"School_Near_me",
		},
	}
}

// Aligner projects raw attributes onto a provider's training schema:
// one-hot expansion of categoricals, zero-fill of missing columns,
// drop of unknown columns, then scaling of the numeric subset.
type Aligner struct {
	spec FeatureSpec

	// lookup sets derived from spec
	categorical map[string]bool
}

// NewAligner builds an aligner for a fixed feature spec
func NewAligner(spec FeatureSpec) *Aligner {
	cat := make(map[string]bool, len(spec.Categorical))
	for _, c := range spec.Categorical {
		cat[c] = true
	}
	return &Aligner{spec: spec, categorical: cat}
}

// Align produces the model-ready feature vector for one request.
//
// Categorical attributes expand to "{attribute}_{label}" indicator
// columns; anything the schema does not know is silently dropped, and
// schema columns the request never mentions read as zero. An unseen
// category label leaves all of its indicator columns at zero.
func (a *Aligner) Align(raw RawAttributes, p Provider) (FeatureVector, error) {
	if p == nil {
		return nil, ErrArtifactsUnavailable
	}
	schema := p.Columns()
	if len(schema) == 0 {
		return nil, &AlignmentError{Reason: "provider exposes an empty column schema"}
	}

	// 1. flatten the request into named columns
	row := make(map[string]float64, len(raw))
	for key, val := range raw {
		if a.categorical[key] {
			if label, ok := val.(string); ok && label != "" {
				row[key+"_"+label] = 1
			}
			continue
		}
		if _, ok := val.(string); ok {
			// non-categorical text (area_type 등) never reaches the model
			continue
		}
		row[key] = raw.Number(key)
	}

	// 2. reindex onto the training schema, zero-filling gaps
	index := make(map[string]int, len(schema))
	vec := make(FeatureVector, len(schema))
	for i, col := range schema {
		index[col] = i
		vec[i] = row[col]
	}

	// 3. scale the numeric subset, in declared numeric-feature order
	numericCols := make([]int, 0, len(a.spec.Numerical))
	numeric := make([]float64, 0, len(a.spec.Numerical))
	for _, col := range a.spec.Numerical {
		if i, ok := index[col]; ok {
			numericCols = append(numericCols, i)
			numeric = append(numeric, vec[i])
		}
	}
	if len(numeric) > 0 {
		scaled, err := p.Transform(numeric)
		if err != nil {
			return nil, &AlignmentError{Reason: "scaling numeric features", Err: err}
		}
		if len(scaled) != len(numericCols) {
			return nil, &AlignmentError{Reason: "scaler returned a mismatched dimension"}
		}
		for j, i := range numericCols {
			vec[i] = scaled[j]
		}
	}

	return vec, nil
}

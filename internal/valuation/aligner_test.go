package valuation

import (
	"errors"
	"math"
	"testing"
)

// stubProvider is a hand-rolled model double for pipeline level tests
type stubProvider struct {
	columns   []string
	transform func([]float64) ([]float64, error)
	predict   func([]float64) (float64, error)
}

func (s *stubProvider) Columns() []string { return s.columns }

func (s *stubProvider) Transform(numeric []float64) ([]float64, error) {
	if s.transform != nil {
		return s.transform(numeric)
	}
	return numeric, nil
}

func (s *stubProvider) Predict(features []float64) (float64, error) {
	if s.predict != nil {
		return s.predict(features)
	}
	return 0, nil
}

func TestAlignSchemaCompleteness(t *testing.T) {
	p := &stubProvider{columns: []string{
		"Size_In_Sqft", "Property_Age", "Property_Type_Office Space", "Zone_West Zone",
	}}
	a := NewAligner(DefaultFeatureSpec())

	vec, err := a.Align(RawAttributes{"Size_In_Sqft": 2000.0}, p)
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if len(vec) != 4 {
		t.Fatalf("vector length = %d, want schema length 4", len(vec))
	}
	// unmentioned schema columns read as zero
	for i := 1; i < 4; i++ {
		if vec[i] != 0 {
			t.Errorf("vec[%d] = %v, want 0 for absent attribute", i, vec[i])
		}
	}
	if vec[0] != 2000 {
		t.Errorf("vec[0] = %v, want 2000", vec[0])
	}
}

func TestAlignOneHotExpansion(t *testing.T) {
	p := &stubProvider{columns: []string{
		"Property_Type_Office Space", "Property_Type_Retail Shop", "Business_Type_General",
	}}
	a := NewAligner(DefaultFeatureSpec())

	vec, err := a.Align(RawAttributes{
		"Property_Type": "Office Space",
		"Business_Type": "General",
	}, p)
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if vec[0] != 1 {
		t.Error("Office Space indicator should be set")
	}
	if vec[1] != 0 {
		t.Error("Retail Shop indicator should stay zero")
	}
	if vec[2] != 1 {
		t.Error("General business indicator should be set")
	}
}

func TestAlignUnknownLabelContributesNothing(t *testing.T) {
	p := &stubProvider{columns: []string{"Property_Type_Office Space", "Size_In_Sqft"}}
	a := NewAligner(DefaultFeatureSpec())

	vec, err := a.Align(RawAttributes{
		"Property_Type": "Moon Base", // label never seen in training
		"Size_In_Sqft":  500.0,
	}, p)
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if vec[0] != 0 {
		t.Error("unseen label must not set any indicator")
	}
	if vec[1] != 500 {
		t.Errorf("vec[1] = %v, want 500", vec[1])
	}
}

func TestAlignDropsValidationOnlyFields(t *testing.T) {
	p := &stubProvider{columns: []string{"Size_In_Sqft"}}
	a := NewAligner(DefaultFeatureSpec())

	vec, err := a.Align(RawAttributes{
		"Size_In_Sqft": 1000.0,
		"area_type":    "Carpet Area",
		"area_value":   800.0,
	}, p)
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if len(vec) != 1 || vec[0] != 1000 {
		t.Errorf("vec = %v, want [1000]", vec)
	}
}

func TestAlignScalesNumericSubsetInDeclaredOrder(t *testing.T) {
	// schema orders the columns differently from the FeatureSpec;
	// scaling must still follow the declared numerical feature order
	p := &stubProvider{
		columns: []string{"Property_Age", "Size_In_Sqft", "Zone_West Zone"},
		transform: func(numeric []float64) ([]float64, error) {
			if len(numeric) != 2 {
				t.Fatalf("transform received %d values, want 2", len(numeric))
			}
			// declared order puts Size_In_Sqft before Property_Age
			if numeric[0] != 2000 || numeric[1] != 5 {
				t.Fatalf("transform input = %v, want [2000 5]", numeric)
			}
			return []float64{1.5, -0.5}, nil
		},
	}
	a := NewAligner(DefaultFeatureSpec())

	vec, err := a.Align(RawAttributes{
		"Size_In_Sqft": 2000.0,
		"Property_Age": 5.0,
		"Zone":         "West Zone",
	}, p)
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if vec[1] != 1.5 {
		t.Errorf("scaled Size_In_Sqft = %v, want 1.5", vec[1])
	}
	if vec[0] != -0.5 {
		t.Errorf("scaled Property_Age = %v, want -0.5", vec[0])
	}
	if vec[2] != 1 {
		t.Errorf("indicator column must not be scaled, got %v", vec[2])
	}
}

func TestAlignNilProvider(t *testing.T) {
	a := NewAligner(DefaultFeatureSpec())
	_, err := a.Align(RawAttributes{}, nil)
	if !errors.Is(err, ErrArtifactsUnavailable) {
		t.Errorf("err = %v, want ErrArtifactsUnavailable", err)
	}
}

func TestAlignTransformFailure(t *testing.T) {
	p := &stubProvider{
		columns: []string{"Size_In_Sqft"},
		transform: func([]float64) ([]float64, error) {
			return nil, errors.New("dimension mismatch")
		},
	}
	a := NewAligner(DefaultFeatureSpec())

	_, err := a.Align(RawAttributes{"Size_In_Sqft": 100.0}, p)
	var alignErr *AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("err = %T, want *AlignmentError", err)
	}
}

func TestRawAttributeAccessors(t *testing.T) {
	raw := RawAttributes{
		"f64":  1.5,
		"int":  3,
		"flag": true,
		"text": "hello",
	}
	if raw.Number("f64") != 1.5 || raw.Number("int") != 3 {
		t.Error("Number() should read float64 and int")
	}
	if raw.Number("missing") != 0 || raw.Number("text") != 0 {
		t.Error("Number() should default to zero")
	}
	if !raw.Flag("flag") || raw.Flag("missing") {
		t.Error("Flag() boolean handling is wrong")
	}
	if raw.Flag("f64") != true {
		t.Error("non-zero numeric should count as a set flag")
	}
	if raw.Label("text") != "hello" || raw.Label("missing") != "" {
		t.Error("Label() string handling is wrong")
	}
	if math.Signbit(raw.Number("missing")) {
		t.Error("missing number should be positive zero")
	}
}

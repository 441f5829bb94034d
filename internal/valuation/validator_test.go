package valuation

import (
	"strings"
	"testing"

	"github.com/propstack/rentquant/backend/internal/rules"
)

func TestValidateDeclaredArea(t *testing.T) {
	v := NewValidator(rules.Default())

	tests := []struct {
		name     string
		raw      RawAttributes
		wantPart string // empty means no warning expected
	}{
		{
			name: "built-up below window",
			raw: RawAttributes{
				"Size_In_Sqft": 1000.0,
				"area_type":    "Built-up Area",
				"area_value":   750.0,
			},
			wantPart: "should be between 800-900 sq ft",
		},
		{
			name: "built-up inside window",
			raw: RawAttributes{
				"Size_In_Sqft": 1000.0,
				"area_type":    "Built-up Area",
				"area_value":   850.0,
			},
		},
		{
			name: "built-up not below total",
			raw: RawAttributes{
				"Size_In_Sqft": 1000.0,
				"area_type":    "Built-up Area",
				"area_value":   1000.0,
			},
			wantPart: "must be less than total size",
		},
		{
			name: "carpet at upper bound is fine",
			raw: RawAttributes{
				"Size_In_Sqft": 2000.0,
				"area_type":    "Carpet Area",
				"area_value":   1600.0,
			},
		},
		{
			name: "carpet below window",
			raw: RawAttributes{
				"Size_In_Sqft": 2000.0,
				"area_type":    "Carpet Area",
				"area_value":   1200.0,
			},
			wantPart: "should be between 1300-1600 sq ft",
		},
		{
			name: "super area mismatch",
			raw: RawAttributes{
				"Size_In_Sqft": 1000.0,
				"area_type":    "Super Area",
				"area_value":   900.0,
			},
			wantPart: "must match the total size",
		},
		{
			name: "super area exact match",
			raw: RawAttributes{
				"Size_In_Sqft": 1000.0,
				"area_type":    "Super Area",
				"area_value":   1000.0,
			},
		},
		{
			name: "no declared area no warning",
			raw:  RawAttributes{"Size_In_Sqft": 1000.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := v.Validate(tt.raw)
			if tt.wantPart == "" {
				if len(warnings) != 0 {
					t.Errorf("want no warnings, got %v", warnings)
				}
				return
			}
			if len(warnings) != 1 {
				t.Fatalf("want exactly 1 warning, got %v", warnings)
			}
			if !strings.Contains(warnings[0], tt.wantPart) {
				t.Errorf("warning %q should contain %q", warnings[0], tt.wantPart)
			}
		})
	}
}

func TestValidatePropertyTypeRules(t *testing.T) {
	v := NewValidator(rules.Default())

	t.Run("retail parking over bound", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":            5000.0,
			"Property_Type":           "Retail Shop",
			"Number_Of_Parking_Slots": 80.0,
		})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "parking slots should be between 0 and 50") {
			t.Errorf("got %v", warnings)
		}
	})

	t.Run("office size under guideline", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":  150.0,
			"Property_Type": "Office Space",
		})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "size should be between 200 and 50000 sq ft") {
			t.Errorf("got %v", warnings)
		}
	})

	t.Run("restaurant without water fires two rules", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":  1000.0,
			"Property_Type": "Restaurant",
			"Business_Type": "Restaurant",
			"Water_Supply":  0.0,
		})
		// category bound (min 1) and the business rule both fire
		if len(warnings) != 2 {
			t.Fatalf("want 2 warnings, got %v", warnings)
		}
		if !strings.Contains(warnings[0], "water supply should be between 1 and 1") {
			t.Errorf("got %q", warnings[0])
		}
		if !strings.Contains(warnings[1], "must have water supply") {
			t.Errorf("got %q", warnings[1])
		}
	})

	t.Run("data center without power backup", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":  5000.0,
			"Property_Type": "Office Space",
			"Business_Type": "Data Center",
			"Power_Backup":  0.0,
		})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "Data Center businesses should have power backup") {
			t.Errorf("got %v", warnings)
		}
	})

	t.Run("unknown property type skips category checks", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":  5.0,
			"Property_Type": "Houseboat",
		})
		if len(warnings) != 0 {
			t.Errorf("got %v", warnings)
		}
	})
}

func TestValidateFloorBound(t *testing.T) {
	v := NewValidator(rules.Default())

	warnings := v.Validate(RawAttributes{
		"Floor_No":                 6.0,
		"Total_floors_In_Building": 4.0,
	})
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Floor number cannot exceed total floors") {
		t.Errorf("got %v", warnings)
	}

	warnings = v.Validate(RawAttributes{
		"Floor_No":                 4.0,
		"Total_floors_In_Building": 4.0,
	})
	if len(warnings) != 0 {
		t.Errorf("top floor should be allowed, got %v", warnings)
	}
}

func TestValidateParkingOutliers(t *testing.T) {
	v := NewValidator(rules.Default())

	t.Run("warehouse with high parking is normal", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":            20000.0,
			"Property_Type":           "Warehouse",
			"Number_Of_Parking_Slots": 150.0,
		})
		if len(warnings) != 0 {
			t.Errorf("got %v", warnings)
		}
	})

	t.Run("small office with high parking fires both outlier checks", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":            3000.0,
			"Property_Type":           "Office Space",
			"Number_Of_Parking_Slots": 100.0,
		})
		if len(warnings) != 2 {
			t.Fatalf("want 2 warnings, got %v", warnings)
		}
		if !strings.Contains(warnings[0], "100 parking slots in a Office Space is unusual") {
			t.Errorf("got %q", warnings[0])
		}
		if !strings.Contains(warnings[1], "100 parking slots in a 3000 sq ft property is unusual") {
			t.Errorf("got %q", warnings[1])
		}
	})

	t.Run("small warehouse still unusual for its size", func(t *testing.T) {
		warnings := v.Validate(RawAttributes{
			"Size_In_Sqft":            3000.0,
			"Property_Type":           "Warehouse",
			"Number_Of_Parking_Slots": 120.0,
		})
		if len(warnings) != 1 || !strings.Contains(warnings[0], "sq ft property is unusual") {
			t.Errorf("got %v", warnings)
		}
	})
}

func TestValidateCleanProperty(t *testing.T) {
	v := NewValidator(rules.Default())

	warnings := v.Validate(RawAttributes{
		"Size_In_Sqft":             2000.0,
		"area_type":                "Carpet Area",
		"area_value":               1500.0,
		"Property_Type":            "Office Space",
		"Business_Type":            "General",
		"Number_Of_Parking_Slots":  5.0,
		"Floor_No":                 1.0,
		"Total_floors_In_Building": 4.0,
		"Power_Backup":             1.0,
		"Water_Supply":             1.0,
	})
	if len(warnings) != 0 {
		t.Errorf("clean property should have no warnings, got %v", warnings)
	}
}

package listings

import (
	"testing"
)

func fixtures() []Property {
	return []Property{
		{
			PropertyID:   "NAG-001",
			City:         "Nagpur",
			Area:         "Dharampeth",
			Zone:         "Central Zone",
			PropertyType: "Office Space",
			Ownership:    "Freehold",
			SizeSqft:     2000,
			RentPrice:    60000,
			PropertyAge:  5,
			TotalFloors:  4,
			Negotiable:   "Yes",
			Facilities:   map[string]bool{"furnishing": true, "power_backup": true, "lift": true},
			Floors:       map[string]bool{"ground_floor": true},
		},
		{
			PropertyID:   "NAG-002",
			City:         "Nagpur",
			Area:         "Sitabuldi",
			Zone:         "Central Zone",
			PropertyType: "Retail Shop",
			SizeSqft:     800,
			RentPrice:    25000,
			PropertyAge:  12,
			Facilities:   map[string]bool{"power_backup": true},
			Floors:       map[string]bool{"first_floor": true},
		},
		{
			PropertyID:   "NAG-003",
			City:         "Nagpur",
			Area:         "MIHAN",
			Zone:         "East Zone",
			PropertyType: "Warehouse",
			SizeSqft:     15000,
			RentPrice:    120000,
			PropertyAge:  2,
			Facilities:   map[string]bool{"loading_dock": true, "security": true},
			Floors:       map[string]bool{"ground_floor": true},
		},
	}
}

func ids(props []Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.PropertyID
	}
	return out
}

func f(v float64) *float64 { return &v }

func TestFilterTextEquality(t *testing.T) {
	got := Filter(fixtures(), Criteria{Zone: "central zone"})
	if len(got) != 2 {
		t.Fatalf("got %v", ids(got))
	}

	got = Filter(fixtures(), Criteria{PropertyType: "WAREHOUSE"})
	if len(got) != 1 || got[0].PropertyID != "NAG-003" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterBounds(t *testing.T) {
	got := Filter(fixtures(), Criteria{MinRent: f(30000), MaxRent: f(100000)})
	if len(got) != 1 || got[0].PropertyID != "NAG-001" {
		t.Fatalf("got %v", ids(got))
	}

	// bounds are inclusive
	got = Filter(fixtures(), Criteria{MaxRent: f(25000)})
	if len(got) != 1 || got[0].PropertyID != "NAG-002" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterAndSemantics(t *testing.T) {
	got := Filter(fixtures(), Criteria{Zone: "Central Zone", MinSize: f(1000)})
	if len(got) != 1 || got[0].PropertyID != "NAG-001" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterFacilitiesAllOf(t *testing.T) {
	got := Filter(fixtures(), Criteria{Facilities: []string{"Power Backup"}})
	if len(got) != 2 {
		t.Fatalf("got %v", ids(got))
	}

	got = Filter(fixtures(), Criteria{Facilities: []string{"Power Backup", "Lift"}})
	if len(got) != 1 || got[0].PropertyID != "NAG-001" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterFurnishing(t *testing.T) {
	got := Filter(fixtures(), Criteria{Furnishing: "furnished"})
	if len(got) != 1 || got[0].PropertyID != "NAG-001" {
		t.Fatalf("got %v", ids(got))
	}

	got = Filter(fixtures(), Criteria{Furnishing: "unfurnished"})
	if len(got) != 2 {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterFloorAvailability(t *testing.T) {
	got := Filter(fixtures(), Criteria{Floor: "Ground Floor"})
	if len(got) != 2 {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterEmptyCriteriaKeepsAll(t *testing.T) {
	got := Filter(fixtures(), Criteria{})
	if len(got) != 3 {
		t.Fatalf("got %v", ids(got))
	}
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		expr     string
		wantMin  *float64
		wantMax  *float64
		wantErr  bool
	}{
		{"below 20000", nil, f(20000), false},
		{"under 20,000", nil, f(20000), false},
		{"less than 5000", nil, f(5000), false},
		{"above 5000", f(5000), nil, false},
		{"more than 1200", f(1200), nil, false},
		{"between 10000 and 40000", f(10000), f(40000), false},
		{"between 40000 and 10000", f(10000), f(40000), false}, // reversed operands
		{"15000", f(15000), f(15000), false},
		{"cheap", nil, nil, true},
		{"between 10000", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			min, max, err := ParseBound(tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBound() error = %v", err)
			}
			if !eqPtr(min, tt.wantMin) || !eqPtr(max, tt.wantMax) {
				t.Errorf("ParseBound() = (%v, %v), want (%v, %v)",
					deref(min), deref(max), deref(tt.wantMin), deref(tt.wantMax))
			}
		})
	}
}

func eqPtr(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func TestNormalizeFacility(t *testing.T) {
	if got := NormalizeFacility(" Power Backup "); got != "power_backup" {
		t.Errorf("got %q", got)
	}
}

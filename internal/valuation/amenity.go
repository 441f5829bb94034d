package valuation

import (
	"sort"

	"github.com/propstack/rentquant/backend/internal/rules"
)

// AmenityImpact is one amenity's contribution to the uplift
type AmenityImpact struct {
	Amenity string  `json:"amenity"`
	Percent float64 `json:"percent"`
}

// Uplift sums the impact percentages of every present amenity. The
// uplift is additive in percentage points ("parking + security" is
// 5.0 + 3.5 = 8.5%), applied to the base rent exactly once.
func Uplift(raw RawAttributes, table *rules.Table) float64 {
	total := 0.0
	for amenity, pct := range table.AmenityImpact {
		if raw.Flag(amenity) {
			total += pct
		}
	}
	return total
}

// UpliftBreakdown returns per-amenity contributions sorted by key, for
// response payloads and the CLI report.
func UpliftBreakdown(raw RawAttributes, table *rules.Table) []AmenityImpact {
	impacts := make([]AmenityImpact, 0, len(table.AmenityImpact))
	for amenity, pct := range table.AmenityImpact {
		if raw.Flag(amenity) {
			impacts = append(impacts, AmenityImpact{Amenity: amenity, Percent: pct})
		}
	}
	sort.Slice(impacts, func(i, j int) bool { return impacts[i].Amenity < impacts[j].Amenity })
	return impacts
}

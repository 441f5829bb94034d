package valuation

import (
	"math"

	"github.com/propstack/rentquant/backend/internal/rules"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// Options tunes the projection stage of one valuation
type Options struct {
	// ProjectionYears is how many yearly points to project forward.
	// Zero or negative yields an empty projection.
	ProjectionYears int `json:"projection_years"`

	// AnnualGrowthPct is the compounding yearly growth rate in percent
	AnnualGrowthPct float64 `json:"annual_growth_pct"`
}

// DefaultOptions matches the historical defaults of the product
func DefaultOptions() Options {
	return Options{ProjectionYears: 5, AnnualGrowthPct: 4.0}
}

// Pipeline runs one property through validation, model inference and
// the adjustment chain. It is safe for concurrent use; all mutable
// state lives behind the provider source.
type Pipeline struct {
	source    ProviderSource
	aligner   *Aligner
	validator *Validator
	table     *rules.Table
	log       *logger.Logger
}

// NewPipeline wires a pipeline over a provider source and rule table
func NewPipeline(source ProviderSource, table *rules.Table, log *logger.Logger) *Pipeline {
	return &Pipeline{
		source:    source,
		aligner:   NewAligner(DefaultFeatureSpec()),
		validator: NewValidator(table),
		table:     table,
		log:       log,
	}
}

// Rules exposes the pipeline's rule table (status reporting)
func (p *Pipeline) Rules() *rules.Table { return p.table }

// Valuate produces the full valuation for one property.
//
// Warnings and amenity uplift are computed first and survive every
// downstream failure: when artifacts are missing or inference fails,
// the returned result carries them with nil monetary fields, and the
// error explains the failed stage. Identical inputs always produce
// identical results.
func (p *Pipeline) Valuate(raw RawAttributes, opts Options) (*ValuationResult, error) {
	result := &ValuationResult{
		Warnings:         p.validator.Validate(raw),
		AmenityUpliftPct: Uplift(raw, p.table),
		Projection:       []ProjectionPoint{},
	}

	provider, err := p.source.Provider()
	if err != nil {
		return result, err
	}

	features, err := p.aligner.Align(raw, provider)
	if err != nil {
		return result, err
	}

	logEstimate, err := provider.Predict(features)
	if err != nil {
		return result, &InferenceError{Reason: "model rejected the feature vector", Err: err}
	}

	// 모델 타깃은 log1p(rent) → expm1로 원래 스케일 복원
	base := math.Expm1(logEstimate)
	if math.IsNaN(base) || math.IsInf(base, 0) || base < 0 {
		return result, &InferenceError{Reason: "model produced an invalid estimate"}
	}
	result.BaseRent = &base

	adjusted := base * (1 + result.AmenityUpliftPct/100.0)
	if n := len(result.Warnings); n > 0 {
		adjusted *= math.Pow(p.table.WarningDecay, float64(n))
	}
	result.AdjustedRent = &adjusted

	result.FairRange = &FairRange{
		Low:  adjusted * (1 - p.table.FairTolerance),
		High: adjusted * (1 + p.table.FairTolerance),
	}

	result.Projection = Project(adjusted, opts)

	if p.log != nil {
		p.log.WithFields(map[string]interface{}{
			"base_rent":     base,
			"adjusted_rent": adjusted,
			"warnings":      len(result.Warnings),
			"uplift_pct":    result.AmenityUpliftPct,
		}).Debug("valuation completed")
	}

	return result, nil
}

// Project compounds the adjusted rent forward, one point per year.
// Year 1 already includes one year of growth.
func Project(adjusted float64, opts Options) []ProjectionPoint {
	if opts.ProjectionYears <= 0 {
		return []ProjectionPoint{}
	}
	series := make([]ProjectionPoint, 0, opts.ProjectionYears)
	current := adjusted
	growth := 1 + opts.AnnualGrowthPct/100.0
	for year := 1; year <= opts.ProjectionYears; year++ {
		current *= growth
		series = append(series, ProjectionPoint{Year: year, Value: current})
	}
	return series
}

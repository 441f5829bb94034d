// Package artifacts loads and serves the trained model bundle: the
// training column schema, the fitted standard scaler, and the linear
// model on the log1p(rent) target. Bundles are exported to JSON by the
// training job and hot-swappable at runtime through Store.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bundle is the on-disk artifact format
type Bundle struct {
	Version   string   `json:"version"`
	TrainedAt string   `json:"trained_at"`
	Target    string   `json:"target"`
	Columns   []string `json:"columns"`
	Scaler    Scaler   `json:"scaler"`
	Model     Linear   `json:"model"`
}

// Scaler holds the fitted standardization parameters for the numeric
// feature subset, in the pipeline's declared numeric-feature order.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Linear is a linear model over the full aligned feature vector
type Linear struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// ModelProvider is a loaded, validated bundle ready for inference.
// It is immutable after construction and safe for concurrent use.
type ModelProvider struct {
	columns   []string
	mean      []float64
	std       []float64
	weights   []float64
	intercept float64
	version   string
}

// NewProvider validates a bundle and builds a provider from it
func NewProvider(b *Bundle) (*ModelProvider, error) {
	if len(b.Columns) == 0 {
		return nil, fmt.Errorf("bundle has no columns")
	}
	if len(b.Scaler.Mean) != len(b.Scaler.Std) {
		return nil, fmt.Errorf("scaler mean/std dimension mismatch: %d vs %d",
			len(b.Scaler.Mean), len(b.Scaler.Std))
	}
	if len(b.Scaler.Mean) > len(b.Columns) {
		return nil, fmt.Errorf("scaler dimension %d exceeds column count %d",
			len(b.Scaler.Mean), len(b.Columns))
	}
	if len(b.Model.Weights) != len(b.Columns) {
		return nil, fmt.Errorf("model weight count %d does not match column count %d",
			len(b.Model.Weights), len(b.Columns))
	}
	return &ModelProvider{
		columns:   b.Columns,
		mean:      b.Scaler.Mean,
		std:       b.Scaler.Std,
		weights:   b.Model.Weights,
		intercept: b.Model.Intercept,
		version:   b.Version,
	}, nil
}

// Load reads and validates a bundle file
func Load(path string) (*ModelProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode artifact bundle: %w", err)
	}
	p, err := NewProvider(&b)
	if err != nil {
		return nil, fmt.Errorf("validate artifact bundle %s: %w", path, err)
	}
	return p, nil
}

// Version returns the bundle version string
func (p *ModelProvider) Version() string { return p.version }

// Columns returns the training column schema
func (p *ModelProvider) Columns() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}

// Transform standard-scales the numeric subset: (x - mean) / std.
// Zero-variance columns pass through as zero, matching training export.
func (p *ModelProvider) Transform(numeric []float64) ([]float64, error) {
	if len(numeric) != len(p.mean) {
		return nil, fmt.Errorf("scaler expects %d values, got %d", len(p.mean), len(numeric))
	}
	out := make([]float64, len(numeric))
	for i, v := range numeric {
		if p.std[i] != 0 {
			out[i] = (v - p.mean[i]) / p.std[i]
		} else {
			out[i] = 0
		}
	}
	return out, nil
}

// Predict evaluates the linear model on an aligned feature vector and
// returns the log-scale estimate.
func (p *ModelProvider) Predict(features []float64) (float64, error) {
	if len(features) != len(p.weights) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(p.weights), len(features))
	}
	y := p.intercept
	for i, w := range p.weights {
		y += w * features[i]
	}
	return y, nil
}

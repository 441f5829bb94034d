package valuation

// Provider is the model artifact capability the pipeline depends on.
// Implementations wrap a loaded scaler + regression model bundle.
//
// ⭐ SSOT: 모델 아티팩트 접근은 이 인터페이스를 통해서만
type Provider interface {
	// Columns returns the training column schema, in model input order
	Columns() []string

	// Transform standard-scales the numeric feature subset. The input
	// is ordered by the aligner's numeric feature order and must match
	// the scaler's fitted dimension.
	Transform(numeric []float64) ([]float64, error)

	// Predict runs the model on a fully aligned feature vector and
	// returns the raw model output (log-scale target).
	Predict(features []float64) (float64, error)
}

// ProviderSource yields the current provider, or ErrArtifactsUnavailable
// when no artifact bundle is loaded. Hot reload swaps the provider
// behind this seam without touching the pipeline.
type ProviderSource interface {
	Provider() (Provider, error)
}

// StaticSource is a ProviderSource fixed at construction, used by the
// CLI and by tests.
type StaticSource struct {
	P Provider
}

func (s StaticSource) Provider() (Provider, error) {
	if s.P == nil {
		return nil, ErrArtifactsUnavailable
	}
	return s.P, nil
}

package artifacts

import (
	"sync"
	"time"

	"github.com/propstack/rentquant/backend/internal/valuation"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// Store serves the current model provider and supports hot reload.
// A missing or broken bundle leaves the store empty, not the process
// dead: valuation is disabled until a reload succeeds.
//
// ⭐ SSOT: 런타임 모델 교체는 Store.Reload를 통해서만
type Store struct {
	mu       sync.RWMutex
	provider *ModelProvider
	loadedAt time.Time

	path string
	log  *logger.Logger
}

// NewStore builds a store for a bundle path and attempts the first
// load. A failed first load is logged and reported through Status,
// never returned as an error.
func NewStore(path string, log *logger.Logger) *Store {
	s := &Store{path: path, log: log}
	if err := s.Reload(); err != nil && log != nil {
		log.WithError(err).Warn("model artifacts unavailable at startup")
	}
	return s
}

// Reload re-reads the bundle from disk and swaps it in atomically.
// On failure the previously loaded provider stays active.
func (s *Store) Reload() error {
	p, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.provider = p
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.log != nil {
		s.log.WithFields(map[string]interface{}{
			"path":    s.path,
			"version": p.Version(),
			"columns": len(p.Columns()),
		}).Info("model artifacts loaded")
	}
	return nil
}

// Provider implements valuation.ProviderSource
func (s *Store) Provider() (valuation.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return nil, valuation.ErrArtifactsUnavailable
	}
	return s.provider, nil
}

// Available reports whether a bundle is currently loaded
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider != nil
}

// Status is the artifact state surfaced by the status endpoint
type Status struct {
	Available bool      `json:"available"`
	Path      string    `json:"path"`
	Version   string    `json:"version,omitempty"`
	Columns   int       `json:"columns,omitempty"`
	LoadedAt  time.Time `json:"loaded_at,omitempty"`
}

// Status snapshots the current artifact state
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{Available: s.provider != nil, Path: s.path}
	if s.provider != nil {
		st.Version = s.provider.Version()
		st.Columns = len(s.provider.Columns())
		st.LoadedAt = s.loadedAt
	}
	return st
}

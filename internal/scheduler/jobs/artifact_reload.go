// Package jobs holds the concrete scheduled jobs of the service.
package jobs

import (
	"context"

	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ArtifactReloadJob re-reads the model bundle so a retrained model
// goes live without a restart. A failed reload keeps the previous
// bundle active.
type ArtifactReloadJob struct {
	store    *artifacts.Store
	schedule string
	log      *logger.Logger
}

// NewArtifactReloadJob wires the reload job; schedule defaults to
// hourly when empty.
func NewArtifactReloadJob(store *artifacts.Store, schedule string, log *logger.Logger) *ArtifactReloadJob {
	if schedule == "" {
		schedule = "0 0 * * * *"
	}
	return &ArtifactReloadJob{store: store, schedule: schedule, log: log}
}

func (j *ArtifactReloadJob) Name() string     { return "artifact_reload" }
func (j *ArtifactReloadJob) Schedule() string { return j.schedule }

func (j *ArtifactReloadJob) Run(ctx context.Context) error {
	if err := j.store.Reload(); err != nil {
		// 기존 번들 유지: 이미 로드된 상태라면 경고로 끝냄
		if j.store.Available() {
			j.log.WithError(err).Warn("artifact reload failed, keeping current bundle")
			return nil
		}
		return err
	}
	return nil
}

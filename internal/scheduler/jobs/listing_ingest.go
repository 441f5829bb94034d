package jobs

import (
	"context"

	"github.com/propstack/rentquant/backend/internal/ingest"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ListingIngestJob runs the nightly crawl of the listing portal.
// 새벽 수집: 포털 부하가 가장 낮은 시간대
type ListingIngestJob struct {
	collector *ingest.Collector
	schedule  string
	log       *logger.Logger
}

// NewListingIngestJob wires the crawl job; schedule defaults to 03:00
// daily when empty.
func NewListingIngestJob(collector *ingest.Collector, schedule string, log *logger.Logger) *ListingIngestJob {
	if schedule == "" {
		schedule = "0 0 3 * * *"
	}
	return &ListingIngestJob{collector: collector, schedule: schedule, log: log}
}

func (j *ListingIngestJob) Name() string     { return "listing_ingest" }
func (j *ListingIngestJob) Schedule() string { return j.schedule }

func (j *ListingIngestJob) Run(ctx context.Context) error {
	stats, err := j.collector.Run(ctx)
	if err != nil {
		return err
	}
	j.log.WithFields(map[string]interface{}{
		"pages":    stats.Pages,
		"upserted": stats.Upserted,
		"failed":   stats.Failed,
	}).Info("nightly listing ingest finished")
	return nil
}

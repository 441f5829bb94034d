package ingest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/propstack/rentquant/backend/internal/listings"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/httputil"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// Collector walks the portal's paginated search results and upserts
// every parsed listing.
// ⭐ SSOT: 매물 수집은 Collector.Run에서만 수행
type Collector struct {
	client *httputil.Client
	repo   *listings.Repository
	cfg    config.IngestConfig
	log    *logger.Logger
}

// NewCollector wires a collector; the HTTP client is rate limited so a
// full crawl stays polite.
func NewCollector(cfg *config.Config, repo *listings.Repository, log *logger.Logger) *Collector {
	client := httputil.New(cfg, log).
		WithRateLimit(cfg.Ingest.RatePerSec, cfg.Ingest.Burst).
		WithRetry(3, 0)
	return &Collector{client: client, repo: repo, cfg: cfg.Ingest, log: log}
}

// Stats summarizes one collection run
type Stats struct {
	Pages    int `json:"pages"`
	Parsed   int `json:"parsed"`
	Upserted int `json:"upserted"`
	Failed   int `json:"failed"`
}

// Run crawls search pages until an empty page, the configured page cap,
// or context cancellation. Per-listing upsert failures are logged and
// counted, never fatal to the run.
func (c *Collector) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for page := 1; page <= c.cfg.MaxPages; page++ {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		pageURL := fmt.Sprintf("%s/commercial?city=%s&page=%d",
			c.cfg.BaseURL, url.QueryEscape(c.cfg.City), page)

		resp, err := c.client.Get(ctx, pageURL)
		if err != nil {
			return stats, fmt.Errorf("fetch page %d: %w", page, err)
		}
		props, err := ParsePage(resp.Body, c.cfg.City)
		resp.Body.Close()
		if err != nil {
			return stats, fmt.Errorf("parse page %d: %w", page, err)
		}

		// 빈 페이지 = 마지막 페이지
		if len(props) == 0 {
			break
		}
		stats.Pages++
		stats.Parsed += len(props)

		for i := range props {
			if err := c.repo.Upsert(ctx, &props[i]); err != nil {
				stats.Failed++
				c.log.WithError(err).WithField("property_id", props[i].PropertyID).
					Warn("listing upsert failed")
				continue
			}
			stats.Upserted++
		}
	}

	c.log.WithFields(map[string]interface{}{
		"pages":    stats.Pages,
		"parsed":   stats.Parsed,
		"upserted": stats.Upserted,
		"failed":   stats.Failed,
	}).Info("listing collection completed")
	return stats, nil
}

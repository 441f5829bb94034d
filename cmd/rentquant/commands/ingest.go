package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/internal/ingest"
	"github.com/propstack/rentquant/backend/internal/listings"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/database"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "매물 수집 실행",
	Long: `포털에서 매물을 수집해 저장소에 반영합니다.

이 명령어는:
- 설정된 도시의 검색 페이지를 순회
- HTML 파싱 후 매물 upsert
- 레이트리밋 준수 (INGEST_RATE_PER_SEC)

Example:
  go run ./cmd/rentquant ingest
  go run ./cmd/rentquant ingest --max-pages 5`,
	RunE: runIngest,
}

var ingestMaxPages int

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().IntVar(&ingestMaxPages, "max-pages", 0, "최대 페이지 수 (기본: INGEST_MAX_PAGES)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentQuant Listing Ingest ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if ingestMaxPages > 0 {
		cfg.Ingest.MaxPages = ingestMaxPages
	}
	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := listings.NewRepository(db.Pool)
	collector := ingest.NewCollector(cfg, repo, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := collector.Run(ctx)
	if err != nil {
		return fmt.Errorf("run collection: %w", err)
	}

	fmt.Printf("✅ Collected %d listings over %d pages (%d failed)\n",
		stats.Upserted, stats.Pages, stats.Failed)
	return nil
}

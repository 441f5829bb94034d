package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/internal/ingest"
	"github.com/propstack/rentquant/backend/internal/listings"
	"github.com/propstack/rentquant/backend/internal/scheduler"
	"github.com/propstack/rentquant/backend/internal/scheduler/jobs"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/database"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 관리합니다.

등록되는 작업:
- artifact_reload: 매시 정각 (모델 번들 핫 리로드)
- listing_ingest:  매일 3시 (매물 수집)

Subcommands:
  start   - 스케줄러 데몬 시작
  list    - 등록 작업 목록

Example:
  go run ./cmd/rentquant scheduler start
  go run ./cmd/rentquant scheduler list`,
}

var schedulerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "스케줄러 시작",
	RunE:  runSchedulerStart,
}

var schedulerListCmd = &cobra.Command{
	Use:   "list",
	Short: "등록 작업 목록",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Registered jobs:")
		fmt.Println("  artifact_reload  0 0 * * * *   모델 번들 리로드")
		fmt.Println("  listing_ingest   0 0 3 * * *   매물 수집")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
}

func runSchedulerStart(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentQuant Scheduler ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	store := artifacts.NewStore(cfg.Artifacts.ModelPath, log)
	repo := listings.NewRepository(db.Pool)
	collector := ingest.NewCollector(cfg, repo, log)

	reloadSchedule := ""
	if cfg.Artifacts.ReloadInterval > 0 {
		reloadSchedule = fmt.Sprintf("@every %s", cfg.Artifacts.ReloadInterval)
	}

	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewArtifactReloadJob(store, reloadSchedule, log)); err != nil {
		return err
	}
	if err := sched.AddJob(jobs.NewListingIngestJob(collector, "", log)); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.WithField("signal", sig.String()).Info("Shutdown signal received")
	return nil
}

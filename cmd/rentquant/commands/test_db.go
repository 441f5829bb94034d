package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/database"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// testDBCmd represents the test-db command
var testDBCmd = &cobra.Command{
	Use:   "test-db",
	Short: "데이터베이스 연결 테스트",
	Long: `PostgreSQL 연결과 풀 상태를 점검합니다.

이 명령어는:
- 연결/핑 테스트
- 커넥션 풀 통계 출력
- 헬스체크 실행

Example:
  go run ./cmd/rentquant test-db`,
	RunE: runTestDB,
}

func init() {
	rootCmd.AddCommand(testDBCmd)
}

func runTestDB(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentQuant Database Test ===")

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	fmt.Println("✅ Connection OK")

	stats := db.Stats()
	log.WithFields(map[string]interface{}{
		"total_conns":    stats.TotalConns,
		"idle_conns":     stats.IdleConns,
		"acquired_conns": stats.AcquiredConns,
		"max_conns":      stats.MaxConns,
	}).Info("Connection pool stats")

	health, err := db.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	fmt.Printf("Health: %+v\n", health)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/internal/api"
	"github.com/propstack/rentquant/backend/internal/api/handlers"
	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/internal/listings"
	"github.com/propstack/rentquant/backend/internal/rules"
	"github.com/propstack/rentquant/backend/internal/valuation"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/database"
	"github.com/propstack/rentquant/backend/pkg/logger"
	"github.com/propstack/rentquant/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 감정 엔드포인트 제공
- 매물 검색 엔드포인트 제공
- 감정 결과 실시간 스트림 제공

Endpoints:
  GET  /health                  - Health check
  POST /api/valuation/predict   - 임대료 감정
  POST /api/valuation/compare   - 호가 비교
  GET  /api/valuation/status    - 감정 가능 여부
  POST /api/listings/search     - 매물 검색
  GET  /api/listings/{id}       - 매물 상세
  GET  /ws/valuations           - 감정 스트림 (websocket)

Example:
  go run ./cmd/rentquant api
  go run ./cmd/rentquant api --port 8091`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT env)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentQuant API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)
	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4. Redis cache (optional)
	rdb, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, search cache disabled")
		rdb = &redis.Client{}
	}
	defer rdb.Close()

	// 5. Load rule table and model artifacts
	table, err := rules.LoadOrDefault(cfg.Rules.Path)
	if err != nil {
		return fmt.Errorf("load rule table: %w", err)
	}
	store := artifacts.NewStore(cfg.Artifacts.ModelPath, log)

	// 6. Wire handlers
	pipeline := valuation.NewPipeline(store, table, log)
	hub := handlers.NewHub(log)
	valuationHandler := handlers.NewValuationHandler(pipeline, store, hub, log)

	listingRepo := listings.NewRepository(db.Pool)
	listingService := listings.NewService(listingRepo, redis.NewCache(rdb, "rentquant"), log)
	listingsHandler := handlers.NewListingsHandler(listingService, log)

	limiter := redis.NewRateLimiter(rdb, "rentquant")
	router := api.NewRouter(valuationHandler, listingsHandler, hub, limiter, log)
	server := api.New(cfg, log, router)

	// 7. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

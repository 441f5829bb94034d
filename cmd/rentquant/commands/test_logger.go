package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Logger 기능 테스트",
	Long: `구조화된 로깅 기능을 테스트합니다.

이 명령어는:
- JSON/Console 포맷 테스트
- 로그 레벨 테스트
- 구조화된 필드 로깅
- 에러 컨텍스트 로깅

Example:
  go run ./cmd/rentquant test-logger`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentQuant Logger Test ===")

	fmt.Println("1. JSON Format (Production)")
	fmt.Println("--------------------------------")
	jsonLog := logger.New(&config.Config{Env: "production", LogLevel: "info", LogFormat: "json"})
	jsonLog.Info("Service started")
	jsonLog.Warn("High memory usage detected")
	fmt.Println()

	fmt.Println("2. Console Format (Development)")
	fmt.Println("--------------------------------")
	devLog := logger.New(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"})
	devLog.Debug("Debugging application flow")
	devLog.Info("Request received from client")
	fmt.Println()

	fmt.Println("3. Structured Logging with Fields")
	fmt.Println("--------------------------------")
	jsonLog.WithField("property_id", "NAG-1042").Info("Valuation requested")
	jsonLog.WithFields(map[string]interface{}{
		"property_type": "Office Space",
		"size_in_sqft":  2000,
		"warnings":      1,
	}).Info("Valuation completed")
	fmt.Println()

	fmt.Println("4. Error Logging")
	fmt.Println("--------------------------------")
	err := errors.New("connection timeout")
	jsonLog.WithError(err).Error("Failed to fetch listing page")
	jsonLog.WithError(err).
		WithFields(map[string]interface{}{
			"retry_count": 3,
			"endpoint":    "/commercial",
		}).
		Error("Collection failed after retries")
	fmt.Println()

	fmt.Println("✅ All logger tests completed!")
	return nil
}

package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rentquant",
	Short: "RentQuant - 상업용 임대료 감정 파이프라인",
	Long: `RentQuant Unified CLI

상업용 부동산 임대료 감정 서비스.
규칙 검증, 모델 추정, 편의시설 보정, 경고 감가, 연도별 전망까지.

Usage:
  go run ./cmd/rentquant [command]

Examples:
  go run ./cmd/rentquant api
  go run ./cmd/rentquant valuate --input property.json
  go run ./cmd/rentquant artifacts check
  go run ./cmd/rentquant ingest
  go run ./cmd/rentquant scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

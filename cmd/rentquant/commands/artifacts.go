package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/internal/rules"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// artifactsCmd represents the artifacts command
var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "모델 아티팩트 관리",
	Long: `모델 번들과 규칙 테이블 상태를 점검합니다.

Subcommands:
  check   - 번들 로드 가능 여부와 스키마 요약
  reload  - 스토어 리로드 1회 수행 (핫 리로드 경로 점검)
  rules   - 적용 중인 규칙 테이블 해시

Example:
  go run ./cmd/rentquant artifacts check
  go run ./cmd/rentquant artifacts reload
  go run ./cmd/rentquant artifacts rules`,
}

var artifactsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "번들 점검",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.New(cfg)

		provider, err := artifacts.Load(cfg.Artifacts.ModelPath)
		if err != nil {
			log.WithError(err).Error("bundle check failed")
			return err
		}

		fmt.Println("✅ Bundle OK")
		fmt.Printf("  path:    %s\n", cfg.Artifacts.ModelPath)
		fmt.Printf("  version: %s\n", provider.Version())
		fmt.Printf("  columns: %d\n", len(provider.Columns()))
		return nil
	},
}

var artifactsReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "번들 리로드",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.New(cfg)

		store := artifacts.NewStore(cfg.Artifacts.ModelPath, log)
		if err := store.Reload(); err != nil {
			return fmt.Errorf("reload artifacts: %w", err)
		}

		status := store.Status()
		fmt.Println("✅ Reload OK")
		fmt.Printf("  path:    %s\n", status.Path)
		fmt.Printf("  version: %s\n", status.Version)
		fmt.Printf("  columns: %d\n", status.Columns)
		return nil
	},
}

var artifactsRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "규칙 테이블 해시",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		table, err := rules.LoadOrDefault(cfg.Rules.Path)
		if err != nil {
			return fmt.Errorf("load rule table: %w", err)
		}
		hash, err := rules.Hash(table)
		if err != nil {
			return fmt.Errorf("hash rule table: %w", err)
		}

		source := cfg.Rules.Path
		if source == "" {
			source = "(built-in defaults)"
		}
		fmt.Printf("source: %s\n", source)
		fmt.Printf("hash:   %s\n", hash)
		fmt.Printf("decay:  %.2f  tolerance: %.2f\n", table.WarningDecay, table.FairTolerance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
	artifactsCmd.AddCommand(artifactsCheckCmd)
	artifactsCmd.AddCommand(artifactsReloadCmd)
	artifactsCmd.AddCommand(artifactsRulesCmd)
}

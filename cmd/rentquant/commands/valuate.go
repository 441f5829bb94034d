package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propstack/rentquant/backend/internal/artifacts"
	"github.com/propstack/rentquant/backend/internal/rules"
	"github.com/propstack/rentquant/backend/internal/valuation"
	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// valuateCmd represents the valuate command
var valuateCmd = &cobra.Command{
	Use:   "valuate",
	Short: "단일 매물 감정",
	Long: `JSON 파일의 속성으로 매물 하나를 감정합니다.

이 명령어는:
- 규칙 검증 경고 출력
- 모델 기본 임대료 추정
- 편의시설 보정 / 경고 감가 적용
- 연도별 임대료 전망 출력

Input file shape:
  {"Size_In_Sqft": 2000, "Property_Type": "Office Space", "parking": true, ...}

Example:
  go run ./cmd/rentquant valuate --input property.json
  go run ./cmd/rentquant valuate --input property.json --years 10 --growth 4.5`,
	RunE: runValuate,
}

var (
	valuateInput  string
	valuateYears  int
	valuateGrowth float64
	valuateListed float64
)

func init() {
	rootCmd.AddCommand(valuateCmd)

	valuateCmd.Flags().StringVar(&valuateInput, "input", "", "매물 속성 JSON 파일 (필수)")
	valuateCmd.Flags().IntVar(&valuateYears, "years", 5, "전망 연수")
	valuateCmd.Flags().Float64Var(&valuateGrowth, "growth", 4.0, "연간 상승률 (%)")
	valuateCmd.Flags().Float64Var(&valuateListed, "listed", 0, "비교할 호가 (optional)")
	valuateCmd.MarkFlagRequired("input")
}

func runValuate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	data, err := os.ReadFile(valuateInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var raw valuation.RawAttributes
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	table, err := rules.LoadOrDefault(cfg.Rules.Path)
	if err != nil {
		return fmt.Errorf("load rule table: %w", err)
	}
	store := artifacts.NewStore(cfg.Artifacts.ModelPath, log)
	pipeline := valuation.NewPipeline(store, table, log)

	result, err := pipeline.Valuate(raw, valuation.Options{
		ProjectionYears: valuateYears,
		AnnualGrowthPct: valuateGrowth,
	})
	if err != nil {
		fmt.Printf("⚠️  Partial result: %v\n\n", err)
	}

	printResult(result, table)
	return nil
}

func printResult(result *valuation.ValuationResult, table *rules.Table) {
	if len(result.Warnings) > 0 {
		fmt.Println("Validation warnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
		fmt.Println()
	}

	fmt.Printf("Amenity uplift: +%.2f%%\n", result.AmenityUpliftPct)

	if !result.HasEstimate() {
		fmt.Println("Base rent: not available")
		return
	}

	fmt.Printf("Base rent:      Rs %.2f\n", *result.BaseRent)
	fmt.Printf("Adjusted rent:  Rs %.2f\n", *result.AdjustedRent)
	if result.FairRange != nil {
		fmt.Printf("Fair range (±%.0f%%): Rs %.2f - Rs %.2f\n",
			table.FairTolerance*100, result.FairRange.Low, result.FairRange.High)
		if valuateListed > 0 {
			fmt.Printf("Listed price Rs %.2f → %s\n", valuateListed, result.FairRange.Verdict(valuateListed))
		}
	}

	if len(result.Projection) > 0 {
		fmt.Println("\nProjection:")
		for _, p := range result.Projection {
			fmt.Printf("  Year %2d: Rs %.2f\n", p.Year, p.Value)
		}
	}
}

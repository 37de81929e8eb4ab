package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rcavanagh/proforma/pkg/application/dto"
	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// GenerateDeal renders a deal evaluation in the configured format
func GenerateDeal(result *dto.DealResult, config Config) error {
	switch config.Format {
	case "text":
		return dealText(result, config)
	case "json":
		return asJSON(result, config, "deal_result.json")
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateComparison renders an optimizer comparison in the configured format
func GenerateComparison(comparison *dto.Comparison, config Config) error {
	switch config.Format {
	case "text":
		return comparisonText(comparison, config)
	case "json":
		return asJSON(comparison, config, "comparison.json")
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateParking renders a standalone parking recommendation
func GenerateParking(rec *dto.ParkingRecommendation, config Config) error {
	switch config.Format {
	case "text":
		parkingText(rec)
		return nil
	case "json":
		return asJSON(rec, config, "parking.json")
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func dealText(result *dto.DealResult, config Config) error {
	fmt.Printf("🏗  Deal Evaluation (%s)\n", result.Use)
	fmt.Printf("=======================\n\n")

	fmt.Printf("Construction: %s (%sx) at %d stories\n",
		result.Class.Type, result.Class.Multiplier, result.Class.Stories)
	if result.Class.HighRiseComplexity {
		fmt.Printf("  Note: high-rise execution complexity\n")
	}
	fmt.Println()

	fmt.Printf("💰 Development Costs\n")
	fmt.Printf("%-28s %18s\n", "Vertical Construction", money(result.Costs.VerticalConstruction))
	fmt.Printf("%-28s %18s\n", "Parking", money(result.Costs.ParkingCost))
	fmt.Printf("%-28s %18s\n", "Site Work", money(result.Costs.SiteWork))
	fmt.Printf("%-28s %18s\n", "Hard Costs", money(result.Costs.HardCosts))
	fmt.Printf("%-28s %18s\n", "Soft Costs", money(result.Costs.SoftCosts))
	fmt.Printf("%-28s %18s\n", "Financing Costs", money(result.Costs.FinancingCosts))
	fmt.Printf("%-28s %18s\n", "Total Development Cost", money(result.Costs.TotalDevelopmentCost))
	fmt.Println()

	if result.Use != entities.UseCondo {
		fmt.Printf("📈 Stabilized Operations\n")
		fmt.Printf("%-28s %18s\n", "Gross Potential Income", money(result.Revenue.GrossPotentialIncome))
		fmt.Printf("%-28s %18s\n", "Effective Gross Income", money(result.Revenue.EffectiveGrossIncome))
		fmt.Printf("%-28s %18s\n", "Operating Expenses", money(result.Revenue.TotalExpenses))
		fmt.Printf("%-28s %18s\n", "Net Operating Income", money(result.Revenue.NetOperatingIncome))
		fmt.Println()
	}
	if !result.Revenue.NetSales.IsZero() {
		fmt.Printf("🏷  For-Sale Revenue\n")
		fmt.Printf("%-28s %18s\n", "Gross Sales", money(result.Revenue.GrossSales))
		fmt.Printf("%-28s %18s\n", "Net Sales", money(result.Revenue.NetSales))
		fmt.Println()
	}

	fmt.Printf("🧮 Land Residual Methods\n")
	fmt.Printf("%-26s %18s %14s %10s\n", "Method", "Land Value", "Per Lot Area", "Feasible")
	fmt.Printf("%-26s %18s %14s %10s\n",
		"--------------------------", "------------------", "--------------", "----------")
	for _, e := range result.Estimates {
		feasible := "yes"
		if e.Infeasible {
			feasible = "NO"
		}
		fmt.Printf("%-26s %18s %14s %10s\n",
			e.Method, money(e.LandValue), e.ValuePerLotArea.StringFixed(2), feasible)
	}
	fmt.Println()

	fmt.Printf("⭐ Primary: %s at %s\n", result.Primary.Method, money(result.Primary.LandValue))
	fmt.Printf("   Spread: %s (%s) to %s (%s)\n",
		money(result.Spread.MinValue), result.Spread.MinMethod,
		money(result.Spread.MaxValue), result.Spread.MaxMethod)
	fmt.Println()

	printWarnings(result.Warnings)
	return saveNote(config, "deal_result.txt")
}

func comparisonText(comparison *dto.Comparison, config Config) error {
	fmt.Printf("📊 Configuration Comparison\n")
	fmt.Printf("===========================\n\n")

	fmt.Printf("%-8s %-24s %8s %8s %10s %16s %14s\n",
		"Stories", "Construction", "Units", "Spaces", "BelowGrade", "Total Cost", "Cost/Unit")
	fmt.Printf("%-8s %-24s %8s %8s %10s %16s %14s\n",
		"--------", "------------------------", "--------", "--------", "----------", "----------------", "--------------")
	for _, c := range comparison.Configurations {
		fmt.Printf("%-8d %-24s %8d %8d %10d %16s %14s\n",
			c.StoryCount, c.Class.Type, c.EstimatedUnits, c.Parking.TotalSpaces(),
			c.Parking.BelowGradeSpaces(), money(c.TotalCost), money(c.CostPerUnit))
	}
	fmt.Println()

	if len(comparison.Skipped) > 0 {
		fmt.Printf("⏭  Skipped:\n")
		for _, s := range comparison.Skipped {
			fmt.Printf("   %d stories: %s\n", s.StoryCount, s.Reason)
		}
		fmt.Println()
	}

	if comparison.Recommended != nil {
		fmt.Printf("✅ Recommended: %d stories (%s), %s per unit\n",
			comparison.Recommended.StoryCount,
			comparison.Recommended.Class.Type,
			money(comparison.Recommended.CostPerUnit))
	}
	if comparison.Alternative != nil {
		fmt.Printf("🔁 Alternative: %d stories with %d below-grade spaces, %s per unit\n",
			comparison.Alternative.StoryCount,
			comparison.Alternative.Parking.BelowGradeSpaces(),
			money(comparison.Alternative.CostPerUnit))
	}
	if comparison.SavingsReported {
		fmt.Printf("   Alternative delta: %s total\n", money(comparison.Savings))
	}

	if comparison.MidRiseCliff.Dominant {
		fmt.Printf("\n📐 Cost cliff: %d→%d stories steps the multiplier from %s to %s (+%s%%)\n",
			comparison.MidRiseCliff.FromStories, comparison.MidRiseCliff.ToStories,
			comparison.MidRiseCliff.FromMultiplier, comparison.MidRiseCliff.ToMultiplier,
			comparison.MidRiseCliff.PctDelta.Mul(hundred).StringFixed(1))
	}
	fmt.Println()

	printWarnings(comparison.Warnings)
	return saveNote(config, "comparison.txt")
}

func parkingText(rec *dto.ParkingRecommendation) {
	fmt.Printf("🅿  Parking Recommendation\n")
	fmt.Printf("=========================\n\n")

	alloc := rec.Allocation
	if alloc.Exempt {
		fmt.Printf("Transit exemption applies: no parking required.\n")
		return
	}
	if alloc.TotalSpaces() == 0 {
		fmt.Printf("No parking required.\n")
		return
	}

	fmt.Printf("Required: %d  Allocated: %d  (construction: %s)\n\n",
		alloc.RequiredSpaces, alloc.TotalSpaces(), rec.Class.Type)
	fmt.Printf("%-14s %8s %14s %16s\n", "Tier", "Spaces", "Cost/Space", "Cost")
	fmt.Printf("%-14s %8s %14s %16s\n", "--------------", "--------", "--------------", "----------------")
	for _, tier := range alloc.Tiers {
		fmt.Printf("%-14s %8d %14s %16s\n", tier.Tier, tier.Spaces, money(tier.CostPerSpace), money(tier.Cost()))
	}
	fmt.Printf("\nTotal: %s (blended %s per space)\n", money(alloc.TotalCost), money(alloc.BlendedPerSpace))
	if alloc.OverAllocated {
		fmt.Printf("⚠️  Deepest tier over-allocated beyond modeled capacity\n")
	}
}

func asJSON(v interface{}, config Config, filename string) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	fmt.Println(string(encoded))

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(config.OutputDir, filename)
		if err := os.WriteFile(path, encoded, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", path)
		}
	}
	return nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("⚠️  Advisories:\n")
	for _, w := range warnings {
		fmt.Printf("   - %s\n", w)
	}
	fmt.Println()
}

func saveNote(config Config, filename string) error {
	if config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filepath.Join(config.OutputDir, filename))
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/application/services"
	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

func main() {
	ctx := context.Background()

	service := services.NewDealService()

	site := entities.SiteEnvelope{
		LotArea:         decimal.NewFromInt(15000),
		BuildableArea:   decimal.NewFromInt(48750),
		MaxFAR:          decimal.RequireFromString("3.25"),
		MaxStories:      8,
		RequiredParking: 46,
	}

	inputs := services.DealInputs{
		Site:        site,
		Assumptions: midRiseAssumptions(),
		Use:         entities.UseRental,
		StoryCount:  5,
	}

	fmt.Println("🏗 Evaluating a 5-story rental deal...")
	fmt.Printf("Site: %s SF lot, %s SF buildable, FAR %s\n",
		site.LotArea.StringFixed(0), site.BuildableArea.StringFixed(0), site.MaxFAR.String())
	fmt.Println()

	result, err := service.EvaluateDeal(ctx, inputs)
	if err != nil {
		fmt.Printf("❌ Evaluation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Deal Results:")
	fmt.Printf("  Construction: %s (multiplier %s)\n",
		result.Class.Type.String(), result.Class.Multiplier.String())
	fmt.Printf("  Total Development Cost: $%s\n", result.Costs.TotalDevelopmentCost.StringFixed(0))
	fmt.Printf("  Stabilized NOI: $%s\n", result.Revenue.NetOperatingIncome.StringFixed(0))
	fmt.Println()

	fmt.Println("🧮 Land Residuals:")
	for _, est := range result.Estimates {
		marker := "  "
		if est.Method == result.Primary.Method {
			marker = "⭐"
		}
		fmt.Printf("%s %-28s $%s\n", marker, est.Method.String(), est.LandValue.StringFixed(0))
	}
	fmt.Printf("  Spread: $%s to $%s\n",
		result.Spread.MinValue.StringFixed(0), result.Spread.MaxValue.StringFixed(0))
	fmt.Println()

	// Same site, but let the search pick the story count.
	fmt.Println("🔁 Searching story counts for the cheapest configuration...")
	comparison, err := service.FindOptimalConfiguration(ctx, services.OptimizationInputs{
		LotArea:             site.LotArea,
		MaxStories:          site.MaxStories,
		MaxFAR:              site.MaxFAR,
		ParkingRatioPerUnit: decimal.NewFromInt(1),
	})
	if err != nil {
		fmt.Printf("❌ Configuration search failed: %v\n", err)
		return
	}

	for _, cfg := range comparison.Configurations {
		note := ""
		if cfg.UsesBelowGrade {
			note = " (below-grade parking)"
		}
		fmt.Printf("  %d stories: %d units at $%s/unit%s\n",
			cfg.StoryCount, cfg.EstimatedUnits, cfg.CostPerUnit.StringFixed(0), note)
	}
	if comparison.Recommended != nil {
		fmt.Printf("  Recommended: %d stories\n", comparison.Recommended.StoryCount)
	}
	if comparison.Alternative != nil {
		fmt.Printf("  Alternative: %d stories\n", comparison.Alternative.StoryCount)
	}
	for _, w := range comparison.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	fmt.Println()
	fmt.Println("✅ Analysis complete!")
}

func midRiseAssumptions() entities.MarketAssumptions {
	return entities.MarketAssumptions{
		Rent: entities.RentAssumptions{
			MarketUnits:           40,
			MarketMonthlyRent:     decimal.NewFromInt(2800),
			AffordableUnits:       6,
			AffordableMonthlyRent: decimal.NewFromInt(1400),
			OtherAnnualIncome:     decimal.NewFromInt(50000),
			VacancyRate:           decimal.RequireFromString("0.05"),
			ConcessionRate:        decimal.RequireFromString("0.01"),
			ManagementFeeRate:     decimal.RequireFromString("0.03"),
			OperatingExpenses: []entities.ExpenseAssumption{
				{Name: "Insurance", AnnualAmount: decimal.NewFromInt(60000)},
				{Name: "Utilities", AnnualAmount: decimal.NewFromInt(45000)},
				{Name: "Repairs & Maintenance", AnnualAmount: decimal.NewFromInt(55000)},
			},
			PropertyTaxRate: decimal.RequireFromString("0.012"),
		},
		Costs: entities.CostAssumptions{
			BaseHardCostPerArea: decimal.NewFromInt(250),
			SiteWorkPerLotArea:  decimal.NewFromInt(15),
			HardContingencyRate: decimal.RequireFromString("0.05"),
			DesignFeeRate:       decimal.RequireFromString("0.06"),
			PermitFeePerArea:    decimal.NewFromInt(12),
			ImpactFeePerUnit:    decimal.NewFromInt(15000),
			SoftContingencyRate: decimal.RequireFromString("0.05"),
		},
		Loan: entities.LoanTerms{
			LoanToCostRatio:    decimal.RequireFromString("0.65"),
			AnnualInterestRate: decimal.RequireFromString("0.075"),
			ConstructionMonths: 18,
			LeaseUpMonths:      9,
			AverageOutstanding: decimal.RequireFromString("0.55"),
			OriginationFeeRate: decimal.RequireFromString("0.01"),
		},
		Targets: entities.ReturnTargets{
			YieldOnCost:           decimal.RequireFromString("0.0575"),
			ProfitMargin:          decimal.RequireFromString("0.15"),
			EquityMultiple:        decimal.RequireFromString("1.8"),
			EquityFraction:        decimal.RequireFromString("0.35"),
			LeveredAnnualReturn:   decimal.RequireFromString("0.18"),
			UnleveredReturnOnCost: decimal.RequireFromString("0.065"),
			CondoProfitMargin:     decimal.RequireFromString("0.15"),
			ExitCapRate:           decimal.RequireFromString("0.0525"),
			DispositionCostRate:   decimal.RequireFromString("0.02"),
		},
		Sale: entities.SaleAssumptions{
			PricePerArea:        decimal.NewFromInt(850),
			SellingCostFraction: decimal.RequireFromString("0.06"),
		},
	}
}

package services

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// Fixtures shared across the service tests: a mid-rise rental deal on a
// 15,000 lot with plausible urban-infill numbers.

// NewTestSite returns a five-story-scale envelope on a 15,000 lot
func NewTestSite() entities.SiteEnvelope {
	return entities.SiteEnvelope{
		LotArea:         decimal.NewFromInt(15000),
		BuildableArea:   decimal.NewFromInt(48750),
		MaxFAR:          decimal.RequireFromString("3.25"),
		MaxStories:      8,
		RequiredParking: 46,
	}
}

// NewTestAssumptions returns a full market assumption set for a rental deal
func NewTestAssumptions() entities.MarketAssumptions {
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
				{Name: "Replacement Reserves", AnnualAmount: decimal.NewFromInt(13800)},
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

// NewTestDealInputs returns a complete, valid rental evaluation request
func NewTestDealInputs() DealInputs {
	return DealInputs{
		Site:        NewTestSite(),
		Assumptions: NewTestAssumptions(),
		Use:         entities.UseRental,
		StoryCount:  5,
	}
}

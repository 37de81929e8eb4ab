package entities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validAssumptions() MarketAssumptions {
	return MarketAssumptions{
		Rent: RentAssumptions{
			MarketUnits:       30,
			MarketMonthlyRent: decimal.NewFromInt(2500),
			VacancyRate:       decimal.RequireFromString("0.05"),
			PropertyTaxRate:   decimal.RequireFromString("0.012"),
		},
		Costs: CostAssumptions{
			BaseHardCostPerArea: decimal.NewFromInt(250),
		},
		Loan: LoanTerms{
			LoanToCostRatio:    decimal.RequireFromString("0.65"),
			AnnualInterestRate: decimal.RequireFromString("0.075"),
			ConstructionMonths: 18,
			LeaseUpMonths:      9,
			AverageOutstanding: decimal.RequireFromString("0.55"),
		},
		Targets: ReturnTargets{
			YieldOnCost:           decimal.RequireFromString("0.0575"),
			EquityMultiple:        decimal.RequireFromString("1.8"),
			EquityFraction:        decimal.RequireFromString("0.35"),
			UnleveredReturnOnCost: decimal.RequireFromString("0.065"),
			CondoProfitMargin:     decimal.RequireFromString("0.15"),
			ExitCapRate:           decimal.RequireFromString("0.0525"),
			DispositionCostRate:   decimal.RequireFromString("0.02"),
		},
		Sale: SaleAssumptions{
			PricePerArea:        decimal.NewFromInt(850),
			SellingCostFraction: decimal.RequireFromString("0.06"),
		},
	}
}

func TestMarketAssumptions_ValidateByUse(t *testing.T) {
	for _, use := range []ProjectUse{UseRental, UseCondo, UseEither} {
		if err := validAssumptions().Validate(use); err != nil {
			t.Errorf("valid assumptions rejected for %s: %v", use, err)
		}
	}
}

func TestMarketAssumptions_RentalValidation(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*MarketAssumptions)
		expectError string
	}{
		{
			"no units",
			func(m *MarketAssumptions) { m.Rent.MarketUnits = 0 },
			"at least one unit",
		},
		{
			"vacancy plus concessions at one",
			func(m *MarketAssumptions) {
				m.Rent.VacancyRate = decimal.RequireFromString("0.6")
				m.Rent.ConcessionRate = decimal.RequireFromString("0.4")
			},
			"below 1.0",
		},
		{
			"no cap or tax rate",
			func(m *MarketAssumptions) {
				m.Targets.ExitCapRate = decimal.Zero
				m.Rent.PropertyTaxRate = decimal.Zero
			},
			"must be positive",
		},
		{
			"zero yield target",
			func(m *MarketAssumptions) { m.Targets.YieldOnCost = decimal.Zero },
			"target yield on cost",
		},
		{
			"zero construction months",
			func(m *MarketAssumptions) { m.Loan.ConstructionMonths = 0 },
			"construction months",
		},
		{
			"excessive loan-to-cost",
			func(m *MarketAssumptions) { m.Loan.LoanToCostRatio = decimal.RequireFromString("1.2") },
			"loan-to-cost",
		},
	}

	for _, tc := range testCases {
		assumptions := validAssumptions()
		tc.mutate(&assumptions)
		err := assumptions.Validate(UseRental)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.expectError) {
			t.Errorf("%s: expected error containing %q, got %q", tc.name, tc.expectError, err.Error())
		}
	}
}

func TestMarketAssumptions_CondoValidation(t *testing.T) {
	assumptions := validAssumptions()
	assumptions.Sale.PricePerArea = decimal.Zero
	if err := assumptions.Validate(UseCondo); err == nil {
		t.Error("zero sale price should be rejected for condo use")
	}

	// The missing sale price is irrelevant to a rental-only evaluation.
	if err := assumptions.Validate(UseRental); err != nil {
		t.Errorf("rental validation should ignore the sale side: %v", err)
	}

	assumptions = validAssumptions()
	assumptions.Sale.SellingCostFraction = decimal.NewFromInt(1)
	if err := assumptions.Validate(UseCondo); err == nil {
		t.Error("selling cost fraction of 1.0 should be rejected")
	}
}

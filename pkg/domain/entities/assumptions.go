package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExpenseAssumption is one fixed annual operating expense line.
type ExpenseAssumption struct {
	Name         string
	AnnualAmount decimal.Decimal
}

// RentAssumptions carries the rental revenue and operating side of the pro forma.
// Property tax is expressed as a rate on stabilized value because the value it
// taxes is itself the unknown being solved for; the method bank resolves that
// algebraically.
type RentAssumptions struct {
	MarketUnits           int
	MarketMonthlyRent     decimal.Decimal
	AffordableUnits       int
	AffordableMonthlyRent decimal.Decimal
	OtherAnnualIncome     decimal.Decimal
	VacancyRate           decimal.Decimal
	ConcessionRate        decimal.Decimal
	ManagementFeeRate     decimal.Decimal // fraction of EGI
	OperatingExpenses     []ExpenseAssumption
	PropertyTaxRate       decimal.Decimal // fraction of stabilized value
}

// TotalUnits returns the combined market and affordable unit count
func (r RentAssumptions) TotalUnits() int {
	return r.MarketUnits + r.AffordableUnits
}

// CostAssumptions carries unit costs and ratios for the cost waterfall.
type CostAssumptions struct {
	BaseHardCostPerArea decimal.Decimal // baseline construction type, per buildable area
	SiteWorkPerLotArea  decimal.Decimal
	HardContingencyRate decimal.Decimal
	DesignFeeRate       decimal.Decimal // fraction of hard costs
	PermitFeePerArea    decimal.Decimal
	ImpactFeePerUnit    decimal.Decimal
	SoftContingencyRate decimal.Decimal
}

// LoanTerms carries the construction financing assumptions.
type LoanTerms struct {
	LoanToCostRatio    decimal.Decimal
	AnnualInterestRate decimal.Decimal
	ConstructionMonths int
	LeaseUpMonths      int
	AverageOutstanding decimal.Decimal // fraction of the loan drawn on average during construction
	OriginationFeeRate decimal.Decimal
	LandCarryBasis     decimal.Decimal // carried land price; zero disables land-carry interest
	LandCarryRate      decimal.Decimal
	LeaseUpReserve     decimal.Decimal // provisioned operating reserve; zero disables
}

// ReturnTargets carries the required returns each residual method solves against.
type ReturnTargets struct {
	YieldOnCost           decimal.Decimal
	ProfitMargin          decimal.Decimal // on stabilized value at exit
	EquityMultiple        decimal.Decimal
	EquityFraction        decimal.Decimal
	LeveredAnnualReturn   decimal.Decimal
	UnleveredReturnOnCost decimal.Decimal
	CondoProfitMargin     decimal.Decimal
	ExitCapRate           decimal.Decimal
	DispositionCostRate   decimal.Decimal
}

// SaleAssumptions carries the for-sale revenue side.
type SaleAssumptions struct {
	PricePerArea        decimal.Decimal
	SellingCostFraction decimal.Decimal
}

// MarketAssumptions is the complete read-only market configuration for a run.
// It is always passed explicitly; there are no package-level defaults.
type MarketAssumptions struct {
	Rent    RentAssumptions
	Costs   CostAssumptions
	Loan    LoanTerms
	Targets ReturnTargets
	Sale    SaleAssumptions
}

// Validate checks every field that later arithmetic divides by or requires,
// so that computation downstream cannot produce non-finite results. The
// preferred use decides which side of the book must be fully specified.
func (m MarketAssumptions) Validate(use ProjectUse) error {
	if use == UseRental || use == UseEither {
		if err := m.validateRental(); err != nil {
			return err
		}
	}
	if use == UseCondo || use == UseEither {
		if err := m.validateForSale(); err != nil {
			return err
		}
	}
	if m.Loan.LoanToCostRatio.IsNegative() || m.Loan.LoanToCostRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("loan-to-cost ratio must be within [0, 1], got %s", m.Loan.LoanToCostRatio)
	}
	if m.Loan.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("loan interest rate cannot be negative, got %s", m.Loan.AnnualInterestRate)
	}
	if m.Loan.ConstructionMonths <= 0 {
		return fmt.Errorf("construction months must be positive, got %d", m.Loan.ConstructionMonths)
	}
	if m.Loan.LeaseUpMonths < 0 {
		return fmt.Errorf("lease-up months cannot be negative, got %d", m.Loan.LeaseUpMonths)
	}
	if m.Costs.BaseHardCostPerArea.IsNegative() || m.Costs.BaseHardCostPerArea.IsZero() {
		return fmt.Errorf("base hard cost per area must be positive, got %s", m.Costs.BaseHardCostPerArea)
	}
	if m.Targets.EquityFraction.IsNegative() || m.Targets.EquityFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("equity fraction must be within [0, 1], got %s", m.Targets.EquityFraction)
	}

	// Divisors of the multiple-form methods: 1 - e + m*e must stay positive.
	one := decimal.NewFromInt(1)
	e := m.Targets.EquityFraction
	divisor := one.Sub(e).Add(m.Targets.EquityMultiple.Mul(e))
	if !divisor.IsPositive() {
		return fmt.Errorf("equity multiple %s with equity fraction %s yields non-positive divisor", m.Targets.EquityMultiple, e)
	}
	return nil
}

func (m MarketAssumptions) validateRental() error {
	if m.Rent.TotalUnits() <= 0 {
		return fmt.Errorf("rental deal needs at least one unit, got %d", m.Rent.TotalUnits())
	}
	if m.Rent.VacancyRate.IsNegative() || m.Rent.ConcessionRate.IsNegative() {
		return fmt.Errorf("vacancy and concession rates cannot be negative")
	}
	occupancyLoss := m.Rent.VacancyRate.Add(m.Rent.ConcessionRate)
	if occupancyLoss.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("vacancy plus concessions must be below 1.0, got %s", occupancyLoss)
	}
	capPlusTax := m.Targets.ExitCapRate.Add(m.Rent.PropertyTaxRate)
	if !capPlusTax.IsPositive() {
		return fmt.Errorf("exit cap rate plus property tax rate must be positive, got %s", capPlusTax)
	}
	if !m.Targets.YieldOnCost.IsPositive() {
		return fmt.Errorf("target yield on cost must be positive, got %s", m.Targets.YieldOnCost)
	}
	if !m.Targets.UnleveredReturnOnCost.IsPositive() {
		return fmt.Errorf("target unlevered return on cost must be positive, got %s", m.Targets.UnleveredReturnOnCost)
	}
	if m.Targets.DispositionCostRate.IsNegative() || m.Targets.DispositionCostRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("disposition cost rate must be within [0, 1), got %s", m.Targets.DispositionCostRate)
	}
	return nil
}

func (m MarketAssumptions) validateForSale() error {
	if !m.Sale.PricePerArea.IsPositive() {
		return fmt.Errorf("sale price per area must be positive, got %s", m.Sale.PricePerArea)
	}
	if m.Sale.SellingCostFraction.IsNegative() || m.Sale.SellingCostFraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("selling cost fraction must be within [0, 1), got %s", m.Sale.SellingCostFraction)
	}
	if !decimal.NewFromInt(1).Add(m.Targets.CondoProfitMargin).IsPositive() {
		return fmt.Errorf("condo profit margin must be above -1.0, got %s", m.Targets.CondoProfitMargin)
	}
	return nil
}

package entities

import (
	"github.com/shopspring/decimal"
)

// ExpenseLine is one realized operating expense amount in a revenue stack.
type ExpenseLine struct {
	Name   string
	Amount decimal.Decimal
}

// CostStack is the full development cost waterfall for one configuration.
// TotalDevelopmentCost excludes land; the residual methods solve for land.
type CostStack struct {
	VerticalConstruction decimal.Decimal
	ParkingCost          decimal.Decimal
	SiteWork             decimal.Decimal
	HardContingency      decimal.Decimal
	HardCosts            decimal.Decimal

	DesignFees      decimal.Decimal
	PermitFees      decimal.Decimal
	ImpactFees      decimal.Decimal
	SoftContingency decimal.Decimal
	SoftCosts       decimal.Decimal

	LoanAmount           decimal.Decimal
	ConstructionInterest decimal.Decimal
	LeaseUpInterest      decimal.Decimal
	OriginationFee       decimal.Decimal
	LandCarryInterest    decimal.Decimal
	LeaseUpReserve       decimal.Decimal
	FinancingCosts       decimal.Decimal

	TotalDevelopmentCost decimal.Decimal
}

// RevenueStack is the single-period revenue side for one configuration.
// Rental deals fill the income fields; for-sale deals fill the sales fields.
// NetOperatingIncome here is before property tax; the method bank resolves
// the value-dependent tax algebraically.
type RevenueStack struct {
	GrossPotentialRent   decimal.Decimal
	OtherIncome          decimal.Decimal
	GrossPotentialIncome decimal.Decimal
	EffectiveGrossIncome decimal.Decimal
	OperatingExpenses    []ExpenseLine
	TotalExpenses        decimal.Decimal
	NetOperatingIncome   decimal.Decimal

	GrossSales decimal.Decimal
	NetSales   decimal.Decimal
}

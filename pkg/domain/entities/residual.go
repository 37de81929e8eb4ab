package entities

import (
	"github.com/shopspring/decimal"
)

// ValuationMethod represents one independent land-residual method
type ValuationMethod int

const (
	MethodYieldOnCost ValuationMethod = iota
	MethodExitMargin
	MethodEquityMultiple
	MethodLeveredReturn
	MethodUnleveredROC
	MethodCondoMargin
)

// String method for ValuationMethod enum
func (m ValuationMethod) String() string {
	switch m {
	case MethodYieldOnCost:
		return "Yield-on-Cost"
	case MethodExitMargin:
		return "Exit/Profit-Margin"
	case MethodEquityMultiple:
		return "Equity-Multiple"
	case MethodLeveredReturn:
		return "Levered-Return"
	case MethodUnleveredROC:
		return "Unlevered-Return-on-Cost"
	case MethodCondoMargin:
		return "Condo-Margin"
	default:
		return "Unknown"
	}
}

// Each method reports its own strongly-typed supporting metrics, so adding a
// method cannot silently collide with another method's fields.

// YieldOnCostMetrics supports the NOI / target-yield residual.
type YieldOnCostMetrics struct {
	NOIAfterTax  decimal.Decimal
	TargetYield  decimal.Decimal
	ImpliedValue decimal.Decimal
}

// ExitMarginMetrics supports the exit-value profit-margin residual.
type ExitMarginMetrics struct {
	StabilizedValue decimal.Decimal
	NetProceeds     decimal.Decimal
	RequiredProfit  decimal.Decimal
	TargetMargin    decimal.Decimal
}

// EquityMultipleMetrics supports the target-equity-multiple residual.
type EquityMultipleMetrics struct {
	NetProceeds    decimal.Decimal
	EquityFraction decimal.Decimal
	TargetMultiple decimal.Decimal
	Divisor        decimal.Decimal
}

// LeveredReturnMetrics supports the levered annual-return residual, where the
// effective multiple is compounded over the construction plus lease-up hold.
type LeveredReturnMetrics struct {
	NetProceeds       decimal.Decimal
	EquityFraction    decimal.Decimal
	TargetReturn      decimal.Decimal
	HoldMonths        int
	EffectiveMultiple decimal.Decimal
	Divisor           decimal.Decimal
}

// UnleveredROCMetrics supports the NOI / target-return-on-cost residual.
type UnleveredROCMetrics struct {
	NOIAfterTax  decimal.Decimal
	TargetROC    decimal.Decimal
	ImpliedValue decimal.Decimal
}

// CondoMarginMetrics supports the for-sale margin residual.
type CondoMarginMetrics struct {
	NetSales       decimal.Decimal
	TargetMargin   decimal.Decimal
	SupportableTDC decimal.Decimal
}

// LandResidualEstimate is one method's answer. LandValue may be negative and
// is never clamped here; a negative value is the infeasibility signal itself.
// Exactly one metrics pointer is set, matching Method.
type LandResidualEstimate struct {
	Method          ValuationMethod
	LandValue       decimal.Decimal
	ValuePerLotArea decimal.Decimal
	Infeasible      bool

	YieldOnCost    *YieldOnCostMetrics
	ExitMargin     *ExitMarginMetrics
	EquityMultiple *EquityMultipleMetrics
	LeveredReturn  *LeveredReturnMetrics
	UnleveredROC   *UnleveredROCMetrics
	CondoMargin    *CondoMarginMetrics
}

// ResidualSpread is the min/max range across every method, always reported
// beside the primary so the primary is never assumed to dominate.
type ResidualSpread struct {
	MinMethod ValuationMethod
	MinValue  decimal.Decimal
	MaxMethod ValuationMethod
	MaxValue  decimal.Decimal
}

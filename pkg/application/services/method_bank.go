package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// MethodBank computes land value under every residual method, every time.
// No method short-circuits another: a method that cannot support any land
// cost reports a negative residual rather than being skipped, so the spread
// always covers the full bank.
type MethodBank struct{}

// NewMethodBank creates a method bank
func NewMethodBank() *MethodBank {
	return &MethodBank{}
}

// Evaluate returns one estimate per method in bank order. Negative land
// values pass through unclamped; display-layer clamping is not our concern.
//
// Property tax is a fraction of the stabilized value being solved for, so the
// stabilized value comes from the closed form NOIbeforeTax / (capRate + taxRate)
// in a single algebraic step, and after-tax NOI is recomputed from it.
func (bank *MethodBank) Evaluate(
	costs entities.CostStack,
	revenue entities.RevenueStack,
	assumptions entities.MarketAssumptions,
	lotArea decimal.Decimal,
) []entities.LandResidualEstimate {
	tdc := costs.TotalDevelopmentCost
	targets := assumptions.Targets
	taxRate := assumptions.Rent.PropertyTaxRate

	noiBeforeTax := revenue.NetOperatingIncome
	capPlusTax := targets.ExitCapRate.Add(taxRate)

	stabilized := decimal.Zero
	if capPlusTax.IsPositive() {
		stabilized = noiBeforeTax.Div(capPlusTax)
	}
	noiAfterTax := noiBeforeTax.Sub(stabilized.Mul(taxRate))
	netProceeds := stabilized.Mul(one.Sub(targets.DispositionCostRate))

	estimates := []entities.LandResidualEstimate{
		bank.yieldOnCost(tdc, noiAfterTax, targets, lotArea),
		bank.exitMargin(tdc, stabilized, netProceeds, targets, lotArea),
		bank.equityMultiple(tdc, netProceeds, targets, lotArea),
		bank.leveredReturn(tdc, netProceeds, assumptions, lotArea),
		bank.unleveredROC(tdc, noiAfterTax, targets, lotArea),
		bank.condoMargin(tdc, revenue.NetSales, targets, lotArea),
	}
	return estimates
}

// Primary selects the governing method for a preferred use. With no stated
// preference the larger of the for-sale and rental answers governs.
func (bank *MethodBank) Primary(
	estimates []entities.LandResidualEstimate,
	use entities.ProjectUse,
) entities.LandResidualEstimate {
	byMethod := func(m entities.ValuationMethod) entities.LandResidualEstimate {
		for _, e := range estimates {
			if e.Method == m {
				return e
			}
		}
		return entities.LandResidualEstimate{Method: m}
	}

	switch use {
	case entities.UseCondo:
		return byMethod(entities.MethodCondoMargin)
	case entities.UseEither:
		condo := byMethod(entities.MethodCondoMargin)
		rental := byMethod(entities.MethodYieldOnCost)
		if condo.LandValue.GreaterThan(rental.LandValue) {
			return condo
		}
		return rental
	default:
		return byMethod(entities.MethodYieldOnCost)
	}
}

// Spread returns the min/max land value across every method.
func (bank *MethodBank) Spread(estimates []entities.LandResidualEstimate) entities.ResidualSpread {
	spread := entities.ResidualSpread{
		MinMethod: estimates[0].Method,
		MinValue:  estimates[0].LandValue,
		MaxMethod: estimates[0].Method,
		MaxValue:  estimates[0].LandValue,
	}
	for _, e := range estimates[1:] {
		if e.LandValue.LessThan(spread.MinValue) {
			spread.MinMethod = e.Method
			spread.MinValue = e.LandValue
		}
		if e.LandValue.GreaterThan(spread.MaxValue) {
			spread.MaxMethod = e.Method
			spread.MaxValue = e.LandValue
		}
	}
	return spread
}

func (bank *MethodBank) yieldOnCost(
	tdc, noiAfterTax decimal.Decimal,
	targets entities.ReturnTargets,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	implied := decimal.Zero
	if targets.YieldOnCost.IsPositive() {
		implied = noiAfterTax.Div(targets.YieldOnCost)
	}
	land := implied.Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodYieldOnCost,
		LandValue: land,
		YieldOnCost: &entities.YieldOnCostMetrics{
			NOIAfterTax:  noiAfterTax,
			TargetYield:  targets.YieldOnCost,
			ImpliedValue: implied,
		},
	}, lotArea)
}

func (bank *MethodBank) exitMargin(
	tdc, stabilized, netProceeds decimal.Decimal,
	targets entities.ReturnTargets,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	requiredProfit := stabilized.Mul(targets.ProfitMargin)
	land := netProceeds.Sub(requiredProfit).Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodExitMargin,
		LandValue: land,
		ExitMargin: &entities.ExitMarginMetrics{
			StabilizedValue: stabilized,
			NetProceeds:     netProceeds,
			RequiredProfit:  requiredProfit,
			TargetMargin:    targets.ProfitMargin,
		},
	}, lotArea)
}

func (bank *MethodBank) equityMultiple(
	tdc, netProceeds decimal.Decimal,
	targets entities.ReturnTargets,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	e := targets.EquityFraction
	divisor := one.Sub(e).Add(targets.EquityMultiple.Mul(e))
	supportable := decimal.Zero
	if divisor.IsPositive() {
		supportable = netProceeds.Div(divisor)
	}
	land := supportable.Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodEquityMultiple,
		LandValue: land,
		EquityMultiple: &entities.EquityMultipleMetrics{
			NetProceeds:    netProceeds,
			EquityFraction: e,
			TargetMultiple: targets.EquityMultiple,
			Divisor:        divisor,
		},
	}, lotArea)
}

func (bank *MethodBank) leveredReturn(
	tdc, netProceeds decimal.Decimal,
	assumptions entities.MarketAssumptions,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	targets := assumptions.Targets
	holdMonths := assumptions.Loan.ConstructionMonths + assumptions.Loan.LeaseUpMonths
	holdYears := float64(holdMonths) / 12.0

	// Same form as the equity-multiple method, with the target multiple
	// replaced by the return compounded over the hold.
	growth, _ := targets.LeveredAnnualReturn.Float64()
	effectiveMultiple := decimal.NewFromFloat(math.Pow(1.0+growth, holdYears))

	e := targets.EquityFraction
	divisor := one.Sub(e).Add(effectiveMultiple.Mul(e))
	supportable := decimal.Zero
	if divisor.IsPositive() {
		supportable = netProceeds.Div(divisor)
	}
	land := supportable.Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodLeveredReturn,
		LandValue: land,
		LeveredReturn: &entities.LeveredReturnMetrics{
			NetProceeds:       netProceeds,
			EquityFraction:    e,
			TargetReturn:      targets.LeveredAnnualReturn,
			HoldMonths:        holdMonths,
			EffectiveMultiple: effectiveMultiple,
			Divisor:           divisor,
		},
	}, lotArea)
}

func (bank *MethodBank) unleveredROC(
	tdc, noiAfterTax decimal.Decimal,
	targets entities.ReturnTargets,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	implied := decimal.Zero
	if targets.UnleveredReturnOnCost.IsPositive() {
		implied = noiAfterTax.Div(targets.UnleveredReturnOnCost)
	}
	land := implied.Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodUnleveredROC,
		LandValue: land,
		UnleveredROC: &entities.UnleveredROCMetrics{
			NOIAfterTax:  noiAfterTax,
			TargetROC:    targets.UnleveredReturnOnCost,
			ImpliedValue: implied,
		},
	}, lotArea)
}

func (bank *MethodBank) condoMargin(
	tdc, netSales decimal.Decimal,
	targets entities.ReturnTargets,
	lotArea decimal.Decimal,
) entities.LandResidualEstimate {
	onePlusMargin := one.Add(targets.CondoProfitMargin)
	supportable := decimal.Zero
	if onePlusMargin.IsPositive() {
		supportable = netSales.Div(onePlusMargin)
	}
	land := supportable.Sub(tdc)
	return finish(entities.LandResidualEstimate{
		Method:    entities.MethodCondoMargin,
		LandValue: land,
		CondoMargin: &entities.CondoMarginMetrics{
			NetSales:       netSales,
			TargetMargin:   targets.CondoProfitMargin,
			SupportableTDC: supportable,
		},
	}, lotArea)
}

func finish(estimate entities.LandResidualEstimate, lotArea decimal.Decimal) entities.LandResidualEstimate {
	if lotArea.IsPositive() {
		estimate.ValuePerLotArea = estimate.LandValue.Div(lotArea)
	}
	estimate.Infeasible = estimate.LandValue.IsNegative()
	return estimate
}

package services

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// StackBuilder assembles the development cost waterfall and the single-period
// revenue stack for one fixed configuration. It performs no validation;
// callers validate once at the public boundary, after which every division
// here has a non-zero denominator.
type StackBuilder struct{}

// NewStackBuilder creates a stack builder
func NewStackBuilder() *StackBuilder {
	return &StackBuilder{}
}

// Build produces both stacks. The preferred use decides which revenue side is
// populated; UseEither fills both so the method bank can compare them.
func (b *StackBuilder) Build(
	site *entities.SiteEnvelope,
	assumptions entities.MarketAssumptions,
	parking entities.ParkingAllocation,
	costMultiplier decimal.Decimal,
	use entities.ProjectUse,
) (entities.CostStack, entities.RevenueStack) {
	costs := b.buildCosts(site, assumptions, parking, costMultiplier)
	revenue := b.buildRevenue(site, assumptions, use)
	return costs, revenue
}

func (b *StackBuilder) buildCosts(
	site *entities.SiteEnvelope,
	assumptions entities.MarketAssumptions,
	parking entities.ParkingAllocation,
	costMultiplier decimal.Decimal,
) entities.CostStack {
	c := assumptions.Costs
	loan := assumptions.Loan

	vertical := site.BuildableArea.Mul(c.BaseHardCostPerArea.Mul(costMultiplier))
	siteWork := site.LotArea.Mul(c.SiteWorkPerLotArea)
	preContingency := vertical.Add(parking.TotalCost).Add(siteWork)
	hardContingency := preContingency.Mul(c.HardContingencyRate)
	hard := preContingency.Add(hardContingency)

	design := hard.Mul(c.DesignFeeRate)
	permits := site.BuildableArea.Mul(c.PermitFeePerArea)
	units := decimal.NewFromInt(int64(assumptions.Rent.TotalUnits()))
	impact := units.Mul(c.ImpactFeePerUnit)
	softBase := design.Add(permits).Add(impact)
	softContingency := softBase.Mul(c.SoftContingencyRate)
	soft := softBase.Add(softContingency)

	loanAmount := loan.LoanToCostRatio.Mul(hard.Add(soft))
	constructionYears := decimal.NewFromInt(int64(loan.ConstructionMonths)).Div(twelve)
	leaseUpYears := decimal.NewFromInt(int64(loan.LeaseUpMonths)).Div(twelve)

	constructionInterest := loanAmount.
		Mul(loan.AnnualInterestRate).
		Mul(constructionYears).
		Mul(loan.AverageOutstanding)
	// The full balance is outstanding during lease-up.
	leaseUpInterest := loanAmount.Mul(loan.AnnualInterestRate).Mul(leaseUpYears)
	origination := loanAmount.Mul(loan.OriginationFeeRate)
	landCarry := loan.LandCarryBasis.Mul(loan.LandCarryRate).Mul(constructionYears)

	financing := constructionInterest.
		Add(leaseUpInterest).
		Add(origination).
		Add(landCarry).
		Add(loan.LeaseUpReserve)

	return entities.CostStack{
		VerticalConstruction: vertical,
		ParkingCost:          parking.TotalCost,
		SiteWork:             siteWork,
		HardContingency:      hardContingency,
		HardCosts:            hard,

		DesignFees:      design,
		PermitFees:      permits,
		ImpactFees:      impact,
		SoftContingency: softContingency,
		SoftCosts:       soft,

		LoanAmount:           loanAmount,
		ConstructionInterest: constructionInterest,
		LeaseUpInterest:      leaseUpInterest,
		OriginationFee:       origination,
		LandCarryInterest:    landCarry,
		LeaseUpReserve:       loan.LeaseUpReserve,
		FinancingCosts:       financing,

		TotalDevelopmentCost: hard.Add(soft).Add(financing),
	}
}

func (b *StackBuilder) buildRevenue(
	site *entities.SiteEnvelope,
	assumptions entities.MarketAssumptions,
	use entities.ProjectUse,
) entities.RevenueStack {
	var stack entities.RevenueStack

	if use == entities.UseRental || use == entities.UseEither {
		r := assumptions.Rent

		marketAnnual := decimal.NewFromInt(int64(r.MarketUnits)).Mul(r.MarketMonthlyRent)
		affordableAnnual := decimal.NewFromInt(int64(r.AffordableUnits)).Mul(r.AffordableMonthlyRent)
		gpr := marketAnnual.Add(affordableAnnual).Mul(twelve)
		gpi := gpr.Add(r.OtherAnnualIncome)
		egi := gpi.Mul(one.Sub(r.VacancyRate).Sub(r.ConcessionRate))

		var lines []entities.ExpenseLine
		total := decimal.Zero
		if r.ManagementFeeRate.IsPositive() {
			mgmt := egi.Mul(r.ManagementFeeRate)
			lines = append(lines, entities.ExpenseLine{Name: "Management Fee", Amount: mgmt})
			total = total.Add(mgmt)
		}
		for _, e := range r.OperatingExpenses {
			lines = append(lines, entities.ExpenseLine{Name: e.Name, Amount: e.AnnualAmount})
			total = total.Add(e.AnnualAmount)
		}

		stack.GrossPotentialRent = gpr
		stack.OtherIncome = r.OtherAnnualIncome
		stack.GrossPotentialIncome = gpi
		stack.EffectiveGrossIncome = egi
		stack.OperatingExpenses = lines
		stack.TotalExpenses = total
		stack.NetOperatingIncome = egi.Sub(total)
	}

	if use == entities.UseCondo || use == entities.UseEither {
		s := assumptions.Sale
		gross := site.BuildableArea.Mul(s.PricePerArea)
		stack.GrossSales = gross
		stack.NetSales = gross.Mul(one.Sub(s.SellingCostFraction))
	}

	return stack
}

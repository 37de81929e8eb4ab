package yamlcfg

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rcavanagh/proforma/pkg/application/services"
	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// Loader reads deal files into validated inputs. Numeric fields decode as
// strings and parse into decimals, so "0.0575" survives exactly instead of
// round-tripping through a float.
type Loader struct{}

// NewLoader creates a deal-file loader
func NewLoader() *Loader {
	return &Loader{}
}

type dealFile struct {
	Site struct {
		LotArea         string `yaml:"lot_area"`
		BuildableArea   string `yaml:"buildable_area"`
		MaxFAR          string `yaml:"max_far"`
		MaxStories      int    `yaml:"max_stories"`
		RequiredParking int    `yaml:"required_parking"`
	} `yaml:"site"`

	Use               string `yaml:"use"`
	StoryCount        int    `yaml:"story_count"`
	NearTransit       bool   `yaml:"near_transit"`
	ReductionFraction string `yaml:"reduction_fraction"`

	Parcels []struct {
		Name           string `yaml:"name"`
		LotArea        string `yaml:"lot_area"`
		ZoningDistrict string `yaml:"zoning_district"`
	} `yaml:"parcels"`

	Assumptions struct {
		Rent struct {
			MarketUnits           int    `yaml:"market_units"`
			MarketMonthlyRent     string `yaml:"market_monthly_rent"`
			AffordableUnits       int    `yaml:"affordable_units"`
			AffordableMonthlyRent string `yaml:"affordable_monthly_rent"`
			OtherAnnualIncome     string `yaml:"other_annual_income"`
			VacancyRate           string `yaml:"vacancy_rate"`
			ConcessionRate        string `yaml:"concession_rate"`
			ManagementFeeRate     string `yaml:"management_fee_rate"`
			PropertyTaxRate       string `yaml:"property_tax_rate"`
			OperatingExpenses     []struct {
				Name         string `yaml:"name"`
				AnnualAmount string `yaml:"annual_amount"`
			} `yaml:"operating_expenses"`
		} `yaml:"rent"`

		Costs struct {
			BaseHardCostPerArea string `yaml:"base_hard_cost_per_area"`
			SiteWorkPerLotArea  string `yaml:"site_work_per_lot_area"`
			HardContingencyRate string `yaml:"hard_contingency_rate"`
			DesignFeeRate       string `yaml:"design_fee_rate"`
			PermitFeePerArea    string `yaml:"permit_fee_per_area"`
			ImpactFeePerUnit    string `yaml:"impact_fee_per_unit"`
			SoftContingencyRate string `yaml:"soft_contingency_rate"`
		} `yaml:"costs"`

		Loan struct {
			LoanToCostRatio    string `yaml:"loan_to_cost_ratio"`
			AnnualInterestRate string `yaml:"annual_interest_rate"`
			ConstructionMonths int    `yaml:"construction_months"`
			LeaseUpMonths      int    `yaml:"lease_up_months"`
			AverageOutstanding string `yaml:"average_outstanding"`
			OriginationFeeRate string `yaml:"origination_fee_rate"`
			LandCarryBasis     string `yaml:"land_carry_basis"`
			LandCarryRate      string `yaml:"land_carry_rate"`
			LeaseUpReserve     string `yaml:"lease_up_reserve"`
		} `yaml:"loan"`

		Targets struct {
			YieldOnCost           string `yaml:"yield_on_cost"`
			ProfitMargin          string `yaml:"profit_margin"`
			EquityMultiple        string `yaml:"equity_multiple"`
			EquityFraction        string `yaml:"equity_fraction"`
			LeveredAnnualReturn   string `yaml:"levered_annual_return"`
			UnleveredReturnOnCost string `yaml:"unlevered_return_on_cost"`
			CondoProfitMargin     string `yaml:"condo_profit_margin"`
			ExitCapRate           string `yaml:"exit_cap_rate"`
			DispositionCostRate   string `yaml:"disposition_cost_rate"`
		} `yaml:"targets"`

		Sale struct {
			PricePerArea        string `yaml:"price_per_area"`
			SellingCostFraction string `yaml:"selling_cost_fraction"`
		} `yaml:"sale"`
	} `yaml:"assumptions"`

	Optimization struct {
		MaxStories          int    `yaml:"max_stories"`
		MaxFAR              string `yaml:"max_far"`
		ParkingRatioPerUnit string `yaml:"parking_ratio_per_unit"`
	} `yaml:"optimization"`
}

// LoadDeal reads a deal file into evaluation inputs.
func (l *Loader) LoadDeal(filename string) (services.DealInputs, error) {
	file, err := l.read(filename)
	if err != nil {
		return services.DealInputs{}, err
	}

	var inputs services.DealInputs
	p := &parser{}

	inputs.Site = entities.SiteEnvelope{
		LotArea:         p.decimal("site.lot_area", file.Site.LotArea),
		BuildableArea:   p.decimal("site.buildable_area", file.Site.BuildableArea),
		MaxFAR:          p.decimal("site.max_far", file.Site.MaxFAR),
		MaxStories:      file.Site.MaxStories,
		RequiredParking: file.Site.RequiredParking,
	}

	switch file.Use {
	case "rental", "":
		inputs.Use = entities.UseRental
	case "condo":
		inputs.Use = entities.UseCondo
	case "either":
		inputs.Use = entities.UseEither
	default:
		return services.DealInputs{}, fmt.Errorf("use must be rental, condo, or either, got %q", file.Use)
	}

	inputs.StoryCount = file.StoryCount
	inputs.NearTransit = file.NearTransit
	inputs.ReductionFraction = p.optional("reduction_fraction", file.ReductionFraction)

	for _, parcel := range file.Parcels {
		inputs.Parcels = append(inputs.Parcels, entities.Parcel{
			Name:           parcel.Name,
			LotArea:        p.decimal(fmt.Sprintf("parcels[%s].lot_area", parcel.Name), parcel.LotArea),
			ZoningDistrict: parcel.ZoningDistrict,
		})
	}

	rent := file.Assumptions.Rent
	inputs.Assumptions.Rent = entities.RentAssumptions{
		MarketUnits:           rent.MarketUnits,
		MarketMonthlyRent:     p.optional("rent.market_monthly_rent", rent.MarketMonthlyRent),
		AffordableUnits:       rent.AffordableUnits,
		AffordableMonthlyRent: p.optional("rent.affordable_monthly_rent", rent.AffordableMonthlyRent),
		OtherAnnualIncome:     p.optional("rent.other_annual_income", rent.OtherAnnualIncome),
		VacancyRate:           p.optional("rent.vacancy_rate", rent.VacancyRate),
		ConcessionRate:        p.optional("rent.concession_rate", rent.ConcessionRate),
		ManagementFeeRate:     p.optional("rent.management_fee_rate", rent.ManagementFeeRate),
		PropertyTaxRate:       p.optional("rent.property_tax_rate", rent.PropertyTaxRate),
	}
	for _, expense := range rent.OperatingExpenses {
		inputs.Assumptions.Rent.OperatingExpenses = append(inputs.Assumptions.Rent.OperatingExpenses,
			entities.ExpenseAssumption{
				Name:         expense.Name,
				AnnualAmount: p.decimal(fmt.Sprintf("rent.operating_expenses[%s]", expense.Name), expense.AnnualAmount),
			})
	}

	costs := file.Assumptions.Costs
	inputs.Assumptions.Costs = entities.CostAssumptions{
		BaseHardCostPerArea: p.decimal("costs.base_hard_cost_per_area", costs.BaseHardCostPerArea),
		SiteWorkPerLotArea:  p.optional("costs.site_work_per_lot_area", costs.SiteWorkPerLotArea),
		HardContingencyRate: p.optional("costs.hard_contingency_rate", costs.HardContingencyRate),
		DesignFeeRate:       p.optional("costs.design_fee_rate", costs.DesignFeeRate),
		PermitFeePerArea:    p.optional("costs.permit_fee_per_area", costs.PermitFeePerArea),
		ImpactFeePerUnit:    p.optional("costs.impact_fee_per_unit", costs.ImpactFeePerUnit),
		SoftContingencyRate: p.optional("costs.soft_contingency_rate", costs.SoftContingencyRate),
	}

	loan := file.Assumptions.Loan
	inputs.Assumptions.Loan = entities.LoanTerms{
		LoanToCostRatio:    p.optional("loan.loan_to_cost_ratio", loan.LoanToCostRatio),
		AnnualInterestRate: p.optional("loan.annual_interest_rate", loan.AnnualInterestRate),
		ConstructionMonths: loan.ConstructionMonths,
		LeaseUpMonths:      loan.LeaseUpMonths,
		AverageOutstanding: p.optional("loan.average_outstanding", loan.AverageOutstanding),
		OriginationFeeRate: p.optional("loan.origination_fee_rate", loan.OriginationFeeRate),
		LandCarryBasis:     p.optional("loan.land_carry_basis", loan.LandCarryBasis),
		LandCarryRate:      p.optional("loan.land_carry_rate", loan.LandCarryRate),
		LeaseUpReserve:     p.optional("loan.lease_up_reserve", loan.LeaseUpReserve),
	}

	targets := file.Assumptions.Targets
	inputs.Assumptions.Targets = entities.ReturnTargets{
		YieldOnCost:           p.optional("targets.yield_on_cost", targets.YieldOnCost),
		ProfitMargin:          p.optional("targets.profit_margin", targets.ProfitMargin),
		EquityMultiple:        p.optional("targets.equity_multiple", targets.EquityMultiple),
		EquityFraction:        p.optional("targets.equity_fraction", targets.EquityFraction),
		LeveredAnnualReturn:   p.optional("targets.levered_annual_return", targets.LeveredAnnualReturn),
		UnleveredReturnOnCost: p.optional("targets.unlevered_return_on_cost", targets.UnleveredReturnOnCost),
		CondoProfitMargin:     p.optional("targets.condo_profit_margin", targets.CondoProfitMargin),
		ExitCapRate:           p.optional("targets.exit_cap_rate", targets.ExitCapRate),
		DispositionCostRate:   p.optional("targets.disposition_cost_rate", targets.DispositionCostRate),
	}

	sale := file.Assumptions.Sale
	inputs.Assumptions.Sale = entities.SaleAssumptions{
		PricePerArea:        p.optional("sale.price_per_area", sale.PricePerArea),
		SellingCostFraction: p.optional("sale.selling_cost_fraction", sale.SellingCostFraction),
	}

	if p.err != nil {
		return services.DealInputs{}, fmt.Errorf("deal file %s: %w", filename, p.err)
	}
	return inputs, nil
}

// LoadOptimization reads the optimization section of a deal file.
func (l *Loader) LoadOptimization(filename string) (services.OptimizationInputs, error) {
	file, err := l.read(filename)
	if err != nil {
		return services.OptimizationInputs{}, err
	}

	p := &parser{}
	inputs := services.OptimizationInputs{
		LotArea:             p.decimal("site.lot_area", file.Site.LotArea),
		MaxStories:          file.Optimization.MaxStories,
		MaxFAR:              p.decimal("optimization.max_far", file.Optimization.MaxFAR),
		ParkingRatioPerUnit: p.optional("optimization.parking_ratio_per_unit", file.Optimization.ParkingRatioPerUnit),
		NearTransit:         file.NearTransit,
		ReductionFraction:   p.optional("reduction_fraction", file.ReductionFraction),
	}
	if inputs.MaxStories == 0 {
		inputs.MaxStories = file.Site.MaxStories
	}

	if p.err != nil {
		return services.OptimizationInputs{}, fmt.Errorf("deal file %s: %w", filename, p.err)
	}
	return inputs, nil
}

func (l *Loader) read(filename string) (*dealFile, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open deal file %s: %w", filename, err)
	}

	var file dealFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse deal file %s: %w", filename, err)
	}
	return &file, nil
}

// parser accumulates the first field error so callers report one precise
// per-field reason instead of a pile.
type parser struct {
	err error
}

func (p *parser) decimal(field, value string) decimal.Decimal {
	if value == "" {
		if p.err == nil {
			p.err = fmt.Errorf("%s is required", field)
		}
		return decimal.Zero
	}
	return p.parse(field, value)
}

func (p *parser) optional(field, value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	return p.parse(field, value)
}

func (p *parser) parse(field, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("%s: invalid number %q", field, value)
		}
		return decimal.Zero
	}
	return d
}

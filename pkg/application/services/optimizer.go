package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/application/dto"
	"github.com/rcavanagh/proforma/pkg/domain/entities"
	domainservices "github.com/rcavanagh/proforma/pkg/domain/services"
)

// OptimizerRules carries the named, overridable constants of the search.
// Story-based area is approximate, so configurations within FARTolerance of
// the zoning ceiling stay in the comparison instead of being cut off hard.
type OptimizerRules struct {
	MinStories        int
	MaxStoriesCap     int
	FARTolerance      decimal.Decimal // fractional overshoot allowed past max FAR
	FootprintFraction decimal.Decimal // building footprint as a share of the lot
	EfficiencyRatio   decimal.Decimal // rentable share of buildable area
	AverageUnitArea   decimal.Decimal
	HardCostPerArea   decimal.Decimal // baseline vertical cost used for ranking
}

// DefaultOptimizerRules returns the standard rule set
func DefaultOptimizerRules() OptimizerRules {
	return OptimizerRules{
		MinStories:        3,
		MaxStoriesCap:     15,
		FARTolerance:      decimal.RequireFromString("0.10"),
		FootprintFraction: decimal.RequireFromString("0.65"),
		EfficiencyRatio:   decimal.RequireFromString("0.85"),
		AverageUnitArea:   decimal.NewFromInt(900),
		HardCostPerArea:   decimal.NewFromInt(250),
	}
}

// OptimizationInputs are the arguments of one configuration search.
type OptimizationInputs struct {
	LotArea             decimal.Decimal
	MaxStories          int
	MaxFAR              decimal.Decimal
	ParkingRatioPerUnit decimal.Decimal
	NearTransit         bool
	ReductionFraction   decimal.Decimal
}

// ConfigurationOptimizer enumerates candidate story counts, costs each one,
// and ranks the survivors. The search space is at most thirteen candidates,
// so the enumeration is exhaustive and every point stays explainable; there
// is no heuristic pruning.
type ConfigurationOptimizer struct {
	classifier  *domainservices.ConstructionClassifier
	recommender *domainservices.ParkingRecommender
	rules       OptimizerRules
}

// NewConfigurationOptimizer creates an optimizer with default rules
func NewConfigurationOptimizer() *ConfigurationOptimizer {
	return NewConfigurationOptimizerWithRules(
		domainservices.NewConstructionClassifier(),
		domainservices.NewParkingRecommender(),
		DefaultOptimizerRules(),
	)
}

// NewConfigurationOptimizerWithRules creates an optimizer with custom collaborators
func NewConfigurationOptimizerWithRules(
	classifier *domainservices.ConstructionClassifier,
	recommender *domainservices.ParkingRecommender,
	rules OptimizerRules,
) *ConfigurationOptimizer {
	return &ConfigurationOptimizer{
		classifier:  classifier,
		recommender: recommender,
		rules:       rules,
	}
}

// Optimize runs the search. Per-story evaluations are independent of each
// other; the ranking pass afterwards is deterministic.
func (o *ConfigurationOptimizer) Optimize(inputs OptimizationInputs) dto.Comparison {
	maxStories := inputs.MaxStories
	if maxStories > o.rules.MaxStoriesCap {
		maxStories = o.rules.MaxStoriesCap
	}

	tolerantFAR := inputs.MaxFAR.Mul(one.Add(o.rules.FARTolerance))

	var configs []entities.BuildingConfiguration
	var skipped []entities.SkippedConfiguration

	for stories := o.rules.MinStories; stories <= maxStories; stories++ {
		buildable := o.rules.FootprintFraction.
			Mul(inputs.LotArea).
			Mul(decimal.NewFromInt(int64(stories)))
		far := buildable.Div(inputs.LotArea)

		if far.GreaterThan(tolerantFAR) {
			skipped = append(skipped, entities.SkippedConfiguration{
				StoryCount: stories,
				FAR:        far,
				Reason:     fmt.Sprintf("FAR %s exceeds maximum %s beyond tolerance", far, inputs.MaxFAR),
			})
			continue
		}

		units := int(buildable.Mul(o.rules.EfficiencyRatio).Div(o.rules.AverageUnitArea).IntPart())
		if units <= 0 {
			skipped = append(skipped, entities.SkippedConfiguration{
				StoryCount: stories,
				FAR:        far,
				Reason:     "buildable area too small for a single unit",
			})
			continue
		}

		class := o.classifier.Classify(stories)
		required := int(decimal.NewFromInt(int64(units)).Mul(inputs.ParkingRatioPerUnit).Ceil().IntPart())
		parking := o.recommender.Recommend(
			required, stories, inputs.LotArea, inputs.NearTransit, inputs.ReductionFraction)

		vertical := buildable.Mul(o.rules.HardCostPerArea).Mul(class.Multiplier)
		totalCost := vertical.Add(parking.TotalCost)

		configs = append(configs, entities.BuildingConfiguration{
			StoryCount:         stories,
			Class:              class,
			BuildableArea:      buildable,
			FAR:                far,
			EstimatedUnits:     units,
			RequiredSpaces:     required,
			Parking:            parking,
			VerticalCost:       vertical,
			TotalCost:          totalCost,
			CostPerUnit:        totalCost.Div(decimal.NewFromInt(int64(units))),
			UsesBelowGrade:     parking.HasBelowGrade(),
			PaysMidRisePremium: stories >= 6,
		})
	}

	// Rank ascending by cost per unit; equal costs break to the lower story
	// count, which is the cheaper building to permit.
	sort.SliceStable(configs, func(i, j int) bool {
		if configs[i].CostPerUnit.Equal(configs[j].CostPerUnit) {
			return configs[i].StoryCount < configs[j].StoryCount
		}
		return configs[i].CostPerUnit.LessThan(configs[j].CostPerUnit)
	})

	comparison := dto.Comparison{
		Configurations: configs,
		Skipped:        skipped,
		MidRiseCliff:   o.classifier.CliffBetween(5, 6),
	}
	o.recommend(&comparison)
	return comparison
}

// recommend promotes the cheapest configuration that stays out of the ground,
// falling back to the global cheapest, and reports the cheapest below-grade
// configuration as the alternative when it is a different building.
func (o *ConfigurationOptimizer) recommend(comparison *dto.Comparison) {
	configs := comparison.Configurations
	if len(configs) == 0 {
		return
	}

	var recommended *entities.BuildingConfiguration
	for i := range configs {
		if !configs[i].UsesBelowGrade {
			recommended = &configs[i]
			break
		}
	}
	if recommended == nil {
		recommended = &configs[0]
	}

	var alternative *entities.BuildingConfiguration
	for i := range configs {
		if configs[i].UsesBelowGrade {
			alternative = &configs[i]
			break
		}
	}
	if alternative != nil && alternative.StoryCount == recommended.StoryCount {
		alternative = nil
	}

	comparison.Recommended = recommended
	comparison.Alternative = alternative

	if alternative != nil && !recommended.UsesBelowGrade {
		comparison.Savings = alternative.TotalCost.Sub(recommended.TotalCost)
		comparison.SavingsReported = true
	}
}

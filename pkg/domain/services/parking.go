package services

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// ParkingRules carries the jurisdiction constants of the parking model.
// They are named and overridable per run rather than buried as literals,
// since area-per-space and lot coverage vary by municipal code.
type ParkingRules struct {
	LotCoverageFraction decimal.Decimal // share of the lot usable for parking structure
	AreaPerSpace        decimal.Decimal
	MaxPodiumLevels     int

	TuckUnderCostPerSpace  decimal.Decimal
	PodiumCostPerSpace     decimal.Decimal
	BelowGradeCostPerSpace [3]decimal.Decimal // tier 1..3, increasing with depth
}

// DefaultParkingRules returns the standard rule set
func DefaultParkingRules() ParkingRules {
	return ParkingRules{
		LotCoverageFraction: decimal.RequireFromString("0.60"),
		AreaPerSpace:        decimal.NewFromInt(350),
		MaxPodiumLevels:     3,

		TuckUnderCostPerSpace: decimal.NewFromInt(18000),
		PodiumCostPerSpace:    decimal.NewFromInt(32000),
		BelowGradeCostPerSpace: [3]decimal.Decimal{
			decimal.NewFromInt(55000),
			decimal.NewFromInt(65000),
			decimal.NewFromInt(75000),
		},
	}
}

// ParkingRecommender allocates required spaces across parking tiers,
// minimizing below-grade reliance.
type ParkingRecommender struct {
	rules ParkingRules
}

// NewParkingRecommender creates a recommender with the default rules
func NewParkingRecommender() *ParkingRecommender {
	return NewParkingRecommenderWithRules(DefaultParkingRules())
}

// NewParkingRecommenderWithRules creates a recommender with custom rules
func NewParkingRecommenderWithRules(rules ParkingRules) *ParkingRecommender {
	return &ParkingRecommender{rules: rules}
}

// Recommend allocates the (possibly reduced) required spaces cheapest-first:
// above-grade, then below-grade tiers 1 through 3, each capped at one level's
// capacity. If every modeled tier fills, the deepest tier over-allocates
// rather than failing; the overflow is a comparison signal, not an error.
func (r *ParkingRecommender) Recommend(
	requiredSpaces int,
	storyCount int,
	lotArea decimal.Decimal,
	nearTransitExemption bool,
	reductionFraction decimal.Decimal,
) entities.ParkingAllocation {
	if requiredSpaces <= 0 || nearTransitExemption {
		return entities.ParkingAllocation{
			RequiredSpaces:  requiredSpaces,
			ReducedSpaces:   0,
			Tiers:           nil,
			TotalCost:       decimal.Zero,
			BlendedPerSpace: decimal.Zero,
			Exempt:          nearTransitExemption,
		}
	}

	reduced := reduceSpaces(requiredSpaces, reductionFraction)
	perLevel := r.perLevelCapacity(lotArea)

	// Above-grade: tuck-under only up to 3 stories, podium levels above that.
	aboveTier := entities.TierTuckUnder
	aboveCost := r.rules.TuckUnderCostPerSpace
	levels := 1
	if storyCount >= 4 {
		aboveTier = entities.TierPodium
		aboveCost = r.rules.PodiumCostPerSpace
		levels = storyCount - 3
		if levels > r.rules.MaxPodiumLevels {
			levels = r.rules.MaxPodiumLevels
		}
	}
	aboveCapacity := perLevel * levels

	var tiers []entities.TierAllocation
	remaining := reduced

	if remaining > 0 && aboveCapacity > 0 {
		spaces := remaining
		if spaces > aboveCapacity {
			spaces = aboveCapacity
		}
		tiers = append(tiers, entities.TierAllocation{Tier: aboveTier, Spaces: spaces, CostPerSpace: aboveCost})
		remaining -= spaces
	}

	belowTiers := []entities.ParkingTier{entities.TierBelowGrade1, entities.TierBelowGrade2, entities.TierBelowGrade3}
	overAllocated := false
	for i, tier := range belowTiers {
		if remaining <= 0 {
			break
		}
		spaces := remaining
		if i < len(belowTiers)-1 && spaces > perLevel {
			spaces = perLevel
		}
		if i == len(belowTiers)-1 && spaces > perLevel {
			// Deepest tier absorbs the overflow.
			overAllocated = true
		}
		tiers = append(tiers, entities.TierAllocation{Tier: tier, Spaces: spaces, CostPerSpace: r.rules.BelowGradeCostPerSpace[i]})
		remaining -= spaces
	}

	total := decimal.Zero
	for _, t := range tiers {
		total = total.Add(t.Cost())
	}
	blended := decimal.Zero
	if reduced > 0 {
		blended = total.Div(decimal.NewFromInt(int64(reduced)))
	}

	return entities.ParkingAllocation{
		RequiredSpaces:  requiredSpaces,
		ReducedSpaces:   reduced,
		Tiers:           tiers,
		TotalCost:       total,
		BlendedPerSpace: blended,
		OverAllocated:   overAllocated,
	}
}

// perLevelCapacity is the space count one structured level on this lot holds.
func (r *ParkingRecommender) perLevelCapacity(lotArea decimal.Decimal) int {
	if !lotArea.IsPositive() || !r.rules.AreaPerSpace.IsPositive() {
		return 0
	}
	usable := lotArea.Mul(r.rules.LotCoverageFraction)
	return int(usable.Div(r.rules.AreaPerSpace).IntPart())
}

// reduceSpaces applies the jurisdiction reduction, rounding the survivor up.
func reduceSpaces(required int, reductionFraction decimal.Decimal) int {
	if !reductionFraction.IsPositive() {
		return required
	}
	one := decimal.NewFromInt(1)
	if reductionFraction.GreaterThanOrEqual(one) {
		return 0
	}
	kept := decimal.NewFromInt(int64(required)).Mul(one.Sub(reductionFraction))
	return int(kept.Ceil().IntPart())
}

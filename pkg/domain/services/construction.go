package services

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// costBand maps an inclusive story range to a construction type and multiplier.
type costBand struct {
	minStories int
	maxStories int // 0 means open-ended
	ctype      entities.ConstructionType
	multiplier decimal.Decimal
	complexity bool
}

// ConstructionClassifier maps story counts to required construction types and
// cost multipliers. The bands encode code-threshold cost cliffs; the 5-to-6
// step is the dominant one and must stay a discrete jump, never interpolated.
type ConstructionClassifier struct {
	bands []costBand
}

// NewConstructionClassifier creates a classifier with the standard bands
func NewConstructionClassifier() *ConstructionClassifier {
	return &ConstructionClassifier{
		bands: []costBand{
			{1, 4, entities.TypeVWoodFrame, decimal.RequireFromString("1.00"), false},
			{5, 5, entities.TypeIIIAPodium, decimal.RequireFromString("1.14"), false},
			{6, 8, entities.TypeIBMidRise, decimal.RequireFromString("1.43"), false},
			// 9-12 keeps the mid-rise multiplier; only execution complexity rises.
			{9, 12, entities.TypeIBMidRise, decimal.RequireFromString("1.43"), true},
			{13, 0, entities.TypeIAHighRise, decimal.RequireFromString("1.57"), true},
		},
	}
}

// Classify returns the construction class required for a story count.
// Story counts below 1 classify as the baseline band.
func (c *ConstructionClassifier) Classify(stories int) entities.ConstructionClass {
	for _, b := range c.bands {
		if stories >= b.minStories && (b.maxStories == 0 || stories <= b.maxStories) {
			return entities.ConstructionClass{
				Stories:            stories,
				Type:               b.ctype,
				Multiplier:         b.multiplier,
				HighRiseComplexity: b.complexity,
			}
		}
	}
	return entities.ConstructionClass{
		Stories:    stories,
		Type:       entities.TypeVWoodFrame,
		Multiplier: decimal.RequireFromString("1.00"),
	}
}

// CliffBetween explains the cost step between two story counts, in absolute
// multiplier delta and as a percentage of the lower multiplier.
func (c *ConstructionClassifier) CliffBetween(fromStories, toStories int) entities.Cliff {
	if fromStories > toStories {
		fromStories, toStories = toStories, fromStories
	}
	from := c.Classify(fromStories)
	to := c.Classify(toStories)

	abs := to.Multiplier.Sub(from.Multiplier)
	pct := decimal.Zero
	if from.Multiplier.IsPositive() {
		pct = abs.Div(from.Multiplier)
	}

	return entities.Cliff{
		FromStories:    fromStories,
		ToStories:      toStories,
		FromMultiplier: from.Multiplier,
		ToMultiplier:   to.Multiplier,
		AbsDelta:       abs,
		PctDelta:       pct,
		Dominant:       fromStories <= 5 && toStories >= 6,
	}
}

package entities

import (
	"github.com/shopspring/decimal"
)

// ConstructionType represents the code-mandated structural system for a story count
type ConstructionType int

const (
	TypeVWoodFrame ConstructionType = iota
	TypeIIIAPodium
	TypeIBMidRise
	TypeIAHighRise
)

// String method for ConstructionType enum
func (c ConstructionType) String() string {
	switch c {
	case TypeVWoodFrame:
		return "Type V Wood Frame"
	case TypeIIIAPodium:
		return "Type III-A Over Podium"
	case TypeIBMidRise:
		return "Type I-B Mid-Rise"
	case TypeIAHighRise:
		return "Type I-A High-Rise"
	default:
		return "Unknown"
	}
}

// ConstructionClass is the classifier's answer for one story count.
// HighRiseComplexity flags the 9-12 story band, which keeps the mid-rise
// multiplier but carries added execution risk.
type ConstructionClass struct {
	Stories            int
	Type               ConstructionType
	Multiplier         decimal.Decimal
	HighRiseComplexity bool
}

// Cliff describes the construction-cost step between two story counts,
// so a caller can explain why a taller candidate costs disproportionately more.
type Cliff struct {
	FromStories    int
	ToStories      int
	FromMultiplier decimal.Decimal
	ToMultiplier   decimal.Decimal
	AbsDelta       decimal.Decimal
	PctDelta       decimal.Decimal
	Dominant       bool // the 5-to-6 step, the largest jump below 13 stories
}

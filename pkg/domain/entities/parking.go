package entities

import (
	"github.com/shopspring/decimal"
)

// ParkingTier represents one physical parking placement, ordered cheapest first
type ParkingTier int

const (
	TierTuckUnder ParkingTier = iota
	TierPodium
	TierBelowGrade1
	TierBelowGrade2
	TierBelowGrade3
)

// String method for ParkingTier enum
func (t ParkingTier) String() string {
	switch t {
	case TierTuckUnder:
		return "TuckUnder"
	case TierPodium:
		return "Podium"
	case TierBelowGrade1:
		return "BelowGrade-1"
	case TierBelowGrade2:
		return "BelowGrade-2"
	case TierBelowGrade3:
		return "BelowGrade-3"
	default:
		return "Unknown"
	}
}

// BelowGrade reports whether the tier requires excavation
func (t ParkingTier) BelowGrade() bool {
	return t >= TierBelowGrade1
}

// TierAllocation is the spaces assigned to one tier and their unit cost.
type TierAllocation struct {
	Tier         ParkingTier
	Spaces       int
	CostPerSpace decimal.Decimal
}

// Cost returns the total cost of this tier's spaces
func (a TierAllocation) Cost() decimal.Decimal {
	return a.CostPerSpace.Mul(decimal.NewFromInt(int64(a.Spaces)))
}

// ParkingAllocation is the full parking answer for one configuration.
// Tiers appear in fill order; below-grade tiers only once above-grade
// capacity is exhausted. OverAllocated marks a deepest-tier overflow,
// which is a comparison signal rather than an error.
type ParkingAllocation struct {
	RequiredSpaces  int
	ReducedSpaces   int
	Tiers           []TierAllocation
	TotalCost       decimal.Decimal
	BlendedPerSpace decimal.Decimal
	Exempt          bool
	OverAllocated   bool
}

// TotalSpaces returns the spaces allocated across all tiers
func (p ParkingAllocation) TotalSpaces() int {
	total := 0
	for _, t := range p.Tiers {
		total += t.Spaces
	}
	return total
}

// BelowGradeSpaces returns the spaces placed in excavated tiers
func (p ParkingAllocation) BelowGradeSpaces() int {
	total := 0
	for _, t := range p.Tiers {
		if t.Tier.BelowGrade() {
			total += t.Spaces
		}
	}
	return total
}

// HasBelowGrade reports whether any excavated tier is used
func (p ParkingAllocation) HasBelowGrade() bool {
	return p.BelowGradeSpaces() > 0
}

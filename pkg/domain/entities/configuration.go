package entities

import (
	"github.com/shopspring/decimal"
)

// BuildingConfiguration is one fully costed candidate from the optimizer's
// enumeration. Configurations are created, scored, ranked, then promoted or
// discarded; they are never mutated after creation.
type BuildingConfiguration struct {
	StoryCount     int
	Class          ConstructionClass
	BuildableArea  decimal.Decimal
	FAR            decimal.Decimal
	EstimatedUnits int
	RequiredSpaces int
	Parking        ParkingAllocation
	VerticalCost   decimal.Decimal
	TotalCost      decimal.Decimal
	CostPerUnit    decimal.Decimal

	UsesBelowGrade bool
	// PaysMidRisePremium marks candidates on the expensive side of the
	// 5-to-6 story construction cliff.
	PaysMidRisePremium bool
}

// SkippedConfiguration records a story count the optimizer enumerated but did
// not cost, with the reason. Skips are ordinary output, not errors.
type SkippedConfiguration struct {
	StoryCount int
	FAR        decimal.Decimal
	Reason     string
}

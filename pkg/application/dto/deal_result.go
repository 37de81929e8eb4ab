package dto

import (
	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// DealResult contains the complete output of evaluating one fixed
// configuration: the cost/revenue waterfall plus the full method bank.
// Identical inputs always produce an identical DealResult.
type DealResult struct {
	Use     entities.ProjectUse
	Class   entities.ConstructionClass
	Parking entities.ParkingAllocation

	Costs   entities.CostStack
	Revenue entities.RevenueStack

	Estimates []entities.LandResidualEstimate
	Primary   entities.LandResidualEstimate
	Spread    entities.ResidualSpread

	// Warnings carry advisory conditions (mixed parcels, negative residuals);
	// they never suppress the result they accompany.
	Warnings []string
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// Comparison contains the optimizer's ranked configurations and its
// recommendation. Configurations are sorted ascending by cost per unit;
// skipped story counts are reported beside the survivors.
type Comparison struct {
	Configurations []entities.BuildingConfiguration
	Skipped        []entities.SkippedConfiguration

	Recommended *entities.BuildingConfiguration
	Alternative *entities.BuildingConfiguration

	// Savings is alternative total cost minus recommended total cost, and is
	// only reported when the recommendation uses no below-grade parking. A
	// negative value is the premium paid to stay out of the ground.
	Savings         decimal.Decimal
	SavingsReported bool

	// MidRiseCliff explains the dominant 5-to-6 story cost step for reviewers.
	MidRiseCliff entities.Cliff

	Warnings []string
}

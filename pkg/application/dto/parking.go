package dto

import (
	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

// ParkingRecommendation is the standalone parking answer: the allocation plus
// the construction class the story count implies, so a caller sees the type
// of structure the spaces sit under.
type ParkingRecommendation struct {
	Allocation entities.ParkingAllocation
	Class      entities.ConstructionClass
}

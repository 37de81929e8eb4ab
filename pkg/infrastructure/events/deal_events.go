package events

import (
	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

const (
	DealEvaluatedEvent         = "deal.evaluated"
	OptimizationCompletedEvent = "optimization.completed"
	ParkingRecommendedEvent    = "parking.recommended"
)

// DealEvaluated records the outcome of one full waterfall evaluation.
type DealEvaluated struct {
	Use           entities.ProjectUse `json:"use"`
	PrimaryMethod string              `json:"primary_method"`
	LandValue     decimal.Decimal     `json:"land_value"`
	Infeasible    bool                `json:"infeasible"`
	Warnings      int                 `json:"warnings"`
}

// OptimizationCompleted records the outcome of one configuration search.
type OptimizationCompleted struct {
	Evaluated          int  `json:"evaluated"`
	Skipped            int  `json:"skipped"`
	RecommendedStories int  `json:"recommended_stories,omitempty"`
	AlternativeOffered bool `json:"alternative_offered"`
}

// ParkingRecommended records a standalone parking recommendation.
type ParkingRecommended struct {
	RequiredSpaces   int  `json:"required_spaces"`
	AllocatedSpaces  int  `json:"allocated_spaces"`
	BelowGradeSpaces int  `json:"below_grade_spaces"`
	Exempt           bool `json:"exempt"`
}

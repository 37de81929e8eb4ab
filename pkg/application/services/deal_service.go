package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/application/dto"
	"github.com/rcavanagh/proforma/pkg/domain/entities"
	domainservices "github.com/rcavanagh/proforma/pkg/domain/services"
	"github.com/rcavanagh/proforma/pkg/infrastructure/events"
)

// DealInputs are the arguments of one fixed-configuration evaluation.
type DealInputs struct {
	Site        entities.SiteEnvelope
	Assumptions entities.MarketAssumptions
	Use         entities.ProjectUse
	StoryCount  int

	NearTransit       bool
	ReductionFraction decimal.Decimal

	// Parcels is optional; a multi-parcel assembly with mixed zoning gets an
	// advisory warning beside a best-effort result.
	Parcels []entities.Parcel
}

// ParkingRequest are the arguments of a standalone parking recommendation.
type ParkingRequest struct {
	RequiredSpaces    int
	StoryCount        int
	LotArea           decimal.Decimal
	NearTransit       bool
	ReductionFraction decimal.Decimal
}

// DealService exposes the public operations: the full waterfall for one fixed
// configuration, the configuration search, and standalone parking. Each
// operation validates its inputs exactly once at this boundary; everything
// past validation is pure arithmetic that cannot fail.
type DealService struct {
	classifier  *domainservices.ConstructionClassifier
	recommender *domainservices.ParkingRecommender
	builder     *StackBuilder
	bank        *MethodBank
	optimizer   *ConfigurationOptimizer
	events      events.EventStore
}

// NewDealService creates a deal service with default collaborators
func NewDealService() *DealService {
	return NewDealServiceWithEvents(nil)
}

// NewDealServiceWithEvents creates a deal service that records an event trail.
// A nil store disables recording; results are identical either way.
func NewDealServiceWithEvents(store events.EventStore) *DealService {
	classifier := domainservices.NewConstructionClassifier()
	recommender := domainservices.NewParkingRecommender()
	return &DealService{
		classifier:  classifier,
		recommender: recommender,
		builder:     NewStackBuilder(),
		bank:        NewMethodBank(),
		optimizer: NewConfigurationOptimizerWithRules(
			classifier, recommender, DefaultOptimizerRules()),
		events: store,
	}
}

// EvaluateDeal runs the cost/revenue waterfall and the full method bank for
// one fixed configuration. Identical inputs produce identical results; a
// negative land value is reported, flagged, and never clamped.
func (s *DealService) EvaluateDeal(ctx context.Context, inputs DealInputs) (*dto.DealResult, error) {
	if err := s.validateDeal(inputs); err != nil {
		return nil, err
	}

	warnings := parcelWarnings(inputs.Site, inputs.Parcels)
	if inputs.StoryCount > inputs.Site.MaxStories {
		warnings = append(warnings, fmt.Sprintf(
			"story count %d exceeds the envelope maximum of %d; evaluating as proposed",
			inputs.StoryCount, inputs.Site.MaxStories))
	}

	class := s.classifier.Classify(inputs.StoryCount)
	parking := s.recommender.Recommend(
		inputs.Site.RequiredParking,
		inputs.StoryCount,
		inputs.Site.LotArea,
		inputs.NearTransit,
		inputs.ReductionFraction,
	)

	costs, revenue := s.builder.Build(&inputs.Site, inputs.Assumptions, parking, class.Multiplier, inputs.Use)
	estimates := s.bank.Evaluate(costs, revenue, inputs.Assumptions, inputs.Site.LotArea)
	primary := s.bank.Primary(estimates, inputs.Use)
	spread := s.bank.Spread(estimates)

	for _, e := range estimates {
		if e.Infeasible {
			warnings = append(warnings, fmt.Sprintf(
				"%s reports a negative land value (%s); costs exceed what this method's revenue supports",
				e.Method, e.LandValue.StringFixed(0)))
		}
	}

	result := &dto.DealResult{
		Use:       inputs.Use,
		Class:     class,
		Parking:   parking,
		Costs:     costs,
		Revenue:   revenue,
		Estimates: estimates,
		Primary:   primary,
		Spread:    spread,
		Warnings:  warnings,
	}

	s.record(events.DealEvaluatedEvent, events.DealEvaluated{
		Use:           inputs.Use,
		PrimaryMethod: primary.Method.String(),
		LandValue:     primary.LandValue,
		Infeasible:    primary.Infeasible,
		Warnings:      len(warnings),
	})

	return result, nil
}

// FindOptimalConfiguration enumerates story counts and returns the ranked
// comparison with a recommendation.
func (s *DealService) FindOptimalConfiguration(ctx context.Context, inputs OptimizationInputs) (*dto.Comparison, error) {
	if err := validateOptimization(inputs); err != nil {
		return nil, err
	}

	comparison := s.optimizer.Optimize(inputs)

	recommendedStories := 0
	if comparison.Recommended != nil {
		recommendedStories = comparison.Recommended.StoryCount
	}
	s.record(events.OptimizationCompletedEvent, events.OptimizationCompleted{
		Evaluated:          len(comparison.Configurations),
		Skipped:            len(comparison.Skipped),
		RecommendedStories: recommendedStories,
		AlternativeOffered: comparison.Alternative != nil,
	})

	return &comparison, nil
}

// RecommendParking answers the standalone parking question, including the
// construction class the story count implies.
func (s *DealService) RecommendParking(ctx context.Context, req ParkingRequest) (*dto.ParkingRecommendation, error) {
	if err := validateParking(req); err != nil {
		return nil, err
	}

	allocation := s.recommender.Recommend(
		req.RequiredSpaces, req.StoryCount, req.LotArea, req.NearTransit, req.ReductionFraction)

	s.record(events.ParkingRecommendedEvent, events.ParkingRecommended{
		RequiredSpaces:   req.RequiredSpaces,
		AllocatedSpaces:  allocation.TotalSpaces(),
		BelowGradeSpaces: allocation.BelowGradeSpaces(),
		Exempt:           allocation.Exempt,
	})

	return &dto.ParkingRecommendation{
		Allocation: allocation,
		Class:      s.classifier.Classify(req.StoryCount),
	}, nil
}

func (s *DealService) record(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	runID := events.NewRunID()
	// The store is in-memory and append never fails; ignore the error to keep
	// the calculation path free of event plumbing.
	_ = s.events.AppendEvent(runID, events.NewEvent(eventType, runID, payload))
}

func (s *DealService) validateDeal(inputs DealInputs) error {
	if err := inputs.Site.Validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := inputs.Assumptions.Validate(inputs.Use); err != nil {
		return fmt.Errorf("assumptions: %w", err)
	}
	if inputs.StoryCount <= 0 {
		return fmt.Errorf("story count must be positive, got %d", inputs.StoryCount)
	}
	if err := validateReduction(inputs.ReductionFraction); err != nil {
		return err
	}
	return nil
}

func validateOptimization(inputs OptimizationInputs) error {
	if !inputs.LotArea.IsPositive() {
		return fmt.Errorf("lot area must be positive, got %s", inputs.LotArea)
	}
	if inputs.MaxStories <= 0 {
		return fmt.Errorf("max stories must be positive, got %d", inputs.MaxStories)
	}
	if !inputs.MaxFAR.IsPositive() {
		return fmt.Errorf("max FAR must be positive, got %s", inputs.MaxFAR)
	}
	if inputs.ParkingRatioPerUnit.IsNegative() {
		return fmt.Errorf("parking ratio cannot be negative, got %s", inputs.ParkingRatioPerUnit)
	}
	return validateReduction(inputs.ReductionFraction)
}

func validateParking(req ParkingRequest) error {
	if req.RequiredSpaces < 0 {
		return fmt.Errorf("required spaces cannot be negative, got %d", req.RequiredSpaces)
	}
	if req.StoryCount <= 0 {
		return fmt.Errorf("story count must be positive, got %d", req.StoryCount)
	}
	if !req.LotArea.IsPositive() {
		return fmt.Errorf("lot area must be positive, got %s", req.LotArea)
	}
	return validateReduction(req.ReductionFraction)
}

func validateReduction(fraction decimal.Decimal) error {
	if fraction.IsNegative() || fraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("reduction fraction must be within [0, 1), got %s", fraction)
	}
	return nil
}

// parcelWarnings surfaces multi-parcel ambiguity as advisory text. Mixed
// zoning or a parcel-sum mismatch never blocks the evaluation.
func parcelWarnings(site entities.SiteEnvelope, parcels []entities.Parcel) []string {
	if len(parcels) < 2 {
		return nil
	}

	var warnings []string

	districts := make(map[string]bool)
	total := decimal.Zero
	for _, p := range parcels {
		if p.ZoningDistrict != "" {
			districts[p.ZoningDistrict] = true
		}
		total = total.Add(p.LotArea)
	}
	if len(districts) > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"parcels span %d zoning districts; results assume the envelope applies to the assembled site",
			len(districts)))
	}

	// Flag a parcel-sum drift beyond 1% of the stated lot area.
	drift := total.Sub(site.LotArea).Abs()
	if drift.GreaterThan(site.LotArea.Mul(decimal.RequireFromString("0.01"))) {
		warnings = append(warnings, fmt.Sprintf(
			"parcel areas sum to %s but the envelope states %s; using the envelope lot area",
			total, site.LotArea))
	}

	return warnings
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"

	domainservices "github.com/rcavanagh/proforma/pkg/domain/services"
)

func TestOptimizer_UrbanInfillScenario(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	// 15,000 lot, FAR 3.0, 8-story ceiling, one space per unit. With a 0.65
	// footprint, stories 6+ blow past the FAR tolerance; five stories is the
	// tallest candidate, carries two podium levels, and is the only one whose
	// above-grade capacity covers its requirement.
	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:             decimal.NewFromInt(15000),
		MaxStories:          8,
		MaxFAR:              decimal.RequireFromString("3.0"),
		ParkingRatioPerUnit: decimal.RequireFromString("1.0"),
	})

	if len(comparison.Configurations) != 3 {
		t.Fatalf("expected 3 costed configurations (3, 4, 5 stories), got %d", len(comparison.Configurations))
	}
	if len(comparison.Skipped) != 3 {
		t.Errorf("expected stories 6-8 skipped on FAR, got %d skips", len(comparison.Skipped))
	}

	if comparison.Recommended == nil {
		t.Fatal("expected a recommendation")
	}
	if comparison.Recommended.StoryCount != 5 {
		t.Errorf("expected 5 stories recommended, got %d", comparison.Recommended.StoryCount)
	}
	if comparison.Recommended.UsesBelowGrade {
		t.Error("the recommendation should avoid below-grade parking")
	}

	if comparison.Alternative == nil {
		t.Fatal("expected a below-grade alternative")
	}
	if comparison.Alternative.StoryCount != 3 {
		t.Errorf("expected the 3-story global cheapest as alternative, got %d", comparison.Alternative.StoryCount)
	}
	if comparison.Alternative.Parking.BelowGradeSpaces() == 0 {
		t.Error("the alternative must report its below-grade spaces explicitly")
	}

	if !comparison.SavingsReported {
		t.Error("savings must be reported when the recommendation avoids below-grade parking")
	}
	wantSavings := comparison.Alternative.TotalCost.Sub(comparison.Recommended.TotalCost)
	if !comparison.Savings.Equal(wantSavings) {
		t.Errorf("expected savings %s, got %s", wantSavings, comparison.Savings)
	}
}

func TestOptimizer_RankingIsAscendingByCostPerUnit(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:             decimal.NewFromInt(20000),
		MaxStories:          15,
		MaxFAR:              decimal.NewFromInt(10),
		ParkingRatioPerUnit: decimal.RequireFromString("1.0"),
	})

	configs := comparison.Configurations
	if len(configs) < 2 {
		t.Fatalf("expected several configurations, got %d", len(configs))
	}
	for i := 1; i < len(configs); i++ {
		if configs[i].CostPerUnit.LessThan(configs[i-1].CostPerUnit) {
			t.Errorf("rank %d (%d stories) cheaper than rank %d (%d stories)",
				i, configs[i].StoryCount, i-1, configs[i-1].StoryCount)
		}
	}
}

func TestOptimizer_TieBreaksToLowerStoryCount(t *testing.T) {
	// Rules chosen so unit count scales exactly with stories: with no parking
	// requirement, every baseline-multiplier candidate has an identical cost
	// per unit, and the tie must resolve to the lower story count.
	rules := DefaultOptimizerRules()
	rules.FootprintFraction = decimal.RequireFromString("0.5")
	rules.EfficiencyRatio = decimal.RequireFromString("0.9")
	rules.AverageUnitArea = decimal.NewFromInt(900)

	optimizer := NewConfigurationOptimizerWithRules(
		domainservices.NewConstructionClassifier(),
		domainservices.NewParkingRecommender(),
		rules,
	)

	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:    decimal.NewFromInt(20000),
		MaxStories: 4,
		MaxFAR:     decimal.NewFromInt(10),
	})

	configs := comparison.Configurations
	if len(configs) != 2 {
		t.Fatalf("expected the 3- and 4-story candidates, got %d", len(configs))
	}
	if !configs[0].CostPerUnit.Equal(configs[1].CostPerUnit) {
		t.Fatalf("expected a cost-per-unit tie, got %s vs %s",
			configs[0].CostPerUnit, configs[1].CostPerUnit)
	}
	if configs[0].StoryCount != 3 {
		t.Errorf("tie should break to the lower story count, got %d first", configs[0].StoryCount)
	}
}

func TestOptimizer_FARToleranceKeepsBoundaryCandidates(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	// Five stories at a 0.65 footprint is FAR 3.25: over a 3.0 ceiling but
	// inside the 10% tolerance, so it must stay in the comparison.
	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:             decimal.NewFromInt(15000),
		MaxStories:          5,
		MaxFAR:              decimal.RequireFromString("3.0"),
		ParkingRatioPerUnit: decimal.RequireFromString("1.0"),
	})

	found := false
	for _, c := range comparison.Configurations {
		if c.StoryCount == 5 {
			found = true
		}
	}
	if !found {
		t.Error("a configuration within the FAR tolerance was wrongly skipped")
	}
}

func TestOptimizer_SkipsRecordReasons(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:             decimal.NewFromInt(15000),
		MaxStories:          12,
		MaxFAR:              decimal.RequireFromString("2.0"),
		ParkingRatioPerUnit: decimal.RequireFromString("0.5"),
	})

	if len(comparison.Skipped) == 0 {
		t.Fatal("expected FAR skips at a 2.0 ceiling")
	}
	for _, skip := range comparison.Skipped {
		if skip.Reason == "" {
			t.Errorf("story %d skipped without a reason", skip.StoryCount)
		}
		if skip.FAR.IsZero() {
			t.Errorf("story %d skipped without its FAR", skip.StoryCount)
		}
	}
}

func TestOptimizer_MidRiseCliffFlaggedExplicitly(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:             decimal.NewFromInt(20000),
		MaxStories:          8,
		MaxFAR:              decimal.NewFromInt(10),
		ParkingRatioPerUnit: decimal.RequireFromString("1.0"),
	})

	if !comparison.MidRiseCliff.Dominant {
		t.Error("comparison must carry the dominant 5-to-6 cliff explanation")
	}
	for _, c := range comparison.Configurations {
		if (c.StoryCount >= 6) != c.PaysMidRisePremium {
			t.Errorf("stories %d: mid-rise premium flag wrong", c.StoryCount)
		}
	}
}

func TestOptimizer_StoryCapAtFifteen(t *testing.T) {
	optimizer := NewConfigurationOptimizer()

	comparison := optimizer.Optimize(OptimizationInputs{
		LotArea:    decimal.NewFromInt(50000),
		MaxStories: 40,
		MaxFAR:     decimal.NewFromInt(100),
		NearTransit: true,
	})

	maxSeen := 0
	for _, c := range comparison.Configurations {
		if c.StoryCount > maxSeen {
			maxSeen = c.StoryCount
		}
	}
	if maxSeen != 15 {
		t.Errorf("enumeration should cap at 15 stories, saw %d", maxSeen)
	}
}

func BenchmarkOptimizer_FullEnumeration(b *testing.B) {
	optimizer := NewConfigurationOptimizer()
	inputs := OptimizationInputs{
		LotArea:             decimal.NewFromInt(20000),
		MaxStories:          15,
		MaxFAR:              decimal.NewFromInt(10),
		ParkingRatioPerUnit: decimal.RequireFromString("1.0"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		optimizer.Optimize(inputs)
	}
}

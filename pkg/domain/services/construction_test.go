package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

func TestClassifier_Bands(t *testing.T) {
	classifier := NewConstructionClassifier()

	testCases := []struct {
		stories    int
		ctype      entities.ConstructionType
		multiplier string
		complexity bool
	}{
		{1, entities.TypeVWoodFrame, "1.00", false},
		{3, entities.TypeVWoodFrame, "1.00", false},
		{4, entities.TypeVWoodFrame, "1.00", false},
		{5, entities.TypeIIIAPodium, "1.14", false},
		{6, entities.TypeIBMidRise, "1.43", false},
		{8, entities.TypeIBMidRise, "1.43", false},
		{9, entities.TypeIBMidRise, "1.43", true},
		{12, entities.TypeIBMidRise, "1.43", true},
		{13, entities.TypeIAHighRise, "1.57", true},
		{20, entities.TypeIAHighRise, "1.57", true},
	}

	for _, tc := range testCases {
		class := classifier.Classify(tc.stories)
		if class.Type != tc.ctype {
			t.Errorf("stories %d: expected type %s, got %s", tc.stories, tc.ctype, class.Type)
		}
		if !class.Multiplier.Equal(decimal.RequireFromString(tc.multiplier)) {
			t.Errorf("stories %d: expected multiplier %s, got %s", tc.stories, tc.multiplier, class.Multiplier)
		}
		if class.HighRiseComplexity != tc.complexity {
			t.Errorf("stories %d: expected complexity %v, got %v", tc.stories, tc.complexity, class.HighRiseComplexity)
		}
	}
}

func TestClassifier_MidRiseCliffDominatesBelowThirteen(t *testing.T) {
	classifier := NewConstructionClassifier()

	midRise := classifier.Classify(6).Multiplier.Sub(classifier.Classify(5).Multiplier)

	for stories := 1; stories < 12; stories++ {
		if stories == 5 {
			continue
		}
		delta := classifier.Classify(stories + 1).Multiplier.Sub(classifier.Classify(stories).Multiplier)
		if delta.GreaterThanOrEqual(midRise) {
			t.Errorf("adjacent jump %d->%d (%s) should be below the 5->6 jump (%s)",
				stories, stories+1, delta, midRise)
		}
	}
}

func TestClassifier_NoJumpInsideMidRiseBand(t *testing.T) {
	classifier := NewConstructionClassifier()

	// 9-12 stories keep the 6-8 multiplier; only the complexity flag moves.
	for stories := 9; stories <= 12; stories++ {
		class := classifier.Classify(stories)
		if !class.Multiplier.Equal(classifier.Classify(8).Multiplier) {
			t.Errorf("stories %d: expected the mid-rise multiplier, got %s", stories, class.Multiplier)
		}
		if class.Type != entities.TypeIBMidRise {
			t.Errorf("stories %d: expected mid-rise type, got %s", stories, class.Type)
		}
	}
}

func TestClassifier_CliffBetween(t *testing.T) {
	classifier := NewConstructionClassifier()

	cliff := classifier.CliffBetween(5, 6)
	if !cliff.AbsDelta.Equal(decimal.RequireFromString("0.29")) {
		t.Errorf("expected 5->6 absolute delta 0.29, got %s", cliff.AbsDelta)
	}
	expectedPct := decimal.RequireFromString("0.29").Div(decimal.RequireFromString("1.14"))
	if !cliff.PctDelta.Equal(expectedPct) {
		t.Errorf("expected 5->6 pct delta %s, got %s", expectedPct, cliff.PctDelta)
	}
	if !cliff.Dominant {
		t.Error("the 5->6 cliff should be marked dominant")
	}

	// Arguments in either order describe the same step.
	reversed := classifier.CliffBetween(6, 5)
	if !reversed.AbsDelta.Equal(cliff.AbsDelta) {
		t.Errorf("expected order-insensitive cliff, got %s vs %s", reversed.AbsDelta, cliff.AbsDelta)
	}

	flat := classifier.CliffBetween(9, 12)
	if !flat.AbsDelta.IsZero() {
		t.Errorf("expected no jump inside 9-12, got %s", flat.AbsDelta)
	}
	if flat.Dominant {
		t.Error("9->12 should not be marked dominant")
	}
}

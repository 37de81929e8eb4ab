package yamlcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/domain/entities"
)

const sampleDeal = `
site:
  lot_area: 15000
  buildable_area: 48750
  max_far: 3.25
  max_stories: 8
  required_parking: 46
use: rental
story_count: 5
near_transit: false
reduction_fraction: 0.10
parcels:
  - name: Lot 1
    lot_area: 9000
    zoning_district: RM-3
  - name: Lot 2
    lot_area: 6000
    zoning_district: RM-3
assumptions:
  rent:
    market_units: 40
    market_monthly_rent: 2800
    affordable_units: 6
    affordable_monthly_rent: 1400
    vacancy_rate: 0.05
    management_fee_rate: 0.03
    property_tax_rate: 0.012
    operating_expenses:
      - name: Insurance
        annual_amount: 60000
  costs:
    base_hard_cost_per_area: 250
    hard_contingency_rate: 0.05
  loan:
    loan_to_cost_ratio: 0.65
    annual_interest_rate: 0.075
    construction_months: 18
    lease_up_months: 9
    average_outstanding: 0.55
  targets:
    yield_on_cost: 0.0575
    unlevered_return_on_cost: 0.065
    exit_cap_rate: 0.0525
  sale:
    price_per_area: 850
    selling_cost_fraction: 0.06
optimization:
  max_stories: 8
  max_far: 3.0
  parking_ratio_per_unit: 1.0
`

func writeDealFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deal.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write deal file: %v", err)
	}
	return path
}

func TestLoader_LoadDeal(t *testing.T) {
	loader := NewLoader()

	inputs, err := loader.LoadDeal(writeDealFile(t, sampleDeal))
	if err != nil {
		t.Fatalf("LoadDeal failed: %v", err)
	}

	if !inputs.Site.LotArea.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("expected lot area 15000, got %s", inputs.Site.LotArea)
	}
	if inputs.Use != entities.UseRental {
		t.Errorf("expected rental use, got %s", inputs.Use)
	}
	if inputs.StoryCount != 5 {
		t.Errorf("expected 5 stories, got %d", inputs.StoryCount)
	}
	// Rates must survive exactly, not as float approximations.
	if !inputs.Assumptions.Targets.YieldOnCost.Equal(decimal.RequireFromString("0.0575")) {
		t.Errorf("expected yield target 0.0575, got %s", inputs.Assumptions.Targets.YieldOnCost)
	}
	if len(inputs.Parcels) != 2 {
		t.Errorf("expected 2 parcels, got %d", len(inputs.Parcels))
	}
	if len(inputs.Assumptions.Rent.OperatingExpenses) != 1 {
		t.Errorf("expected 1 expense line, got %d", len(inputs.Assumptions.Rent.OperatingExpenses))
	}
}

func TestLoader_LoadOptimization(t *testing.T) {
	loader := NewLoader()

	inputs, err := loader.LoadOptimization(writeDealFile(t, sampleDeal))
	if err != nil {
		t.Fatalf("LoadOptimization failed: %v", err)
	}

	if inputs.MaxStories != 8 {
		t.Errorf("expected max stories 8, got %d", inputs.MaxStories)
	}
	if !inputs.MaxFAR.Equal(decimal.RequireFromString("3.0")) {
		t.Errorf("expected max FAR 3.0, got %s", inputs.MaxFAR)
	}
	if !inputs.ReductionFraction.Equal(decimal.RequireFromString("0.10")) {
		t.Errorf("expected reduction 0.10, got %s", inputs.ReductionFraction)
	}
}

func TestLoader_MissingRequiredField(t *testing.T) {
	loader := NewLoader()

	broken := strings.Replace(sampleDeal, "  lot_area: 15000\n", "", 1)
	_, err := loader.LoadDeal(writeDealFile(t, broken))
	if err == nil {
		t.Fatal("expected an error for a missing lot area")
	}
	if !strings.Contains(err.Error(), "site.lot_area") {
		t.Errorf("error should name the missing field, got %q", err.Error())
	}
}

func TestLoader_InvalidNumberNamesField(t *testing.T) {
	loader := NewLoader()

	broken := strings.Replace(sampleDeal, "yield_on_cost: 0.0575", "yield_on_cost: lots", 1)
	_, err := loader.LoadDeal(writeDealFile(t, broken))
	if err == nil {
		t.Fatal("expected an error for a malformed rate")
	}
	if !strings.Contains(err.Error(), "targets.yield_on_cost") {
		t.Errorf("error should name the bad field, got %q", err.Error())
	}
}

func TestLoader_UnknownUseRejected(t *testing.T) {
	loader := NewLoader()

	broken := strings.Replace(sampleDeal, "use: rental", "use: hotel", 1)
	_, err := loader.LoadDeal(writeDealFile(t, broken))
	if err == nil {
		t.Fatal("expected an error for an unknown use")
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader()

	if _, err := loader.LoadDeal(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

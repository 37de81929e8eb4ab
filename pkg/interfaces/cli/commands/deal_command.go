package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rcavanagh/proforma/pkg/application/services"
	"github.com/rcavanagh/proforma/pkg/infrastructure/events"
	"github.com/rcavanagh/proforma/pkg/infrastructure/repositories/yamlcfg"
	"github.com/rcavanagh/proforma/pkg/interfaces/cli/output"
)

// Config holds configuration for the proforma commands
type Config struct {
	DealFile  string
	Optimize  bool
	OutputDir string
	Format    string
	Verbose   bool
	Help      bool

	// Standalone parking mode; active when ParkingSpaces is set.
	ParkingSpaces  int
	ParkingStories int
	ParkingLotArea string
	NearTransit    bool
}

// DealCommand evaluates a deal file or runs the configuration search over it
type DealCommand struct {
	config Config
}

// NewDealCommand creates a deal command with the given configuration
func NewDealCommand(config Config) *DealCommand {
	return &DealCommand{config: config}
}

// Execute runs the command
func (c *DealCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if c.config.DealFile == "" {
		return fmt.Errorf("a deal file is required (see -help)")
	}

	loader := yamlcfg.NewLoader()
	store := events.NewInMemoryEventStore()
	service := services.NewDealServiceWithEvents(store)

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}

	start := time.Now()

	if c.config.Optimize {
		inputs, err := loader.LoadOptimization(c.config.DealFile)
		if err != nil {
			return err
		}
		comparison, err := service.FindOptimalConfiguration(ctx, inputs)
		if err != nil {
			return fmt.Errorf("optimization failed: %w", err)
		}
		if c.config.Verbose {
			fmt.Printf("⏱  Evaluated %d configurations in %v\n\n",
				len(comparison.Configurations), time.Since(start))
		}
		return output.GenerateComparison(comparison, outputConfig)
	}

	inputs, err := loader.LoadDeal(c.config.DealFile)
	if err != nil {
		return err
	}
	result, err := service.EvaluateDeal(ctx, inputs)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if c.config.Verbose {
		fmt.Printf("⏱  Evaluated in %v\n\n", time.Since(start))
	}
	return output.GenerateDeal(result, outputConfig)
}

func (c *DealCommand) showHelp() {
	fmt.Println(`proforma - residential land residual and configuration engine

Usage:
  proforma -deal <file.yaml> [flags]            Evaluate one fixed configuration
  proforma -deal <file.yaml> -optimize [flags]  Search story counts for the cheapest configuration
  proforma -parking-spaces N -parking-stories N -parking-lot-area N [flags]
                                                Standalone parking recommendation

Flags:
  -deal string            Path to the YAML deal file
  -optimize               Run the configuration search instead of a single evaluation
  -format string          Output format: text, json (default "text")
  -output string          Directory for saved results (optional)
  -verbose                Verbose output
  -parking-spaces int     Required spaces for standalone parking mode
  -parking-stories int    Story count for standalone parking mode
  -parking-lot-area       Lot area for standalone parking mode
  -near-transit           Transit proximity exemption
  -help                   Show this message`)
}

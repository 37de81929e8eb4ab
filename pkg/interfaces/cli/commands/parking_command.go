package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcavanagh/proforma/pkg/application/services"
	"github.com/rcavanagh/proforma/pkg/interfaces/cli/output"
)

// ParkingCommand produces a standalone parking recommendation without a deal file
type ParkingCommand struct {
	config Config
}

// NewParkingCommand creates a parking command with the given configuration
func NewParkingCommand(config Config) *ParkingCommand {
	return &ParkingCommand{config: config}
}

// Execute runs the command
func (c *ParkingCommand) Execute(ctx context.Context) error {
	lotArea, err := decimal.NewFromString(c.config.ParkingLotArea)
	if err != nil {
		return fmt.Errorf("invalid -parking-lot-area %q: %w", c.config.ParkingLotArea, err)
	}

	service := services.NewDealService()
	rec, err := service.RecommendParking(ctx, services.ParkingRequest{
		RequiredSpaces: c.config.ParkingSpaces,
		StoryCount:     c.config.ParkingStories,
		LotArea:        lotArea,
		NearTransit:    c.config.NearTransit,
	})
	if err != nil {
		return fmt.Errorf("parking recommendation failed: %w", err)
	}

	return output.GenerateParking(rec, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

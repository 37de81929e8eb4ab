package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rcavanagh/proforma/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		dealFile       = flag.String("deal", "", "Path to YAML deal file")
		optimize       = flag.Bool("optimize", false, "Search story counts for the cheapest configuration")
		outputDir      = flag.String("output", "", "Output directory for results (optional)")
		format         = flag.String("format", "text", "Output format: text, json")
		verbose        = flag.Bool("verbose", false, "Enable verbose output")
		parkingSpaces  = flag.Int("parking-spaces", 0, "Required spaces for standalone parking mode")
		parkingStories = flag.Int("parking-stories", 0, "Story count for standalone parking mode")
		parkingLotArea = flag.String("parking-lot-area", "", "Lot area for standalone parking mode")
		nearTransit    = flag.Bool("near-transit", false, "Transit proximity parking exemption")
		help           = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		DealFile:       *dealFile,
		Optimize:       *optimize,
		OutputDir:      *outputDir,
		Format:         *format,
		Verbose:        *verbose,
		ParkingSpaces:  *parkingSpaces,
		ParkingStories: *parkingStories,
		ParkingLotArea: *parkingLotArea,
		NearTransit:    *nearTransit,
		Help:           *help,
	}

	ctx := context.Background()

	// Standalone parking mode bypasses the deal file entirely
	var err error
	if config.ParkingSpaces > 0 || config.ParkingLotArea != "" {
		err = commands.NewParkingCommand(config).Execute(ctx)
	} else {
		err = commands.NewDealCommand(config).Execute(ctx)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

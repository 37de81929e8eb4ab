package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SiteEnvelope describes the fixed physical and zoning limits of one site.
// It is immutable for the duration of a run.
type SiteEnvelope struct {
	LotArea         decimal.Decimal
	BuildableArea   decimal.Decimal
	MaxFAR          decimal.Decimal
	MaxStories      int
	RequiredParking int
}

// NewSiteEnvelope creates a validated SiteEnvelope
func NewSiteEnvelope(
	lotArea, buildableArea, maxFAR decimal.Decimal,
	maxStories, requiredParking int,
) (*SiteEnvelope, error) {
	site := &SiteEnvelope{
		LotArea:         lotArea,
		BuildableArea:   buildableArea,
		MaxFAR:          maxFAR,
		MaxStories:      maxStories,
		RequiredParking: requiredParking,
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate checks every field a later division or enumeration depends on
func (s *SiteEnvelope) Validate() error {
	if !s.LotArea.IsPositive() {
		return fmt.Errorf("lot area must be positive, got %s", s.LotArea)
	}
	if !s.BuildableArea.IsPositive() {
		return fmt.Errorf("buildable area must be positive, got %s", s.BuildableArea)
	}
	if !s.MaxFAR.IsPositive() {
		return fmt.Errorf("max FAR must be positive, got %s", s.MaxFAR)
	}
	if s.MaxStories <= 0 {
		return fmt.Errorf("max stories must be positive, got %d", s.MaxStories)
	}
	if s.RequiredParking < 0 {
		return fmt.Errorf("required parking cannot be negative, got %d", s.RequiredParking)
	}
	return nil
}

// Parcel identifies one legal parcel inside a possibly-assembled site.
// Mixed zoning across parcels is advisory, not fatal.
type Parcel struct {
	Name           string
	LotArea        decimal.Decimal
	ZoningDistrict string
}

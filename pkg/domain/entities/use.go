package entities

// ProjectUse represents the intended disposition of the finished project
type ProjectUse int

const (
	UseRental ProjectUse = iota
	UseCondo
	UseEither
)

// String method for ProjectUse enum
func (u ProjectUse) String() string {
	switch u {
	case UseRental:
		return "Rental"
	case UseCondo:
		return "Condo"
	case UseEither:
		return "Either"
	default:
		return "Unknown"
	}
}

package bom

import "errors"

var (
	// ErrInvalidGeometry marks a dimension off the 0.5 grid, out of range,
	// or a height outside the enumerated set.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnknownPart marks a derived part number with no catalog entry.
	// Totals are never silently zeroed.
	ErrUnknownPart = errors.New("unknown catalog part")

	// ErrUnresolvedOption marks an option value outside its closed set.
	ErrUnresolvedOption = errors.New("unresolved option")

	// ErrInvariant marks a negative derived quantity. It signals a formula
	// translation defect and is fatal, never clamped.
	ErrInvariant = errors.New("internal invariant violation")
)

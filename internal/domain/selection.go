package domain

// SelectionMode determines how day clicks are interpreted by the calendar
type SelectionMode string

const (
	ModeSingle  SelectionMode = "single"
	ModeRange   SelectionMode = "range"
	ModeSameDay SelectionMode = "same-day"
)

// DefaultSelectionMode is used when the caller does not specify a mode
const DefaultSelectionMode = ModeRange

// IsValid returns true for known selection modes
func (m SelectionMode) IsValid() bool {
	return m == ModeSingle || m == ModeRange || m == ModeSameDay
}

// IsRangeLike returns true for modes that produce a start/end pair
func (m SelectionMode) IsRangeLike() bool {
	return m == ModeRange || m == ModeSameDay
}

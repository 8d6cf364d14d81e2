package model

type OverridePolicy int

const (
	Suppress OverridePolicy = iota
	Floor
	Ceiling
	PerLectureSectionOverride
	PerLabSectionOverride
	Fixed
)

func (p OverridePolicy) String() string {
	switch p {
	case Suppress:
		return "Suppress"
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case PerLectureSectionOverride:
		return "PerLectureSection"
	case PerLabSectionOverride:
		return "PerLabSection"
	case Fixed:
		return "Fixed"
	}
	return "Unknown"
}

// SpecialCaseOverride replaces or bounds the computed allocation of one
// course. Course must not contain whitespace.
type SpecialCaseOverride struct {
	Course string
	Reason string
	Policy OverridePolicy
	Amount float64
}

package model

// ActivityCategory decides which subtotal a rule contributes to and whether
// it applies to courses with or without lab sections.
type ActivityCategory int

const (
	Lecture ActivityCategory = iota // always applies
	Lab                             // only when the course has lab sections
	NonLab                          // only when the course has no lab sections
)

func (c ActivityCategory) String() string {
	switch c {
	case Lecture:
		return "Lecture"
	case Lab:
		return "Lab"
	case NonLab:
		return "NonLab"
	}
	return "Unknown"
}

// ComputationMethod determines how a rule's base hours scale.
type ComputationMethod int

const (
	PerTerm ComputationMethod = iota
	PerLectureSection
	PerStudent
	PerLabSection
)

func (m ComputationMethod) String() string {
	switch m {
	case PerTerm:
		return "PerTerm"
	case PerLectureSection:
		return "PerLectureSection"
	case PerStudent:
		return "PerStudent"
	case PerLabSection:
		return "PerLabSection"
	}
	return "Unknown"
}

// AllocationRule is a single activity in the rule catalog.
type AllocationRule struct {
	Name     string
	Hours    float64
	Method   ComputationMethod
	Category ActivityCategory
}

package model

type CourseTier int

const (
	FirstYear CourseTier = iota
	Undergraduate
	Graduate
)

func (t CourseTier) String() string {
	switch t {
	case FirstYear:
		return "FirstYear"
	case Undergraduate:
		return "Undergraduate"
	case Graduate:
		return "Graduate"
	}
	return "Unknown"
}

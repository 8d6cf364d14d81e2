package allocator

import "github.com/rhyrak/ta-allocator/pkg/model"

// Configuration holds the numeric policy of the engine.
type Configuration struct {
	FullTAHours               float64 // hours in one full TA allocation
	MinTAThreshold            float64 // rounded totals below this become 0
	LabRatioDenominator       float64 // students per lab TA
	LabInstructorAdjustment   float64 // TAs replaced by the lab instructor
	FirstYearExtraTAHours     float64
	MinUnitWeightForFirstYear float64
	MinEnrollmentUndergrad    int
	MinEnrollmentGrad         int
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		FullTAHours:               130.0,
		MinTAThreshold:            0.3,
		LabRatioDenominator:       15.0,
		LabInstructorAdjustment:   1.0,
		FirstYearExtraTAHours:     65.0,
		MinUnitWeightForFirstYear: 1.0,
		MinEnrollmentUndergrad:    20,
		MinEnrollmentGrad:         15,
	}
}

// MinEnrollment returns the enrollment gate for a tier. First-year courses
// share the undergraduate gate.
func (c *Configuration) MinEnrollment(tier model.CourseTier) int {
	if tier == model.Graduate {
		return c.MinEnrollmentGrad
	}
	return c.MinEnrollmentUndergrad
}

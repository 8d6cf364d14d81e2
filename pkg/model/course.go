package model

// Course is one row of the input table. It is read-only once loaded.
type Course struct {
	Code            string  `csv:"Course" validate:"required"`
	Instructor      string  `csv:"Instructor"`
	Enrollment      int     `csv:"Enrollment" validate:"gte=0"`
	LectureSections int     `csv:"Lecture_Sections" validate:"gte=0"`
	LabSections     int     `csv:"Lab_Sections" validate:"gte=0"`
	UnitWeight      float64 `csv:"Unit_Weight" validate:"gt=0"`
}

// CourseAllocation is the TA allocation for a course, in full-TA fractions
// rounded to one decimal.
type CourseAllocation struct {
	Total     float64
	LabAmount float64
}

// IsZero reports whether nothing was allocated.
func (a CourseAllocation) IsZero() bool {
	return a.Total == 0 && a.LabAmount == 0
}

type AllocationCSVRow struct {
	CourseCode    string `csv:"Course"`
	Instructor    string `csv:"Instructor"`
	Enrollment    int    `csv:"Enrollment"`
	TAAllocation  string `csv:"TA_Allocation"`
	LabAllocation string `csv:"Lab_Allocation"`
}

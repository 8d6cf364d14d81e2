package allocator

import "github.com/rhyrak/ta-allocator/pkg/model"

// Catalog is the set of hour rules per tier.
type Catalog struct {
	Undergraduate []model.AllocationRule
	Graduate      []model.AllocationRule
}

// RulesFor returns the rule set for a tier. First-year courses use the
// undergraduate rules.
func (c *Catalog) RulesFor(tier model.CourseTier) []model.AllocationRule {
	if tier == model.Graduate {
		return c.Graduate
	}
	return c.Undergraduate
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Undergraduate: []model.AllocationRule{
			{Name: "Midterm Marking", Hours: 0.2, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Final Marking", Hours: 0.33, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Tutorials", Hours: 11.0, Method: model.PerLectureSection, Category: model.Lecture},
			{Name: "Tutorial Prep", Hours: 11.0, Method: model.PerTerm, Category: model.Lecture},
			{Name: "Office Hours", Hours: 11.0, Method: model.PerTerm, Category: model.Lecture},
			{Name: "Office Hours Online", Hours: 0.17, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Lab Delivery", Hours: 15.0, Method: model.PerLabSection, Category: model.Lab},
			{Name: "Lab Prep", Hours: 5.0, Method: model.PerLabSection, Category: model.Lab}, // 1/3 * 5 * 3 per lab
			{Name: "Lab Marking", Hours: 0.0, Method: model.PerStudent, Category: model.Lab},
			{Name: "Assignment Marking", Hours: 1.0, Method: model.PerStudent, Category: model.NonLab},
			{Name: "Exam Proctoring", Hours: 0.17, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Extra TA Hours", Hours: 0.0, Method: model.PerTerm, Category: model.Lecture},
		},
		Graduate: []model.AllocationRule{
			{Name: "Final Marking", Hours: 0.53, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Tutorials", Hours: 12.0, Method: model.PerTerm, Category: model.Lecture},
			{Name: "Office Hours", Hours: 12.0, Method: model.PerTerm, Category: model.Lecture},
			{Name: "Assignment Marking", Hours: 1.0, Method: model.PerStudent, Category: model.Lecture},
			{Name: "Exam Proctoring", Hours: 3.0, Method: model.PerTerm, Category: model.Lecture},
			{Name: "Extra TA Hours", Hours: 0.0, Method: model.PerTerm, Category: model.Lecture},
		},
	}
}

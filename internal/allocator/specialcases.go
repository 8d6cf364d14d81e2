package allocator

import (
	"math"
	"strings"

	"github.com/rhyrak/ta-allocator/pkg/model"
	"go.uber.org/zap"
)

// DefaultSpecialCases is the override table shipped with the allocator.
func DefaultSpecialCases() []model.SpecialCaseOverride {
	return []model.SpecialCaseOverride{
		{Course: "ECE498A", Reason: "Capstone Course", Policy: model.Suppress},
		{Course: "ECE498B", Reason: "Capstone Course", Policy: model.Suppress},
		{Course: "MTE482", Reason: "Capstone Course", Policy: model.Suppress},
		{Course: "NE340", Reason: "Cleanroom Lab Course", Policy: model.Floor, Amount: 5.0},
		{Course: "NE340L", Reason: "Cleanroom Lab Course", Policy: model.Floor, Amount: 2.0},
		{Course: "ECE459", Reason: "Project Course", Policy: model.Ceiling, Amount: 6.0},
		{Course: "NE455B", Reason: "Cleanroom Lab Course", Policy: model.Floor, Amount: 2.0},
		{Course: "NE409", Reason: "Half-Credit No TA Course", Policy: model.Suppress},
		{Course: "ECE198", Reason: "Lab-Only Project Course", Policy: model.Fixed, Amount: 8.0},
		{Course: "ECE190", Reason: "Seminar Course", Policy: model.PerLectureSectionOverride, Amount: 1.0},
		{Course: "ECE298", Reason: "Lab-Only Project Course", Policy: model.PerLectureSectionOverride, Amount: 3.0},
	}
}

// DefaultLabOnlyCourses lists courses with no lecture component.
func DefaultLabOnlyCourses() []string {
	return []string{"NE340L", "NE455A", "ECE198", "ECE298"}
}

// OverrideTable looks up special cases by normalized course code.
type OverrideTable struct {
	entries []model.SpecialCaseOverride
	byCode  map[string]model.SpecialCaseOverride
}

// NewOverrideTable indexes the given overrides. On duplicate codes the first
// entry wins; ValidateCatalog reports duplicates.
func NewOverrideTable(overrides []model.SpecialCaseOverride) *OverrideTable {
	t := &OverrideTable{
		entries: append([]model.SpecialCaseOverride(nil), overrides...),
		byCode:  make(map[string]model.SpecialCaseOverride, len(overrides)),
	}
	for _, o := range overrides {
		if _, ok := t.byCode[o.Course]; !ok {
			t.byCode[o.Course] = o
		}
	}
	return t
}

// Lookup finds the override for a course code, ignoring whitespace.
func (t *OverrideTable) Lookup(code string) (model.SpecialCaseOverride, bool) {
	o, ok := t.byCode[NormalizeCode(code)]
	return o, ok
}

// Entries returns a copy of the table in declaration order.
func (t *OverrideTable) Entries() []model.SpecialCaseOverride {
	return append([]model.SpecialCaseOverride(nil), t.entries...)
}

type LabOnlyRegistry struct {
	codes []string
	set   map[string]struct{}
}

func NewLabOnlyRegistry(codes []string) *LabOnlyRegistry {
	r := &LabOnlyRegistry{
		codes: append([]string(nil), codes...),
		set:   make(map[string]struct{}, len(codes)),
	}
	for _, c := range codes {
		r.set[c] = struct{}{}
	}
	return r
}

// Contains reports whether the course has no lecture component.
func (r *LabOnlyRegistry) Contains(code string) bool {
	_, ok := r.set[NormalizeCode(code)]
	return ok
}

func (r *LabOnlyRegistry) Codes() []string {
	return append([]string(nil), r.codes...)
}

// NormalizeCode removes all whitespace from a course code.
func NormalizeCode(code string) string {
	return strings.Join(strings.Fields(code), "")
}

// ApplyOverride post-processes a computed allocation with the course's
// special case, if any. Every override drops the lab split.
func (c *Calculator) ApplyOverride(course *model.Course, base model.CourseAllocation) model.CourseAllocation {
	sc, ok := c.overrides.Lookup(course.Code)
	if !ok {
		return base
	}
	c.log.Info("special case found",
		zap.String("course", course.Code),
		zap.Stringer("policy", sc.Policy),
		zap.String("reason", sc.Reason))

	var total float64
	switch sc.Policy {
	case model.Suppress:
		total = 0
	case model.Floor:
		total = math.Max(base.Total, sc.Amount)
	case model.Ceiling:
		total = math.Min(base.Total, sc.Amount)
	case model.PerLectureSectionOverride:
		total = sc.Amount * float64(course.LectureSections)
	case model.PerLabSectionOverride:
		total = sc.Amount * float64(course.LabSections)
	case model.Fixed:
		total = sc.Amount
	}
	if total != base.Total {
		c.log.Info("overriding allocation",
			zap.String("course", course.Code),
			zap.Float64("from", base.Total),
			zap.Float64("to", total))
	}
	// TODO: keep the lab share for Floor/Ceiling once the lab split policy for overrides is agreed.
	return model.CourseAllocation{Total: total, LabAmount: 0}
}

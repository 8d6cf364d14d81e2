package allocator

import (
	"math"

	"github.com/rhyrak/ta-allocator/pkg/model"
	"go.uber.org/zap"
)

// Calculator computes TA allocations. It never mutates its tables, so one
// Calculator may serve any number of goroutines.
type Calculator struct {
	cfg       *Configuration
	catalog   *Catalog
	overrides *OverrideTable
	labOnly   *LabOnlyRegistry
	log       *zap.Logger
}

// NewCalculator wires the engine. A nil logger disables tracing.
func NewCalculator(cfg *Configuration, catalog *Catalog, overrides *OverrideTable, labOnly *LabOnlyRegistry, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{cfg: cfg, catalog: catalog, overrides: overrides, labOnly: labOnly, log: log}
}

// NewDefaultCalculator uses the shipped configuration and tables.
func NewDefaultCalculator(log *zap.Logger) *Calculator {
	return NewCalculator(
		NewDefaultConfiguration(),
		DefaultCatalog(),
		NewOverrideTable(DefaultSpecialCases()),
		NewLabOnlyRegistry(DefaultLabOnlyCourses()),
		log,
	)
}

func (c *Calculator) Configuration() *Configuration { return c.cfg }
func (c *Calculator) Catalog() *Catalog { return c.catalog }
func (c *Calculator) Overrides() *OverrideTable { return c.overrides }
func (c *Calculator) LabOnlyRegistry() *LabOnlyRegistry { return c.labOnly }
func (c *Calculator) Logger() *zap.Logger { return c.log }

// WithLogger returns a copy of the calculator that traces to log.
func (c *Calculator) WithLogger(log *zap.Logger) *Calculator {
	cp := *c
	if log == nil {
		log = zap.NewNop()
	}
	cp.log = log
	return &cp
}

// Contribution is the hours one rule added to a course.
type Contribution struct {
	Rule  model.AllocationRule
	Hours float64
}

// Breakdown is the raw, unrounded state of one evaluation.
type Breakdown struct {
	Tier                  model.CourseTier
	LabOnly               bool
	BelowEnrollmentGate   bool
	StudentsPerLabSection float64
	TAsPerLabSection      float64
	Contributions         []Contribution
	FirstYearBoost        float64
	TotalHours            float64
	LabHours              float64
	NonLabHours           float64
}

// Explain runs the allocation up to rounding and returns the raw hours.
func (c *Calculator) Explain(course *model.Course) (Breakdown, error) {
	var b Breakdown

	tier, err := Classify(course.Code)
	if err != nil {
		return b, err
	}
	b.Tier = tier
	b.LabOnly = c.labOnly.Contains(course.Code)

	minEnrollment := c.cfg.MinEnrollment(tier)
	if course.Enrollment < minEnrollment {
		c.log.Info("enrollment below minimum, allocation will be 0",
			zap.String("course", course.Code),
			zap.Int("enrollment", course.Enrollment),
			zap.Int("min", minEnrollment))
		b.BelowEnrollmentGate = true
		return b, nil
	}

	c.log.Debug("course classified",
		zap.String("course", course.Code),
		zap.Stringer("tier", tier),
		zap.Float64("unit_weight", course.UnitWeight),
		zap.Int("lab_sections", course.LabSections),
		zap.Bool("lab_only", b.LabOnly))

	if course.LabSections > 0 {
		b.StudentsPerLabSection = float64(course.Enrollment) / float64(course.LabSections)
		b.TAsPerLabSection = math.Max(0, b.StudentsPerLabSection/c.cfg.LabRatioDenominator-c.cfg.LabInstructorAdjustment)
	}
	c.log.Debug("lab staffing",
		zap.Float64("students_per_lab_section", b.StudentsPerLabSection),
		zap.Float64("tas_per_lab_section", b.TAsPerLabSection))

	for _, rule := range c.catalog.RulesFor(tier) {
		if course.LabSections > 0 && rule.Category == model.NonLab {
			continue
		}
		if course.LabSections == 0 && rule.Category == model.Lab {
			continue
		}
		if b.LabOnly && rule.Category != model.Lab {
			continue
		}

		var hours float64
		switch rule.Method {
		case model.PerTerm:
			hours = rule.Hours
		case model.PerLectureSection:
			hours = rule.Hours * float64(course.LectureSections)
		case model.PerStudent:
			hours = rule.Hours * float64(course.Enrollment)
		case model.PerLabSection:
			hours = rule.Hours * float64(course.LabSections) * b.TAsPerLabSection
		}
		c.log.Debug("adding hours",
			zap.String("rule", rule.Name),
			zap.Stringer("method", rule.Method),
			zap.Float64("hours", hours))

		b.Contributions = append(b.Contributions, Contribution{Rule: rule, Hours: hours})
		b.TotalHours += hours
		if rule.Category == model.Lab {
			b.LabHours += hours
		} else {
			b.NonLabHours += hours
		}
	}

	if tier == model.FirstYear && course.UnitWeight >= c.cfg.MinUnitWeightForFirstYear {
		b.FirstYearBoost = course.UnitWeight * 2.0 * c.cfg.FirstYearExtraTAHours
		c.log.Debug("first-year adjustment",
			zap.Float64("hours", b.FirstYearBoost),
			zap.Float64("min_unit_weight", c.cfg.MinUnitWeightForFirstYear))
		b.TotalHours += b.FirstYearBoost
		b.NonLabHours += b.FirstYearBoost
	}

	return b, nil
}

// Allocate computes the allocation for a course before special cases.
func (c *Calculator) Allocate(course *model.Course) (model.CourseAllocation, error) {
	b, err := c.Explain(course)
	if err != nil {
		return model.CourseAllocation{}, err
	}
	if b.BelowEnrollmentGate {
		return model.CourseAllocation{}, nil
	}

	total := c.toTAFraction(b.TotalHours)
	lab := c.toTAFraction(b.LabHours)
	c.log.Debug("total TA hours",
		zap.String("course", course.Code),
		zap.Float64("hours", b.TotalHours),
		zap.Float64("fraction", total))

	if total < c.cfg.MinTAThreshold {
		c.log.Info("allocation below minimum threshold, allocation will be 0",
			zap.String("course", course.Code),
			zap.Float64("fraction", total),
			zap.Float64("threshold", c.cfg.MinTAThreshold))
		return model.CourseAllocation{}, nil
	}

	c.log.Info("allocation computed",
		zap.String("course", course.Code),
		zap.Float64("total", total),
		zap.Float64("lab", lab),
		zap.Float64("lecture", c.toTAFraction(b.NonLabHours)))
	return model.CourseAllocation{Total: total, LabAmount: lab}, nil
}

// Evaluate runs Allocate followed by ApplyOverride.
func (c *Calculator) Evaluate(course *model.Course) (model.CourseAllocation, error) {
	base, err := c.Allocate(course)
	if err != nil {
		return model.CourseAllocation{}, err
	}
	return c.ApplyOverride(course, base), nil
}

func (c *Calculator) toTAFraction(hours float64) float64 {
	return RoundTenth(hours / c.cfg.FullTAHours)
}

// RoundTenth rounds to one decimal place, halves away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

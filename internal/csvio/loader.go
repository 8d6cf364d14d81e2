package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/rhyrak/ta-allocator/internal/allocator"
	"github.com/rhyrak/ta-allocator/pkg/model"
)

var validate = validator.New()

// ErrInvalidCourse is returned when a course row fails validation.
var ErrInvalidCourse = errors.New("invalid course row")

// LoadCourses reads and parses given csv file for course data.
// Courses listed in ignored are dropped.
func LoadCourses(path string, delim rune, ignored []string) ([]*model.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	courses, err := ReadCourses(f, delim, ignored)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return courses, nil
}

// ReadCourses parses course rows from r and validates each one.
func ReadCourses(r io.Reader, delim rune, ignored []string) ([]*model.Course, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	_courses := []*model.Course{}
	if err := gocsv.UnmarshalCSV(reader, &_courses); err != nil {
		return nil, fmt.Errorf("failed to parse course data: %w", err)
	}

	skip := make(map[string]bool, len(ignored))
	for _, code := range ignored {
		skip[allocator.NormalizeCode(code)] = true
	}

	courses := make([]*model.Course, 0, len(_courses))
	for i, c := range _courses {
		c.Code = strings.TrimSpace(c.Code)
		c.Instructor = strings.TrimSpace(c.Instructor)
		// Header is line 1
		line := i + 2
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: line %d (%s): %v", ErrInvalidCourse, line, c.Code, err)
		}
		if skip[allocator.NormalizeCode(c.Code)] {
			continue
		}
		courses = append(courses, c)
	}
	return courses, nil
}

package allocator

import (
	"errors"
	"fmt"

	"github.com/rhyrak/ta-allocator/pkg/model"
)

var ErrMalformedCourseCode = errors.New("malformed course code")

// Classify derives the tier from the first digit in the course code.
// "NE-650" is graduate because of the 6, not because 650 >= 600.
func Classify(code string) (model.CourseTier, error) {
	for _, r := range code {
		if r < '0' || r > '9' {
			continue
		}
		switch {
		case r == '1':
			return model.FirstYear, nil
		case r >= '2' && r <= '5':
			return model.Undergraduate, nil
		default:
			return model.Graduate, nil
		}
	}
	return 0, fmt.Errorf("%w: %q has no digit", ErrMalformedCourseCode, code)
}

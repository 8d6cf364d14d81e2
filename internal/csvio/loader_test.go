package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhyrak/ta-allocator/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coursesCSV = `Course;Instructor;Enrollment;Lecture_Sections;Lab_Sections;Unit_Weight
ECE150; Example Instructor; 450; 2; 6; 1.0
ECE 192;;300;1;0;0.5
ENGR450;Someone;80;1;0;0.5
`

func TestLoadCourses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(coursesCSV), 0o644))

	courses, err := LoadCourses(path, ';', []string{"ENGR 450"})
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, &model.Course{
		Code:            "ECE150",
		Instructor:      "Example Instructor",
		Enrollment:      450,
		LectureSections: 2,
		LabSections:     6,
		UnitWeight:      1.0,
	}, courses[0])
	assert.Equal(t, "ECE 192", courses[1].Code)
	assert.Equal(t, "", courses[1].Instructor)
	assert.Equal(t, 0, courses[1].LabSections)
}

func TestLoadCourses_MissingFile(t *testing.T) {
	_, err := LoadCourses(filepath.Join(t.TempDir(), "nope.csv"), ',', nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCourses_ValidationErrors(t *testing.T) {
	tests := map[string]string{
		"negative enrollment": "ECE150,A,-1,1,0,0.5\n",
		"zero unit weight":    "ECE150,A,10,1,0,0\n",
		"missing code":        ",A,10,1,0,0.5\n",
		"negative labs":       "ECE150,A,10,1,-2,0.5\n",
	}
	for name, row := range tests {
		t.Run(name, func(t *testing.T) {
			in := "Course,Instructor,Enrollment,Lecture_Sections,Lab_Sections,Unit_Weight\n" + row
			_, err := ReadCourses(strings.NewReader(in), ',', nil)
			require.ErrorIs(t, err, ErrInvalidCourse)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReadCourses_BadNumber(t *testing.T) {
	in := "Course,Instructor,Enrollment,Lecture_Sections,Lab_Sections,Unit_Weight\nECE150,A,many,1,0,0.5\n"
	_, err := ReadCourses(strings.NewReader(in), ',', nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCourse)
}

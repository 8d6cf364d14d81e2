package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/ta-allocator/internal/batch"
	"github.com/rhyrak/ta-allocator/pkg/model"
	"github.com/shopspring/decimal"
)

// ExportAllocations formats the batch results into AllocationCSVRow structs
// and writes them to the CSV file at path, replacing any existing file.
func ExportAllocations(results []batch.Result, path string, delim rune) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteAllocations(out, results, delim); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}

// WriteAllocations writes the CSV form of results to w.
func WriteAllocations(w io.Writer, results []batch.Result, delim rune) error {
	rows := formatResults(results)
	writer := csv.NewWriter(w)
	writer.Comma = delim
	return gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer))
}

// ExportAllocationsString returns the comma separated form of results.
func ExportAllocationsString(results []batch.Result) (string, error) {
	rows := formatResults(results)
	return gocsv.MarshalString(&rows)
}

// PrintAllocations prints an aligned table of the results followed by a
// summary line. Failed courses are listed with their error.
func PrintAllocations(w io.Writer, results []batch.Result) {
	fmt.Fprintf(w, "%-12s %-24s %10s %8s %8s\n", "Course", "Instructor", "Enrollment", "TA", "Lab")
	fmt.Fprintln(w, strings.Repeat("-", 66))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%-12s %-24s %10d   error: %v\n", r.Course.Code, r.Course.Instructor, r.Course.Enrollment, r.Err)
			continue
		}
		mark := ""
		if r.Overridden {
			mark = " *"
		}
		fmt.Fprintf(w, "%-12s %-24s %10d %8s %8s%s\n",
			r.Course.Code, r.Course.Instructor, r.Course.Enrollment,
			tenths(r.Allocation.Total), tenths(r.Allocation.LabAmount), mark)
	}
	s := batch.Summarize(results)
	fmt.Fprintf(w, "\nEvaluated: %d  Failed: %d  Overridden (*): %d  Zero: %d  Total TA: %s  Lab: %s\n",
		s.Evaluated, s.Failed, s.Overridden, s.Suppressed, tenths(s.TotalTA), tenths(s.TotalLab))
}

func formatResults(results []batch.Result) []*model.AllocationCSVRow {
	rows := []*model.AllocationCSVRow{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		rows = append(rows, &model.AllocationCSVRow{
			CourseCode:    r.Course.Code,
			Instructor:    r.Course.Instructor,
			Enrollment:    r.Course.Enrollment,
			TAAllocation:  tenths(r.Allocation.Total),
			LabAllocation: tenths(r.Allocation.LabAmount),
		})
	}
	return rows
}

func tenths(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}

package batch

import "github.com/shopspring/decimal"

type Summary struct {
	Evaluated  int
	Failed     int
	Suppressed int // evaluated to a zero allocation
	Overridden int
	TotalTA    float64
	TotalLab   float64
}

// Summarize totals a batch. Allocations are summed as decimals so the
// totals carry no float drift.
func Summarize(results []Result) Summary {
	var s Summary
	total, lab := decimal.Zero, decimal.Zero
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Evaluated++
		if r.Overridden {
			s.Overridden++
		}
		if r.Allocation.IsZero() {
			s.Suppressed++
		}
		total = total.Add(decimal.NewFromFloat(r.Allocation.Total))
		lab = lab.Add(decimal.NewFromFloat(r.Allocation.LabAmount))
	}
	s.TotalTA, _ = total.Float64()
	s.TotalLab, _ = lab.Float64()
	return s
}

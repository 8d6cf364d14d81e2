// Package batch runs the allocator over a list of courses.
package batch

import (
	"context"

	"github.com/google/uuid"
	"github.com/rhyrak/ta-allocator/internal/allocator"
	"github.com/rhyrak/ta-allocator/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one course. Err is set when the course could
// not be evaluated; the rest of the batch is unaffected.
type Result struct {
	Course     *model.Course
	Base       model.CourseAllocation // before special cases
	Allocation model.CourseAllocation
	Overridden bool
	Err        error
}

type Options struct {
	// Workers > 1 evaluates courses concurrently. Output order is always
	// input order.
	Workers int
	Logger  *zap.Logger
}

// Run evaluates every course and returns one Result per course in input
// order. It only fails when ctx is done.
func Run(ctx context.Context, calc *allocator.Calculator, courses []*model.Course, opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))
	calc = calc.WithLogger(calc.Logger().With(zap.String("run_id", runID)))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	log.Info("evaluating courses", zap.Int("courses", len(courses)), zap.Int("workers", workers))

	results := make([]Result, len(courses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range courses {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(calc, c, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluate(calc *allocator.Calculator, c *model.Course, log *zap.Logger) Result {
	r := Result{Course: c}
	base, err := calc.Allocate(c)
	if err != nil {
		log.Warn("course skipped", zap.String("course", c.Code), zap.Error(err))
		r.Err = err
		return r
	}
	r.Base = base
	r.Allocation = base
	if _, ok := calc.Overrides().Lookup(c.Code); ok {
		r.Overridden = true
		r.Allocation = calc.ApplyOverride(c, base)
	}
	return r
}

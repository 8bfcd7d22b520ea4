package engine

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/staffsight/staffsight/core/model"
)

// Engine converts raw activity counters into utilization scores and bench
// tiers. It holds only policy, no per-run state, so a single Engine can be
// shared across runs.
type Engine struct {
	cfg Config
}

// New returns an Engine for the given policy. The configuration must have
// been validated beforehand.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Score derives activity score, utilization and bench status for every
// employee in the batch. The input is not mutated and the result depends only
// on the input: calling Score twice yields identical output.
func (e *Engine) Score(employees []model.Employee) ([]model.ScoredEmployee, error) {
	scored := make([]model.ScoredEmployee, 0, len(employees))
	for i, emp := range employees {
		if emp.ID == "" {
			return nil, fmt.Errorf("%w: row %d has no identifier", model.ErrInputShape, i)
		}
		tasks, meetings, decisions, docs := emp.Counters()
		score := e.cfg.TaskWeight*tasks + e.cfg.MeetingWeight*meetings +
			e.cfg.DecisionWeight*decisions + e.cfg.DocWeight*docs
		scored = append(scored, model.ScoredEmployee{Employee: emp, ActivityScore: score})
	}

	denom := e.denominator(scored)
	for i := range scored {
		u := 0.0
		if denom > 0 {
			u = scored[i].ActivityScore / denom * 100
		}
		if u > 100 {
			u = 100
		}
		scored[i].Utilization = u
		scored[i].BenchStatus = model.ClassifyUtilization(u)
	}
	return scored, nil
}

// denominator returns the normalization reference for the batch. A zero
// return means every score in the batch is zero and all utilizations must
// resolve to zero. In a mostly-idle batch the chosen quantile can be 0 while
// active employees exist; the percentile policy then falls back to the batch
// max so activity is never erased.
func (e *Engine) denominator(scored []model.ScoredEmployee) float64 {
	max := 0.0
	for _, s := range scored {
		if s.ActivityScore > max {
			max = s.ActivityScore
		}
	}
	if e.cfg.Normalization == NormalizePercentile && len(scored) > 0 {
		xs := make([]float64, len(scored))
		for i, s := range scored {
			xs[i] = s.ActivityScore
		}
		sort.Float64s(xs)
		if q := stat.Quantile(e.cfg.Quantile, stat.Empirical, xs, nil); q > 0 {
			return q
		}
	}
	return max
}

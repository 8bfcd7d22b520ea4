package match

import (
	"math"
	"sort"

	"github.com/staffsight/staffsight/core/model"
)

// Matcher allocates under-utilized employees to project openings using a
// greedy per-project ranking. It holds no per-run state.
type Matcher struct{}

// New returns a Matcher.
func New() *Matcher {
	return &Matcher{}
}

// candidate is one eligibility pool member during a run. idx is the original
// row position and serves as the final tie-break so output ordering is fully
// deterministic.
type candidate struct {
	idx      int
	emp      model.ScoredEmployee
	skills   model.SkillSet
	assigned bool
}

// Assign pairs eligible employees with projects. Eligible means on bench or
// below the utilization threshold. Projects are processed in input order;
// within a project, candidates are ranked by larger skill overlap, then lower
// utilization, then lower cost, then original row order. An employee is never
// assigned twice in one run and a project never receives more than its
// requested headcount. Projects that end short of headcount are reported in
// the second return value.
func (m *Matcher) Assign(scored []model.ScoredEmployee, projects []model.Project, threshold float64) ([]model.Assignment, []model.UnfilledRequirement) {
	pool := make([]*candidate, 0, len(scored))
	for i, s := range scored {
		if s.BenchStatus != model.OnBench && s.Utilization >= threshold {
			continue
		}
		pool = append(pool, &candidate{idx: i, emp: s, skills: model.ParseSkills(s.Skills)})
	}

	assignments := make([]model.Assignment, 0)
	unfilled := make([]model.UnfilledRequirement, 0)

	for _, p := range projects {
		if p.Positions <= 0 {
			continue
		}
		required := model.ParseSkills(p.RequiredSkills)

		free := 0
		ranked := make([]rankedCandidate, 0, len(pool))
		for _, c := range pool {
			if c.assigned {
				continue
			}
			free++
			overlap := c.skills.Intersect(required)
			if len(overlap) == 0 {
				continue
			}
			ranked = append(ranked, rankedCandidate{cand: c, overlap: overlap})
		}
		rank(ranked)

		filled := 0
		for _, rc := range ranked {
			if filled == p.Positions {
				break
			}
			rc.cand.assigned = true
			assignments = append(assignments, model.Assignment{
				EmployeeID:    rc.cand.emp.ID,
				Project:       p.Name,
				MatchedSkills: rc.overlap.Join(),
			})
			filled++
		}

		if filled < p.Positions {
			reason := model.ReasonInsufficientSkills
			if free == 0 {
				reason = model.ReasonNoCandidates
			}
			unfilled = append(unfilled, model.UnfilledRequirement{
				Project:   p.Name,
				Shortfall: p.Positions - filled,
				Reason:    reason,
			})
		}
	}
	return assignments, unfilled
}

type rankedCandidate struct {
	cand    *candidate
	overlap model.SkillSet
}

// rank orders candidates by the fixed tie-break chain: more matched skills,
// then lower utilization, then lower cost, then original row order. A missing
// cost ranks after any present cost at otherwise equal keys.
func rank(ranked []rankedCandidate) {
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if len(a.overlap) != len(b.overlap) {
			return len(a.overlap) > len(b.overlap)
		}
		if a.cand.emp.Utilization != b.cand.emp.Utilization {
			return a.cand.emp.Utilization < b.cand.emp.Utilization
		}
		ac, bc := costOf(a.cand.emp), costOf(b.cand.emp)
		if ac != bc {
			return ac < bc
		}
		return a.cand.idx < b.cand.idx
	})
}

func costOf(e model.ScoredEmployee) float64 {
	if e.Cost == nil {
		return math.Inf(1)
	}
	return *e.Cost
}

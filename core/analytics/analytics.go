package analytics

import (
	"fmt"
	"sort"

	"github.com/staffsight/staffsight/core/model"
)

// Role selects which dashboard view the recommendations target.
type Role string

const (
	RoleHRHead         Role = "hr_head"
	RoleProjectManager Role = "project_manager"
)

// Summary aggregates a scored batch for the KPI cards.
type Summary struct {
	Total             int     `json:"total"`
	OnBench           int     `json:"on_bench"`
	PartiallyUtilized int     `json:"partially_utilized"`
	FullyUtilized     int     `json:"fully_utilized"`
	MeanUtilization   float64 `json:"mean_utilization"`
}

// Summarize counts employees per bench tier and averages utilization.
func Summarize(scored []model.ScoredEmployee) Summary {
	s := Summary{Total: len(scored)}
	if len(scored) == 0 {
		return s
	}
	sum := 0.0
	for _, e := range scored {
		sum += e.Utilization
		switch e.BenchStatus {
		case model.OnBench:
			s.OnBench++
		case model.PartiallyUtilized:
			s.PartiallyUtilized++
		case model.FullyUtilized:
			s.FullyUtilized++
		}
	}
	s.MeanUtilization = sum / float64(len(scored))
	return s
}

// DeptUtilization is the mean utilization of one department.
type DeptUtilization struct {
	Dept            string  `json:"dept"`
	Headcount       int     `json:"headcount"`
	MeanUtilization float64 `json:"mean_utilization"`
}

// UtilizationByDept averages utilization per department. Results are sorted
// by department name so repeated runs render identically.
func UtilizationByDept(scored []model.ScoredEmployee) []DeptUtilization {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range scored {
		sums[e.Dept] += e.Utilization
		counts[e.Dept]++
	}
	out := make([]DeptUtilization, 0, len(sums))
	for dept, sum := range sums {
		out = append(out, DeptUtilization{
			Dept:            dept,
			Headcount:       counts[dept],
			MeanUtilization: sum / float64(counts[dept]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dept < out[j].Dept })
	return out
}

// Recommendations produces the role-specific advisory strings shown at the
// top of the dashboard. An empty slice means nothing is worth flagging.
func Recommendations(s Summary, role Role) []string {
	var recs []string
	switch role {
	case RoleProjectManager:
		if under := s.OnBench + s.PartiallyUtilized; under > 0 {
			recs = append(recs, fmt.Sprintf("%d of your reportees are underutilized. Consider reskilling or reassigning.", under))
		}
	default:
		if s.OnBench > 0 {
			recs = append(recs, "Some employees are on bench. Consider reassigning or reskilling them.")
		}
		if s.Total > 0 && s.MeanUtilization < 50 {
			recs = append(recs, "Overall utilization is low. Identify underperforming departments.")
		}
	}
	return recs
}

// SkillGap lists the project-demanded skills one employee lacks.
type SkillGap struct {
	EmployeeID string   `json:"employee_id"`
	Missing    []string `json:"missing"`
}

// SkillGaps reports, for every employee in the eligibility pool, the skills
// demanded across all projects that the employee does not have. topN
// truncates each list to its first entries in lexical order; zero keeps the
// full list.
func SkillGaps(scored []model.ScoredEmployee, projects []model.Project, threshold float64, topN int) []SkillGap {
	demanded := make(model.SkillSet)
	for _, p := range projects {
		for tok := range model.ParseSkills(p.RequiredSkills) {
			demanded[tok] = struct{}{}
		}
	}

	var gaps []SkillGap
	for _, e := range scored {
		if e.BenchStatus != model.OnBench && e.Utilization >= threshold {
			continue
		}
		missing := model.ParseSkills(e.Skills).Diff(demanded).Sorted()
		if len(missing) == 0 {
			continue
		}
		if topN > 0 && len(missing) > topN {
			missing = missing[:topN]
		}
		gaps = append(gaps, SkillGap{EmployeeID: e.ID, Missing: missing})
	}
	return gaps
}

// FilterByIDs keeps the scored rows whose ID appears in ids, preserving the
// input order. It backs the project-manager reportee view.
func FilterByIDs(scored []model.ScoredEmployee, ids []string) []model.ScoredEmployee {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	var out []model.ScoredEmployee
	for _, e := range scored {
		if _, ok := keep[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

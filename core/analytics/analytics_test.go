package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsight/staffsight/core/model"
)

func scoredEmployee(id, dept string, utilization float64) model.ScoredEmployee {
	return model.ScoredEmployee{
		Employee:    model.Employee{ID: id, Dept: dept},
		Utilization: utilization,
		BenchStatus: model.ClassifyUtilization(utilization),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]model.ScoredEmployee{
		scoredEmployee("A", "eng", 0),
		scoredEmployee("B", "eng", 30),
		scoredEmployee("C", "ops", 90),
	})
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.OnBench)
	assert.Equal(t, 1, s.PartiallyUtilized)
	assert.Equal(t, 1, s.FullyUtilized)
	assert.InDelta(t, 40, s.MeanUtilization, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.MeanUtilization)
}

func TestUtilizationByDeptSortedByName(t *testing.T) {
	out := UtilizationByDept([]model.ScoredEmployee{
		scoredEmployee("A", "ops", 40),
		scoredEmployee("B", "eng", 10),
		scoredEmployee("C", "eng", 30),
	})
	require.Len(t, out, 2)
	assert.Equal(t, "eng", out[0].Dept)
	assert.Equal(t, 2, out[0].Headcount)
	assert.InDelta(t, 20, out[0].MeanUtilization, 1e-9)
	assert.Equal(t, "ops", out[1].Dept)
}

func TestRecommendationsHRHead(t *testing.T) {
	recs := Recommendations(Summary{Total: 4, OnBench: 1, MeanUtilization: 30}, RoleHRHead)
	require.Len(t, recs, 2)

	recs = Recommendations(Summary{Total: 4, FullyUtilized: 4, MeanUtilization: 80}, RoleHRHead)
	assert.Empty(t, recs)
}

func TestRecommendationsProjectManager(t *testing.T) {
	recs := Recommendations(Summary{Total: 5, OnBench: 2, PartiallyUtilized: 1}, RoleProjectManager)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "3 of your reportees")
}

func TestSkillGaps(t *testing.T) {
	scored := []model.ScoredEmployee{
		scoredEmployee("idle", "eng", 10),
		scoredEmployee("busy", "eng", 90),
	}
	scored[0].Skills = "python"
	scored[1].Skills = "python"
	projects := []model.Project{
		{Name: "P1", RequiredSkills: "python,kubernetes"},
		{Name: "P2", RequiredSkills: "terraform"},
	}

	gaps := SkillGaps(scored, projects, 50, 0)
	require.Len(t, gaps, 1)
	assert.Equal(t, "idle", gaps[0].EmployeeID)
	assert.Equal(t, []string{"kubernetes", "terraform"}, gaps[0].Missing)
}

func TestSkillGapsTopN(t *testing.T) {
	scored := []model.ScoredEmployee{scoredEmployee("idle", "eng", 0)}
	projects := []model.Project{{Name: "P1", RequiredSkills: "a,b,c,d"}}

	gaps := SkillGaps(scored, projects, 50, 2)
	require.Len(t, gaps, 1)
	assert.Equal(t, []string{"a", "b"}, gaps[0].Missing)
}

func TestFilterByIDs(t *testing.T) {
	scored := []model.ScoredEmployee{
		scoredEmployee("A", "eng", 10),
		scoredEmployee("B", "eng", 20),
		scoredEmployee("C", "ops", 30),
	}
	out := FilterByIDs(scored, []string{"C", "A"})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].ID)
	assert.Equal(t, "C", out[1].ID)
}

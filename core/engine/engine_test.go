package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsight/staffsight/core/model"
)

func defaultConfig() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

func TestScoreMaxScorerGetsFullUtilization(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score([]model.Employee{
		{ID: "A", TasksCompleted: 10, Skills: "python,sql"},
		{ID: "B", Skills: "java"},
	})
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.InDelta(t, 100, scored[0].Utilization, 1e-9)
	assert.Equal(t, model.FullyUtilized, scored[0].BenchStatus)
	assert.Zero(t, scored[1].Utilization)
	assert.Equal(t, model.OnBench, scored[1].BenchStatus)
}

func TestScoreWeights(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score([]model.Employee{
		{ID: "A", TasksCompleted: 1, MeetingHours: 1, DecisionsMade: 1, DocsUpdated: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scored[0].ActivityScore, 1e-9)
}

func TestScoreAllZeroBatch(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score([]model.Employee{{ID: "A"}, {ID: "B"}, {ID: "C"}})
	require.NoError(t, err)
	for _, s := range scored {
		assert.Zero(t, s.Utilization, "employee %s", s.ID)
		assert.Equal(t, model.OnBench, s.BenchStatus)
	}
}

func TestScoreUtilizationBounds(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score([]model.Employee{
		{ID: "A", TasksCompleted: 1000, MeetingHours: 500},
		{ID: "B", TasksCompleted: -5, DocsUpdated: 3},
		{ID: "C", DecisionsMade: 0.5},
	})
	require.NoError(t, err)
	for _, s := range scored {
		assert.GreaterOrEqual(t, s.Utilization, 0.0)
		assert.LessOrEqual(t, s.Utilization, 100.0)
		assert.GreaterOrEqual(t, s.ActivityScore, 0.0)
	}
}

func TestScoreIdempotent(t *testing.T) {
	eng := New(defaultConfig())
	in := []model.Employee{
		{ID: "A", TasksCompleted: 4, MeetingHours: 2},
		{ID: "B", TasksCompleted: 8, DocsUpdated: 1},
	}
	first, err := eng.Score(in)
	require.NoError(t, err)
	second, err := eng.Score(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreEveryEmployeeClassified(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score([]model.Employee{
		{ID: "A", TasksCompleted: 10},
		{ID: "B", TasksCompleted: 4},
		{ID: "C", TasksCompleted: 1},
	})
	require.NoError(t, err)
	for _, s := range scored {
		switch s.BenchStatus {
		case model.OnBench, model.PartiallyUtilized, model.FullyUtilized:
		default:
			t.Errorf("employee %s unclassified: %q", s.ID, s.BenchStatus)
		}
	}
}

func TestScoreRejectsRowWithoutID(t *testing.T) {
	eng := New(defaultConfig())
	_, err := eng.Score([]model.Employee{{ID: "A"}, {TasksCompleted: 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInputShape))
}

func TestScoreEmptyBatch(t *testing.T) {
	eng := New(defaultConfig())
	scored, err := eng.Score(nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestPercentileNormalizationDampensOutlier(t *testing.T) {
	cfg := defaultConfig()
	cfg.Normalization = NormalizePercentile
	perc := New(cfg)
	base := New(defaultConfig())

	// One extreme outlier and a cluster of ordinary workers. The batch is
	// large enough that the 95th percentile falls inside the cluster.
	in := []model.Employee{{ID: "outlier", TasksCompleted: 1000}}
	for i := 0; i < 20; i++ {
		in = append(in, model.Employee{
			ID:             fmt.Sprintf("w%d", i),
			TasksCompleted: float64(10 + i%3),
		})
	}
	pScored, err := perc.Score(in)
	require.NoError(t, err)
	bScored, err := base.Score(in)
	require.NoError(t, err)

	// Percentile scaling should lift the cluster well above the max-based
	// result while still clipping the outlier to 100.
	assert.Greater(t, pScored[1].Utilization, bScored[1].Utilization)
	assert.InDelta(t, 100, pScored[0].Utilization, 1e-9)
	for _, s := range pScored {
		assert.LessOrEqual(t, s.Utilization, 100.0)
	}
}

func TestPercentileNormalizationMostlyIdleBatch(t *testing.T) {
	cfg := defaultConfig()
	cfg.Normalization = NormalizePercentile
	eng := New(cfg)

	// The 95th percentile of this batch is 0, but the one active employee
	// must still come out fully utilized, not benched.
	in := []model.Employee{{ID: "active", TasksCompleted: 100}}
	for i := 0; i < 30; i++ {
		in = append(in, model.Employee{ID: fmt.Sprintf("idle%d", i)})
	}
	scored, err := eng.Score(in)
	require.NoError(t, err)

	assert.InDelta(t, 100, scored[0].Utilization, 1e-9)
	assert.Equal(t, model.FullyUtilized, scored[0].BenchStatus)
	for _, s := range scored[1:] {
		assert.Zero(t, s.Utilization, "employee %s", s.ID)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Normalization = "median"
	assert.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Quantile = 1.5
	assert.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.TaskWeight = -1
	assert.Error(t, cfg.Validate())
}

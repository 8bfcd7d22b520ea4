package metrics

import (
	"time"

	"github.com/google/uuid"
)

// RunResult summarizes one scoring-plus-matching run for observability
// purposes. Sinks receive it once per completed run.
type RunResult struct {
	RunID             uuid.UUID
	Employees         int
	OnBench           int
	PartiallyUtilized int
	FullyUtilized     int
	MeanUtilization   float64
	Projects          int
	Assignments       int
	UnfilledPositions int
	Duration          time.Duration
	Time              time.Time
}

// RunRecorder records completed runs for observability purposes.
type RunRecorder interface {
	RecordRun(r RunResult) error
}

// NopSink discards everything.
type NopSink struct{}

// RecordRun implements RunRecorder.
func (NopSink) RecordRun(RunResult) error { return nil }

// MultiSink fans a run result out to several sinks. The first error is
// returned, but every sink is attempted.
type MultiSink struct {
	sinks []RunRecorder
}

// NewMultiSink creates a MultiSink over the given sinks.
func NewMultiSink(sinks ...RunRecorder) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordRun implements RunRecorder.
func (m *MultiSink) RecordRun(r RunResult) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordRun(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

package model

// BenchStatus classifies an employee by utilization tier.
type BenchStatus string

const (
	OnBench           BenchStatus = "On Bench"
	PartiallyUtilized BenchStatus = "Partially Utilized"
	FullyUtilized     BenchStatus = "Fully Utilized"
)

// Employee represents one row of the activity table as supplied by the caller.
type Employee struct {
	ID             string
	Dept           string
	TasksCompleted float64
	MeetingHours   float64
	DecisionsMade  float64
	DocsUpdated    float64

	// Skills is the raw free-text skill list, comma or semicolon separated.
	Skills string

	// Cost is the employee's chargeable cost. Nil when the source table has
	// no cost column.
	Cost *float64
}

// Counters returns the four activity counters with negative values clamped
// to zero. Missing columns arrive as zero values already.
func (e Employee) Counters() (tasks, meetings, decisions, docs float64) {
	return clampZero(e.TasksCompleted), clampZero(e.MeetingHours),
		clampZero(e.DecisionsMade), clampZero(e.DocsUpdated)
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ScoredEmployee is an Employee with the fields derived by the utilization
// engine. The derived fields are only meaningful on values returned by
// engine.Score; they must be recomputed whenever a raw counter changes.
type ScoredEmployee struct {
	Employee

	ActivityScore float64
	// Utilization is the normalized activity score in [0,100].
	Utilization float64
	BenchStatus BenchStatus
}

// ClassifyUtilization maps a utilization value to its bench tier. Boundary
// values fall into the higher tier: 20 is partial, 50 is full.
func ClassifyUtilization(u float64) BenchStatus {
	switch {
	case u < 20:
		return OnBench
	case u < 50:
		return PartiallyUtilized
	default:
		return FullyUtilized
	}
}

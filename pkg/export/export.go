// Package export renders run outputs as CSV or JSON for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/staffsight/staffsight/core/model"
)

// Result bundles the outputs of one full run.
type Result struct {
	Scored      []model.ScoredEmployee      `json:"scored"`
	Assignments []model.Assignment          `json:"assignments"`
	Unfilled    []model.UnfilledRequirement `json:"unfilled"`
}

// WriteJSON writes the full run result to w in JSON format.
func WriteJSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// WriteScoredCSV writes the scored employee table to w.
func WriteScoredCSV(w io.Writer, scored []model.ScoredEmployee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "dept", "activity_score", "utilization", "bench_status"}); err != nil {
		return err
	}
	for _, s := range scored {
		rec := []string{
			s.ID,
			s.Dept,
			strconv.FormatFloat(s.ActivityScore, 'f', -1, 64),
			strconv.FormatFloat(s.Utilization, 'f', 2, 64),
			string(s.BenchStatus),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAssignmentsCSV writes the assignment table to w.
func WriteAssignmentsCSV(w io.Writer, assignments []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"employee_id", "project", "matched_skills"}); err != nil {
		return err
	}
	for _, a := range assignments {
		if err := cw.Write([]string{a.EmployeeID, a.Project, a.MatchedSkills}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUnfilledCSV writes the unfilled requirement table to w.
func WriteUnfilledCSV(w io.Writer, unfilled []model.UnfilledRequirement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"project", "shortfall", "reason"}); err != nil {
		return err
	}
	for _, u := range unfilled {
		rec := []string{u.Project, strconv.Itoa(u.Shortfall), string(u.Reason)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package tabular parses the CSV tables the core operates on. It sits on the
// caller side of the core contract: bad cells are repaired with defaults
// while structurally broken tables fail with model.ErrInputShape.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/staffsight/staffsight/core/model"
)

// header maps normalized column names to their index. Lookup accepts
// aliases so both snake_case field names and legacy export headers work.
type header map[string]int

func newHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[normalize(name)] = i
	}
	return h
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// index returns the position of the first alias present, or -1.
func (h header) index(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := h[a]; ok {
			return i
		}
	}
	return -1
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// floatField parses a numeric cell. Empty or unparsable cells default to 0.
func floatField(record []string, i int) float64 {
	v, err := strconv.ParseFloat(field(record, i), 64)
	if err != nil {
		return 0
	}
	return v
}

// intField parses an integer cell. Empty or unparsable cells default to 0.
func intField(record []string, i int) int {
	raw := field(record, i)
	v, err := strconv.Atoi(raw)
	if err != nil {
		// Spreadsheet exports often render integers as "3.0".
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}

func readAll(r io.Reader) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInputShape, err)
	}
	return records, nil
}

// ReadEmployees parses the employee activity table. The id column is
// mandatory; every other column falls back to a zero value when absent.
func ReadEmployees(r io.Reader) ([]model.Employee, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	h := newHeader(records[0])
	idIdx := h.index("id", "employee", "employee_id")
	if idIdx < 0 {
		return nil, fmt.Errorf("%w: no employee identifier column", model.ErrInputShape)
	}
	deptIdx := h.index("dept", "department")
	tasksIdx := h.index("tasks_completed", "tasks")
	meetIdx := h.index("meeting_duration", "meeting_hours", "meetings")
	decIdx := h.index("decisions_made", "decisions")
	docsIdx := h.index("docs_updated", "documents_updated", "docs")
	skillsIdx := h.index("skills")
	costIdx := h.index("cost")

	employees := make([]model.Employee, 0, len(records)-1)
	for _, rec := range records[1:] {
		emp := model.Employee{
			ID:             field(rec, idIdx),
			Dept:           field(rec, deptIdx),
			TasksCompleted: floatField(rec, tasksIdx),
			MeetingHours:   floatField(rec, meetIdx),
			DecisionsMade:  floatField(rec, decIdx),
			DocsUpdated:    floatField(rec, docsIdx),
			Skills:         field(rec, skillsIdx),
		}
		if raw := field(rec, costIdx); raw != "" {
			if cost, err := strconv.ParseFloat(raw, 64); err == nil && cost >= 0 {
				emp.Cost = &cost
			}
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// ReadProjects parses the project openings table.
func ReadProjects(r io.Reader) ([]model.Project, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	h := newHeader(records[0])
	nameIdx := h.index("name", "project", "project_name")
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: no project name column", model.ErrInputShape)
	}
	skillsIdx := h.index("required_skills", "skills")
	posIdx := h.index("positions_required", "positions", "headcount")

	projects := make([]model.Project, 0, len(records)-1)
	for _, rec := range records[1:] {
		projects = append(projects, model.Project{
			Name:           field(rec, nameIdx),
			RequiredSkills: field(rec, skillsIdx),
			Positions:      intField(rec, posIdx),
		})
	}
	return projects, nil
}

// ReadIDs parses a one-column table of employee IDs, e.g. a project
// manager's reportee list.
func ReadIDs(r io.Reader) ([]string, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	h := newHeader(records[0])
	idx := h.index("id", "employee", "employee_id")
	if idx < 0 {
		return nil, fmt.Errorf("%w: no employee identifier column", model.ErrInputShape)
	}
	ids := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if id := field(rec, idx); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// LoadEmployees reads the employee table from a CSV file.
func LoadEmployees(path string) ([]model.Employee, error) {
	return loadFile(path, ReadEmployees)
}

// LoadProjects reads the project table from a CSV file.
func LoadProjects(path string) ([]model.Project, error) {
	return loadFile(path, ReadProjects)
}

// LoadIDs reads an ID list from a CSV file.
func LoadIDs(path string) ([]string, error) {
	return loadFile(path, ReadIDs)
}

func loadFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Package dashboard exposes the run outputs over HTTP for the rendering
// layer. The core stays stateless: every request recomputes from the tables
// the handler was built with.
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/staffsight/staffsight/core/analytics"
	"github.com/staffsight/staffsight/core/engine"
	"github.com/staffsight/staffsight/core/match"
	"github.com/staffsight/staffsight/core/model"
)

// Tables is the input data one handler serves.
type Tables struct {
	Employees []model.Employee
	Projects  []model.Project
	// Reportees restricts the view to the listed IDs when non-empty.
	Reportees []string
}

// Options tunes the computed views.
type Options struct {
	Threshold float64
	Role      analytics.Role
	TopSkills int
}

// Handler serves the dashboard endpoints.
type Handler struct {
	eng     *engine.Engine
	matcher *match.Matcher
	tables  Tables
	opts    Options
}

// NewHandler builds the dashboard handler over the given tables.
func NewHandler(eng *engine.Engine, matcher *match.Matcher, tables Tables, opts Options) *Handler {
	return &Handler{eng: eng, matcher: matcher, tables: tables, opts: opts}
}

// Mux returns a ServeMux with all dashboard routes registered.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scored", h.handleScored)
	mux.HandleFunc("/api/assignments", h.handleAssignments)
	mux.HandleFunc("/api/summary", h.handleSummary)
	return mux
}

func (h *Handler) score(w http.ResponseWriter) ([]model.ScoredEmployee, bool) {
	scored, err := h.eng.Score(h.tables.Employees)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	}
	if len(h.tables.Reportees) > 0 {
		scored = analytics.FilterByIDs(scored, h.tables.Reportees)
	}
	return scored, true
}

func (h *Handler) handleScored(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	scored, ok := h.score(w)
	if !ok {
		return
	}
	writeJSON(w, scoredView(scored))
}

func (h *Handler) handleAssignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	scored, ok := h.score(w)
	if !ok {
		return
	}
	assignments, unfilled := h.matcher.Assign(scored, h.tables.Projects, h.opts.Threshold)
	writeJSON(w, map[string]any{
		"assignments": assignments,
		"unfilled":    unfilled,
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	scored, ok := h.score(w)
	if !ok {
		return
	}
	summary := analytics.Summarize(scored)
	writeJSON(w, map[string]any{
		"summary":         summary,
		"departments":     analytics.UtilizationByDept(scored),
		"recommendations": analytics.Recommendations(summary, h.opts.Role),
		"skill_gaps":      analytics.SkillGaps(scored, h.tables.Projects, h.opts.Threshold, h.opts.TopSkills),
	})
}

// scoredRow is the wire shape of one scored employee.
type scoredRow struct {
	ID            string  `json:"id"`
	Dept          string  `json:"dept"`
	ActivityScore float64 `json:"activity_score"`
	Utilization   float64 `json:"utilization"`
	BenchStatus   string  `json:"bench_status"`
	Skills        string  `json:"skills"`
}

func scoredView(scored []model.ScoredEmployee) []scoredRow {
	rows := make([]scoredRow, len(scored))
	for i, s := range scored {
		rows[i] = scoredRow{
			ID:            s.ID,
			Dept:          s.Dept,
			ActivityScore: s.ActivityScore,
			Utilization:   s.Utilization,
			BenchStatus:   string(s.BenchStatus),
			Skills:        s.Skills,
		}
	}
	return rows
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

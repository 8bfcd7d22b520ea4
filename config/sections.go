package config

import (
	"fmt"

	"github.com/staffsight/staffsight/core/analytics"
)

// DataConfig points at the tabular input files.
type DataConfig struct {
	// Employees is the path to the employee activity CSV.
	Employees string `json:"employees"`
	// Projects is the path to the project openings CSV.
	Projects string `json:"projects"`
	// Reportees optionally restricts the view to the listed employee IDs,
	// one per row.
	Reportees string `json:"reportees"`
}

// Validate checks mandatory fields.
func (c DataConfig) Validate() error {
	if c.Employees == "" {
		return fmt.Errorf("data.employees is required")
	}
	if c.Projects == "" {
		return fmt.Errorf("data.projects is required")
	}
	return nil
}

// AnalyticsConfig tunes the dashboard aggregations.
type AnalyticsConfig struct {
	// Role selects the recommendation view: "hr_head" or "project_manager".
	Role string `json:"role"`
	// TopSkills truncates each skill gap list; zero keeps the full list.
	TopSkills int `json:"top_skills"`
}

// SetDefaults applies sane defaults.
func (c *AnalyticsConfig) SetDefaults() {
	if c.Role == "" {
		c.Role = string(analytics.RoleHRHead)
	}
}

// Validate checks the role and truncation values.
func (c AnalyticsConfig) Validate() error {
	switch analytics.Role(c.Role) {
	case analytics.RoleHRHead, analytics.RoleProjectManager:
	default:
		return fmt.Errorf("unknown role %q", c.Role)
	}
	if c.TopSkills < 0 {
		return fmt.Errorf("top_skills must be non-negative")
	}
	return nil
}

// APIConfig defines the dashboard HTTP endpoint.
type APIConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

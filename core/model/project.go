package model

// Project represents one project opening row.
type Project struct {
	Name string
	// RequiredSkills is free text using the same delimiter convention as
	// Employee.Skills.
	RequiredSkills string
	// Positions is the requested headcount. Negative values are treated as
	// zero by the matcher.
	Positions int
}

// Assignment pairs one employee with one project for a single matching run.
type Assignment struct {
	EmployeeID string `json:"employee_id"`
	Project    string `json:"project"`
	// MatchedSkills lists the overlapping skills, sorted and comma joined so
	// identical inputs always serialize identically.
	MatchedSkills string `json:"matched_skills"`
}

// ShortfallReason explains why a project could not be fully staffed.
type ShortfallReason string

const (
	ReasonNoCandidates       ShortfallReason = "no candidates"
	ReasonInsufficientSkills ShortfallReason = "insufficient skill-aligned candidates"
)

// UnfilledRequirement reports a project that ended a matching run below its
// requested headcount.
type UnfilledRequirement struct {
	Project   string          `json:"project"`
	Shortfall int             `json:"shortfall"`
	Reason    ShortfallReason `json:"reason"`
}

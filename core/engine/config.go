package engine

import "fmt"

// Normalization selects how raw activity scores are scaled to [0,100].
const (
	// NormalizeMax divides by the highest score in the batch.
	NormalizeMax = "max"
	// NormalizePercentile divides by a high quantile of the batch's score
	// distribution and clips to 100, so a single outlier does not compress
	// everyone else to near zero.
	NormalizePercentile = "percentile"
)

// Config defines the scoring policy loaded from configuration.
type Config struct {
	// Activity counter weights. They are policy constants, not inferred.
	TaskWeight     float64 `json:"task_weight"`
	MeetingWeight  float64 `json:"meeting_weight"`
	DecisionWeight float64 `json:"decision_weight"`
	DocWeight      float64 `json:"doc_weight"`

	// Normalization is "max" (default) or "percentile".
	Normalization string `json:"normalization"`
	// Quantile is the reference quantile for percentile normalization.
	Quantile float64 `json:"quantile"`
}

// SetDefaults applies the baseline scoring policy.
func (c *Config) SetDefaults() {
	if c.TaskWeight == 0 && c.MeetingWeight == 0 && c.DecisionWeight == 0 && c.DocWeight == 0 {
		c.TaskWeight = 0.4
		c.MeetingWeight = 0.3
		c.DecisionWeight = 0.2
		c.DocWeight = 0.1
	}
	if c.Normalization == "" {
		c.Normalization = NormalizeMax
	}
	if c.Quantile == 0 {
		c.Quantile = 0.95
	}
}

// Validate checks the policy fields.
func (c Config) Validate() error {
	if c.Normalization != NormalizeMax && c.Normalization != NormalizePercentile {
		return fmt.Errorf("unknown normalization %q", c.Normalization)
	}
	if c.Quantile <= 0 || c.Quantile > 1 {
		return fmt.Errorf("quantile must be in (0,1], got %v", c.Quantile)
	}
	for _, w := range []float64{c.TaskWeight, c.MeetingWeight, c.DecisionWeight, c.DocWeight} {
		if w < 0 {
			return fmt.Errorf("activity weights must be non-negative")
		}
	}
	return nil
}

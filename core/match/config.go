package match

import "fmt"

// Config defines matching parameters loaded from configuration.
type Config struct {
	// UtilizationThreshold is the cutoff below which a non-benched employee
	// still joins the eligibility pool.
	UtilizationThreshold float64 `json:"utilization_threshold"`
}

// SetDefaults applies the baseline matching policy.
func (c *Config) SetDefaults() {
	if c.UtilizationThreshold == 0 {
		c.UtilizationThreshold = 50
	}
}

// Validate checks the threshold range.
func (c Config) Validate() error {
	if c.UtilizationThreshold < 0 || c.UtilizationThreshold > 100 {
		return fmt.Errorf("utilization_threshold must be in [0,100], got %v", c.UtilizationThreshold)
	}
	return nil
}

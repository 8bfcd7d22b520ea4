// Package match implements the assignment stage: a deterministic greedy
// allocation of the eligibility pool to project openings with capacity
// limits and unfilled-requirement reporting. The allocation is intentionally
// per-project greedy rather than globally optimal, so every pairing can be
// explained by the ranking of a single project's candidates.
package match

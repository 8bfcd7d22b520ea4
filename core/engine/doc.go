// Package engine implements the utilization scoring stage: a weighted
// activity score per employee, batch normalization to [0,100] and bench tier
// classification. It is the first stage of the pipeline and has no
// dependency on the matcher.
package engine

package model

import "errors"

// ErrInputShape marks an input table the pipeline refuses to process: ragged
// rows, missing identifier columns, and similar structural damage. Data
// quality problems inside a well-formed row never trigger it; those are
// repaired with defaults.
var ErrInputShape = errors.New("malformed input table")

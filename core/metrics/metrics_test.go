package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	calls int
	err   error
}

func (s *recordingSink) RecordRun(RunResult) error {
	s.calls++
	return s.err
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	sink := NewMultiSink(a, b)
	assert.NoError(t, sink.RecordRun(RunResult{}))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestMultiSinkReturnsFirstErrorButTriesAll(t *testing.T) {
	errA := errors.New("a failed")
	a := &recordingSink{err: errA}
	b := &recordingSink{err: errors.New("b failed")}
	sink := NewMultiSink(a, b)
	assert.Equal(t, errA, sink.RecordRun(RunResult{}))
	assert.Equal(t, 1, b.calls)
}

func TestNopSink(t *testing.T) {
	assert.NoError(t, NopSink{}.RecordRun(RunResult{}))
}

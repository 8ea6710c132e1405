// Package softassert collects assertion outcomes without halting the
// running test, so a single test can report several independent failures
// at its checkpoint instead of stopping at the first one.
package softassert

import (
	"fmt"
	"sync"
)

// Result is one recorded comparison.
type Result struct {
	Passed  bool
	Message string
}

// TB is the subset of testing.TB the checker reports through.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// Checker accumulates soft-assertion results. Safe for concurrent use.
type Checker struct {
	mu      sync.Mutex
	results []Result
}

// New returns an empty checker.
func New() *Checker {
	return &Checker{}
}

// Equal records a comparison of expected against actual. Returns whether it
// passed.
func (c *Checker) Equal(expected, actual, label string) bool {
	passed := expected == actual
	msg := label
	if !passed {
		msg = fmt.Sprintf("%s: expected %q, got %q", label, expected, actual)
	}
	c.record(passed, msg)
	return passed
}

// True records a boolean condition. Returns cond.
func (c *Checker) True(cond bool, label string) bool {
	c.record(cond, label)
	return cond
}

func (c *Checker) record(passed bool, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, Result{Passed: passed, Message: msg})
}

// Results returns a copy of everything recorded so far.
func (c *Checker) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}

// Failures returns the messages of every failed assertion.
func (c *Checker) Failures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var failures []string
	for _, r := range c.results {
		if !r.Passed {
			failures = append(failures, r.Message)
		}
	}
	return failures
}

// Report flushes every recorded failure into the test and clears the
// checker. This is the explicit checkpoint where soft assertions become
// test failures.
func (c *Checker) Report(t TB) {
	t.Helper()
	for _, msg := range c.Failures() {
		t.Errorf("soft assertion failed: %s", msg)
	}
	c.Reset()
}

// Reset discards all recorded results.
func (c *Checker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
}

// Package testfixtures provides in-memory collaborators for service and
// usecase tests: a controllable clock, repositories backed by maps and a
// transaction manager with rollback.
package testfixtures

import (
	"sync"
	"time"
)

// Clock controllable time source
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock set to start
func NewClock(start time.Time) *Clock {
	return &Clock{current: start}
}

// Now returns the clock's current instant
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}

// NopLogger discards log lines
type NopLogger struct{}

func (NopLogger) Debug(format string, v ...interface{}) {}
func (NopLogger) Info(format string, v ...interface{})  {}
func (NopLogger) Warn(format string, v ...interface{})  {}
func (NopLogger) Error(format string, v ...interface{}) {}

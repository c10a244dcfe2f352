// Package stopwatch provides a tiny timing helper for the command-line
// driver's benchmark mode.
package stopwatch

import (
	"fmt"
	"time"
)

// Stopwatch measures elapsed wall-clock time between Start and Stop.
type Stopwatch struct {
	started time.Time
	elapsed time.Duration
}

// New returns a Stopwatch that has not yet been started.
func New() *Stopwatch { return &Stopwatch{} }

// Start records the current time as t0. Calling Start again resets t0.
func (s *Stopwatch) Start() *Stopwatch {
	s.started = time.Now()
	return s
}

// Stop records the elapsed time since the last Start and returns it.
func (s *Stopwatch) Stop() time.Duration {
	s.elapsed = time.Since(s.started)
	return s.elapsed
}

// Elapsed returns the duration recorded by the last Stop.
func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }

// String renders the elapsed duration, switching units so small and
// large timings both stay readable.
func (s *Stopwatch) String() string {
	switch {
	case s.elapsed < time.Microsecond:
		return fmt.Sprintf("%dns", s.elapsed.Nanoseconds())
	case s.elapsed < time.Millisecond:
		return fmt.Sprintf("%.2fus", float64(s.elapsed.Nanoseconds())/1e3)
	case s.elapsed < time.Second:
		return fmt.Sprintf("%.2fms", float64(s.elapsed.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", s.elapsed.Seconds())
	}
}

// Time runs f and returns how long it took.
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/hammer/internal/common/clock Clock

// Clock abstracts wall time so event stamps and cue waits can be driven from tests
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// After fires once d has elapsed
	After(d time.Duration) <-chan time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After waits for d on the system clock
func (c *DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

package task

import (
	"fmt"
	"time"
)

// IDSource hands out identifiers for new tasks.
type IDSource interface {
	Next() ID
}

// ClockIDs derives IDs from the wall clock in milliseconds. When the clock
// has not advanced since the previous call (or went backwards) the previous
// ID plus one is returned, so IDs from one source are strictly increasing.
type ClockIDs struct {
	now  func() time.Time
	last ID
}

// NewClockIDs returns a clock based source. A nil now uses time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (c *ClockIDs) Next() ID {
	id := max(ID(c.now().UnixMilli()), c.last+1)
	c.last = id
	return id
}

// CounterIDs returns 1, 2, 3, ...
type CounterIDs struct {
	n ID
}

func (c *CounterIDs) Next() ID {
	c.n++
	return c.n
}

// IDStrategy names an IDSource implementation.
type IDStrategy string

const (
	IDStrategyClock   IDStrategy = "clock"
	IDStrategyCounter IDStrategy = "counter"
)

// IsValid reports whether s names a known strategy.
func (s IDStrategy) IsValid() bool {
	switch s {
	case IDStrategyClock, IDStrategyCounter:
		return true
	default:
		return false
	}
}

// NewIDSource builds the source for a strategy.
func NewIDSource(s IDStrategy) (IDSource, error) {
	switch s {
	case IDStrategyClock:
		return NewClockIDs(nil), nil
	case IDStrategyCounter:
		return &CounterIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", s)
	}
}

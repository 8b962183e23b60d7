package schedule

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// CuttingPolicy selects how cutting capacity left over on a machine-day is
// treated. The line currently runs exclusive days; shared days existed in
// earlier iterations of the process and remain selectable.
type CuttingPolicy string

const (
	// PolicyExclusive gives a machine-day to exactly one group, even when
	// that group finishes with capacity to spare.
	PolicyExclusive CuttingPolicy = "exclusive"
	// PolicyShared lets later groups consume a day's leftover per-type
	// capacity.
	PolicyShared CuttingPolicy = "shared"
)

// DefaultHorizonDays bounds every forward day-scan in the engine.
const DefaultHorizonDays = 365

// SchedulingContext carries everything a planning run depends on. It is
// owned by the caller; the engine holds no mutable state of its own, so two
// runs over an identical context produce identical plans.
type SchedulingContext struct {
	Lines       []*domain.OrderLine
	Capacity    CapacityRegistry
	Today       time.Time
	Policy      CuttingPolicy
	HorizonDays int
}

// NewContext builds a context with the default policy and horizon.
func NewContext(lines []*domain.OrderLine, capacity CapacityRegistry, today time.Time) SchedulingContext {
	return SchedulingContext{
		Lines:       lines,
		Capacity:    capacity,
		Today:       DateOnly(today),
		Policy:      PolicyExclusive,
		HorizonDays: DefaultHorizonDays,
	}
}

func (c SchedulingContext) horizon() int {
	if c.HorizonDays > 0 {
		return c.HorizonDays
	}
	return DefaultHorizonDays
}

func (c SchedulingContext) policy() CuttingPolicy {
	if c.Policy == "" {
		return PolicyExclusive
	}
	return c.Policy
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

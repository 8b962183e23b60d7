package schedule

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// InsertionRequest describes a prospective group's cutting load: required
// pieces by material and structure type.
type InsertionRequest struct {
	Pieces map[domain.Material]map[domain.StructureType]int

	// NotBefore floors the search; the reference date is used when zero.
	NotBefore time.Time
}

// CuttingDaysNeeded returns the consecutive business days the request needs
// on material m's machine: the maximum over present types of
// ceil(pieces / daily limit).
func CuttingDaysNeeded(capacity CapacityRegistry, m domain.Material, pieces map[domain.StructureType]int) (int, error) {
	days := 0
	for _, st := range domain.StructureTypes {
		n := pieces[st]
		if n <= 0 {
			continue
		}
		limit, err := capacity.CuttingLimit(m, st)
		if err != nil {
			return 0, err
		}
		d := (n + limit - 1) / limit
		if d > days {
			days = d
		}
	}
	return days, nil
}

// FindEarliestStart computes the earliest start date at which the requested
// group's cutting fits without moving any committed group's cutting days.
// Because machine-days are exclusive, a start date is feasible exactly when,
// for every material the group needs, the required consecutive business days
// are unoccupied on that material's machine.
//
// The scan is bounded by the context horizon; exhausting it is an explicit
// InfeasibleInsertionError, never a silent append past the last scheduled
// day.
func FindEarliestStart(sctx SchedulingContext, req InsertionRequest) (time.Time, error) {
	plan, err := ComputePlan(sctx)
	if err != nil {
		return time.Time{}, err
	}
	return findEarliestStart(sctx, plan.Cutting.Occupancy, req)
}

func findEarliestStart(
	sctx SchedulingContext,
	occupancy map[domain.Material]map[time.Time]int64,
	req InsertionRequest,
) (time.Time, error) {
	needed := make(map[domain.Material]int)
	for _, m := range domain.Materials {
		days, err := CuttingDaysNeeded(sctx.Capacity, m, req.Pieces[m])
		if err != nil {
			return time.Time{}, err
		}
		if days > 0 {
			needed[m] = days
		}
	}

	from := NextBusinessDay(sctx.Today)
	if !req.NotBefore.IsZero() {
		from = maxDate(from, NextBusinessDay(req.NotBefore))
	}
	if len(needed) == 0 {
		return from, nil
	}

	candidate := from
	for i := 0; i <= sctx.horizon(); i++ {
		if windowFree(occupancy, needed, candidate) {
			return candidate, nil
		}
		candidate = AdvanceBusinessDay(candidate)
	}
	return time.Time{}, &InfeasibleInsertionError{HorizonDays: sctx.horizon(), From: from}
}

// windowFree reports whether, for every needed material, the run of business
// days starting at candidate is free of other groups' exclusive cutting.
func windowFree(occupancy map[domain.Material]map[time.Time]int64, needed map[domain.Material]int, candidate time.Time) bool {
	for _, m := range domain.Materials {
		days, ok := needed[m]
		if !ok {
			continue
		}
		d := candidate
		for i := 0; i < days; i++ {
			if _, busy := occupancy[m][d]; busy {
				return false
			}
			d = AdvanceBusinessDay(d)
		}
	}
	return true
}

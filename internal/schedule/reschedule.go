package schedule

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// RescheduleGroup moves an existing group's start date to target and
// recomputes the whole plan over the modified collection.
//
// Pre-check: the normalized target must not be exclusively held, on every
// material the group needs, by a different group's cutting. A conflict on
// only some of the needed materials does not block the move; the group's own
// prior days never block it. On rejection nothing is mutated.
//
// On success the returned line slice is a copy of the context's lines with
// the group's start date updated; recomputation is deterministic and
// order-based, so other groups shift only insofar as the moved group
// displaces them in processing order.
func RescheduleGroup(sctx SchedulingContext, groupID int64, target time.Time) (*Plan, []*domain.OrderLine, error) {
	target = NextBusinessDay(target)

	current, err := ComputePlan(sctx)
	if err != nil {
		return nil, nil, err
	}

	var group *Group
	for _, g := range BuildGroups(sctx.Lines) {
		if g.ID == groupID {
			group = g
			break
		}
	}
	if group == nil {
		return nil, nil, &UnknownGroupError{GroupID: groupID}
	}

	conflicts := make(map[domain.Material]int64)
	materialsNeeded := 0
	for _, m := range domain.Materials {
		if !group.UsesMaterial(m) {
			continue
		}
		materialsNeeded++
		if holder, busy := current.Cutting.Occupancy[m][target]; busy && holder != groupID {
			conflicts[m] = holder
		}
	}
	if materialsNeeded > 0 && len(conflicts) == materialsNeeded {
		return nil, nil, &RescheduleRejectedError{GroupID: groupID, Date: target, Conflicts: conflicts}
	}

	moved := make([]*domain.OrderLine, len(sctx.Lines))
	for i, l := range sctx.Lines {
		if l.GroupID == groupID {
			copied := *l
			copied.StartDate = target
			moved[i] = &copied
		} else {
			moved[i] = l
		}
	}

	next := sctx
	next.Lines = moved
	plan, err := ComputePlan(next)
	if err != nil {
		return nil, nil, err
	}
	return plan, moved, nil
}

package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// CapacityConfigError reports a (material, structure type) pair with no
// usable registered capacity. The engine fails closed instead of borrowing
// another type's limit.
type CapacityConfigError struct {
	Material  domain.Material
	Structure domain.StructureType // empty for production capacity
}

func (e *CapacityConfigError) Error() string {
	if e.Structure == "" {
		return fmt.Sprintf("capacity: no production capacity registered for material %s", e.Material)
	}
	return fmt.Sprintf("capacity: no cutting capacity registered for material %s, structure %s", e.Material, e.Structure)
}

// InfeasibleInsertionError reports that the insertion planner exhausted its
// bounded search horizon without finding a feasible start date.
type InfeasibleInsertionError struct {
	HorizonDays int
	From        time.Time
}

func (e *InfeasibleInsertionError) Error() string {
	return fmt.Sprintf("insertion: no feasible start date within %d business days of %s",
		e.HorizonDays, e.From.Format("2006-01-02"))
}

// RescheduleRejectedError reports a move whose target date is exclusively
// held by another group on every material the moving group needs. The
// schedule is left unchanged.
type RescheduleRejectedError struct {
	GroupID   int64
	Date      time.Time
	Conflicts map[domain.Material]int64 // material -> occupying group
}

func (e *RescheduleRejectedError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, m := range domain.Materials {
		if gid, ok := e.Conflicts[m]; ok {
			parts = append(parts, fmt.Sprintf("%s held by group %d", m, gid))
		}
	}
	return fmt.Sprintf("reschedule: group %d cannot move to %s: %s",
		e.GroupID, e.Date.Format("2006-01-02"), strings.Join(parts, ", "))
}

// UnknownGroupError reports a reschedule request naming a group with no lines.
type UnknownGroupError struct {
	GroupID int64
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("reschedule: no lines found for group %d", e.GroupID)
}

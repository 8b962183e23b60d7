package schedule

import (
	"testing"

	"github.com/afontana/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cuttingRun(t *testing.T, sctx SchedulingContext) *CuttingResult {
	t.Helper()
	res, err := ScheduleCutting(sctx, BuildGroups(sctx.Lines))
	require.NoError(t, err)
	return res
}

func TestScheduleCutting_MachineDayIsExclusive(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		// Two pieces each: either group alone leaves most of the day's
		// hinged capacity unused, but the day still belongs to one group.
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 5, mon),
		newLine(2, 2, domain.MaterialA, domain.StructureHinged, 2, 5, mon),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, res.Entries, 2)
	assert.Equal(t, mon, res.Entries[0].Date)
	assert.Equal(t, int64(1), res.Entries[0].GroupID)
	assert.Equal(t, date(2025, 6, 17), res.Entries[1].Date, "second group waits for the next machine-day")
	assert.Equal(t, int64(2), res.Entries[1].GroupID)

	assert.Equal(t, int64(1), res.Occupancy[domain.MaterialA][mon])
	assert.Equal(t, int64(2), res.Occupancy[domain.MaterialA][date(2025, 6, 17)])
}

func TestScheduleCutting_TypeCapsIndependentWithinDay(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 15, 15, mon),
		newLine(2, 1, domain.MaterialA, domain.StructureSliding, 10, 0, mon),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	// Full hinged and full sliding limits on the same machine, same day.
	require.Len(t, res.Entries, 1)
	assert.Equal(t, map[domain.StructureType]int{
		domain.StructureHinged:  15,
		domain.StructureSliding: 10,
	}, res.Entries[0].Pieces)
	assert.Equal(t, mon, res.Finish[GroupMaterial{1, domain.MaterialA}])
}

func TestScheduleCutting_MultiDaySpill(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialB, domain.StructureSliding, 12, 0, mon),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, res.Entries, 2)
	assert.Equal(t, 10, res.Entries[0].Pieces[domain.StructureSliding])
	assert.Equal(t, 2, res.Entries[1].Pieces[domain.StructureSliding])
	assert.Equal(t, date(2025, 6, 17), res.Finish[GroupMaterial{1, domain.MaterialB}])
}

func TestScheduleCutting_MachinesRunIndependently(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 4, mon),
		newLine(2, 2, domain.MaterialB, domain.StructureSliding, 2, 0, mon),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	// Different machines: both groups cut on Monday.
	require.Len(t, res.Entries, 2)
	assert.Equal(t, mon, res.Entries[0].Date)
	assert.Equal(t, mon, res.Entries[1].Date)
}

func TestScheduleCutting_StartDateAnchors(t *testing.T) {
	mon := date(2025, 6, 16)
	wed := date(2025, 6, 18)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureSliding, 2, 0, wed),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, res.Entries, 1)
	assert.Equal(t, wed, res.Entries[0].Date, "machine is free Monday but the group starts Wednesday")
}

func TestScheduleCutting_WeekendStartNormalized(t *testing.T) {
	sat := date(2025, 6, 21)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureSliding, 2, 0, sat),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), date(2025, 6, 16)))

	require.Len(t, res.Entries, 1)
	assert.Equal(t, date(2025, 6, 23), res.Entries[0].Date)
}

func TestScheduleCutting_MissingCapacityFailsClosed(t *testing.T) {
	mon := date(2025, 6, 16)
	capacity := DefaultCapacity()
	delete(capacity.Cutting[domain.MaterialB], domain.StructureSpecial)

	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialB, domain.StructureSpecial, 3, 0, mon),
	}
	_, err := ScheduleCutting(NewContext(lines, capacity, mon), BuildGroups(lines))
	var cerr *CapacityConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestScheduleCutting_SharedPolicyFillsLeftoverCapacity(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 5, mon),
		newLine(2, 2, domain.MaterialA, domain.StructureHinged, 2, 5, mon),
	}
	sctx := NewContext(lines, DefaultCapacity(), mon)
	sctx.Policy = PolicyShared
	res := cuttingRun(t, sctx)

	// Both groups fit in Monday's hinged budget of 15.
	require.Len(t, res.Entries, 2)
	assert.Equal(t, mon, res.Entries[0].Date)
	assert.Equal(t, mon, res.Entries[1].Date)
	assert.Empty(t, res.Occupancy[domain.MaterialA], "shared days are not exclusive to anyone")
}

func TestScheduleCutting_SharedPolicyRespectsTypeCap(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 10, 10, mon),
		newLine(2, 2, domain.MaterialA, domain.StructureHinged, 10, 10, mon),
	}
	sctx := NewContext(lines, DefaultCapacity(), mon)
	sctx.Policy = PolicyShared
	res := cuttingRun(t, sctx)

	// Group 1 takes 10, group 2 gets the remaining 5 on Monday and spills
	// the rest to Tuesday.
	require.Len(t, res.Entries, 3)
	assert.Equal(t, 10, res.Entries[0].Pieces[domain.StructureHinged])
	assert.Equal(t, 5, res.Entries[1].Pieces[domain.StructureHinged])
	assert.Equal(t, date(2025, 6, 17), res.Entries[2].Date)
	assert.Equal(t, 5, res.Entries[2].Pieces[domain.StructureHinged])
}

func TestScheduleCutting_ZeroPieceMaterialSkipped(t *testing.T) {
	mon := date(2025, 6, 16)
	// Hinged line with glass units but no pieces: production work only.
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 0, 12, mon),
	}
	res := cuttingRun(t, NewContext(lines, DefaultCapacity(), mon))

	assert.Empty(t, res.Entries)
	_, ok := res.Finish[GroupMaterial{1, domain.MaterialA}]
	assert.False(t, ok)
}

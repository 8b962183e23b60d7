package schedule

import (
	"testing"

	"github.com/afontana/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productionRun(t *testing.T, sctx SchedulingContext) (*CuttingResult, *ProductionResult) {
	t.Helper()
	groups := BuildGroups(sctx.Lines)
	cutting, err := ScheduleCutting(sctx, groups)
	require.NoError(t, err)
	production, err := ScheduleProduction(sctx, groups, cutting)
	require.NoError(t, err)
	return cutting, production
}

func TestScheduleProduction_GatedByCuttingFinish(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 20, mon),
	}
	cutting, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	assert.Equal(t, mon, cutting.Finish[GroupMaterial{1, domain.MaterialA}])
	require.Len(t, production.Entries, 1)
	// Cutting finishes Monday; production starts the next business day.
	assert.Equal(t, date(2025, 6, 17), production.Entries[0].Date)
	assert.Equal(t, 1800, production.Entries[0].Minutes)
	assert.Equal(t, 2700, production.Entries[0].Residual)
	assert.Equal(t, date(2025, 6, 17), production.LineFinish[1])
}

func TestScheduleProduction_DayRollover(t *testing.T) {
	mon := date(2025, 6, 16)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialB, domain.StructureSliding, 12, 0, mon),
	}
	_, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	// Cutting runs Mon+Tue; 5760 min against a 3000/day pool runs Wed+Thu.
	require.Len(t, production.Entries, 2)
	assert.Equal(t, date(2025, 6, 18), production.Entries[0].Date)
	assert.Equal(t, 3000, production.Entries[0].Minutes)
	assert.Equal(t, 0, production.Entries[0].Residual)
	assert.Equal(t, date(2025, 6, 19), production.Entries[1].Date)
	assert.Equal(t, 2760, production.Entries[1].Minutes)
	assert.Equal(t, 240, production.Entries[1].Residual)
	assert.Equal(t, date(2025, 6, 19), production.GroupFinish[1])
}

func TestScheduleProduction_WorkConservingSharedDay(t *testing.T) {
	mon := date(2025, 6, 16)
	tue := date(2025, 6, 17)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 10, mon), // cut Mon, 900 min
		newLine(2, 2, domain.MaterialA, domain.StructureHinged, 0, 10, tue), // glass only, 900 min
	}
	_, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	// Both lines become eligible Tuesday; capacity group 1 leaves unused is
	// immediately available to group 2 on the same day.
	require.Len(t, production.Entries, 2)
	assert.Equal(t, tue, production.Entries[0].Date)
	assert.Equal(t, int64(1), production.Entries[0].LineID)
	assert.Equal(t, 3600, production.Entries[0].Residual)

	assert.Equal(t, tue, production.Entries[1].Date)
	assert.Equal(t, int64(2), production.Entries[1].LineID)
	assert.Equal(t, 2700, production.Entries[1].Residual)
}

func TestScheduleProduction_SameDayDeterministicSelection(t *testing.T) {
	mon := date(2025, 6, 16)
	// One group, two lines, both gated by the same cutting finish. The
	// lower line id must always be served first.
	lines := []*domain.OrderLine{
		newLine(2, 1, domain.MaterialA, domain.StructureHinged, 2, 10, mon),
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 2, 10, mon),
	}
	_, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, production.Entries, 2)
	assert.Equal(t, int64(1), production.Entries[0].LineID)
	assert.Equal(t, int64(2), production.Entries[1].LineID)
	assert.Equal(t, production.Entries[0].Date, production.Entries[1].Date)
	assert.Equal(t, 4500-900, production.Entries[0].Residual)
	assert.Equal(t, 4500-1800, production.Entries[1].Residual)
}

func TestScheduleProduction_NoCuttingGateWithoutPieces(t *testing.T) {
	mon := date(2025, 6, 16)
	wed := date(2025, 6, 18)
	// Glass-only hinged line: no cutting, so only the start date gates it.
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 0, 10, wed),
	}
	_, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, production.Entries, 1)
	assert.Equal(t, wed, production.Entries[0].Date)
}

func TestScheduleProduction_CursorJumpsToNextConstraint(t *testing.T) {
	mon := date(2025, 6, 16)
	nextMon := date(2025, 6, 23)
	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialA, domain.StructureHinged, 0, 10, mon),
		newLine(2, 2, domain.MaterialA, domain.StructureHinged, 0, 10, nextMon),
	}
	_, production := productionRun(t, NewContext(lines, DefaultCapacity(), mon))

	require.Len(t, production.Entries, 2)
	assert.Equal(t, mon, production.Entries[0].Date)
	// No idle-day entries in between: the cursor jumps straight to the
	// second line's start constraint.
	assert.Equal(t, nextMon, production.Entries[1].Date)
}

func TestScheduleProduction_MissingPoolFailsClosed(t *testing.T) {
	mon := date(2025, 6, 16)
	capacity := DefaultCapacity()
	delete(capacity.Production, domain.MaterialB)

	lines := []*domain.OrderLine{
		newLine(1, 1, domain.MaterialB, domain.StructureSliding, 2, 0, mon),
	}
	sctx := NewContext(lines, capacity, mon)
	groups := BuildGroups(lines)
	cutting, err := ScheduleCutting(sctx, groups)
	require.NoError(t, err)
	_, err = ScheduleProduction(sctx, groups, cutting)
	var cerr *CapacityConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, domain.MaterialB, cerr.Material)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/repository"
	"github.com/afontana/shopfloor/internal/schedule"
	"github.com/afontana/shopfloor/internal/testutil"
)

func newPlanService(t *testing.T) (PlanService, OrderService, repository.OrderLineRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	lines := repository.NewSQLiteOrderLineRepo(database)
	seq := repository.NewSQLiteSequenceRepo(database)
	orders := NewOrderService(lines, seq)
	plans := NewPlanService(lines, orders, schedule.DefaultCapacity(), schedule.PolicyExclusive, schedule.DefaultHorizonDays)
	return plans, orders, lines
}

func createGroup(t *testing.T, orders OrderService, start time.Time, specs ...contract.LineSpec) int64 {
	t.Helper()
	req := contract.NewNewGroupRequest("Acme Glazing", "Office front", start)
	req.Lines = specs
	resp, err := orders.CreateGroup(context.Background(), req)
	require.NoError(t, err)
	return resp.GroupID
}

func TestPlanService_ComputeWritesBackDeliveries(t *testing.T) {
	plans, orders, lines := newPlanService(t)
	ctx := context.Background()

	groupID := createGroup(t, orders, monday(),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureHinged, Pieces: 2, GlassUnits: 20})

	today := monday()
	resp, err := plans.Compute(ctx, contract.PlanRequest{Today: &today})
	require.NoError(t, err)

	// Cut Monday, produce Tuesday, deliver three business days later.
	require.Len(t, resp.Cutting, 1)
	assert.Equal(t, monday(), resp.Cutting[0].Date)
	require.Len(t, resp.Production, 1)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), resp.Production[0].Date)
	require.Len(t, resp.Deliveries, 1)
	expected := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, resp.Deliveries[0].EstimatedDelivery)

	stored, err := lines.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	require.NotNil(t, stored[0].EstimatedDelivery)
	assert.Equal(t, expected, *stored[0].EstimatedDelivery)
}

func TestPlanService_ComputeEmptyStore(t *testing.T) {
	plans, _, _ := newPlanService(t)

	today := monday()
	resp, err := plans.Compute(context.Background(), contract.PlanRequest{Today: &today})
	require.NoError(t, err)
	assert.Empty(t, resp.Cutting)
	assert.Empty(t, resp.Production)
	assert.Empty(t, resp.Deliveries)
}

func TestPlanService_FindSlotSkipsOccupiedDays(t *testing.T) {
	plans, orders, _ := newPlanService(t)
	ctx := context.Background()

	createGroup(t, orders, monday(),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10})

	today := monday()
	req := contract.SlotRequest{
		Lines: []contract.LineSpec{
			{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10},
		},
		Today: &today,
	}
	resp, err := plans.FindSlot(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), resp.StartDate)
	assert.Equal(t, map[domain.Material]int{domain.MaterialA: 1}, resp.DaysNeeded)
}

func TestPlanService_FindSlotHonorsNotBefore(t *testing.T) {
	plans, _, _ := newPlanService(t)

	today := monday()
	notBefore := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
	req := contract.SlotRequest{
		Lines: []contract.LineSpec{
			{Material: domain.MaterialB, Structure: domain.StructureHinged, Pieces: 4},
		},
		NotBefore: &notBefore,
		Today:     &today,
	}
	resp, err := plans.FindSlot(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, notBefore, resp.StartDate)
}

func TestPlanService_FindSlotRequiresLines(t *testing.T) {
	plans, _, _ := newPlanService(t)

	_, err := plans.FindSlot(context.Background(), contract.SlotRequest{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPlanService_InsertGroupAcceptsExplicitStart(t *testing.T) {
	plans, _, lines := newPlanService(t)
	ctx := context.Background()

	req := contract.NewNewGroupRequest("Acme Glazing", "Side entrance", monday())
	req.Lines = []contract.LineSpec{
		{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 5},
	}
	resp, err := plans.InsertGroup(ctx, req)
	require.NoError(t, err)

	stored, err := lines.ListByGroup(ctx, resp.GroupID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, monday(), stored[0].StartDate)
}

func TestPlanService_InsertGroupFindsSlot(t *testing.T) {
	plans, _, lines := newPlanService(t)
	ctx := context.Background()

	req := contract.NewGroupRequest{
		Client:  "Acme Glazing",
		Product: "Side entrance",
		Lines: []contract.LineSpec{
			{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 5},
		},
	}
	resp, err := plans.InsertGroup(ctx, req)
	require.NoError(t, err)

	stored, err := lines.ListByGroup(ctx, resp.GroupID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	start := stored[0].StartDate
	assert.NotEqual(t, time.Saturday, start.Weekday())
	assert.NotEqual(t, time.Sunday, start.Weekday())
	assert.False(t, start.Before(schedule.DateOnly(time.Now().UTC())))
}

func TestPlanService_MoveGroupPersistsNewStart(t *testing.T) {
	plans, orders, lines := newPlanService(t)
	ctx := context.Background()

	groupID := createGroup(t, orders, monday(),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10})

	today := monday()
	target := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	resp, err := plans.MoveGroup(ctx, contract.MoveRequest{GroupID: groupID, Target: target, Today: &today})
	require.NoError(t, err)
	assert.Equal(t, target, resp.StartDate)

	stored, err := lines.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, target, stored[0].StartDate)
	require.NotNil(t, stored[0].EstimatedDelivery)
}

func TestPlanService_MoveGroupNormalizesWeekend(t *testing.T) {
	plans, orders, lines := newPlanService(t)
	ctx := context.Background()

	groupID := createGroup(t, orders, monday(),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10})

	today := monday()
	saturday := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	resp, err := plans.MoveGroup(ctx, contract.MoveRequest{GroupID: groupID, Target: saturday, Today: &today})
	require.NoError(t, err)

	nextMonday := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, nextMonday, resp.StartDate)

	stored, err := lines.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, nextMonday, stored[0].StartDate)
}

func TestPlanService_MoveGroupRejectionLeavesStoreUntouched(t *testing.T) {
	plans, orders, lines := newPlanService(t)
	ctx := context.Background()

	createGroup(t, orders, monday(),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10})
	moving := createGroup(t, orders, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		contract.LineSpec{Material: domain.MaterialA, Structure: domain.StructureSliding, Pieces: 10})

	today := monday()
	_, err := plans.MoveGroup(ctx, contract.MoveRequest{GroupID: moving, Target: monday(), Today: &today})
	var rejected *schedule.RescheduleRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, moving, rejected.GroupID)

	stored, err := lines.ListByGroup(ctx, moving)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), stored[0].StartDate)
	assert.Nil(t, stored[0].EstimatedDelivery)
}

func TestPlanService_MoveGroupUnknown(t *testing.T) {
	plans, _, _ := newPlanService(t)

	today := monday()
	_, err := plans.MoveGroup(context.Background(), contract.MoveRequest{GroupID: 99, Target: monday(), Today: &today})
	var unknown *schedule.UnknownGroupError
	require.ErrorAs(t, err, &unknown)
}

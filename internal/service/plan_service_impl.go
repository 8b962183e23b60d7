package service

import (
	"context"
	"time"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/repository"
	"github.com/afontana/shopfloor/internal/schedule"
)

type planService struct {
	lines    repository.OrderLineRepo
	orders   OrderService
	capacity schedule.CapacityRegistry
	policy   schedule.CuttingPolicy
	horizon  int
}

func NewPlanService(
	lines repository.OrderLineRepo,
	orders OrderService,
	capacity schedule.CapacityRegistry,
	policy schedule.CuttingPolicy,
	horizonDays int,
) PlanService {
	return &planService{
		lines:    lines,
		orders:   orders,
		capacity: capacity,
		policy:   policy,
		horizon:  horizonDays,
	}
}

func (s *planService) context(lines []*domain.OrderLine, today time.Time) schedule.SchedulingContext {
	return schedule.SchedulingContext{
		Lines:       lines,
		Capacity:    s.capacity,
		Today:       schedule.DateOnly(today),
		Policy:      s.policy,
		HorizonDays: s.horizon,
	}
}

// Compute runs the full plan over the stored collection and writes each
// group's estimated delivery back onto its lines.
func (s *planService) Compute(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	today := time.Now().UTC()
	if req.Today != nil {
		today = *req.Today
	}

	lines, err := s.lines.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := schedule.ComputePlan(s.context(lines, today))
	if err != nil {
		return nil, err
	}
	if err := s.writeBackDeliveries(ctx, plan); err != nil {
		return nil, err
	}

	resp := contract.NewPlanResponse(plan)
	return &resp, nil
}

// FindSlot answers "when is the earliest this group could start" without
// committing anything and without moving any stored group.
func (s *planService) FindSlot(ctx context.Context, req contract.SlotRequest) (*contract.SlotResponse, error) {
	if len(req.Lines) == 0 {
		return nil, &domain.ValidationError{Field: "lines", Message: "at least one line is required"}
	}

	today := time.Now().UTC()
	if req.Today != nil {
		today = *req.Today
	}

	lines, err := s.lines.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	sctx := s.context(lines, today)
	insertion := schedule.InsertionRequest{Pieces: piecesByMaterial(req.Lines)}
	if req.NotBefore != nil {
		insertion.NotBefore = schedule.DateOnly(*req.NotBefore)
	}

	start, err := schedule.FindEarliestStart(sctx, insertion)
	if err != nil {
		return nil, err
	}

	needed := make(map[domain.Material]int)
	for _, m := range domain.Materials {
		days, err := schedule.CuttingDaysNeeded(s.capacity, m, insertion.Pieces[m])
		if err != nil {
			return nil, err
		}
		if days > 0 {
			needed[m] = days
		}
	}
	return &contract.SlotResponse{StartDate: start, DaysNeeded: needed}, nil
}

// InsertGroup creates a group at its requested start date, or at the
// earliest feasible slot when no start date is given.
func (s *planService) InsertGroup(ctx context.Context, req contract.NewGroupRequest) (*contract.NewGroupResponse, error) {
	if req.StartDate.IsZero() {
		slot, err := s.FindSlot(ctx, contract.SlotRequest{Lines: req.Lines})
		if err != nil {
			return nil, err
		}
		req.StartDate = slot.StartDate
	}
	return s.orders.CreateGroup(ctx, req)
}

// MoveGroup reschedules a group onto a new start date. The move is rejected
// without side effects when the target day is exclusively held, on every
// material the group needs, by other groups' cutting. On success the new
// start date and the refreshed delivery estimates are persisted.
func (s *planService) MoveGroup(ctx context.Context, req contract.MoveRequest) (*contract.MoveResponse, error) {
	today := time.Now().UTC()
	if req.Today != nil {
		today = *req.Today
	}

	lines, err := s.lines.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	plan, moved, err := schedule.RescheduleGroup(s.context(lines, today), req.GroupID, schedule.DateOnly(req.Target))
	if err != nil {
		return nil, err
	}

	var start time.Time
	for _, l := range moved {
		if l.GroupID == req.GroupID {
			start = l.StartDate
			break
		}
	}
	if err := s.lines.UpdateGroupStartDate(ctx, req.GroupID, start); err != nil {
		return nil, err
	}
	if err := s.writeBackDeliveries(ctx, plan); err != nil {
		return nil, err
	}

	return &contract.MoveResponse{
		GroupID:   req.GroupID,
		StartDate: start,
		Plan:      contract.NewPlanResponse(plan),
	}, nil
}

func (s *planService) writeBackDeliveries(ctx context.Context, plan *schedule.Plan) error {
	for _, d := range plan.Deliveries {
		if err := s.lines.UpdateEstimatedDelivery(ctx, d.GroupID, d.EstimatedDelivery); err != nil {
			return err
		}
	}
	return nil
}

// piecesByMaterial aggregates line specs into the cutting load shape the
// insertion planner consumes. Glass-only lines contribute no pieces.
func piecesByMaterial(specs []contract.LineSpec) map[domain.Material]map[domain.StructureType]int {
	pieces := make(map[domain.Material]map[domain.StructureType]int)
	for _, spec := range specs {
		if spec.Pieces <= 0 {
			continue
		}
		if pieces[spec.Material] == nil {
			pieces[spec.Material] = make(map[domain.StructureType]int)
		}
		pieces[spec.Material][spec.Structure] += spec.Pieces
	}
	return pieces
}

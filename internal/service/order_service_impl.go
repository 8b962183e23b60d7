package service

import (
	"context"
	"time"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/repository"
	"github.com/afontana/shopfloor/internal/schedule"
)

type orderService struct {
	lines repository.OrderLineRepo
	seq   repository.SequenceRepo
}

func NewOrderService(lines repository.OrderLineRepo, seq repository.SequenceRepo) OrderService {
	return &orderService{lines: lines, seq: seq}
}

// CreateGroup validates and persists a group of order lines. Every line is
// validated before any id is allocated, so a rejected request consumes no
// ids and writes nothing. Line ids are assigned in submission order.
func (s *orderService) CreateGroup(ctx context.Context, req contract.NewGroupRequest) (*contract.NewGroupResponse, error) {
	if len(req.Lines) == 0 {
		return nil, &domain.ValidationError{Field: "lines", Message: "at least one line is required"}
	}

	start := schedule.DateOnly(req.StartDate)
	now := time.Now().UTC()

	candidates := make([]*domain.OrderLine, 0, len(req.Lines))
	for _, spec := range req.Lines {
		l := &domain.OrderLine{
			Client:            req.Client,
			Product:           req.Product,
			Material:          spec.Material,
			Structure:         spec.Structure,
			Pieces:            spec.Pieces,
			GlassUnits:        spec.GlassUnits,
			RequiredMin:       domain.RequiredMinutes(spec.Material, spec.Structure, spec.Pieces, spec.GlassUnits),
			RequestedDelivery: req.RequestedDelivery,
			StartDate:         start,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		candidates = append(candidates, l)
	}

	groupID, err := s.seq.NextGroupID(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range candidates {
		id, err := s.seq.NextLineID(ctx)
		if err != nil {
			return nil, err
		}
		l.ID = id
		l.GroupID = groupID
		if err := s.lines.Create(ctx, l); err != nil {
			return nil, err
		}
	}

	return &contract.NewGroupResponse{GroupID: groupID, Lines: candidates}, nil
}

func (s *orderService) GetLine(ctx context.Context, id int64) (*domain.OrderLine, error) {
	return s.lines.GetByID(ctx, id)
}

func (s *orderService) ListAll(ctx context.Context) ([]*domain.OrderLine, error) {
	return s.lines.ListAll(ctx)
}

func (s *orderService) ListGroup(ctx context.Context, groupID int64) ([]*domain.OrderLine, error) {
	return s.lines.ListByGroup(ctx, groupID)
}

func (s *orderService) RemoveLine(ctx context.Context, id int64) error {
	if _, err := s.lines.GetByID(ctx, id); err != nil {
		return err
	}
	return s.lines.Delete(ctx, id)
}

func (s *orderService) RemoveGroup(ctx context.Context, groupID int64) error {
	existing, err := s.lines.ListByGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return &schedule.UnknownGroupError{GroupID: groupID}
	}
	return s.lines.DeleteGroup(ctx, groupID)
}

func (s *orderService) RemoveAll(ctx context.Context) (int64, error) {
	return s.lines.DeleteAll(ctx)
}

package service

import (
	"context"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
)

type OrderService interface {
	CreateGroup(ctx context.Context, req contract.NewGroupRequest) (*contract.NewGroupResponse, error)
	GetLine(ctx context.Context, id int64) (*domain.OrderLine, error)
	ListAll(ctx context.Context) ([]*domain.OrderLine, error)
	ListGroup(ctx context.Context, groupID int64) ([]*domain.OrderLine, error)
	RemoveLine(ctx context.Context, id int64) error
	RemoveGroup(ctx context.Context, groupID int64) error
	// RemoveAll empties the order book and returns the number of lines
	// removed. Id sequences keep counting from where they were.
	RemoveAll(ctx context.Context) (int64, error)
}

type PlanService interface {
	Compute(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	FindSlot(ctx context.Context, req contract.SlotRequest) (*contract.SlotResponse, error)
	InsertGroup(ctx context.Context, req contract.NewGroupRequest) (*contract.NewGroupResponse, error)
	MoveGroup(ctx context.Context, req contract.MoveRequest) (*contract.MoveResponse, error)
}

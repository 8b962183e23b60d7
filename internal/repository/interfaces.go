package repository

import (
	"context"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// OrderLineRepo is the persisted store for order lines. The scheduling
// engine treats it as an opaque read-modify-write pair.
type OrderLineRepo interface {
	Create(ctx context.Context, l *domain.OrderLine) error
	GetByID(ctx context.Context, id int64) (*domain.OrderLine, error)
	ListAll(ctx context.Context) ([]*domain.OrderLine, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.OrderLine, error)
	Update(ctx context.Context, l *domain.OrderLine) error
	// UpdateGroupStartDate moves every line of a group to the given start
	// date in one statement.
	UpdateGroupStartDate(ctx context.Context, groupID int64, start time.Time) error
	// UpdateEstimatedDelivery writes the schedulers' delivery annotation on
	// every line of a group.
	UpdateEstimatedDelivery(ctx context.Context, groupID int64, estimated time.Time) error
	Delete(ctx context.Context, id int64) error
	DeleteGroup(ctx context.Context, groupID int64) error
	// DeleteAll empties the store and reports how many lines were removed.
	// Sequences are untouched; ids are never reissued.
	DeleteAll(ctx context.Context) (int64, error)
}

// SequenceRepo allocates stable monotonically increasing identifiers.
// Values are assigned once and never reclaimed.
type SequenceRepo interface {
	NextLineID(ctx context.Context) (int64, error)
	NextGroupID(ctx context.Context) (int64, error)
}

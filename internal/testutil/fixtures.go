package testutil

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// LineOption mutates a fixture order line.
type LineOption func(*domain.OrderLine)

func WithClient(client string) LineOption {
	return func(l *domain.OrderLine) { l.Client = client }
}

func WithProduct(product string) LineOption {
	return func(l *domain.OrderLine) { l.Product = product }
}

func WithGlassUnits(n int) LineOption {
	return func(l *domain.OrderLine) {
		l.GlassUnits = n
		l.RequiredMin = domain.RequiredMinutes(l.Material, l.Structure, l.Pieces, n)
	}
}

func WithRequestedDelivery(d time.Time) LineOption {
	return func(l *domain.OrderLine) { l.RequestedDelivery = &d }
}

func WithStartDate(d time.Time) LineOption {
	return func(l *domain.OrderLine) { l.StartDate = d }
}

// NewTestLine builds a valid order line with derived required minutes, ready
// for repository Create.
func NewTestLine(id, groupID int64, m domain.Material, st domain.StructureType, pieces int, opts ...LineOption) *domain.OrderLine {
	now := time.Now().UTC()
	l := &domain.OrderLine{
		ID:        id,
		GroupID:   groupID,
		Client:    "Test Client",
		Product:   "Test Product",
		Material:  m,
		Structure: st,
		Pieces:    pieces,
		StartDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.RequiredMin = domain.RequiredMinutes(m, st, pieces, l.GlassUnits)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

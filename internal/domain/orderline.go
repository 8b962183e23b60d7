package domain

import (
	"strings"
	"time"
)

// Production-minute formula constants.
const (
	MinutesPerGlassUnit    = 90  // hinged lines
	MinutesPerPieceFixture = 30  // hinged lines, material B fixture step
	MinutesPerPieceOther   = 480 // sliding and special lines
)

// OrderLine is one schedulable unit within a group: a material, a structure
// type and a quantity. Lines are immutable after creation except for the
// group start date (moved by the reschedule operator) and the
// estimated-delivery annotation written back after planning.
type OrderLine struct {
	ID      int64
	GroupID int64
	Client  string
	Product string

	Material   Material
	Structure  StructureType
	Pieces     int
	GlassUnits int // meaningful for hinged lines only

	// RequiredMin is derived from the attributes above at creation time.
	RequiredMin int

	// RequestedDelivery is informational only, never a scheduling constraint.
	RequestedDelivery *time.Time

	// StartDate anchors the group's cutting phase. Shared by every line in
	// the group.
	StartDate time.Time

	EstimatedDelivery *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequiredMinutes computes the production minutes a line needs. Hinged lines
// run 90 minutes per glass unit, plus a 30-minute fixture step per piece on
// material B. Sliding and special lines run 480 minutes per piece regardless
// of material.
func RequiredMinutes(m Material, st StructureType, pieces, glassUnits int) int {
	switch st {
	case StructureHinged:
		min := glassUnits * MinutesPerGlassUnit
		if m == MaterialB {
			min += pieces * MinutesPerPieceFixture
		}
		return min
	default:
		return pieces * MinutesPerPieceOther
	}
}

// Validate checks the line before it is accepted for scheduling.
func (l *OrderLine) Validate() error {
	if strings.TrimSpace(l.Client) == "" {
		return &ValidationError{Field: "client", Message: "client is required"}
	}
	if strings.TrimSpace(l.Product) == "" {
		return &ValidationError{Field: "product", Message: "product is required"}
	}
	if _, err := ParseMaterial(string(l.Material)); err != nil {
		return err
	}
	if _, err := ParseStructureType(string(l.Structure)); err != nil {
		return err
	}
	if l.Pieces < 0 {
		return &ValidationError{Field: "pieces", Message: "piece count must not be negative"}
	}
	if l.GlassUnits < 0 {
		return &ValidationError{Field: "glass_units", Message: "glass unit count must not be negative"}
	}
	switch l.Structure {
	case StructureHinged:
		if l.Pieces == 0 && l.GlassUnits == 0 {
			return &ValidationError{Field: "pieces", Message: "hinged line needs pieces or glass units"}
		}
	default:
		if l.Pieces == 0 {
			return &ValidationError{Field: "pieces", Message: "piece count must be positive"}
		}
	}
	if l.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Message: "start date is required"}
	}
	return nil
}

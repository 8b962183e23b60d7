package contract

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// LineSpec is one order line as submitted by the caller. Required minutes
// are derived, never supplied.
type LineSpec struct {
	Material   domain.Material
	Structure  domain.StructureType
	Pieces     int
	GlassUnits int
}

// NewGroupRequest creates a group of order lines sharing client, product and
// start date.
type NewGroupRequest struct {
	Client            string
	Product           string
	StartDate         time.Time
	RequestedDelivery *time.Time
	Lines             []LineSpec
}

func NewNewGroupRequest(client, product string, start time.Time) NewGroupRequest {
	return NewGroupRequest{
		Client:    client,
		Product:   product,
		StartDate: start,
	}
}

type NewGroupResponse struct {
	GroupID int64
	Lines   []*domain.OrderLine
}

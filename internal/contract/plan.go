package contract

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/schedule"
)

// CuttingRow is one machine-day in the cutting program.
type CuttingRow struct {
	Date         time.Time
	GroupID      int64
	Client       string
	Product      string
	Material     domain.Material
	PiecesByType map[domain.StructureType]int
}

// ProductionRow is one (day, line, material) production allocation.
type ProductionRow struct {
	Date     time.Time
	GroupID  int64
	LineID   int64
	Client   string
	Product  string
	Material domain.Material
	Minutes  int
	Residual int
}

// DeliveryRow is one group's delivery estimate.
type DeliveryRow struct {
	GroupID           int64
	Client            string
	Product           string
	TotalRequiredMin  int
	EstimatedDelivery time.Time
}

type PlanRequest struct {
	Today *time.Time
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{}
}

type PlanResponse struct {
	Reference  time.Time
	Cutting    []CuttingRow
	Production []ProductionRow
	Deliveries []DeliveryRow
}

// NewPlanResponse flattens an engine plan into presentation rows, preserving
// the engine's deterministic ordering.
func NewPlanResponse(plan *schedule.Plan) PlanResponse {
	resp := PlanResponse{Reference: plan.Reference}
	for _, e := range plan.Cutting.Entries {
		// Copy the per-type breakdown so row consumers cannot reach back
		// into the plan they were built from.
		pieces := make(map[domain.StructureType]int, len(e.Pieces))
		for st, n := range e.Pieces {
			pieces[st] = n
		}
		resp.Cutting = append(resp.Cutting, CuttingRow{
			Date:         e.Date,
			GroupID:      e.GroupID,
			Client:       e.Client,
			Product:      e.Product,
			Material:     e.Material,
			PiecesByType: pieces,
		})
	}
	for _, e := range plan.Production.Entries {
		resp.Production = append(resp.Production, ProductionRow{
			Date:     e.Date,
			GroupID:  e.GroupID,
			LineID:   e.LineID,
			Client:   e.Client,
			Product:  e.Product,
			Material: e.Material,
			Minutes:  e.Minutes,
			Residual: e.Residual,
		})
	}
	for _, d := range plan.Deliveries {
		resp.Deliveries = append(resp.Deliveries, DeliveryRow{
			GroupID:           d.GroupID,
			Client:            d.Client,
			Product:           d.Product,
			TotalRequiredMin:  d.TotalRequiredMin,
			EstimatedDelivery: d.EstimatedDelivery,
		})
	}
	return resp
}

package schedule

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// DeliveryLagDays is the fixed business-day offset between a group's last
// production day and its estimated delivery date.
const DeliveryLagDays = 3

// DeliveryEntry is a group's delivery estimate.
type DeliveryEntry struct {
	GroupID           int64
	Client            string
	Product           string
	TotalRequiredMin  int
	EstimatedDelivery time.Time
}

// Plan is one full scheduling run: fully derived from the line collection,
// the capacity registry and the reference date, never persisted on its own.
type Plan struct {
	Reference  time.Time
	Cutting    *CuttingResult
	Production *ProductionResult
	Deliveries []DeliveryEntry
}

// ComputePlan validates the collection and runs both schedulers. It is pure:
// the context's lines are not touched, and an error means no output at all.
func ComputePlan(sctx SchedulingContext) (*Plan, error) {
	for _, l := range sctx.Lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	groups := BuildGroups(sctx.Lines)

	cutting, err := ScheduleCutting(sctx, groups)
	if err != nil {
		return nil, err
	}
	production, err := ScheduleProduction(sctx, groups, cutting)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Reference:  DateOnly(sctx.Today),
		Cutting:    cutting,
		Production: production,
	}
	for _, g := range groups {
		finish, ok := production.GroupFinish[g.ID]
		if !ok {
			// Group with no production minutes at all: deliver after its
			// last cutting day, or its start date if it cuts nothing either.
			finish = NextBusinessDay(g.StartDate)
			for _, m := range domain.Materials {
				if f, ok := cutting.Finish[GroupMaterial{g.ID, m}]; ok && f.After(finish) {
					finish = f
				}
			}
		}
		total := 0
		for _, l := range g.Lines {
			total += l.RequiredMin
		}
		plan.Deliveries = append(plan.Deliveries, DeliveryEntry{
			GroupID:           g.ID,
			Client:            g.Client,
			Product:           g.Product,
			TotalRequiredMin:  total,
			EstimatedDelivery: AddBusinessDays(finish, DeliveryLagDays),
		})
	}

	return plan, nil
}

// DeliveryFor returns the delivery entry for a group, if present.
func (p *Plan) DeliveryFor(groupID int64) (DeliveryEntry, bool) {
	for _, d := range p.Deliveries {
		if d.GroupID == groupID {
			return d, true
		}
	}
	return DeliveryEntry{}, false
}

package schedule

import (
	"fmt"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// ProductionEntry records minutes worked for one line on one day, with the
// material pool's residual capacity after the entry.
type ProductionEntry struct {
	Date     time.Time
	GroupID  int64
	LineID   int64
	Client   string
	Product  string
	Material domain.Material
	Minutes  int
	Residual int
}

// ProductionResult is the production phase of a plan.
type ProductionResult struct {
	Entries []ProductionEntry

	// LineFinish holds each line's last production day.
	LineFinish map[int64]time.Time

	// GroupFinish is the max of LineFinish over each group's lines.
	GroupFinish map[int64]time.Time
}

type productionLine struct {
	line     *domain.OrderLine
	groupID  int64
	earliest time.Time
	remain   int
}

// ScheduleProduction assigns required production minutes to business days on
// each material's shared pool. Unlike cutting, multiple groups share a day;
// capacity one line leaves unused is immediately available to the next
// eligible line. A line cannot start before the business day after its
// group's cutting finish on its material, nor before the group's own start
// date.
func ScheduleProduction(sctx SchedulingContext, groups []*Group, cutting *CuttingResult) (*ProductionResult, error) {
	res := &ProductionResult{
		LineFinish:  make(map[int64]time.Time),
		GroupFinish: make(map[int64]time.Time),
	}
	today := NextBusinessDay(sctx.Today)

	for _, m := range domain.Materials {
		var pending []*productionLine
		for _, g := range groups {
			for _, l := range g.Lines {
				if l.Material != m || l.RequiredMin <= 0 {
					continue
				}
				earliest := maxDate(today, NextBusinessDay(g.StartDate))
				if finish, ok := cutting.Finish[GroupMaterial{g.ID, m}]; ok {
					gate := AdvanceBusinessDay(NextBusinessDay(finish))
					earliest = maxDate(earliest, gate)
				}
				pending = append(pending, &productionLine{
					line:     l,
					groupID:  g.ID,
					earliest: earliest,
					remain:   l.RequiredMin,
				})
			}
		}
		if len(pending) == 0 {
			continue
		}

		limit, err := sctx.Capacity.ProductionLimit(m)
		if err != nil {
			return nil, err
		}

		day := earliestStart(pending)
		used := 0
		for steps := 0; len(pending) > 0; steps++ {
			if steps > sctx.horizon()*len(pending)+len(pending) {
				return nil, fmt.Errorf("production: material %s backlog not placed within %d business days", m, sctx.horizon())
			}

			pl := selectLine(pending, day)
			if pl == nil {
				// Nothing eligible yet: jump to the earliest future
				// constraint instead of walking day by day.
				day = earliestStart(pending)
				used = 0
				continue
			}

			work := min(limit-used, pl.remain)
			used += work
			pl.remain -= work
			res.Entries = append(res.Entries, ProductionEntry{
				Date:     day,
				GroupID:  pl.groupID,
				LineID:   pl.line.ID,
				Client:   pl.line.Client,
				Product:  pl.line.Product,
				Material: m,
				Minutes:  work,
				Residual: limit - used,
			})

			if pl.remain == 0 {
				res.LineFinish[pl.line.ID] = day
				if cur, ok := res.GroupFinish[pl.groupID]; !ok || day.After(cur) {
					res.GroupFinish[pl.groupID] = day
				}
				pending = removeLine(pending, pl)
			}
			if used >= limit {
				day = AdvanceBusinessDay(day)
				used = 0
			}
		}
	}

	return res, nil
}

// selectLine picks the eligible line with the smallest
// (start constraint, group id, line id).
func selectLine(pending []*productionLine, day time.Time) *productionLine {
	var best *productionLine
	for _, pl := range pending {
		if pl.earliest.After(day) {
			continue
		}
		if best == nil {
			best = pl
			continue
		}
		if pl.earliest.Before(best.earliest) {
			best = pl
		} else if pl.earliest.Equal(best.earliest) {
			if pl.groupID < best.groupID || (pl.groupID == best.groupID && pl.line.ID < best.line.ID) {
				best = pl
			}
		}
	}
	return best
}

func earliestStart(pending []*productionLine) time.Time {
	earliest := pending[0].earliest
	for _, pl := range pending[1:] {
		if pl.earliest.Before(earliest) {
			earliest = pl.earliest
		}
	}
	return earliest
}

func removeLine(pending []*productionLine, target *productionLine) []*productionLine {
	for i, pl := range pending {
		if pl == target {
			return append(pending[:i], pending[i+1:]...)
		}
	}
	return pending
}

package schedule

import (
	"fmt"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// GroupMaterial keys per-group, per-material schedule facts.
type GroupMaterial struct {
	GroupID  int64
	Material domain.Material
}

// CuttingEntry records one group's cutting work on one machine-day:
// pieces cut that day per structure type (zero-quantity types omitted).
type CuttingEntry struct {
	Date     time.Time
	GroupID  int64
	Client   string
	Product  string
	Material domain.Material
	Pieces   map[domain.StructureType]int
}

// CuttingResult is the cutting phase of a plan.
type CuttingResult struct {
	Entries []CuttingEntry

	// Finish holds the last cutting day per (group, material).
	Finish map[GroupMaterial]time.Time

	// Occupancy maps each exclusively held machine-day to its group. Only
	// populated under PolicyExclusive; shared days are not exclusive to
	// anyone.
	Occupancy map[domain.Material]map[time.Time]int64
}

// ScheduleCutting places each group's cutting work, per material, on that
// material's machine. Groups are processed in ascending (start date, group
// id) order. Within a group's day each structure type present is capped
// independently by its registry limit.
func ScheduleCutting(sctx SchedulingContext, groups []*Group) (*CuttingResult, error) {
	res := &CuttingResult{
		Finish:    make(map[GroupMaterial]time.Time),
		Occupancy: make(map[domain.Material]map[time.Time]int64),
	}
	for _, m := range domain.Materials {
		res.Occupancy[m] = make(map[time.Time]int64)
	}

	exclusive := sctx.policy() == PolicyExclusive
	today := NextBusinessDay(sctx.Today)

	// Machine free-day cursors (exclusive policy).
	machineFree := map[domain.Material]time.Time{}
	// Per-type pieces already cut per day (shared policy).
	dayUsed := map[domain.Material]map[time.Time]map[domain.StructureType]int{}
	for _, m := range domain.Materials {
		machineFree[m] = today
		dayUsed[m] = make(map[time.Time]map[domain.StructureType]int)
	}

	for _, g := range groups {
		for _, m := range domain.Materials {
			remaining := g.CuttingPieces(m)
			if len(remaining) == 0 {
				continue
			}

			// Resolve every limit up front so a bad registry rejects the
			// run before any entry is emitted.
			limits := make(map[domain.StructureType]int)
			for _, st := range domain.StructureTypes {
				if remaining[st] == 0 {
					continue
				}
				limit, err := sctx.Capacity.CuttingLimit(m, st)
				if err != nil {
					return nil, err
				}
				limits[st] = limit
			}

			cursor := maxDate(machineFree[m], NextBusinessDay(g.StartDate))
			if !exclusive {
				cursor = maxDate(today, NextBusinessDay(g.StartDate))
			}

			for day := 0; ; day++ {
				if day > sctx.horizon() {
					return nil, fmt.Errorf("cutting: group %d material %s not placed within %d business days", g.ID, m, sctx.horizon())
				}

				pieces := make(map[domain.StructureType]int)
				for _, st := range domain.StructureTypes {
					rem := remaining[st]
					if rem == 0 {
						continue
					}
					avail := limits[st]
					if !exclusive {
						avail -= dayUsed[m][cursor][st]
					}
					if avail <= 0 {
						continue
					}
					cut := min(avail, rem)
					pieces[st] = cut
					remaining[st] -= cut
					if remaining[st] == 0 {
						delete(remaining, st)
					}
				}

				if len(pieces) > 0 {
					res.Entries = append(res.Entries, CuttingEntry{
						Date:     cursor,
						GroupID:  g.ID,
						Client:   g.Client,
						Product:  g.Product,
						Material: m,
						Pieces:   pieces,
					})
					if exclusive {
						res.Occupancy[m][cursor] = g.ID
					} else {
						used := dayUsed[m][cursor]
						if used == nil {
							used = make(map[domain.StructureType]int)
							dayUsed[m][cursor] = used
						}
						for st, n := range pieces {
							used[st] += n
						}
					}
				}

				if len(remaining) == 0 {
					res.Finish[GroupMaterial{g.ID, m}] = cursor
					if exclusive {
						machineFree[m] = AdvanceBusinessDay(cursor)
					}
					break
				}
				cursor = AdvanceBusinessDay(cursor)
			}
		}
	}

	return res, nil
}

package schedule

import (
	"sort"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// Group is the set of order lines sharing a group id: one customer order.
// Client and product are display metadata shared by all lines; the lines may
// span both materials.
type Group struct {
	ID      int64
	Client  string
	Product string

	// StartDate is the earliest start date across the group's lines.
	StartDate time.Time

	Lines []*domain.OrderLine
}

// BuildGroups derives groups from a line collection, lines within each group
// ordered by line id and groups ordered by (start date, group id). The
// ordering is the processing order of both schedulers.
func BuildGroups(lines []*domain.OrderLine) []*Group {
	byID := make(map[int64]*Group)
	var groups []*Group
	for _, l := range lines {
		g, ok := byID[l.GroupID]
		if !ok {
			g = &Group{
				ID:        l.GroupID,
				Client:    l.Client,
				Product:   l.Product,
				StartDate: DateOnly(l.StartDate),
			}
			byID[l.GroupID] = g
			groups = append(groups, g)
		}
		g.Lines = append(g.Lines, l)
		if d := DateOnly(l.StartDate); d.Before(g.StartDate) {
			g.StartDate = d
		}
	}
	for _, g := range groups {
		sort.Slice(g.Lines, func(i, j int) bool { return g.Lines[i].ID < g.Lines[j].ID })
	}
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.ID < b.ID
	})
	return groups
}

// CuttingPieces totals the group's required cutting pieces per structure
// type for one material.
func (g *Group) CuttingPieces(m domain.Material) map[domain.StructureType]int {
	pieces := make(map[domain.StructureType]int)
	for _, l := range g.Lines {
		if l.Material == m && l.Pieces > 0 {
			pieces[l.Structure] += l.Pieces
		}
	}
	return pieces
}

// UsesMaterial reports whether the group has any work on material m.
func (g *Group) UsesMaterial(m domain.Material) bool {
	for _, l := range g.Lines {
		if l.Material == m && (l.Pieces > 0 || l.RequiredMin > 0) {
			return true
		}
	}
	return false
}

// ProductionMinutes totals the group's required production minutes for one
// material.
func (g *Group) ProductionMinutes(m domain.Material) int {
	total := 0
	for _, l := range g.Lines {
		if l.Material == m {
			total += l.RequiredMin
		}
	}
	return total
}

package formatter

import (
	"strconv"

	"github.com/afontana/shopfloor/internal/domain"
)

// FormatOrderList renders the stored order lines.
func FormatOrderList(lines []*domain.OrderLine) string {
	table := make([][]string, 0, len(lines))
	for _, l := range lines {
		requested := Dim("-")
		if l.RequestedDelivery != nil {
			requested = l.RequestedDelivery.Format(dateLayout)
		}
		estimated := Dim("unplanned")
		if l.EstimatedDelivery != nil {
			estimated = StyleGreen.Render(l.EstimatedDelivery.Format(dateLayout))
		}
		table = append(table, []string{
			strconv.FormatInt(l.ID, 10),
			strconv.FormatInt(l.GroupID, 10),
			l.Client,
			l.Product,
			MaterialBadge(l.Material),
			string(l.Structure),
			strconv.Itoa(l.Pieces),
			strconv.Itoa(l.GlassUnits),
			formatMinutes(l.RequiredMin),
			l.StartDate.Format(dateLayout),
			requested,
			estimated,
		})
	}
	return RenderTable(
		[]string{"ID", "GROUP", "CLIENT", "PRODUCT", "MAT", "TYPE", "PCS", "GLASS", "WORK", "START", "REQUESTED", "ESTIMATED"},
		table,
	)
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatPlan renders the three result sets of a plan as stacked sections.
func FormatPlan(resp contract.PlanResponse) string {
	sections := []string{
		Header("Cutting program") + "\n" + FormatCuttingProgram(resp.Cutting),
		Header("Production program") + "\n" + FormatProductionProgram(resp.Production),
		Header("Delivery schedule") + "\n" + FormatDeliverySchedule(resp.Deliveries),
	}
	return strings.Join(sections, "\n")
}

// FormatCuttingProgram renders the cutting machine-day table.
func FormatCuttingProgram(rows []contract.CuttingRow) string {
	if len(rows) == 0 {
		return Dim("Nothing to cut.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Date.Format(dateLayout),
			strconv.FormatInt(r.GroupID, 10),
			r.Client,
			r.Product,
			MaterialBadge(r.Material),
			formatPieces(r.PiecesByType),
		})
	}
	return RenderTable([]string{"DATE", "GROUP", "CLIENT", "PRODUCT", "MAT", "PIECES"}, table)
}

// FormatProductionProgram renders the per-day production allocations.
func FormatProductionProgram(rows []contract.ProductionRow) string {
	if len(rows) == 0 {
		return Dim("Nothing to produce.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		residual := ""
		if r.Residual > 0 {
			residual = StyleYellow.Render(formatMinutes(r.Residual))
		}
		table = append(table, []string{
			r.Date.Format(dateLayout),
			strconv.FormatInt(r.GroupID, 10),
			strconv.FormatInt(r.LineID, 10),
			r.Client,
			MaterialBadge(r.Material),
			formatMinutes(r.Minutes),
			residual,
		})
	}
	return RenderTable([]string{"DATE", "GROUP", "LINE", "CLIENT", "MAT", "MINUTES", "CARRY-OVER"}, table)
}

// FormatDeliverySchedule renders the per-group delivery estimates.
func FormatDeliverySchedule(rows []contract.DeliveryRow) string {
	if len(rows) == 0 {
		return Dim("Nothing to deliver.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.FormatInt(r.GroupID, 10),
			r.Client,
			r.Product,
			formatMinutes(r.TotalRequiredMin),
			StyleGreen.Render(r.EstimatedDelivery.Format(dateLayout)),
		})
	}
	return RenderTable([]string{"GROUP", "CLIENT", "PRODUCT", "WORKLOAD", "DELIVERY"}, table)
}

// formatPieces renders a per-type piece breakdown such as "hinged:12 special:4".
func formatPieces(pieces map[domain.StructureType]int) string {
	parts := make([]string, 0, len(pieces))
	for _, st := range domain.StructureTypes {
		if n, ok := pieces[st]; ok && n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", st, n))
		}
	}
	return strings.Join(parts, " ")
}

// formatMinutes renders a minute count as hours and minutes, e.g. "7h30m".
func formatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

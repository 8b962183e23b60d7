package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/afontana/shopfloor/internal/cli/formatter"
	"github.com/afontana/shopfloor/internal/domain"
)

func newCapacityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "Show the configured daily capacities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cutting [][]string
			for _, m := range domain.Materials {
				limits, ok := app.Capacity.Cutting[m]
				if !ok {
					continue
				}
				row := []string{formatter.MaterialBadge(m)}
				for _, st := range domain.StructureTypes {
					cell := "-"
					if limit, ok := limits[st]; ok {
						cell = strconv.Itoa(limit)
					}
					row = append(row, cell)
				}
				cutting = append(cutting, row)
			}

			headers := []string{"MAT"}
			for _, st := range domain.StructureTypes {
				headers = append(headers, string(st))
			}

			fmt.Println(formatter.Header("Cutting (pieces/day)"))
			fmt.Printf("%s\n", formatter.RenderTable(headers, cutting))

			var production [][]string
			for _, m := range domain.Materials {
				if limit, ok := app.Capacity.Production[m]; ok {
					production = append(production, []string{
						formatter.MaterialBadge(m),
						strconv.Itoa(limit),
					})
				}
			}
			fmt.Println(formatter.Header("Production (minutes/day)"))
			fmt.Printf("%s", formatter.RenderTable([]string{"MAT", "MINUTES"}, production))
			return nil
		},
	}
}

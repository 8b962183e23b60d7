package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/afontana/shopfloor/internal/cli/formatter"
	"github.com/afontana/shopfloor/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var today time.Time
	var cuttingOnly, productionOnly, deliveriesOnly bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the cutting, production and delivery programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest()
			if !today.IsZero() {
				req.Today = &today
			}

			resp, err := app.Plans.Compute(context.Background(), req)
			if err != nil {
				return err
			}

			switch {
			case cuttingOnly:
				fmt.Printf("%s", formatter.FormatCuttingProgram(resp.Cutting))
			case productionOnly:
				fmt.Printf("%s", formatter.FormatProductionProgram(resp.Production))
			case deliveriesOnly:
				fmt.Printf("%s", formatter.FormatDeliverySchedule(resp.Deliveries))
			default:
				fmt.Printf("%s", formatter.FormatPlan(*resp))
			}
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&today), "date", "Reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&cuttingOnly, "cutting", false, "Show only the cutting program")
	cmd.Flags().BoolVar(&productionOnly, "production", false, "Show only the production program")
	cmd.Flags().BoolVar(&deliveriesOnly, "deliveries", false, "Show only the delivery schedule")
	cmd.MarkFlagsMutuallyExclusive("cutting", "production", "deliveries")

	return cmd
}

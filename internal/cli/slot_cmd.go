package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
)

func newSlotCmd(app *App) *cobra.Command {
	var lineSpecs []string
	var notBefore time.Time

	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Find the earliest feasible start date for a prospective group",
		Long: `Find the earliest start date at which a prospective group's cutting
fits without moving any committed group. Nothing is created; pair with
"order add --find-slot" to book the slot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.SlotRequest{}
			for _, s := range lineSpecs {
				spec, err := parseLineSpec(s)
				if err != nil {
					return err
				}
				req.Lines = append(req.Lines, spec)
			}
			if !notBefore.IsZero() {
				req.NotBefore = &notBefore
			}

			resp, err := app.Plans.FindSlot(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Earliest start date: %s\n", resp.StartDate.Format("2006-01-02"))
			for _, m := range domain.Materials {
				if days, ok := resp.DaysNeeded[m]; ok {
					fmt.Printf("  material %s: %d cutting day(s)\n", m, days)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "Order line MATERIAL:TYPE:PIECES[:GLASS], repeatable")
	cmd.Flags().Var(newDateValue(&notBefore), "not-before", "Do not consider dates before this one (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

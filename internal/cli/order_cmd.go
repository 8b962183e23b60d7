package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/afontana/shopfloor/internal/cli/formatter"
	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage order lines",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderRemoveCmd(app),
		newOrderClearCmd(app),
		newOrderMoveCmd(app),
	)

	return cmd
}

// parseLineSpec parses a --line value of the form MATERIAL:TYPE:PIECES or
// MATERIAL:TYPE:PIECES:GLASS, e.g. "A:hinged:2:20".
func parseLineSpec(s string) (contract.LineSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return contract.LineSpec{}, fmt.Errorf("invalid line spec %q, expected MATERIAL:TYPE:PIECES[:GLASS]", s)
	}
	material, err := domain.ParseMaterial(parts[0])
	if err != nil {
		return contract.LineSpec{}, err
	}
	structure, err := domain.ParseStructureType(parts[1])
	if err != nil {
		return contract.LineSpec{}, err
	}
	pieces, err := strconv.Atoi(parts[2])
	if err != nil {
		return contract.LineSpec{}, fmt.Errorf("invalid piece count %q in line spec", parts[2])
	}
	spec := contract.LineSpec{Material: material, Structure: structure, Pieces: pieces}
	if len(parts) == 4 {
		glass, err := strconv.Atoi(parts[3])
		if err != nil {
			return contract.LineSpec{}, fmt.Errorf("invalid glass unit count %q in line spec", parts[3])
		}
		spec.GlassUnits = glass
	}
	return spec, nil
}

func newOrderAddCmd(app *App) *cobra.Command {
	var client, product string
	var start, requested time.Time
	var lineSpecs []string
	var findSlot bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a group of order lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewNewGroupRequest(client, product, start)
			if !requested.IsZero() {
				req.RequestedDelivery = &requested
			}

			for _, s := range lineSpecs {
				spec, err := parseLineSpec(s)
				if err != nil {
					return err
				}
				req.Lines = append(req.Lines, spec)
			}

			if len(req.Lines) == 0 {
				if !app.Interactive {
					return fmt.Errorf("at least one --line is required")
				}
				filled, err := runOrderForm(req)
				if err != nil {
					return err
				}
				req = filled
			}

			ctx := context.Background()
			var resp *contract.NewGroupResponse
			var err error
			if findSlot || req.StartDate.IsZero() {
				req.StartDate = time.Time{}
				resp, err = app.Plans.InsertGroup(ctx, req)
			} else {
				resp, err = app.Orders.CreateGroup(ctx, req)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Created group %d with %d line(s), starting %s\n",
				resp.GroupID, len(resp.Lines), resp.Lines[0].StartDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&product, "product", "", "Product description")
	cmd.Flags().Var(newDateValue(&start), "start", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(newDateValue(&requested), "requested", "Requested delivery date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "Order line MATERIAL:TYPE:PIECES[:GLASS], repeatable")
	cmd.Flags().BoolVar(&findSlot, "find-slot", false, "Ignore --start and book the earliest feasible start date")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List order lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := app.Orders.ListAll(context.Background())
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Println("No order lines found.")
				return nil
			}
			fmt.Printf("%s", formatter.FormatOrderList(lines))
			return nil
		},
	}
}

func newOrderRemoveCmd(app *App) *cobra.Command {
	var line bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a group, or a single line with --line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			ctx := context.Background()
			if line {
				if err := app.Orders.RemoveLine(ctx, id); err != nil {
					return err
				}
				fmt.Printf("Removed line %d\n", id)
				return nil
			}
			if err := app.Orders.RemoveGroup(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed group %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&line, "line", false, "Treat ID as a line id instead of a group id")

	return cmd
}

func newOrderClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every order line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.Interactive {
					return fmt.Errorf("refusing to clear the order book without --force")
				}
				confirmed, err := runClearConfirm()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			removed, err := app.Orders.RemoveAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d line(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func newOrderMoveCmd(app *App) *cobra.Command {
	var target time.Time

	cmd := &cobra.Command{
		Use:   "move GROUP",
		Short: "Move a group to a new start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}
			if target.IsZero() {
				return fmt.Errorf("--to is required")
			}

			resp, err := app.Plans.MoveGroup(context.Background(), contract.NewMoveRequest(groupID, target))
			if err != nil {
				return err
			}

			fmt.Printf("Moved group %d to %s\n", resp.GroupID, resp.StartDate.Format("2006-01-02"))
			if d, ok := deliveryFor(resp.Plan, resp.GroupID); ok {
				fmt.Printf("New estimated delivery: %s\n", d.EstimatedDelivery.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&target), "to", "Target start date (YYYY-MM-DD)")

	return cmd
}

func deliveryFor(plan contract.PlanResponse, groupID int64) (contract.DeliveryRow, bool) {
	for _, d := range plan.Deliveries {
		if d.GroupID == groupID {
			return d, true
		}
	}
	return contract.DeliveryRow{}, false
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/afontana/shopfloor/internal/schedule"
	"github.com/afontana/shopfloor/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Orders   service.OrderService
	Plans    service.PlanService
	Capacity schedule.CapacityRegistry

	// Interactive reports whether stdin is a terminal; it gates the huh
	// order-entry form.
	Interactive bool
}

// NewRootCmd creates the top-level "shopfloor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shopfloor",
		Short: "Production-order scheduler for the cutting and production line",
	}

	root.AddCommand(
		newOrderCmd(app),
		newPlanCmd(app),
		newSlotCmd(app),
		newCapacityCmd(app),
	)

	return root
}

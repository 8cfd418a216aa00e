package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

// statusOrder fixes the display order of the lifecycle counts.
var statusOrder = []string{"open", "in_progress", "complete", "invoiced"}

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the shop dashboard",
		Long:  "One-screen view of order counts, the dispatch queue, and the supply-run list",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			metrics, err := wire.QueryService().Metrics(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute metrics: %w", err)
			}

			org := wire.Config().Org.Name
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(org))
			fmt.Println("════════════════════════════════════════════")

			fmt.Printf("Work orders: %d total\n", metrics.Total)
			for _, status := range statusOrder {
				if n := metrics.CountByStatus[status]; n > 0 {
					fmt.Printf("  %-12s %d\n", status, n)
				}
			}
			if metrics.AvgDurationMinutes > 0 {
				fmt.Printf("Avg duration: %.0f minutes\n", metrics.AvgDurationMinutes)
			}
			fmt.Println()

			queue, err := wire.QueryService().DispatchQueue(ctx)
			if err != nil {
				return fmt.Errorf("failed to load dispatch queue: %w", err)
			}
			if len(queue) > 0 {
				fmt.Println(color.New(color.FgHiBlue).Sprint("Dispatch queue (open, unassigned):"))
				for _, o := range queue {
					fmt.Printf("  %s [%s] %s", o.ID, o.Priority, o.Title)
					if o.UnitID != "" {
						fmt.Printf(" (%s)", o.UnitID)
					}
					fmt.Println()
				}
				fmt.Println()
			}

			low, err := wire.InventoryService().LowStockItems(ctx)
			if err != nil {
				return fmt.Errorf("failed to load low stock: %w", err)
			}
			if len(low) > 0 {
				fmt.Println(color.New(color.FgYellow).Sprint("Supply run needed:"))
				for _, p := range low {
					fmt.Printf("  %-12s %d on hand (min %d)\n", p.ID, p.OnHand, p.MinStock)
				}
				fmt.Println()
			}

			techs, err := wire.QueryService().ListTechnicians(ctx)
			if err != nil {
				return fmt.Errorf("failed to load technicians: %w", err)
			}
			available := 0
			for _, t := range techs {
				if t.Status == "available" {
					available++
				}
			}
			fmt.Printf("Crew: %d/%d available\n\n", available, len(techs))

			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/wire"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage work orders",
	Long:  "Create, list, advance, and annotate work orders in the dispatch registry",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new work order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		customer, _ := cmd.Flags().GetString("customer")
		unit, _ := cmd.Flags().GetString("unit")
		eta, _ := cmd.Flags().GetString("eta")
		priority, _ := cmd.Flags().GetString("priority")
		tech, _ := cmd.Flags().GetString("tech")

		o, err := wire.OrderService().CreateOrder(cmd.Context(), primary.CreateOrderRequest{
			Title:        title,
			Customer:     customer,
			UnitID:       unit,
			ETA:          eta,
			Priority:     priority,
			TechnicianID: tech,
		})
		if err != nil {
			return fmt.Errorf("failed to create work order: %w", err)
		}

		fmt.Printf("✓ Created work order %s: %s\n", o.ID, o.Title)
		fmt.Printf("  Customer: %s\n", o.Customer)
		fmt.Printf("  Priority: %s\n", o.Priority)
		if o.AssignedTechnicianID != "" {
			fmt.Printf("  Assigned: %s\n", o.AssignedTechnicianID)
		}
		return nil
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		tech, _ := cmd.Flags().GetString("tech")

		orders, err := wire.OrderService().ListOrders(cmd.Context(), primary.OrderFilters{
			Status:       status,
			TechnicianID: tech,
		})
		if err != nil {
			return fmt.Errorf("failed to list work orders: %w", err)
		}

		if len(orders) == 0 {
			fmt.Println("No work orders found")
			return nil
		}

		fmt.Printf("\n%-10s %-12s %-15s %-8s %-6s %s\n", "ID", "STATUS", "STAGE", "PRI", "TECH", "TITLE")
		fmt.Println("────────────────────────────────────────────────────────────────────────")
		for _, o := range orders {
			tech := "-"
			if o.AssignedTechnicianID != "" {
				tech = o.AssignedTechnicianID
			}
			fmt.Printf("%-10s %-12s %-15s %-8s %-6s %s\n", o.ID, o.Status, o.Stage, o.Priority, tech, o.Title)
		}
		fmt.Println()
		return nil
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show [order-id]",
	Short: "Show work order details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().GetOrder(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get work order: %w", err)
		}

		printOrder(o)
		return nil
	},
}

var orderAdvanceCmd = &cobra.Command{
	Use:   "advance [order-id]",
	Short: "Advance a work order to the next status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().AdvanceStatus(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to advance work order: %w", err)
		}

		fmt.Printf("✓ Work order %s is now %s\n", o.ID, o.Status)
		if o.Status == "complete" && o.DurationMinutes > 0 {
			fmt.Printf("  Duration: %d minutes\n", o.DurationMinutes)
		}
		return nil
	},
}

var orderSetStatusCmd = &cobra.Command{
	Use:   "set-status [order-id] [status]",
	Short: "Set a work order status directly",
	Long:  "Set the status to any valid label (open, in_progress, complete, invoiced) without ordering checks",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().SetStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}

		fmt.Printf("✓ Work order %s status set to %s\n", o.ID, o.Status)
		return nil
	},
}

var orderSetStageCmd = &cobra.Command{
	Use:   "set-stage [order-id] [stage]",
	Short: "Set a work order's descriptive stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().SetStage(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to set stage: %w", err)
		}

		fmt.Printf("✓ Work order %s stage set to %s\n", o.ID, o.Stage)
		return nil
	},
}

var orderAssignCmd = &cobra.Command{
	Use:   "assign [order-id]",
	Short: "Assign a technician to a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tech, _ := cmd.Flags().GetString("tech")

		o, err := wire.OrderService().AssignTechnician(cmd.Context(), args[0], tech)
		if err != nil {
			return fmt.Errorf("failed to assign technician: %w", err)
		}

		if tech != "" {
			fmt.Printf("✓ Work order %s assigned to %s\n", o.ID, tech)
		} else {
			fmt.Printf("✓ Work order %s unassigned\n", o.ID)
		}
		return nil
	},
}

var orderNoteCmd = &cobra.Command{
	Use:   "note [order-id] [text]",
	Short: "Replace the notes on a work order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().Annotate(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to annotate work order: %w", err)
		}

		fmt.Printf("✓ Notes updated on %s\n", o.ID)
		return nil
	},
}

var orderPhotoCmd = &cobra.Command{
	Use:   "photo [order-id]",
	Short: "Record a photo attached to a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().AttachPhoto(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to attach photo: %w", err)
		}

		fmt.Printf("✓ Photo recorded on %s (%d total)\n", o.ID, o.PhotoCount)
		return nil
	},
}

var orderClockCmd = &cobra.Command{
	Use:   "clock [order-id]",
	Short: "Toggle the work clock on a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := wire.OrderService().ToggleClock(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle clock: %w", err)
		}

		if o.ClockedIn {
			fmt.Printf("✓ Clocked in on %s\n", o.ID)
		} else {
			fmt.Printf("✓ Clocked out of %s\n", o.ID)
		}
		return nil
	},
}

var orderUsePartCmd = &cobra.Command{
	Use:   "use-part [order-id] [part-id]",
	Short: "Record part usage on a work order",
	Long:  "Record consumption of a part against a work order. Stock is decremented, clamping at zero.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, _ := cmd.Flags().GetInt("qty")

		o, err := wire.OrderService().RecordPartUsage(cmd.Context(), args[0], args[1], qty)
		if err != nil {
			return fmt.Errorf("failed to record part usage: %w", err)
		}

		usage := o.PartsUsed[len(o.PartsUsed)-1]
		fmt.Printf("✓ Recorded %dx %s on %s at %.2f each\n", usage.Quantity, usage.PartID, o.ID, usage.UnitCost)
		return nil
	},
}

var orderScanCmd = &cobra.Command{
	Use:   "scan [order-id] [text]",
	Short: "Scan free text for part mentions",
	Long: `Match free text (work notes, voice transcription) against the parts
catalog and record one usage per distinct part found.

Examples:
  dispatchiq order scan RO-2418 "Installed FILTER-XL and topped off R404A-30"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.OrderService().ScanTextForParts(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to scan for parts: %w", err)
		}

		if len(result.MatchedPartIDs) == 0 {
			fmt.Println("No known parts mentioned")
			return nil
		}

		fmt.Printf("✓ Matched %d part(s) on %s:\n", len(result.MatchedPartIDs), result.Order.ID)
		for _, id := range result.MatchedPartIDs {
			fmt.Printf("  - %s\n", id)
		}
		return nil
	},
}

func printOrder(o *primary.WorkOrder) {
	fmt.Printf("\nWork Order: %s\n", o.ID)
	fmt.Printf("Title:      %s\n", o.Title)
	fmt.Printf("Customer:   %s\n", o.Customer)
	if o.UnitID != "" {
		fmt.Printf("Unit:       %s\n", o.UnitID)
	}
	fmt.Printf("Status:     %s\n", o.Status)
	fmt.Printf("Stage:      %s\n", o.Stage)
	fmt.Printf("Priority:   %s\n", o.Priority)
	if o.AssignedTechnicianID != "" {
		fmt.Printf("Technician: %s\n", o.AssignedTechnicianID)
	}
	if o.ETA != "" {
		fmt.Printf("ETA:        %s\n", o.ETA)
	}
	if o.ClockedIn {
		fmt.Printf("Clock:      in\n")
	}
	if o.PhotoCount > 0 {
		fmt.Printf("Photos:     %d\n", o.PhotoCount)
	}
	if o.DurationMinutes > 0 {
		fmt.Printf("Duration:   %d minutes\n", o.DurationMinutes)
	}
	if o.Notes != "" {
		fmt.Printf("Notes:      %s\n", o.Notes)
	}
	if len(o.PartsUsed) > 0 {
		fmt.Println("Parts used:")
		for _, u := range o.PartsUsed {
			fmt.Printf("  %dx %-12s @ %.2f\n", u.Quantity, u.PartID, u.UnitCost)
		}
	}
	fmt.Printf("Created:    %s\n", o.CreatedAt)
	fmt.Printf("Updated:    %s\n", o.UpdatedAt)
	fmt.Println()
}

// OrderCmd returns the order command
func OrderCmd() *cobra.Command {
	orderCreateCmd.Flags().StringP("customer", "c", "", "Customer name (required)")
	orderCreateCmd.Flags().StringP("unit", "u", "", "Unit or asset tag")
	orderCreateCmd.Flags().StringP("eta", "e", "", "Estimated arrival window")
	orderCreateCmd.Flags().StringP("priority", "p", "", "Priority (normal, high, critical)")
	orderCreateCmd.Flags().StringP("tech", "t", "", "Technician ID to assign")
	orderCreateCmd.MarkFlagRequired("customer")

	orderListCmd.Flags().StringP("status", "s", "", "Filter by status (open, in_progress, complete, invoiced)")
	orderListCmd.Flags().StringP("tech", "t", "", "Filter by assigned technician")

	orderAssignCmd.Flags().StringP("tech", "t", "", "Technician ID (empty string to unassign)")

	orderUsePartCmd.Flags().IntP("qty", "q", 1, "Quantity used")

	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderAdvanceCmd)
	orderCmd.AddCommand(orderSetStatusCmd)
	orderCmd.AddCommand(orderSetStageCmd)
	orderCmd.AddCommand(orderAssignCmd)
	orderCmd.AddCommand(orderNoteCmd)
	orderCmd.AddCommand(orderPhotoCmd)
	orderCmd.AddCommand(orderClockCmd)
	orderCmd.AddCommand(orderUsePartCmd)
	orderCmd.AddCommand(orderScanCmd)

	return orderCmd
}

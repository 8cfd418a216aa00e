package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

var partCmd = &cobra.Command{
	Use:   "part",
	Short: "Manage the parts shelf",
	Long:  "List, consume, and restock parts in the truck inventory",
}

var partListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parts",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := wire.InventoryService().ListParts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list parts: %w", err)
		}

		if len(parts) == 0 {
			fmt.Println("No parts on the shelf")
			return nil
		}

		fmt.Printf("\n%-12s %-30s %8s %8s %10s\n", "SKU", "NAME", "ON HAND", "MIN", "UNIT COST")
		fmt.Println("─────────────────────────────────────────────────────────────────────────")
		for _, p := range parts {
			onHand := fmt.Sprintf("%d", p.OnHand)
			if p.OnHand < p.MinStock {
				onHand = color.New(color.FgYellow).Sprintf("%d ⚠", p.OnHand)
			}
			fmt.Printf("%-12s %-30s %8s %8d %10.2f\n", p.ID, p.Name, onHand, p.MinStock, p.UnitCost)
		}
		fmt.Println()
		return nil
	},
}

var partShowCmd = &cobra.Command{
	Use:   "show [part-id]",
	Short: "Show part details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := wire.InventoryService().GetPart(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get part: %w", err)
		}

		fmt.Printf("\nPart:      %s\n", p.ID)
		fmt.Printf("Name:      %s\n", p.Name)
		fmt.Printf("On hand:   %d\n", p.OnHand)
		fmt.Printf("Min stock: %d\n", p.MinStock)
		fmt.Printf("Unit cost: %.2f\n", p.UnitCost)
		if p.OnHand < p.MinStock {
			fmt.Println(color.New(color.FgYellow).Sprint("⚠ Below minimum stock"))
		}
		fmt.Println()
		return nil
	},
}

var partConsumeCmd = &cobra.Command{
	Use:   "consume [part-id]",
	Short: "Consume stock outside a work order",
	Long:  "Decrement on-hand stock directly, for shrinkage or shop use. The count clamps at zero.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, _ := cmd.Flags().GetInt("qty")

		p, err := wire.InventoryService().ConsumePart(cmd.Context(), args[0], qty)
		if err != nil {
			return fmt.Errorf("failed to consume part: %w", err)
		}

		fmt.Printf("✓ Consumed %dx %s (%d on hand)\n", qty, p.ID, p.OnHand)
		return nil
	},
}

var partRestockCmd = &cobra.Command{
	Use:   "restock [part-id]",
	Short: "Restock a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, _ := cmd.Flags().GetInt("qty")

		p, err := wire.InventoryService().RestockPart(cmd.Context(), args[0], qty)
		if err != nil {
			return fmt.Errorf("failed to restock part: %w", err)
		}

		fmt.Printf("✓ Restocked %dx %s (%d on hand)\n", qty, p.ID, p.OnHand)
		return nil
	},
}

var partLowCmd = &cobra.Command{
	Use:   "low",
	Short: "List parts below their minimum stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := wire.InventoryService().LowStockItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list low stock: %w", err)
		}

		if len(parts) == 0 {
			fmt.Println("Nothing below minimum stock")
			return nil
		}

		fmt.Printf("%d part(s) need a supply run:\n", len(parts))
		for _, p := range parts {
			fmt.Printf("  %-12s %-30s %d on hand (min %d)\n", p.ID, p.Name, p.OnHand, p.MinStock)
		}
		return nil
	},
}

// PartCmd returns the part command
func PartCmd() *cobra.Command {
	partConsumeCmd.Flags().IntP("qty", "q", 1, "Quantity consumed")
	partRestockCmd.Flags().IntP("qty", "q", 1, "Quantity added")

	partCmd.AddCommand(partListCmd)
	partCmd.AddCommand(partShowCmd)
	partCmd.AddCommand(partConsumeCmd)
	partCmd.AddCommand(partRestockCmd)
	partCmd.AddCommand(partLowCmd)

	return partCmd
}

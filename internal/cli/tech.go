package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

var techCmd = &cobra.Command{
	Use:   "tech",
	Short: "View the technician crew",
}

var techListCmd = &cobra.Command{
	Use:   "list",
	Short: "List technicians with availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		techs, err := wire.QueryService().ListTechnicians(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list technicians: %w", err)
		}

		if len(techs) == 0 {
			fmt.Println("No technicians on the roster")
			return nil
		}

		fmt.Printf("\n%-6s %-18s %-15s %-12s %-10s %s\n", "ID", "NAME", "SKILL", "STATUS", "ORDER", "LOCATION")
		fmt.Println("────────────────────────────────────────────────────────────────────────")
		for _, t := range techs {
			status := color.New(color.FgHiGreen).Sprint(t.Status)
			if t.Status == "on_job" {
				status = color.New(color.FgYellow).Sprint(t.Status)
			}
			current := "-"
			if t.CurrentOrderID != "" {
				current = t.CurrentOrderID
			}
			fmt.Printf("%-6s %-18s %-15s %-21s %-10s %s\n", t.ID, t.Name, t.Skill, status, current, t.Location)
		}
		fmt.Println()
		return nil
	},
}

// TechCmd returns the tech command
func TechCmd() *cobra.Command {
	techCmd.AddCommand(techListCmd)
	return techCmd
}

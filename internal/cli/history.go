package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse retained snapshot versions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List retained versions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		versions, err := wire.SnapshotService().History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if len(versions) == 0 {
			fmt.Println("No snapshot history yet")
			return nil
		}

		fmt.Printf("\n%-9s %-22s %s\n", "VERSION", "CREATED", "SIZE")
		fmt.Println("─────────────────────────────────────────")
		for _, v := range versions {
			fmt.Printf("%-9d %-22s %d bytes\n", v.Version, v.CreatedAt, v.SizeBytes)
		}
		fmt.Println()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Print a retained snapshot document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}

		payload, err := wire.SnapshotService().ShowVersion(cmd.Context(), version)
		if err != nil {
			return fmt.Errorf("failed to load version %d: %w", version, err)
		}

		fmt.Println(string(payload))
		return nil
	},
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	historyListCmd.Flags().IntP("limit", "n", 20, "Maximum versions to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	return historyCmd
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export, import, and reset the registry document",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry as JSON",
	Long:  "Write the current registry document to stdout, or to a file with --out",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		data, err := wire.SnapshotService().Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}

		if out == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("✓ Exported registry to %s\n", out)
		return nil
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a registry document",
	Long:  "Replace the registry with a JSON document. Malformed input is rejected and the current registry is kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if err := wire.SnapshotService().Import(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to import snapshot: %w", err)
		}

		fmt.Printf("✓ Imported registry from %s\n", args[0])
		return nil
	},
}

var snapshotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the registry to the seed fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("reset discards all current data; re-run with --yes to confirm")
		}

		if err := wire.SnapshotService().ResetToSeed(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset registry: %w", err)
		}

		fmt.Println("✓ Registry reset to seed data")
		return nil
	},
}

// SnapshotCmd returns the snapshot command
func SnapshotCmd() *cobra.Command {
	snapshotExportCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	snapshotResetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")

	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotResetCmd)

	return snapshotCmd
}

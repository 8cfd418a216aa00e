package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/cli"
	"github.com/example/dispatchiq/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dispatchiq",
		Short:   "dispatchiq - field service dispatch for the NTFR shop",
		Version: version.String(),
		Long: `dispatchiq is a CLI tool for running a field-service shop: work orders,
technician dispatch, and the truck parts shelf, backed by a versioned
registry document with snapshot history.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.OrderCmd())
	rootCmd.AddCommand(cli.PartCmd())
	rootCmd.AddCommand(cli.TechCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.FindCmd())
	rootCmd.AddCommand(cli.SnapshotCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

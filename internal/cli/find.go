package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dispatchiq/internal/wire"
)

// FindCmd returns the find command
func FindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [identifier]",
		Short: "Find a work order by ID or unit tag",
		Long: `Resolve a work order by exact, case-insensitive match on its order ID
or unit tag. Partial matches are not resolved.

Examples:
  dispatchiq find RO-2417
  dispatchiq find "trailer 408"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := wire.QueryService().FindByIdentifier(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search: %w", err)
			}
			if o == nil {
				fmt.Printf("No work order matches %q\n", args[0])
				return nil
			}

			printOrder(o)
			return nil
		},
	}
}

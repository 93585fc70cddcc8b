package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solventlabs/solvent/solvers"
)

// newListCmd creates the list command, printing the solver table.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("registered solvers"))
			for _, r := range solvers.Registered() {
				fmt.Fprintln(out, renderListing(r.Day, r.Part, r.Name))
			}
			return nil
		},
	}
}

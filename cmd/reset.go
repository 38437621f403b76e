package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newResetCmd creates a new command for clearing the saved gallery
func newResetCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all uploads and restore the built-in entries",
		Long:  `Clear the saved gallery so that only the built-in entries remain.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			prompt := newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), assumeYes)
			if !prompt.Confirm("Remove every uploaded entry?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := a.gallery.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gallery reset to %d built-in entries\n", len(a.gallery.Entries()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Reset without asking for confirmation")
	return cmd
}

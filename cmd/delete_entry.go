package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"media-gallery/pkg/models"
	"media-gallery/pkg/services"
)

// newDeleteCmd creates a new command for deleting an uploaded entry
func newDeleteCmd() *cobra.Command {
	var (
		category  string
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:   "delete [position]",
		Short: "Delete an uploaded entry",
		Long:  `Delete an uploaded entry identified by its position in the list output. Built-in entries cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			c, err := models.ParseCategory(category)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.gallery.SetCategory(c)
			key, err := a.gallery.Key(position)
			if err != nil {
				return err
			}
			entry, err := a.gallery.Entry(key)
			if err != nil {
				return err
			}
			if entry.IsDefault {
				return fmt.Errorf("%q is a built-in entry and cannot be deleted", entry.Title)
			}

			prompt := newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), assumeYes)
			services.NewDispatcher(a.gallery, prompt, a.log).Dispatch(cmd.Context(), services.DeleteClick{Key: key})

			if _, err := a.gallery.Entry(key); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", entry.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryAll), "Category the position refers to")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"media-gallery/pkg/models"
	"media-gallery/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all filter categories",
		Long:  `List the gallery filter categories with the number of entries in each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			listCategories(cmd.OutOrStdout(), a.gallery.Entries())
			return nil
		},
	}
}

// listCategories displays every category and how many entries it holds
func listCategories(w io.Writer, entries []models.Entry) {
	fmt.Fprintln(w, "Categories:")
	fmt.Fprintln(w, "===========")

	for _, c := range models.Categories {
		fmt.Fprintf(w, "%s (%s)\n", c.Label(), c)
		fmt.Fprintf(w, "  Entries: %d\n", len(services.Apply(entries, c)))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d categories\n", len(models.Categories))
}

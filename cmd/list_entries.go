package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"media-gallery/pkg/models"
)

// newListCmd creates a new command for listing gallery entries
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List gallery entries",
		Long: `List the entries of the gallery, optionally filtered by category (all, image or video).
The positions printed here are the ones show and delete expect.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"all", "image", "video"},
		RunE: func(cmd *cobra.Command, args []string) error {
			category := models.CategoryAll
			if len(args) > 0 {
				c, err := models.ParseCategory(args[0])
				if err != nil {
					return err
				}
				category = c
			}

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.gallery.SetCategory(category)
			listEntries(cmd.OutOrStdout(), a.gallery.View())
			return nil
		},
	}
}

// listEntries prints the grid one card per line
func listEntries(w io.Writer, page models.Page) {
	fmt.Fprintf(w, "Gallery (%s):\n", page.Category.Label())
	fmt.Fprintln(w, "================")

	for _, c := range page.Cards {
		marker := " "
		if c.Deletable {
			marker = "*"
		}
		fmt.Fprintf(w, "%d.%s [%s] %s\n", c.Index+1, marker, c.Type, c.Title)
		fmt.Fprintf(w, "   %s\n", c.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d entries (* = uploaded, can be deleted)\n", len(page.Cards))
}

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"media-gallery/pkg/models"
)

// newShowCmd creates a new command for showing a single entry
func newShowCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show [position]",
		Short: "Show one gallery entry",
		Long:  `Show an entry the way the lightbox does, identified by its position in the list output.`,
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
			if !a.gallery.Open(position) {
				return fmt.Errorf("no entry at position %d", position+1)
			}
			showEntry(cmd.OutOrStdout(), a.gallery.View().Lightbox)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryAll), "Category the position refers to")
	return cmd
}

// parsePosition converts a 1-based position into an index
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: expected a number from 1", s)
	}
	return n - 1, nil
}

// showEntry displays the lightbox content
func showEntry(w io.Writer, lb models.Lightbox) {
	if lb.Card == nil {
		fmt.Fprintln(w, models.EmptyLightboxMessage)
		return
	}

	c := lb.Card
	fmt.Fprintf(w, "Entry %d of %d\n", lb.Index+1, lb.Count)
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "Title: %s\n", c.Title)
	fmt.Fprintf(w, "Description: %s\n", c.Description)
	fmt.Fprintf(w, "Type: %s\n", c.Type)
	fmt.Fprintf(w, "Deletable: %t\n", c.Deletable)
	fmt.Fprintf(w, "Source: %s\n", shortSource(c.Src))
}

// shortSource keeps data URLs from flooding the terminal
func shortSource(src string) string {
	const limit = 80
	if len(src) <= limit {
		return src
	}
	return fmt.Sprintf("%s... (%d bytes)", src[:limit], len(src))
}

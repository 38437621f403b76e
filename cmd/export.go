package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"media-gallery/pkg/models"
)

// newExportCmd creates a new command for exporting gallery data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export gallery data",
		Long:  `Export all gallery entries in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return exportData(cmd.OutOrStdout(), format, a.gallery.Entries())
		},
	}
}

// exportData writes the entries in the specified format
func exportData(w io.Writer, format string, entries []models.Entry) error {
	if format != "json" {
		return fmt.Errorf("unsupported export format: %s (supported formats: json)", format)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

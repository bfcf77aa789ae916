package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export STORY_ID",
		Short: "Export a story",
		Long:  "Exports a story as JSON or Markdown to stdout or a file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Export format: json, markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, id, format, output string) error {
	ctx := cmd.Context()

	if format == "md" {
		format = handlers.ExportMarkdown
	}
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		data, err := h.HandleExport(ctx, id, format)
		if err != nil {
			return err
		}

		if output == "" {
			_, err := os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported story %s to %s\n", id, output)
		return nil
	})
}

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/entities"
)

func newListCmd() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stories",
		Long:  "Lists saved stories, most recently updated first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, limit, offset)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of stories to display")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Number of stories to skip")

	return cmd
}

func runList(cmd *cobra.Command, limit, offset int) error {
	ctx := cmd.Context()

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		result, err := h.HandleList(ctx, limit, offset)
		if err != nil {
			return err
		}

		if result.Total == 0 {
			fmt.Println("No stories found.")
			fmt.Println("Use 'story start' to begin one.")
			return nil
		}

		return displayStories(os.Stdout, result.Stories)
	})
}

func displayStories(w io.Writer, stories []*entities.Story) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGENRE\tCHARACTERS\tSTATUS\tUPDATED")
	for _, s := range stories {
		status := "in progress"
		if s.Finished {
			status = "finished"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			truncate(s.Inputs.Genre, 16),
			truncate(s.Inputs.Characters, 30),
			status,
			s.UpdatedAt.Local().Format(time.DateTime),
		)
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/entities"
)

func newShowCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "show STORY_ID",
		Short: "Show a story with all of its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], history)
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Show the audit log instead of the text")

	return cmd
}

func runShow(cmd *cobra.Command, id string, history bool) error {
	ctx := cmd.Context()

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		if history {
			entries, err := h.HandleHistory(ctx, id)
			if err != nil {
				return err
			}
			displayHistory(os.Stdout, entries)
			return nil
		}

		story, err := h.HandleGet(ctx, id)
		if err != nil {
			return err
		}
		displayStory(os.Stdout, story)
		return nil
	})
}

func displayStory(w io.Writer, story *entities.Story) {
	fmt.Fprintf(w, "ID: %s\n", story.ID)
	fmt.Fprintf(w, "  Characters: %s\n", story.Inputs.Characters)
	fmt.Fprintf(w, "  Setting: %s\n", story.Inputs.Setting)
	fmt.Fprintf(w, "  Genre: %s\n", story.Inputs.Genre)
	fmt.Fprintf(w, "  Length: %s\n", story.Inputs.Length)
	fmt.Fprintf(w, "  Language: %s\n", story.Inputs.Language)
	if story.Inputs.OtherDetails != "" {
		fmt.Fprintf(w, "  Details: %s\n", story.Inputs.OtherDetails)
	}
	if story.Finished {
		fmt.Fprintln(w, "  Status: finished")
	} else {
		fmt.Fprintln(w, "  Status: in progress")
	}

	for i := range story.Parts {
		fmt.Fprintln(w)
		printPart(w, &story.Parts[i])
	}
}

func displayHistory(w io.Writer, entries []entities.AuditEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s", e.CreatedAt.Local().Format(time.DateTime), e.Action)
		if idx, ok := e.Details["index"]; ok {
			fmt.Fprintf(w, " (part %v)", idx)
		}
		fmt.Fprintln(w)
	}
}

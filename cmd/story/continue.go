package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
)

func newContinueCmd() *cobra.Command {
	var instructions string

	cmd := &cobra.Command{
		Use:   "continue STORY_ID",
		Short: "Generate the next part of a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContinue(cmd, args[0], instructions)
		},
	}

	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Direction for this part")

	return cmd
}

func runContinue(cmd *cobra.Command, id, instructions string) error {
	ctx := cmd.Context()

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		part, err := h.HandleContinue(ctx, id, handlers.ContinueInput{Instructions: instructions})
		if err != nil {
			return err
		}

		printPart(os.Stdout, part)
		continueHint(os.Stdout, id)
		return nil
	})
}

func newEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end STORY_ID",
		Short: "Generate the conclusion and finish a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnd(cmd, args[0])
		},
	}
}

func runEnd(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		part, err := h.HandleEnd(ctx, id)
		if err != nil {
			return err
		}

		printPart(os.Stdout, part)
		fmt.Printf("\nStory %s finished.\n", id)
		return nil
	})
}

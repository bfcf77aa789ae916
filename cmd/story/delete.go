package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete STORY_ID",
		Short: "Delete a story",
		Long:  "Deletes a story and all of its parts. The audit log is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, id string, force bool) error {
	ctx := cmd.Context()

	return withStoryHandler(ctx, func(h *handlers.StoryHandler) error {
		story, err := h.HandleGet(ctx, id)
		if err != nil {
			return err
		}

		prompt := fmt.Sprintf("Delete story %s (%s, %d parts)?", id, story.Inputs.Characters, len(story.Parts))
		if !force && !confirmAction(os.Stdin, prompt) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := h.HandleDelete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted story: %s\n", id)
		return nil
	})
}

func confirmAction(in io.Reader, prompt string) bool {
	reader := bufio.NewReader(in)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/infrastructure/config"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved story inputs",
		RunE:  runPresetsList,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved presets",
			RunE:  runPresetsList,
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "Delete a saved preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPresetsDelete(args[0])
			},
		},
	)

	return cmd
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return err
	}

	if len(presets.Presets) == 0 {
		fmt.Println("No presets saved.")
		fmt.Println("Use 'story start --save-preset NAME' to save one.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGENRE\tCHARACTERS\tSETTING")
	for _, name := range presets.Names() {
		p := presets.Presets[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, p.Genre, truncate(p.Characters, 30), truncate(p.Setting, 30))
	}
	return tw.Flush()
}

func runPresetsDelete(name string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return err
	}

	if _, err := presets.Get(name); err != nil {
		return err
	}

	presets.Remove(name)
	if err := presets.Save(cwd); err != nil {
		return err
	}

	fmt.Printf("Deleted preset: %s\n", config.SanitizePresetName(name))
	return nil
}

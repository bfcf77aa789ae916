package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/infrastructure/config"
)

// Start defaults applied after presets and flags are merged.
const (
	defaultStartLength   = entities.LengthMedium
	defaultStartLanguage = "English"
)

type startFlags struct {
	inputs     entities.StoryInputs
	length     string
	preset     string
	savePreset string
}

func newStartCmd() *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new LLM-written story",
		Long: `Starts a story and generates its first part with the configured model.

Inputs can come from a saved preset; flags override preset values.
Length is one of short, medium, long or epic.`,
		Example: `  story start -c "Mira and Tomas" -s "a lighthouse" -g Mystery --length short
  story start --preset lighthouse --language Spanish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.inputs.Characters, "characters", "c", "", "Main character(s)")
	cmd.Flags().StringVarP(&flags.inputs.Setting, "setting", "s", "", "Where the story takes place")
	cmd.Flags().StringVarP(&flags.inputs.Genre, "genre", "g", "", "Story genre")
	cmd.Flags().StringVar(&flags.length, "length", "", "Part length: short, medium, long, epic (default medium)")
	cmd.Flags().StringVarP(&flags.inputs.Language, "language", "l", "", "Language to write in (default English)")
	cmd.Flags().StringVarP(&flags.inputs.OtherDetails, "details", "d", "", "Other details for the model")
	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "Load inputs from a saved preset")
	cmd.Flags().StringVar(&flags.savePreset, "save-preset", "", "Save the final inputs as a preset")

	return cmd
}

func runStart(cmd *cobra.Command, flags startFlags) error {
	ctx := cmd.Context()
	flags.inputs.Length = entities.StoryLength(flags.length)

	return withDeps(ctx, func(d *Deps) error {
		inputs, err := resolveStartInputs(d.BasePath, flags)
		if err != nil {
			return err
		}

		story, err := d.StoryHandler.HandleStart(ctx, inputs)
		if err != nil {
			return err
		}

		if flags.savePreset != "" {
			name, err := savePreset(d.BasePath, flags.savePreset, inputs)
			if err != nil {
				return err
			}
			fmt.Printf("Saved preset: %s\n", name)
		}

		fmt.Printf("Started story: %s\n\n", story.ID)
		printPart(os.Stdout, &story.Parts[0])
		continueHint(os.Stdout, story.ID)
		return nil
	})
}

// resolveStartInputs merges the preset (if any) with flag values and
// applies defaults for length and language.
func resolveStartInputs(basePath string, flags startFlags) (entities.StoryInputs, error) {
	var inputs entities.StoryInputs

	if flags.preset != "" {
		presets, err := config.LoadPresets(basePath)
		if err != nil {
			return inputs, err
		}
		entry, err := presets.Get(flags.preset)
		if err != nil {
			return inputs, err
		}
		inputs = entry.Inputs()
	}

	inputs = mergeInputs(inputs, flags.inputs)
	if inputs.Length == "" {
		inputs.Length = defaultStartLength
	}
	if inputs.Language == "" {
		inputs.Language = defaultStartLanguage
	}
	return inputs, nil
}

// mergeInputs returns base with every non-blank field of overrides applied.
func mergeInputs(base, overrides entities.StoryInputs) entities.StoryInputs {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	set(&base.Characters, overrides.Characters)
	set(&base.Setting, overrides.Setting)
	set(&base.Genre, overrides.Genre)
	set(&base.Language, overrides.Language)
	set(&base.OtherDetails, overrides.OtherDetails)
	if l := strings.TrimSpace(string(overrides.Length)); l != "" {
		base.Length = entities.StoryLength(strings.ToLower(l))
	}
	return base
}

func savePreset(basePath, name string, inputs entities.StoryInputs) (string, error) {
	presets, err := config.LoadPresets(basePath)
	if err != nil {
		return "", err
	}
	key := presets.Add(name, config.PresetFromInputs(inputs))
	if err := presets.Save(basePath); err != nil {
		return "", err
	}
	return key, nil
}

func printPart(w io.Writer, part *entities.StoryPart) {
	switch part.Action {
	case entities.ActionStart:
		fmt.Fprintln(w, "=== Beginning ===")
	case entities.ActionEnd:
		fmt.Fprintln(w, "=== Conclusion ===")
	default:
		fmt.Fprintf(w, "=== Part %d ===\n", part.Index+1)
	}
	if part.Instructions != "" {
		fmt.Fprintf(w, "(direction: %s)\n", part.Instructions)
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(part.Text))
}

// continueHint is printed after a part of an unfinished story.
func continueHint(w io.Writer, id string) {
	fmt.Fprintf(w, "\nContinue with 'story continue %s' or finish with 'story end %s'\n", id, id)
}

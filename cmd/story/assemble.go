package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/entities"
)

type assembleFlags struct {
	characters string
	setting    string
	category   string
	language   string
	seed       uint64
	batch      string
	format     string
	escape     bool
	jsonOut    bool
}

func newAssembleCmd() *cobra.Command {
	var flags assembleFlags

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a story from the phrase catalog",
		Long: `Assembles a short titled story from the phrase catalog without calling a model.

Use --batch to assemble every request in a JSON or CSV file. CSV files need
"characters" and "setting" columns; "category" and "language" are optional
and default to the --category and --language flags.`,
		Example: `  story assemble -c "Mira" -s "Willow Hollow" -g Mystery -l en
  story assemble --batch requests.csv --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.characters, "characters", "c", "", "Main character(s)")
	cmd.Flags().StringVarP(&flags.setting, "setting", "s", "", "Where the story takes place")
	cmd.Flags().StringVarP(&flags.category, "category", "g", string(entities.CategoryAdventure), "Story category")
	cmd.Flags().StringVarP(&flags.language, "language", "l", string(entities.LanguageEnglish), "Language code (en, es, fr, de, it, pt)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for reproducible output (0 uses the clock)")
	cmd.Flags().StringVarP(&flags.batch, "batch", "b", "", "Assemble every request in a JSON or CSV file")
	cmd.Flags().StringVar(&flags.format, "format", "auto", "Batch file format: json, csv, or auto")
	cmd.Flags().BoolVar(&flags.escape, "escape-html", false, "HTML-escape user text before assembly")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Print results as JSON")

	return cmd
}

func runAssemble(cmd *cobra.Command, flags assembleFlags) error {
	ctx := cmd.Context()

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	assembler, err := ws.newAssembler()
	if err != nil {
		return err
	}

	handler := handlers.NewAssembleHandler(assembler, newRandom(flags.seed), flags.escape, logger)

	if flags.batch != "" {
		items, err := handler.HandleBatch(ctx, flags.batch, handlers.BatchOptions{
			Format:          flags.format,
			DefaultCategory: entities.Category(flags.category),
			DefaultLanguage: entities.LanguageCode(flags.language),
		})
		if err != nil {
			return err
		}
		if flags.jsonOut {
			return writeJSON(os.Stdout, items)
		}
		return printBatch(os.Stdout, items)
	}

	result, err := handler.Handle(ctx, entities.StoryRequest{
		Characters: flags.characters,
		Setting:    flags.setting,
		Category:   entities.Category(flags.category),
		Language:   entities.LanguageCode(flags.language),
	})
	if err != nil {
		var verr *handlers.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w (use --characters and --setting)", err)
		}
		return err
	}

	if flags.jsonOut {
		return writeJSON(os.Stdout, result)
	}
	printStory(os.Stdout, result)
	return nil
}

func printStory(w io.Writer, result *handlers.AssembleResult) {
	fmt.Fprintf(w, "%s\n\n%s\n", result.Title, result.Body)
}

func printBatch(w io.Writer, items []handlers.BatchItem) error {
	failed := 0
	for _, item := range items {
		fmt.Fprintf(w, "--- line %d ---\n", item.Line)
		if item.Error != "" {
			failed++
			fmt.Fprintf(w, "error: %s\n\n", item.Error)
			continue
		}
		printStory(w, item.Result)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Assembled %d of %d stories\n", len(items)-failed, len(items))
	if failed > 0 {
		return fmt.Errorf("%d request(s) failed", failed)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

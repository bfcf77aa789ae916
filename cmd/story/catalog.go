package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/story-core/internal/domain/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect phrase catalogs",
		RunE:  runCatalogList,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the languages and categories of the active catalog",
			RunE:  runCatalogList,
		},
		&cobra.Command{
			Use:   "validate FILE",
			Short: "Validate a YAML catalog file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCatalogValidate(args[0])
			},
		},
	)

	return cmd
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(ws.cfg.CatalogPath(ws.basePath))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	source := ws.cfg.CatalogPath(ws.basePath)
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("Catalog: %s\n\n", source)

	return printCatalog(os.Stdout, cat)
}

func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tTEMPLATES\tCATEGORIES")
	for _, code := range cat.Languages() {
		bundle := cat.Bundles[code]
		fmt.Fprintf(tw, "%s\t%d\t%d\n", code, len(bundle.Templates), len(bundle.Vocabulary))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	categories := cat.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	fmt.Fprintf(w, "\nCategories: %s\n", strings.Join(names, ", "))
	return nil
}

func runCatalogValidate(path string) error {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s is valid (%d languages)\n", path, len(cat.Bundles))
	return nil
}

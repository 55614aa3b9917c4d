// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/brandcraft/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the name, typography, and palette tables in use",
	Long: `Catalog prints the tables brandcraft generates from as YAML, after any
--catalog overlay is applied. The output is a valid overlay file, so it can be
edited and passed back with --catalog.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Bool("categories", false, "list the known categories only")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	onlyCategories, _ := cmd.Flags().GetBool("categories")

	st, err := newStudio()
	if err != nil {
		return err
	}
	cat := st.Catalog()
	out := cmd.OutOrStdout()

	if onlyCategories {
		for _, c := range cat.Categories() {
			fmt.Fprintln(out, c)
		}
		fmt.Fprintf(out, "%s (fallback)\n", types.DefaultCategory)
		return nil
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cat.Tables()); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}

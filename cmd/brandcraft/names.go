// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brandcraft/internal/catalog"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Generate candidate brand names for a category",
	Long: `Names joins a random prefix and suffix from the category's word table
until it has a full set of distinct names. Unknown categories use the default
table. Names are printed in lexical order.`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	namesCmd.Flags().String("category", "", "business category, e.g. food, fashion, footwear")
	namesCmd.Flags().Bool("json", false, "print a JSON object instead of one name per line")

	rootCmd.AddCommand(namesCmd)
}

type namesOutput struct {
	Category   string   `json:"category"`
	BrandNames []string `json:"brand_names"`
}

func runNames(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	asJSON, _ := cmd.Flags().GetBool("json")

	st, err := newStudio()
	if err != nil {
		return err
	}
	set, err := st.SynthesizeNames(category)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, namesOutput{
			Category:   string(catalog.NormalizeCategory(category)),
			BrandNames: set.Sorted(),
		})
	}
	for _, name := range set.Sorted() {
		fmt.Fprintln(out, name)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdiddy/brandcraft/pkg/types"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Pick a curated primary, accent, and dark color palette",
	Long: `Palette picks one of the curated (primary, accent, dark) color triples
at random and prints it as swatches. Use --all to list every palette.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().Bool("json", false, "print palettes as JSON")
	paletteCmd.Flags().Bool("all", false, "list every curated palette")

	rootCmd.AddCommand(paletteCmd)
}

type paletteOutput struct {
	Label  string            `json:"label,omitempty"`
	Colors [3]types.ColorHex `json:"colors"`
}

func runPalette(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	all, _ := cmd.Flags().GetBool("all")

	st, err := newStudio()
	if err != nil {
		return err
	}

	var picked []types.PaletteEntry
	if all {
		picked = st.Palettes()
	} else {
		picked = []types.PaletteEntry{st.SelectPalette()}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		rows := make([]paletteOutput, len(picked))
		for i, p := range picked {
			rows[i] = paletteOutput{Label: p.Label, Colors: p.Colors()}
		}
		if all {
			return writeJSON(out, rows)
		}
		return writeJSON(out, rows[0])
	}
	for _, p := range picked {
		printPalette(out, p)
	}
	return nil
}

func printPalette(w io.Writer, p types.PaletteEntry) {
	colors := p.Colors()
	cells := make([]string, 0, len(colors)+1)
	for _, c := range colors {
		cells = append(cells, swatch(c, string(c)))
	}
	if p.Label != "" {
		cells = append(cells, " "+p.Label)
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brandcraft/internal/contrast"
	"github.com/pdiddy/brandcraft/pkg/types"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <color>...",
	Short: "Pick black or white text for background colors",
	Long: `Contrast prints the text color ("#ffffff" or "#000000") that reads best
on each background color, using BT.601 luma with a 0.5 threshold. Colors that
are not 3- or 6-digit hex get black text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().Bool("json", false, "print results as JSON")

	rootCmd.AddCommand(contrastCmd)
}

type contrastOutput struct {
	Color     string         `json:"color"`
	TextColor types.ColorHex `json:"text_color"`
	Luminance *float64       `json:"luminance,omitempty"`
}

func runContrast(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	rows := make([]contrastOutput, len(args))
	for i, c := range args {
		row := contrastOutput{Color: c, TextColor: contrast.PickContrastColor(types.ColorHex(c))}
		if rgb, err := contrast.Parse(types.ColorHex(c)); err == nil {
			l := contrast.Luminance(rgb)
			row.Luminance = &l
		}
		rows[i] = row
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, rows)
	}
	for _, r := range rows {
		if r.Luminance == nil {
			fmt.Fprintf(out, "%s\t%s\t(unparseable)\n", r.Color, r.TextColor)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%.3f\t%s\n", r.Color, r.TextColor, *r.Luminance,
			swatch(types.ColorHex(r.Color), " Sample "))
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/brandcraft/internal/contrast"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// swatch renders label on a block of color, using the contrast pick for the
// text. Unparseable colors render as plain text.
func swatch(color types.ColorHex, label string) string {
	rgb, err := contrast.Parse(color)
	if err != nil {
		return label
	}
	bg := lipgloss.Color(string(rgb.Hex()))
	fg := lipgloss.Color(string(contrast.PickContrastColor(color)))
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Render(label)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

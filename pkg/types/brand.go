// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared by the brandcraft generators, the CLI,
// and the HTTP surface.
package types

import "sort"

// CategoryKey identifies a business category in the catalog tables. Keys are
// lower-cased before lookup; unknown keys resolve to DefaultCategory.
type CategoryKey string

// DefaultCategory is the fallback entry every catalog table carries.
const DefaultCategory CategoryKey = "default"

// ShapeStyle selects the parametric shape drawn in a logo mark.
type ShapeStyle string

const (
	ShapeCircle  ShapeStyle = "circle"
	ShapeSquare  ShapeStyle = "square"
	ShapeBadge   ShapeStyle = "badge"
	ShapeDiamond ShapeStyle = "diamond"
	ShapeLine    ShapeStyle = "line"
)

// ShapeStyles lists the recognized shape variants in display order.
var ShapeStyles = []ShapeStyle{ShapeCircle, ShapeSquare, ShapeBadge, ShapeDiamond, ShapeLine}

// ColorHex is a 3- or 6-digit hex color, with or without a leading '#'.
type ColorHex string

const (
	// TextLight is picked for text over dark backgrounds.
	TextLight ColorHex = "#ffffff"

	// TextDark is picked for text over light backgrounds and for any color
	// that cannot be parsed.
	TextDark ColorHex = "#000000"

	// DefaultPrimaryColor is used when a logo request carries no color.
	DefaultPrimaryColor ColorHex = "#2E7D32"
)

// NameTable holds the word parts that brand names are built from.
type NameTable struct {
	Prefixes []string `json:"prefixes" yaml:"prefixes"`
	Suffixes []string `json:"suffixes" yaml:"suffixes"`
}

// TypographyProfile holds the four style tokens embedded verbatim into the
// logo's text element.
type TypographyProfile struct {
	FontFamily    string `json:"font_family" yaml:"font_family"`
	FontWeight    string `json:"font_weight" yaml:"font_weight"`
	LetterSpacing string `json:"letter_spacing" yaml:"letter_spacing"`
	TextTransform string `json:"text_transform" yaml:"text_transform"`
}

// PaletteEntry is a curated (primary, accent, dark) color triple.
type PaletteEntry struct {
	// Label is a human-readable name for the palette (e.g. "trust blue").
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	Primary ColorHex `json:"primary" yaml:"primary"`
	Accent  ColorHex `json:"accent" yaml:"accent"`
	Dark    ColorHex `json:"dark" yaml:"dark"`
}

// Colors returns the triple in (primary, accent, dark) order.
func (p PaletteEntry) Colors() [3]ColorHex {
	return [3]ColorHex{p.Primary, p.Accent, p.Dark}
}

// GeneratedNameSet is a set of distinct candidate brand names.
type GeneratedNameSet map[string]struct{}

// Contains reports whether name is in the set.
func (s GeneratedNameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order. The set itself is unordered;
// sorting is only for stable display.
func (s GeneratedNameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LogoRequest carries the caller's attributes for a logo. Empty fields are
// replaced with defaults by the composer.
type LogoRequest struct {
	Name         string      `json:"brand_name" validate:"required,max=80"`
	PrimaryColor ColorHex    `json:"primary_color" validate:"max=32"`
	Category     CategoryKey `json:"category" validate:"max=64"`
	Style        ShapeStyle  `json:"style" validate:"max=32"`
}

// Logo is the composer's result: the vector markup plus the normalized style
// and category it was built from.
type Logo struct {
	Markup   string      `json:"svg_logo"`
	Style    ShapeStyle  `json:"style"`
	Category CategoryKey `json:"category"`
}

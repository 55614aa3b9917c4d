// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logo composes a brand logo as SVG markup: a colored shape mark and
// the brand name set in the category's typography, with a text color chosen
// for contrast against the primary color.
//
// Composition is pure. The same request and tables always produce
// byte-identical markup, and no input is rejected: empty or unknown values
// fall back to defaults.
package logo

import (
	"fmt"
	"strings"

	"github.com/pdiddy/brandcraft/internal/catalog"
	"github.com/pdiddy/brandcraft/internal/contrast"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// Document geometry, in SVG user units.
const (
	Width  = 420
	Height = 140

	markX = 30
	markY = 30

	textX    = 160
	textY    = 85
	fontSize = 34
)

// TypographyResolver looks up the typography for a category, falling back to
// the default profile. *catalog.Catalog implements it.
type TypographyResolver interface {
	Typography(category types.CategoryKey) types.TypographyProfile
}

// Composer builds logo markup from a typography table.
type Composer struct {
	typography TypographyResolver
}

// New returns a Composer reading typography from t.
func New(t TypographyResolver) *Composer {
	return &Composer{typography: t}
}

// Normalize fills in defaults: empty style becomes circle, empty category
// becomes default (and is lower-cased), empty color becomes the default green.
// Unknown styles and categories are kept as given; rendering falls back.
func Normalize(req types.LogoRequest) types.LogoRequest {
	if req.Style == "" {
		req.Style = types.ShapeCircle
	}
	req.Category = catalog.NormalizeCategory(string(req.Category))
	if req.PrimaryColor == "" {
		req.PrimaryColor = types.DefaultPrimaryColor
	}
	return req
}

// Compose renders the logo for req.
func (c *Composer) Compose(req types.LogoRequest) types.Logo {
	req = Normalize(req)

	typo := c.typography.Typography(req.Category)
	color := escapeAttr(string(req.PrimaryColor))
	textColor := contrast.PickContrastColor(req.PrimaryColor)

	return types.Logo{
		Markup:   render(shapeMarkup(req.Style, color), typo, textColor, EscapeText(req.Name)),
		Style:    req.Style,
		Category: req.Category,
	}
}

func render(shape string, typo types.TypographyProfile, textColor types.ColorHex, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		Width, Height, Width, Height)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="white"/>`+"\n", Width, Height)
	fmt.Fprintf(&b, `  <g transform="translate(%d,%d)">`+"\n", markX, markY)
	fmt.Fprintf(&b, "    %s\n", shape)
	b.WriteString("  </g>\n")
	fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="%d" font-family="%s" font-weight="%s" letter-spacing="%s" text-transform="%s" fill="%s">%s</text>`+"\n",
		textX, textY, fontSize,
		escapeAttr(typo.FontFamily), escapeAttr(typo.FontWeight),
		escapeAttr(typo.LetterSpacing), escapeAttr(typo.TextTransform),
		textColor, name)
	b.WriteString("</svg>")
	return b.String()
}

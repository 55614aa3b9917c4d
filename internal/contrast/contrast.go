// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contrast decides whether light or dark text reads legibly on a
// background color.
//
// Luminance uses the ITU-R BT.601 luma weights (0.299, 0.587, 0.114) with a
// fixed 0.5 threshold. This is not WCAG relative luminance; the weights and
// threshold are kept exact so the same colors always pick the same text.
package contrast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/brandcraft/pkg/types"
)

// ErrMalformedColor is returned by Parse for input that is not 3- or 6-digit hex.
var ErrMalformedColor = errors.New("malformed hex color")

// Threshold separates dark backgrounds (light text) from light ones.
const Threshold = 0.5

// RGB is a parsed color with channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

// Hex formats c as a lower-case "#rrggbb" string.
func (c RGB) Hex() types.ColorHex {
	return types.ColorHex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Parse converts a ColorHex into its channels. Leading '#' characters are
// stripped; three-digit shorthand doubles each nibble ("#0af" == "#00aaff").
func Parse(c types.ColorHex) (RGB, error) {
	h := strings.TrimLeft(string(c), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits", ErrMalformedColor, string(c), len(h))
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColor, string(c))
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Luminance returns the BT.601 perceptual luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// PickContrastColor returns white text for dark backgrounds and black text
// for light ones. Input that does not parse yields black.
func PickContrastColor(c types.ColorHex) types.ColorHex {
	rgb, err := Parse(c)
	if err != nil {
		return types.TextDark
	}
	if Luminance(rgb) < Threshold {
		return types.TextLight
	}
	return types.TextDark
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logo

import (
	"fmt"

	"github.com/pdiddy/brandcraft/pkg/types"
)

// Shape primitives live in an 80x80 local box that is translated into the
// mark area of the document. The single %s is the attribute-escaped color.
var shapes = map[types.ShapeStyle]string{
	// Centered disc, radius 30.
	types.ShapeCircle: `<circle cx="40" cy="40" r="30" fill="%s"/>`,
	// 60x60 square inset 10 on each side.
	types.ShapeSquare: `<rect x="10" y="10" width="60" height="60" fill="%s"/>`,
	// Wide pill, 70x40 with 12 corner radius.
	types.ShapeBadge: `<rect x="5" y="20" width="70" height="40" rx="12" fill="%s"/>`,
	// 40x40 square rotated 45 degrees about the box center.
	types.ShapeDiamond: `<rect x="20" y="20" width="40" height="40" transform="rotate(45 40 40)" fill="%s"/>`,
	// Horizontal rule across the full box width, stroked rather than filled.
	types.ShapeLine: `<line x1="0" y1="40" x2="80" y2="40" stroke="%s" stroke-width="6"/>`,
}

// shapeMarkup renders the primitive for style, using the circle for any
// style outside the known variants.
func shapeMarkup(style types.ShapeStyle, color string) string {
	tmpl, ok := shapes[style]
	if !ok {
		tmpl = shapes[types.ShapeCircle]
	}
	return fmt.Sprintf(tmpl, color)
}

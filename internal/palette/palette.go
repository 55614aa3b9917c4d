// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package palette picks one curated color triple uniformly at random.
package palette

import (
	"slices"

	"github.com/pdiddy/brandcraft/internal/entropy"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// Selector draws from a fixed, non-empty palette list.
type Selector struct {
	palettes []types.PaletteEntry
	src      entropy.Source
}

// New returns a Selector over palettes. It panics when palettes is empty;
// catalog validation guarantees a non-empty list.
func New(palettes []types.PaletteEntry, src entropy.Source) *Selector {
	if len(palettes) == 0 {
		panic("palette: empty palette list")
	}
	return &Selector{palettes: slices.Clone(palettes), src: src}
}

// Select returns one palette, consuming a single draw from the source.
func (s *Selector) Select() types.PaletteEntry {
	return s.palettes[s.src.IntN(len(s.palettes))]
}

// All returns the palettes Select chooses from, in order.
func (s *Selector) All() []types.PaletteEntry {
	return slices.Clone(s.palettes)
}

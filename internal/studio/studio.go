// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package studio wires the catalog and generators together and exposes the
// four brand operations to the CLI and the HTTP surface.
package studio

import (
	"go.uber.org/zap"

	"github.com/pdiddy/brandcraft/internal/catalog"
	"github.com/pdiddy/brandcraft/internal/contrast"
	"github.com/pdiddy/brandcraft/internal/entropy"
	"github.com/pdiddy/brandcraft/internal/logo"
	"github.com/pdiddy/brandcraft/internal/names"
	"github.com/pdiddy/brandcraft/internal/palette"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// Studio is safe for concurrent use: the catalog is read-only and the random
// source is concurrency-safe.
type Studio struct {
	catalog  *catalog.Catalog
	names    *names.Synthesizer
	logos    *logo.Composer
	palettes *palette.Selector
	logger   *zap.Logger
}

// New builds a Studio over cat. A nil logger disables logging.
func New(cat *catalog.Catalog, src entropy.Source, cfg types.NamesConfig, logger *zap.Logger) *Studio {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Studio{
		catalog:  cat,
		names:    names.New(cat, src, cfg),
		logos:    logo.New(cat),
		palettes: palette.New(cat.Palettes(), src),
		logger:   logger,
	}
}

// Catalog returns the tables the studio generates from.
func (s *Studio) Catalog() *catalog.Catalog {
	return s.catalog
}

// SynthesizeNames returns a set of distinct candidate names for category.
func (s *Studio) SynthesizeNames(category string) (types.GeneratedNameSet, error) {
	key := catalog.NormalizeCategory(category)
	set, err := s.names.Synthesize(key)
	if err != nil {
		s.logger.Warn("name synthesis failed", zap.String("category", string(key)), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("names synthesized", zap.String("category", string(key)), zap.Int("count", len(set)))
	return set, nil
}

// ComposeLogo renders logo markup for req. It never fails.
func (s *Studio) ComposeLogo(req types.LogoRequest) types.Logo {
	out := s.logos.Compose(req)
	s.logger.Debug("logo composed",
		zap.String("style", string(out.Style)),
		zap.String("category", string(out.Category)),
		zap.Int("bytes", len(out.Markup)))
	return out
}

// SelectPalette returns one curated palette.
func (s *Studio) SelectPalette() types.PaletteEntry {
	p := s.palettes.Select()
	s.logger.Debug("palette selected", zap.String("label", p.Label))
	return p
}

// Palettes returns every palette SelectPalette chooses from.
func (s *Studio) Palettes() []types.PaletteEntry {
	return s.palettes.All()
}

// PickContrastColor returns "#ffffff" or "#000000" for text over color.
func (s *Studio) PickContrastColor(color string) types.ColorHex {
	return contrast.PickContrastColor(types.ColorHex(color))
}

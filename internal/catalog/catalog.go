// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the immutable lookup tables the generators read:
// per-category name parts, per-category typography, and the curated palettes.
//
// A Catalog is built once at startup (from the embedded tables, optionally
// overlaid with a YAML file) and then shared read-only by every generator.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/brandcraft/internal/contrast"
	"github.com/pdiddy/brandcraft/pkg/types"
)

//go:embed catalog.yaml
var builtin []byte

// ErrInvalidCatalog wraps every validation failure reported by New and Load.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Tables is the serialized form of a catalog.
type Tables struct {
	Names      map[types.CategoryKey]types.NameTable         `json:"names,omitempty" yaml:"names,omitempty"`
	Typography map[types.CategoryKey]types.TypographyProfile `json:"typography,omitempty" yaml:"typography,omitempty"`
	Palettes   []types.PaletteEntry                          `json:"palettes,omitempty" yaml:"palettes,omitempty"`
}

// Catalog is a validated, read-only set of tables. Accessors return copies.
type Catalog struct {
	names      map[types.CategoryKey]types.NameTable
	typography map[types.CategoryKey]types.TypographyProfile
	palettes   []types.PaletteEntry
}

var loadBuiltin = sync.OnceValues(func() (*Catalog, error) {
	t, err := parse(builtin)
	if err != nil {
		return nil, err
	}
	return New(t)
})

// Default returns the embedded catalog. It panics if the embedded tables are
// invalid, which only a broken build can cause.
func Default() *Catalog {
	c, err := loadBuiltin()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded tables: %v", err))
	}
	return c
}

// Load returns the embedded catalog overlaid with the YAML file at path.
// Categories in the file replace or extend the embedded ones; a non-empty
// palettes list replaces the embedded palettes. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	overlay, err := parse(data)
	if err != nil {
		return nil, err
	}

	names, err := normalizeKeys("names", overlay.Names)
	if err != nil {
		return nil, err
	}
	typography, err := normalizeKeys("typography", overlay.Typography)
	if err != nil {
		return nil, err
	}

	merged := Default().Tables()
	maps.Copy(merged.Names, names)
	maps.Copy(merged.Typography, typography)
	if len(overlay.Palettes) > 0 {
		merged.Palettes = overlay.Palettes
	}
	return New(merged)
}

func parse(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return t, nil
}

// normalizeKeys re-keys table with NormalizeCategory. Two keys that
// normalize to the same category are rejected.
func normalizeKeys[V any](table string, in map[types.CategoryKey]V) (map[types.CategoryKey]V, error) {
	out := make(map[types.CategoryKey]V, len(in))
	from := make(map[types.CategoryKey]types.CategoryKey, len(in))
	for k, v := range in {
		key := NormalizeCategory(string(k))
		if prev, dup := from[key]; dup {
			a, b := min(prev, k), max(prev, k)
			return nil, fmt.Errorf("%w: %s keys %q and %q both normalize to %q", ErrInvalidCatalog, table, a, b, key)
		}
		from[key] = k
		out[key] = v
	}
	return out, nil
}

// New validates t and returns a Catalog holding a private copy of it.
// Category keys are normalized with NormalizeCategory; keys that collide
// after normalization are rejected.
func New(t Tables) (*Catalog, error) {
	names, err := normalizeKeys("names", t.Names)
	if err != nil {
		return nil, err
	}
	typography, err := normalizeKeys("typography", t.Typography)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		names:      make(map[types.CategoryKey]types.NameTable, len(names)),
		typography: typography,
		palettes:   slices.Clone(t.Palettes),
	}
	for k, v := range names {
		c.names[k] = cloneNames(v)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if _, ok := c.names[types.DefaultCategory]; !ok {
		return fmt.Errorf("%w: names table has no %q entry", ErrInvalidCatalog, types.DefaultCategory)
	}
	for k, v := range c.names {
		if len(v.Prefixes) == 0 || len(v.Suffixes) == 0 {
			return fmt.Errorf("%w: names[%s] needs at least one prefix and one suffix", ErrInvalidCatalog, k)
		}
	}

	if _, ok := c.typography[types.DefaultCategory]; !ok {
		return fmt.Errorf("%w: typography table has no %q entry", ErrInvalidCatalog, types.DefaultCategory)
	}
	for k, v := range c.typography {
		for _, tok := range []string{v.FontFamily, v.FontWeight, v.LetterSpacing, v.TextTransform} {
			if tok == "" || strings.ContainsAny(tok, `"<>&`) {
				return fmt.Errorf("%w: typography[%s] token %q is empty or not attribute-safe", ErrInvalidCatalog, k, tok)
			}
		}
	}

	if len(c.palettes) == 0 {
		return fmt.Errorf("%w: no palettes", ErrInvalidCatalog)
	}
	for i, p := range c.palettes {
		for _, col := range p.Colors() {
			if _, err := contrast.Parse(col); err != nil {
				return fmt.Errorf("%w: palettes[%d]: %v", ErrInvalidCatalog, i, err)
			}
		}
	}
	return nil
}

// NormalizeCategory lower-cases s; an empty s becomes DefaultCategory.
// Unknown categories are not rejected here; lookups fall back instead.
func NormalizeCategory(s string) types.CategoryKey {
	if s == "" {
		return types.DefaultCategory
	}
	return types.CategoryKey(cases.Lower(language.Und).String(s))
}

// NameTable returns the name parts for category, or the default entry when
// the category is unknown.
func (c *Catalog) NameTable(category types.CategoryKey) types.NameTable {
	t, ok := c.names[category]
	if !ok {
		t = c.names[types.DefaultCategory]
	}
	return cloneNames(t)
}

// Typography returns the typography profile for category, or the default
// profile when the category is unknown.
func (c *Catalog) Typography(category types.CategoryKey) types.TypographyProfile {
	if p, ok := c.typography[category]; ok {
		return p
	}
	return c.typography[types.DefaultCategory]
}

// Palettes returns the curated palettes in catalog order.
func (c *Catalog) Palettes() []types.PaletteEntry {
	return slices.Clone(c.palettes)
}

// Categories returns the known categories in sorted order, excluding the
// default entry.
func (c *Catalog) Categories() []types.CategoryKey {
	seen := make(map[types.CategoryKey]bool)
	for k := range c.names {
		seen[k] = true
	}
	for k := range c.typography {
		seen[k] = true
	}
	delete(seen, types.DefaultCategory)
	return slices.Sorted(maps.Keys(seen))
}

// Tables returns a deep copy of the catalog in its serialized form.
func (c *Catalog) Tables() Tables {
	t := Tables{
		Names:      make(map[types.CategoryKey]types.NameTable, len(c.names)),
		Typography: maps.Clone(c.typography),
		Palettes:   slices.Clone(c.palettes),
	}
	for k, v := range c.names {
		t.Names[k] = cloneNames(v)
	}
	return t
}

func cloneNames(t types.NameTable) types.NameTable {
	return types.NameTable{
		Prefixes: slices.Clone(t.Prefixes),
		Suffixes: slices.Clone(t.Suffixes),
	}
}

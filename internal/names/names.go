// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names synthesizes candidate brand names by joining a random prefix
// and suffix from a category's name table until enough distinct names exist.
package names

import (
	"errors"
	"fmt"

	"github.com/pdiddy/brandcraft/internal/catalog"
	"github.com/pdiddy/brandcraft/internal/entropy"
	"github.com/pdiddy/brandcraft/pkg/types"
)

const (
	// DefaultTarget is the number of distinct names returned per call.
	DefaultTarget = 12

	// DefaultMaxAttempts bounds the number of prefix/suffix draws per call.
	DefaultMaxAttempts = 1000
)

// ErrInsufficientCombinations matches every *InsufficientCombinationsError.
var ErrInsufficientCombinations = errors.New("insufficient name combinations")

// InsufficientCombinationsError reports that a category's table cannot yield
// Target distinct names. Attempts is zero when the table was rejected before
// drawing, because it has fewer than Target distinct combinations.
type InsufficientCombinationsError struct {
	Category  types.CategoryKey
	Available int
	Target    int
	Attempts  int
}

func (e *InsufficientCombinationsError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("category %q: %d distinct names available, %d required", e.Category, e.Available, e.Target)
	}
	return fmt.Sprintf("category %q: found fewer than %d distinct names in %d draws (%d available)",
		e.Category, e.Target, e.Attempts, e.Available)
}

// Is reports whether target is ErrInsufficientCombinations.
func (e *InsufficientCombinationsError) Is(target error) bool {
	return target == ErrInsufficientCombinations
}

// TableResolver looks up the name table for a category, falling back to the
// default table for unknown categories. *catalog.Catalog implements it.
type TableResolver interface {
	NameTable(category types.CategoryKey) types.NameTable
}

// Synthesizer generates name sets. It holds no mutable state of its own and
// is safe for concurrent use when its Source is.
type Synthesizer struct {
	tables      TableResolver
	src         entropy.Source
	target      int
	maxAttempts int
}

// New returns a Synthesizer producing DefaultTarget names per call. A zero
// MaxAttempts in cfg selects the default; cfg.Seed is ignored here, the
// caller picks src.
func New(tables TableResolver, src entropy.Source, cfg types.NamesConfig) *Synthesizer {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Synthesizer{tables: tables, src: src, target: DefaultTarget, maxAttempts: maxAttempts}
}

// withTarget overrides the result size so small tables can be exercised.
func (s *Synthesizer) withTarget(n int) *Synthesizer {
	c := *s
	c.target = n
	return &c
}

// Target returns the cardinality of every successful result.
func (s *Synthesizer) Target() int {
	return s.target
}

// Synthesize returns Target distinct names for category. Each name is one
// table prefix immediately followed by one table suffix, both drawn
// independently and uniformly. Unknown categories use the default table.
func (s *Synthesizer) Synthesize(category types.CategoryKey) (types.GeneratedNameSet, error) {
	category = catalog.NormalizeCategory(string(category))
	table := s.tables.NameTable(category)

	available := distinctCombinations(table)
	if available < s.target {
		return nil, &InsufficientCombinationsError{Category: category, Available: available, Target: s.target}
	}

	names := make(types.GeneratedNameSet, s.target)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		prefix := table.Prefixes[s.src.IntN(len(table.Prefixes))]
		suffix := table.Suffixes[s.src.IntN(len(table.Suffixes))]
		names[prefix+suffix] = struct{}{}
		if len(names) == s.target {
			return names, nil
		}
	}
	return nil, &InsufficientCombinationsError{
		Category:  category,
		Available: available,
		Target:    s.target,
		Attempts:  s.maxAttempts,
	}
}

// distinctCombinations counts the distinct strings a table can produce.
// Different pairs may concatenate to the same string ("Ab"+"c", "A"+"bc"),
// so the product of the list lengths is only an upper bound.
func distinctCombinations(t types.NameTable) int {
	seen := make(map[string]struct{}, len(t.Prefixes)*len(t.Suffixes))
	for _, p := range t.Prefixes {
		for _, s := range t.Suffixes {
			seen[p+s] = struct{}{}
		}
	}
	return len(seen)
}

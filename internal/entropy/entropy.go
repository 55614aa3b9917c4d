// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entropy provides the random source the generators draw from.
// Every source returned here is safe for concurrent use.
package entropy

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n). Implementations must be safe for
// concurrent use; IntN panics when n <= 0, as math/rand/v2 does.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Global returns a source backed by the runtime-seeded math/rand/v2 generator.
func Global() Source {
	return globalSource{}
}

// Locked guards a seeded generator with a mutex so one instance can be shared
// across goroutines.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a deterministic source for seed.
func NewSeeded(seed uint64) *Locked {
	return &Locked{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN implements Source.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

// New returns a seeded source for a non-zero seed and the global source
// otherwise.
func New(seed uint64) Source {
	if seed == 0 {
		return Global()
	}
	return NewSeeded(seed)
}

// Cycle replays a fixed sequence of draws, each reduced modulo n. It exists
// for tests that need to steer a generator through exact choices.
type Cycle struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewCycle returns a Cycle over values. An empty Cycle always yields 0.
func NewCycle(values ...int) *Cycle {
	return &Cycle{values: values}
}

// IntN implements Source.
func (c *Cycle) IntN(n int) int {
	if n <= 0 {
		panic("entropy: invalid argument to IntN")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.values) == 0 {
		return 0
	}
	v := c.values[c.next%len(c.values)]
	c.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

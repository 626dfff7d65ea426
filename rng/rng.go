// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rng provides the single seeded random stream that drives a simulation run.

Uniform deviates come from a PCG generator (golang.org/x/exp/rand) and binomial
deviates from gonum's distuv.Binomial attached to the same generator, so every draw
of a run, uniform or binomial, advances one shared stream in a fixed order.
Two Sources created with the same seed produce identical trajectories.
*/
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a deterministic random stream.  It is not safe for concurrent use:
// a run owns exactly one Source.
type Source struct {
	seed uint64
	src  rand.Source
	rnd  *rand.Rand
}

// New returns a new Source seeded with given seed.
func New(seed uint64) *Source {
	src := rand.NewSource(seed)
	return &Source{seed: seed, src: src, rnd: rand.New(src)}
}

// Seed returns the seed the stream was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Float64 returns a uniform deviate in [0,1).
func (s *Source) Float64() float64 { return s.rnd.Float64() }

// BoolP returns true with probability p.  Values of p outside [0,1] are
// not clamped: p <= 0 is never true and p >= 1 is always true.
func (s *Source) BoolP(p float64) bool { return s.rnd.Float64() < p }

// Index returns a uniform index in [0,n), computed as floor(u*n) from one
// uniform deviate u.  n must be > 0.
func (s *Source) Index(n int) int {
	i := int(s.rnd.Float64() * float64(n))
	if i >= n { // u*n can round up to n for large n
		i = n - 1
	}
	return i
}

// Binomial returns one Binomial(n, p) deviate.
func (s *Source) Binomial(n int, p float64) int {
	return int(distuv.Binomial{N: float64(n), P: p, Src: s.src}.Rand())
}

// NewBinomial returns a reusable Binomial(n, p) sampler drawing from this stream.
func (s *Source) NewBinomial(n int, p float64) *Binomial {
	return &Binomial{dist: distuv.Binomial{N: float64(n), P: p, Src: s.src}}
}

// Binomial is a fixed-parameter binomial sampler bound to a Source.
type Binomial struct {
	dist distuv.Binomial
}

// N returns the number of trials.
func (b *Binomial) N() int { return int(b.dist.N) }

// P returns the per-trial success probability.
func (b *Binomial) P() float64 { return b.dist.P }

// Mean returns the expected value N*P.
func (b *Binomial) Mean() float64 { return b.dist.Mean() }

// Draw returns one deviate.
func (b *Binomial) Draw() int { return int(b.dist.Rand()) }

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// Indexer draws uniform indices.
type Indexer interface {

	// Index returns a uniform index in [0,n)
	Index(n int) int
}

// TargetSampler selects distinct postsynaptic targets uniformly without
// replacement from a population of N, by rejection against a reusable marker
// set.  For k > N/2 it draws the N-k excluded neurons instead and returns the
// complement, which keeps the expected number of rejected draws below N per
// selection while leaving every k-subset equally likely.
type TargetSampler struct {

	// population size
	N int

	// source of uniform indices
	Rand Indexer

	// marks neurons drawn in the current selection -- all clear between calls
	mark *bitset.BitSet

	// indices drawn in the current selection
	drawn []int

	// complement output
	rest []int
}

// NewTargetSampler returns a sampler over n neurons drawing from rnd.
func NewTargetSampler(n int, rnd Indexer) *TargetSampler {
	return &TargetSampler{
		N:     n,
		Rand:  rnd,
		mark:  bitset.New(uint(n)),
		drawn: make([]int, 0, n),
		rest:  make([]int, 0, n),
	}
}

// Select returns k distinct neuron indices drawn uniformly without replacement.
// k is clamped to [0,N].  The returned slice is only valid until the next call.
func (ts *TargetSampler) Select(k int) []int {
	if k <= 0 {
		return ts.drawn[:0]
	}
	if k > ts.N {
		k = ts.N
	}
	if 2*k <= ts.N {
		sel := ts.draw(k)
		ts.unmark(sel)
		return sel
	}
	excl := ts.draw(ts.N - k)
	ts.rest = ts.rest[:0]
	for i := 0; i < ts.N; i++ {
		if !ts.mark.Test(uint(i)) {
			ts.rest = append(ts.rest, i)
		}
	}
	ts.unmark(excl)
	return ts.rest
}

// draw rejection-samples k distinct indices, leaving them marked
func (ts *TargetSampler) draw(k int) []int {
	ts.drawn = ts.drawn[:0]
	for len(ts.drawn) < k {
		i := ts.Rand.Index(ts.N)
		if ts.mark.Test(uint(i)) {
			continue
		}
		ts.mark.Set(uint(i))
		ts.drawn = append(ts.drawn, i)
	}
	return ts.drawn
}

func (ts *TargetSampler) unmark(idxs []int) {
	for _, i := range idxs {
		ts.mark.Clear(uint(i))
	}
}

// MemBytes returns the approximate memory footprint of the sampler buffers.
func (ts *TargetSampler) MemBytes() int {
	return int(ts.mark.BinaryStorageSize()) + int(unsafe.Sizeof(int(0)))*(cap(ts.drawn)+cap(ts.rest))
}

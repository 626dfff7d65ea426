// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import "unsafe"

// Population holds the binary activity state of N neurons and the stimulus
// buffer that accumulates their pending activation for the next generation.
// The activity state is double-buffered: rules read Act, which is only replaced
// as a whole by Transition.
type Population struct {

	// number of neurons -- fixed for the life of the population
	N int

	// current generation: 1 = active, 0 = inactive
	Act []uint8

	// pending activation accumulated for the next generation
	Stim []int32

	// number of active neurons in the current generation
	NActive int

	// next generation buffer, swapped with Act in Transition
	nxt []uint8
}

// NewPopulation returns a new, fully inactive population of n neurons.
func NewPopulation(n int) *Population {
	pp := &Population{N: n}
	pp.Act = make([]uint8, n)
	pp.nxt = make([]uint8, n)
	pp.Stim = make([]int32, n)
	return pp
}

// Init makes all neurons inactive and clears the stimulus buffer.
func (pp *Population) Init() {
	for i := range pp.Act {
		pp.Act[i] = 0
		pp.nxt[i] = 0
		pp.Stim[i] = 0
	}
	pp.NActive = 0
}

// IsActive returns whether neuron n is active in the current generation.
func (pp *Population) IsActive(n int) bool { return pp.Act[n] > 0 }

// Stimulate adds one unit of pending activation to neuron n.
func (pp *Population) Stimulate(n int) { pp.Stim[n]++ }

// Force sets the pending activation of neuron n to exactly 1.
func (pp *Population) Force(n int) { pp.Stim[n] = 1 }

// CountActive returns the number of currently active neurons among idxs.
func (pp *Population) CountActive(idxs []int32) int {
	na := 0
	for _, i := range idxs {
		na += int(pp.Act[i])
	}
	return na
}

// NPending returns the number of neurons with nonzero pending activation.
func (pp *Population) NPending() int {
	np := 0
	for _, s := range pp.Stim {
		if s > 0 {
			np++
		}
	}
	return np
}

// Transition applies the pending activation synchronously: every neuron with
// nonzero stimulus is active in the next generation and every other neuron is
// inactive.  The stimulus buffer is cleared, the generations are swapped, and
// the new number of active neurons is returned.
func (pp *Population) Transition() int {
	na := 0
	for i, s := range pp.Stim {
		if s > 0 {
			pp.nxt[i] = 1
			pp.Stim[i] = 0
			na++
		} else {
			pp.nxt[i] = 0
		}
	}
	pp.Act, pp.nxt = pp.nxt, pp.Act
	pp.NActive = na
	return na
}

// MemBytes returns the memory footprint of the per-neuron buffers.
func (pp *Population) MemBytes() int {
	return len(pp.Act) + len(pp.nxt) + len(pp.Stim)*int(unsafe.Sizeof(pp.Stim[0]))
}

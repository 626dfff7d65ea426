// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

// Rand is the random stream consumed by the rules.
type Rand interface {

	// BoolP returns true with probability p
	BoolP(p float64) bool

	// Index returns a uniform index in [0,n)
	Index(n int) int
}

// Sampler draws deviates from a fixed distribution.
type Sampler interface {
	Draw() int
}

// Rule is the propagation rule of a network variant.
type Rule interface {

	// Stimulate evaluates every neuron in index order, reading only the current
	// generation of pp, and accumulates pending activation in pp.Stim.
	// It must not modify pp.Act.
	Stimulate(pp *Population)
}

// Engine advances a Population by whole synchronous timesteps.
type Engine struct {

	// the population being updated
	Pop *Population

	// the propagation rule
	Rule Rule
}

// Step performs one timestep: the rule stimulates the population from the
// current generation, then the transition produces the next one.
// Returns the number of active neurons in the new generation.
func (en *Engine) Step() int {
	en.Rule.Stimulate(en.Pop)
	return en.Pop.Transition()
}

// Time holds the step counters of a run.
type Time struct {

	// total number of steps taken, warmup included
	StepTot int64

	// number of warmup (thermalization) steps taken
	Warm int64

	// number of counted steps, i.e., samples fed to the statistics
	Count int64
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.StepTot = 0
	tm.Warm = 0
	tm.Count = 0
}

// WarmInc increments at the warmup step level
func (tm *Time) WarmInc() {
	tm.StepTot++
	tm.Warm++
}

// CountInc increments at the counted step level
func (tm *Time) CountInc() {
	tm.StepTot++
	tm.Count++
}

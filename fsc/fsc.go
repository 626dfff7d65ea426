// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fsc provides the finite-size corrected branching parameter used by the
annealed branching network, together with the Poisson-equivalent external drive
shared by both network variants.

When each of A active neurons picks its postsynaptic targets independently from
a finite population of N, some targets are hit more than once, so the number of
distinct neurons activated in the next step falls short of the nominal m*A.
The corrected per-neuron branching parameter

	m_fsc(A) = N * (1 - (1 - m*A/N)^(1/A))

is chosen so that the probability that a given neuron receives no input from any
of the A active neurons is exactly 1 - m*A/N, which makes the expected number of
newly activated neurons equal to m*A even at small N.  When 1 - m*A/N <= 0 (only
possible for m >= 1) the correction is undefined and m_fsc is clipped to ln(N).
*/
package fsc

import "math"

// Table holds the finite-size corrected branching parameter m_fsc(A) and the
// corresponding per-target activation probability p_fsc(A) = m_fsc(A) / N for
// every possible number of active neurons A = 0..N.  It is computed once and
// is read-only afterwards.
type Table struct {

	// number of neurons in the population
	N int

	// nominal branching parameter
	Mu float64

	// m_fsc(A), indexed by number of active neurons A, len N+1
	M []float64

	// p_fsc(A) = m_fsc(A) / N, len N+1
	P []float64

	// true where the ln(N) clipping branch was used
	Clip []bool
}

// NewTable computes the table for a population of n neurons and nominal
// branching parameter m.  n must be > 0.
func NewTable(n int, m float64) *Table {
	tb := &Table{N: n, Mu: m}
	tb.Compute()
	return tb
}

// Compute (re)computes all entries from N and Mu.
func (tb *Table) Compute() {
	n := tb.N
	fn := float64(n)
	tb.M = make([]float64, n+1)
	tb.P = make([]float64, n+1)
	tb.Clip = make([]bool, n+1)
	for a := 0; a <= n; a++ {
		base := 1 - tb.Mu*float64(a)/fn
		switch {
		case a == 0:
			tb.M[a] = 0 // exponent 1/A is degenerate, no active neurons to branch from
		case base > 0:
			tb.M[a] = fn * (1 - math.Pow(base, 1/float64(a)))
		default:
			tb.M[a] = math.Log(fn)
			tb.Clip[a] = true
		}
		tb.P[a] = tb.M[a] / fn
	}
}

// MFsc returns m_fsc(a).
func (tb *Table) MFsc(a int) float64 { return tb.M[a] }

// PFsc returns p_fsc(a).
func (tb *Table) PFsc(a int) float64 { return tb.P[a] }

// Clipped reports whether entry a used the supercritical ln(N) branch.
func (tb *Table) Clipped(a int) bool { return tb.Clip[a] }

// NClipped returns the number of clipped entries.
func (tb *Table) NClipped() int {
	nc := 0
	for _, c := range tb.Clip {
		if c {
			nc++
		}
	}
	return nc
}

// Lambda returns the probability of at least one event of a Poisson process of
// rate h within one unit timestep: 1 - exp(-h).
func Lambda(h float64) float64 {
	const dt = 1.0
	return 1 - math.Exp(-h*dt)
}

// ThermSteps returns the number of thermalization (burn-in) steps for drive h:
// ceil(1 / Lambda(h)), the expected waiting time for an external event on a
// given neuron.  Returns 0 when Lambda(h) is not positive.
func ThermSteps(h float64) int64 {
	l := Lambda(h)
	if !(l > 0) {
		return 0
	}
	return int64(math.Ceil(1 / l))
}

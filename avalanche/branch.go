// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"unsafe"

	"github.com/emer/avalanche/fsc"
	"github.com/emer/avalanche/rng"
)

// BranchRule is the annealed, finite-size corrected branching rule.
// Each active neuron draws k ~ Binomial(N, p_fsc(A)), where A is the current
// number of active neurons, and stimulates k distinct random targets.
// Every neuron, active or not, then receives external activation with
// probability Lambda, which forces its stimulus to 1.
type BranchRule struct {

	// finite-size corrected activation table
	Table *fsc.Table

	// per-step probability of external activation: 1 - exp(-h)
	Lambda float64

	// random stream
	Rand Rand

	// one Binomial(N, p_fsc(A)) sampler per number of active neurons A = 0..N
	Binom []Sampler

	// postsynaptic target selection
	Targets *TargetSampler
}

// NewBranchRule builds the table and samplers for n neurons, branching
// parameter m and external drive h, all drawing from rnd.
func NewBranchRule(n int, m, h float64, rnd *rng.Source) *BranchRule {
	br := &BranchRule{Lambda: fsc.Lambda(h), Rand: rnd}
	br.Table = fsc.NewTable(n, m)
	br.Binom = make([]Sampler, n+1)
	for a := range br.Binom {
		br.Binom[a] = rnd.NewBinomial(n, br.Table.PFsc(a))
	}
	br.Targets = NewTargetSampler(n, rnd)
	return br
}

// Stimulate is the Rule method.
func (br *BranchRule) Stimulate(pp *Population) {
	bn := br.Binom[pp.NActive] // the correction depends on population state, same for all senders
	for n := 0; n < pp.N; n++ {
		if pp.Act[n] > 0 {
			for _, tg := range br.Targets.Select(bn.Draw()) {
				pp.Stimulate(tg)
			}
		}
		if br.Rand.BoolP(br.Lambda) {
			pp.Force(n)
		}
	}
}

// MemBytes returns the approximate memory footprint of the rule state.
func (br *BranchRule) MemBytes() int {
	n := len(br.Binom)
	tbl := n * int(2*unsafe.Sizeof(float64(0))+unsafe.Sizeof(false)) // M, P, Clip
	smp := n * int(unsafe.Sizeof(rng.Binomial{})+unsafe.Sizeof(Sampler(nil)))
	return tbl + smp + br.Targets.MemBytes()
}

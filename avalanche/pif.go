// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"unsafe"

	"github.com/emer/avalanche/ergraph"
	"github.com/emer/avalanche/fsc"
	"github.com/emer/avalanche/rng"
)

// PIFRule is the probabilistic integrate-and-fire rule with linear activation
// on a fixed random graph.  For each neuron, external activation is tested
// first with probability Lambda; only if it does not fire, the neuron fires
// with probability W[n] * (number of active sending neighbors).  That product
// is used directly as a probability: M <= 1 keeps it within [0,1].
type PIFRule struct {

	// fixed connectivity
	Graph *ergraph.Graph

	// linear activation weight per neuron: M / in-degree, 0 for in-degree 0
	W []float64

	// per-step probability of external activation: 1 - exp(-h)
	Lambda float64

	// random stream
	Rand Rand
}

// NewPIFRule generates the graph over n neurons with edge probability pEdge
// and derives the weights for synaptic strength m, with external drive h.
// The graph consumes the beginning of the rnd stream.
func NewPIFRule(n int, pEdge, m, h float64, rnd *rng.Source) *PIFRule {
	pr := &PIFRule{Lambda: fsc.Lambda(h), Rand: rnd}
	pr.Graph = ergraph.Generate(n, pEdge, rnd)
	pr.W = pr.Graph.Weights(m)
	return pr
}

// Stimulate is the Rule method.
func (pr *PIFRule) Stimulate(pp *Population) {
	for n := 0; n < pp.N; n++ {
		if pr.Rand.BoolP(pr.Lambda) {
			pp.Force(n)
			continue
		}
		na := pp.CountActive(pr.Graph.In[n])
		if pr.Rand.BoolP(pr.W[n] * float64(na)) {
			pp.Force(n)
		}
	}
}

// MaxDrive returns the largest possible internal activation probability,
// reached when all sending neighbors of a neuron are active.
func (pr *PIFRule) MaxDrive() float64 {
	mx := 0.0
	for n, w := range pr.W {
		if d := w * float64(pr.Graph.InDegree(n)); d > mx {
			mx = d
		}
	}
	return mx
}

// MemBytes returns the approximate memory footprint of the rule state.
func (pr *PIFRule) MemBytes() int {
	return pr.Graph.MemBytes() + len(pr.W)*int(unsafe.Sizeof(float64(0)))
}

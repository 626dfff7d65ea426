// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package avalanche implements discrete-time stochastic simulations of recurrent
spiking populations driven close to a critical branching point, for measuring
the statistics of population activity (neuronal avalanches).

Two network variants share the same machinery:

* Annealed: a finite-size corrected branching network.  Every step, each active
neuron draws its number of postsynaptic targets from a binomial distribution whose
probability is corrected for the current number of active neurons (see package fsc),
and picks that many distinct targets uniformly at random.  Connectivity is thus
re-sampled every step.

* Quenched: a probabilistic integrate-and-fire network on a fixed Erdős–Rényi graph
(see package ergraph), where a neuron fires with probability proportional to the
number of its active sending neighbors.

In both, each neuron also receives Poisson-equivalent external drive with probability
1 - exp(-h) per step.  A step is synchronous: the Rule reads only the current
generation of the Population and accumulates pending activation in the stimulus
buffer, and Population.Transition then produces the next generation in a separate
buffer.

Sim drives a run through the phases Init, Warmup (Quenched only), Run and Report,
accumulating the number of active neurons per step in a stats.Moments.
All randomness comes from a single rng.Source consumed in a fixed order, so a run is
fully determined by its Config.
*/
package avalanche

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package avalanche is the overall repository for the near-critical spiking
population simulators, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* avalanche: the population, the two activation rules (annealed finite-size
corrected branching, and probabilistic integrate-and-fire on a random graph),
the synchronous step engine, and the Sim that drives a run through its phases.

* fsc: the finite-size corrected branching probability table and the
Poisson-equivalent external drive.

* ergraph: Erdős–Rényi directed random graphs without self-loops, with
flattened neighbor lists and linear activation weights.

* rng: the single seeded random stream, with uniform, Bernoulli and binomial draws.

* stats: online first and second moment statistics of the population activity.

* cli: the command-line front end shared by the two programs.

* examples: these compile into the runnable programs fscbranch (annealed) and
pifnet (quenched), which print the mean activity, its second moment and
the standard error of the mean for one run.
*/
package avalanche

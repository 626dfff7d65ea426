// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import "github.com/goki/ki/kit"

// Variants are the network variants that can be simulated.
type Variants int32

//go:generate stringer -type=Variants

var KiT_Variants = kit.Enums.AddEnum(VariantsN, false, nil)

func (ev Variants) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Variants) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The network variants
const (
	// Annealed is the finite-size corrected branching network, with binomial
	// postsynaptic fan-out re-sampled every step
	Annealed Variants = iota

	// Quenched is the probabilistic integrate-and-fire network with linear
	// activation on a fixed random graph
	Quenched

	VariantsN
)

// Phases are the phases of a simulation run, in order.
type Phases int32

//go:generate stringer -type=Phases

var KiT_Phases = kit.Enums.AddEnum(PhasesN, false, nil)

func (ev Phases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Phases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The simulation phases
const (
	// PhaseInit: tables / graph built and stream seeded, nothing run yet
	PhaseInit Phases = iota

	// PhaseWarmup: thermalization steps that are not counted (Quenched only)
	PhaseWarmup

	// PhaseRun: counted steps feeding the statistics
	PhaseRun

	// PhaseReport: statistics finalized, terminal
	PhaseReport

	PhasesN
)

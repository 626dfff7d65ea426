// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"fmt"
	"math"
	"strings"
)

// Config has all the parameters of a simulation run.  A run is fully
// determined by its Config.
type Config struct {

	// network variant
	Variant Variants

	// number of neurons in the population
	N int `min:"1"`

	// number of counted timesteps, i.e., number of activity samples
	T int64 `min:"1"`

	// external drive rate: each neuron receives an external activation with probability 1 - exp(-H) per step.  H < 1 is recommended, and Quenched requires H > 0 to define the thermalization length
	H float64 `min:"0"`

	// branching parameter (Annealed) or total synaptic strength per neuron (Quenched): 1 is critical.  For Quenched, M must not exceed 1 for the internal activation probability to stay within [0,1]
	M float64 `min:"0"`

	// probability of each directed edge of the random graph (Quenched only)
	PEdge float64 `def:"0.01" min:"0" max:"1"`

	// random seed
	Seed uint64 `def:"1000"`
}

// Defaults sets default values, matching the historical command-line tools
func (cf *Config) Defaults() {
	cf.N = 1
	cf.T = 1
	cf.H = 1
	cf.M = 0
	cf.PEdge = 0.01
	cf.Seed = 1000
}

// Validate returns a *ConfigError describing the first invalid field, or nil.
func (cf *Config) Validate() error {
	if cf.Variant < 0 || cf.Variant >= VariantsN {
		return &ConfigError{Field: "variant", Value: cf.Variant, Reason: "unknown network variant"}
	}
	if cf.N < 1 {
		return &ConfigError{Field: "N", Value: cf.N, Reason: "must be a positive integer"}
	}
	if cf.Variant == Quenched && int64(cf.N) > math.MaxInt32 {
		return &ConfigError{Field: "N", Value: cf.N, Reason: "too large for graph indices"}
	}
	if cf.T < 1 {
		return &ConfigError{Field: "T", Value: cf.T, Reason: "must be a positive integer"}
	}
	if math.IsNaN(cf.H) || math.IsInf(cf.H, 0) || cf.H < 0 {
		return &ConfigError{Field: "h", Value: cf.H, Reason: "must be a finite non-negative rate"}
	}
	if cf.Variant == Quenched && cf.H == 0 {
		return &ConfigError{Field: "h", Value: cf.H, Reason: "must be positive to define the thermalization length"}
	}
	if math.IsNaN(cf.M) || math.IsInf(cf.M, 0) || cf.M < 0 {
		return &ConfigError{Field: "m", Value: cf.M, Reason: "must be finite and non-negative"}
	}
	if cf.Variant == Quenched && (math.IsNaN(cf.PEdge) || cf.PEdge < 0 || cf.PEdge > 1) {
		return &ConfigError{Field: "p", Value: cf.PEdge, Reason: "must be a probability in [0,1]"}
	}
	return nil
}

// String returns a one-line description of the parameters
func (cf *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: N: %d\t T: %d\t h: %g\t m: %g", cf.Variant, cf.N, cf.T, cf.H, cf.M)
	if cf.Variant == Quenched {
		fmt.Fprintf(&b, "\t p: %g", cf.PEdge)
	}
	fmt.Fprintf(&b, "\t seed: %d", cf.Seed)
	return b.String()
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/timer"

	"github.com/emer/avalanche/ergraph"
	"github.com/emer/avalanche/fsc"
	"github.com/emer/avalanche/rng"
	"github.com/emer/avalanche/stats"
)

// Sim is one simulation run.  It owns all of the run state: the random stream,
// the population, the rule with its table or graph, and the statistics.
// Phases advance Init -> Warmup (Quenched only) -> Run -> Report.
type Sim struct {

	// run parameters
	Config Config

	// current phase
	Phase Phases

	// the single random stream of the run
	Rand *rng.Source

	// population and rule
	Engine Engine

	// annealed branching rule -- nil for Quenched
	Branch *BranchRule

	// integrate-and-fire rule -- nil for Annealed
	PIF *PIFRule

	// per-step probability of external activation
	Lambda float64

	// number of uncounted thermalization steps before counting -- 0 for Annealed
	TTherm int64

	// step counters
	Time Time

	// activity statistics over counted steps
	Stats stats.Moments

	// wall-clock time of the warmup and run loops
	Timer timer.Time

	// structured log
	Log *slog.Logger
}

// Option configures a Sim at construction.
type Option func(ss *Sim)

// WithLogger sets the logger; the default discards all records.
func WithLogger(lg *slog.Logger) Option {
	return func(ss *Sim) {
		if lg != nil {
			ss.Log = lg
		}
	}
}

// Result is the final report of a run.
type Result struct {
	stats.Summary

	// network variant
	Variant Variants

	// random seed of the run
	Seed uint64

	// number of discarded thermalization steps
	TTherm int64

	// wall-clock seconds spent stepping
	Secs float64
}

// NewSim validates cfg and performs the Init phase: it seeds the random
// stream, builds the activation table and samplers (Annealed) or the random
// graph and weights (Quenched), and allocates the population.
// An invalid cfg returns a *ConfigError.
func NewSim(cfg Config, opts ...Option) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ss := &Sim{Config: cfg, Phase: PhaseInit}
	ss.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(ss)
	}
	ss.Rand = rng.New(cfg.Seed)
	ss.Lambda = fsc.Lambda(cfg.H)
	ss.Engine.Pop = NewPopulation(cfg.N)
	switch cfg.Variant {
	case Annealed:
		ss.Branch = NewBranchRule(cfg.N, cfg.M, cfg.H, ss.Rand)
		ss.Engine.Rule = ss.Branch
		if nc := ss.Branch.Table.NClipped(); nc > 0 {
			ss.Log.Info("finite-size correction clipped to ln(N)", "entries", nc, "first", cfg.N+1-nc)
		}
	case Quenched:
		ss.PIF = NewPIFRule(cfg.N, cfg.PEdge, cfg.M, cfg.H, ss.Rand)
		ss.Engine.Rule = ss.PIF
		ss.TTherm = fsc.ThermSteps(cfg.H)
		gr := ss.PIF.Graph
		ss.Log.Info("random graph", "edges", gr.NEdges, "mean_degree", gr.MeanDegree())
		if ni := gr.NIsolated(); ni > 0 {
			ss.Log.Warn("neurons without incoming edges get zero weight", "count", ni)
		}
		if mx := ss.PIF.MaxDrive(); mx > 1 {
			ss.Log.Warn("internal activation probability can exceed 1", "max", mx)
		}
	}
	ss.Log.Info("initialized", "config", ss.Config.String(), "lambda", ss.Lambda, "t_therm", ss.TTherm)
	ss.Log.Debug("memory", "report", ss.SizeReport())
	return ss, nil
}

// setPhase moves to phase ph
func (ss *Sim) setPhase(ph Phases) {
	ss.Log.Debug("phase", "from", ss.Phase, "to", ph, "step", ss.Time.StepTot)
	ss.Phase = ph
}

// Step advances the network by one timestep, without counting it,
// and returns the number of active neurons.
func (ss *Sim) Step() int {
	return ss.Engine.Step()
}

// Warmup runs the TTherm thermalization steps, which are not fed to the
// statistics.  Only valid for Quenched, directly after Init.
func (ss *Sim) Warmup() error {
	if ss.Config.Variant != Quenched || ss.Phase != PhaseInit {
		return phaseError("Warmup", ss.Phase)
	}
	ss.setPhase(PhaseWarmup)
	ss.Timer.Start()
	for ss.Time.Warm < ss.TTherm {
		ss.Step()
		ss.Time.WarmInc()
	}
	ss.Timer.Stop()
	return nil
}

// RunLoop runs the T counted steps, feeding the number of active neurons
// after each step to the statistics.  Annealed runs directly after Init,
// Quenched after Warmup.
func (ss *Sim) RunLoop() error {
	want := PhaseInit
	if ss.Config.Variant == Quenched {
		want = PhaseWarmup
	}
	if ss.Phase != want {
		return phaseError("RunLoop", ss.Phase)
	}
	ss.setPhase(PhaseRun)
	ss.Timer.Start()
	for ss.Time.Count < ss.Config.T {
		ss.Stats.AddInt(ss.Step())
		ss.Time.CountInc()
	}
	ss.Timer.Stop()
	return nil
}

// Report finalizes the statistics.  Report is terminal.
func (ss *Sim) Report() (Result, error) {
	if ss.Phase != PhaseRun {
		return Result{}, phaseError("Report", ss.Phase)
	}
	ss.setPhase(PhaseReport)
	res := Result{
		Summary: ss.Stats.Summary(),
		Variant: ss.Config.Variant,
		Seed:    ss.Config.Seed,
		TTherm:  ss.TTherm,
		Secs:    ss.Timer.TotalSecs(),
	}
	ss.Log.Info("done", "steps", ss.Time.StepTot, "samples", res.T, "mean", res.Mean, "secs", res.Secs)
	return res, nil
}

// Run performs all remaining phases and returns the Result.
func (ss *Sim) Run() (Result, error) {
	if ss.Config.Variant == Quenched {
		if err := ss.Warmup(); err != nil {
			return Result{}, err
		}
	}
	if err := ss.RunLoop(); err != nil {
		return Result{}, err
	}
	return ss.Report()
}

// SizeReport returns a string reporting the memory footprint of the
// preallocated run state.
func (ss *Sim) SizeReport() string {
	var b strings.Builder
	pmem := ss.Engine.Pop.MemBytes()
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t Mem: %v\n", "Population", ss.Engine.Pop.N, (datasize.ByteSize)(pmem).HumanReadable())
	rmem := 0
	switch {
	case ss.Branch != nil:
		rmem = ss.Branch.MemBytes()
		fmt.Fprintf(&b, "%14s:\t Entries: %d\t Mem: %v\n", "Branch", len(ss.Branch.Binom), (datasize.ByteSize)(rmem).HumanReadable())
	case ss.PIF != nil:
		rmem = ss.PIF.MemBytes()
		fmt.Fprintf(&b, "%14s:\t Edges: %d\t Mem: %v\n", "PIF", ss.PIF.Graph.NEdges, (datasize.ByteSize)(rmem).HumanReadable())
	}
	fmt.Fprintf(&b, "%14s:\t Mem: %v\n", "Total", (datasize.ByteSize)(pmem+rmem).HumanReadable())
	return b.String()
}

// Graph returns the random graph of a Quenched run, nil otherwise.
func (ss *Sim) Graph() *ergraph.Graph {
	if ss.PIF == nil {
		return nil
	}
	return ss.PIF.Graph
}

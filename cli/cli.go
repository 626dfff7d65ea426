// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cli provides the command-line front end of the two simulators:
flag parsing (with scientific notation for integers), optional YAML config
files, logging setup, and the textual result format.

The -h shorthand is the external drive, as in the historical tools, so
help is only available as --help.
*/
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/emer/avalanche/avalanche"
)

// Options holds the flags of a simulator command.
type Options struct {
	N         sciInt
	T         sciInt
	H         float64
	M         float64
	PEdge     float64
	Seed      sciUint
	Config    string
	LogLevel  string
	LogFormat string
}

// required lists the flags that must be given, on the command line or in the config file
var required = []string{"neurons", "steps", "drive", "strength", "seed"}

// NewAnnealedCommand creates the command of the finite-size corrected
// branching network.
func NewAnnealedCommand() *cobra.Command {
	return newCommand("fscbranch", avalanche.Annealed,
		"Finite-size corrected branching network",
		"Simulates a branching network of N binary neurons with binomial postsynaptic fan-out,\n"+
			"finite-size corrected branching probability and Poisson-equivalent external drive,\n"+
			"and reports the mean activity, its second moment and standard error.")
}

// NewQuenchedCommand creates the command of the probabilistic
// integrate-and-fire network on a random graph.
func NewQuenchedCommand() *cobra.Command {
	return newCommand("pifnet", avalanche.Quenched,
		"Probabilistic integrate-and-fire network on a random graph",
		"Simulates N binary neurons with linear activation on a fixed Erdos-Renyi random graph\n"+
			"with Poisson-equivalent external drive, discards the thermalization steps,\n"+
			"and reports the mean activity, its second moment and standard error.")
}

func newCommand(name string, v avalanche.Variants, short, long string) *cobra.Command {
	opts := &Options{PEdge: 0.01}

	cmd := &cobra.Command{
		Use:           name,
		Short:         short,
		Long:          long,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return newUsageError(fmt.Errorf("unexpected argument %q", args[0]))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, opts, v)
		},
	}

	fs := cmd.Flags()
	fs.VarP(&opts.N, "neurons", "N", "number of neurons")
	fs.VarP(&opts.T, "steps", "T", "number of time steps")
	fs.Float64VarP(&opts.H, "drive", "h", 0, "external input rate (h<1)")
	fs.Float64VarP(&opts.M, "strength", "m", 0, "synaptic strength")
	fs.VarP(&opts.Seed, "seed", "s", "random seed")
	if v == avalanche.Quenched {
		fs.Float64VarP(&opts.PEdge, "edge-prob", "p", 0.01, "edge probability of random graph")
	}
	fs.StringVar(&opts.Config, "config", "", "YAML file with any of the above")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")
	fs.Bool("help", false, "usage")

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprint(c.OutOrStdout(), Usage(name, v))
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(err)
	})
	return cmd
}

// SimConfig resolves the run configuration from defaults, the config file,
// and the flags set in fs, in increasing order of precedence.
func (opts *Options) SimConfig(fs *pflag.FlagSet, v avalanche.Variants) (avalanche.Config, error) {
	var cfg avalanche.Config
	cfg.Defaults()
	cfg.Variant = v
	have := map[string]bool{}
	if opts.Config != "" {
		fc, err := LoadConfigFile(opts.Config)
		if err != nil {
			return cfg, newUsageError(err)
		}
		if err := fc.apply(&cfg, have); err != nil {
			return cfg, newUsageError(err)
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		have[f.Name] = true
		switch f.Name {
		case "neurons":
			cfg.N = int(opts.N)
		case "steps":
			cfg.T = int64(opts.T)
		case "drive":
			cfg.H = opts.H
		case "strength":
			cfg.M = opts.M
		case "edge-prob":
			cfg.PEdge = opts.PEdge
		case "seed":
			cfg.Seed = uint64(opts.Seed)
		}
	})
	for _, nm := range required {
		if !have[nm] {
			return cfg, WrapExitError(ExitFailure, "usage", errNotEnough)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, newUsageError(err)
	}
	return cfg, nil
}

func runSim(cmd *cobra.Command, opts *Options, v avalanche.Variants) error {
	cfg, err := opts.SimConfig(cmd.Flags(), v)
	if err != nil {
		return err
	}
	lg, err := NewLogger(cmd.ErrOrStderr(), opts.LogLevel, opts.LogFormat)
	if err != nil {
		return newUsageError(err)
	}
	lg = lg.With("run_id", uuid.NewString())
	ss, err := avalanche.NewSim(cfg, avalanche.WithLogger(lg))
	if err != nil {
		return newUsageError(err)
	}

	out := cmd.OutOrStdout()
	WritePreamble(out, ss)
	res, err := ss.Run()
	if err != nil {
		return WrapExitError(ExitFailure, "simulation failed", err)
	}
	WriteResult(out, res)
	return nil
}

// Execute runs cmd with args, writing results and usage to stdout and logs
// to stderr, and returns the process exit code.
func Execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stdout, ue.msg)
		cmd.HelpFunc()(cmd, nil)
	} else {
		fmt.Fprintln(stdout, err)
	}
	return GetExitCode(err)
}

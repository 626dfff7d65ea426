// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emer/avalanche/avalanche"
)

// Exit codes for the simulator commands.
const (
	ExitSuccess = 0 // Successful run, or usage requested
	ExitFailure = 1 // Missing or invalid arguments, failed run
)

// ErrUsage marks errors that are reported together with the usage text.
var ErrUsage = errors.New("usage error")

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// usageError is an argument problem: its message is printed on its own line,
// followed by the usage text
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
func (e *usageError) Unwrap() error { return ErrUsage }

func newUsageError(err error) error {
	return WrapExitError(ExitFailure, "usage", &usageError{msg: err.Error()})
}

var errNotEnough = &usageError{msg: "not enough arguments"}

// flagLine is one row of the usage text
type flagLine struct {
	flag string
	desc string
}

// Usage returns the usage text of the command for variant v.
func Usage(name string, v avalanche.Variants) string {
	lines := []flagLine{
		{"-N, --neurons", "number of neurons     (N=1e4         )"},
		{"-T, --steps", "number of time steps  (T=1e7 ms goal )"},
		{"-h, --drive", "external input (h<1)"},
		{"-m, --strength", "synaptic strength"},
	}
	if v == avalanche.Quenched {
		lines = append(lines, flagLine{"-p, --edge-prob", "edge probability of random graph (default 0.01)"})
	}
	lines = append(lines,
		flagLine{"-s, --seed", "seed"},
		flagLine{"    --config", "YAML file with any of the above"},
		flagLine{"    --log-level", "debug, info, warn or error (default warn)"},
		flagLine{"    --log-format", "text or json (default text)"},
		flagLine{"    --help", "this message"},
	)
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s -N <neurons> -T <steps> -h <drive> -m <strength> -s <seed> [flags]\n", name)
	for _, ln := range lines {
		fmt.Fprintf(&b, "     %-18s: %s\n", ln.flag, ln.desc)
	}
	return b.String()
}

// WritePreamble writes the comment lines that precede a run.
func WritePreamble(w io.Writer, ss *avalanche.Sim) {
	if ss.Config.Variant == avalanche.Quenched {
		fmt.Fprintf(w, "#T_therm=%d\n", ss.TTherm)
	}
	fmt.Fprintln(w, "#simulation")
}

// WriteResult writes the header and the single summary line of a run:
// seed, number of samples, mean activity, second moment and standard error.
func WriteResult(w io.Writer, res avalanche.Result) {
	fmt.Fprintln(w, "#seed statistic  avg_activity  avg_activity2  error(activity)")
	fmt.Fprintf(w, "%d %d %.6g %.6g %.6g\n", res.Seed, res.T, res.Mean, res.Moment2, res.StdErr)
}

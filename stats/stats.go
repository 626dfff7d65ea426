// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stats accumulates online moment statistics of the population activity.

Moments keeps the raw sums S1 = sum(x) and S2 = sum(x^2), from which the mean
and second moment are computed, together with a Welford running mean and sum of
squared deviations, from which the variance and the standard error of the mean
are computed without the cancellation that S2/T - (S1/T)^2 suffers for long runs.
For integer samples S1 is exact, so the mean is correctly rounded.
*/
package stats

import "math"

// Moments is an online accumulator of first and second moments.
// The zero value is ready to use.
type Moments struct {

	// sum of samples
	S1 float64

	// sum of squared samples
	S2 float64

	// number of samples
	T int64

	// running mean (Welford)
	Avg float64

	// running sum of squared deviations from the mean (Welford)
	M2 float64
}

// Init resets all accumulated values.
func (ms *Moments) Init() {
	*ms = Moments{}
}

// Add accumulates one sample.
func (ms *Moments) Add(x float64) {
	ms.S1 += x
	ms.S2 += x * x
	ms.T++
	del := x - ms.Avg
	ms.Avg += del / float64(ms.T)
	ms.M2 += del * (x - ms.Avg)
}

// AddInt accumulates one integer sample, e.g., a count of active neurons.
func (ms *Moments) AddInt(x int) { ms.Add(float64(x)) }

// Mean returns the sample mean S1 / T, NaN when there are no samples.
func (ms *Moments) Mean() float64 {
	if ms.T == 0 {
		return math.NaN()
	}
	return ms.S1 / float64(ms.T)
}

// Moment2 returns the second raw moment S2 / T, NaN when there are no samples.
func (ms *Moments) Moment2() float64 {
	if ms.T == 0 {
		return math.NaN()
	}
	return ms.S2 / float64(ms.T)
}

// Var returns the population variance M2 / T (the same quantity as
// S2/T - mean^2), NaN when there are no samples.
func (ms *Moments) Var() float64 {
	if ms.T == 0 {
		return math.NaN()
	}
	v := ms.M2 / float64(ms.T)
	if v < 0 {
		v = 0
	}
	return v
}

// StdErr returns the standard error of the mean sqrt(Var / (T-1)).
// It is undefined, and returned as NaN, for fewer than 2 samples.
func (ms *Moments) StdErr() float64 {
	if ms.T < 2 {
		return math.NaN()
	}
	return math.Sqrt(ms.Var() / float64(ms.T-1))
}

// Summary returns the finalized statistics.
func (ms *Moments) Summary() Summary {
	return Summary{T: ms.T, Mean: ms.Mean(), Moment2: ms.Moment2(), StdErr: ms.StdErr()}
}

// Summary holds finalized activity statistics.
type Summary struct {

	// number of samples
	T int64

	// mean activity
	Mean float64

	// second raw moment of activity
	Moment2 float64

	// standard error of the mean activity
	StdErr float64
}

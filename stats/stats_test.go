// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/emer/avalanche/rng"
)

func TestConstantSequence(t *testing.T) {
	for _, c := range []int{0, 1, 7, 250} {
		var ms Moments
		for i := 0; i < 100; i++ {
			ms.AddInt(c)
		}
		sm := ms.Summary()
		assert.Equal(t, int64(100), sm.T)
		assert.Equal(t, float64(c), sm.Mean, "c=%d", c)
		assert.Equal(t, float64(c*c), sm.Moment2, "c=%d", c)
		assert.Equal(t, 0.0, sm.StdErr, "c=%d", c)
	}

	var ms Moments
	for i := 0; i < 1000; i++ {
		ms.Add(0.1)
	}
	assert.InDelta(t, 0.1, ms.Mean(), 1e-12)
	assert.InDelta(t, 0.01, ms.Moment2(), 1e-12)
	assert.Equal(t, 0.0, ms.StdErr())
}

func TestUndefined(t *testing.T) {
	var ms Moments
	assert.True(t, math.IsNaN(ms.Mean()))
	assert.True(t, math.IsNaN(ms.Moment2()))
	assert.True(t, math.IsNaN(ms.StdErr()))

	ms.AddInt(5)
	assert.Equal(t, 5.0, ms.Mean())
	assert.Equal(t, 25.0, ms.Moment2())
	assert.True(t, math.IsNaN(ms.StdErr()))

	ms.AddInt(7)
	assert.Equal(t, 6.0, ms.Mean())
	assert.Equal(t, 37.0, ms.Moment2())
	// pop var 1, / (T-1) = 1
	assert.InDelta(t, 1.0, ms.StdErr(), 1e-15)
}

func TestVsReference(t *testing.T) {
	src := rng.New(42)
	xs := make([]float64, 5000)
	var ms Moments
	for i := range xs {
		xs[i] = float64(src.Binomial(100, 0.2))
		ms.Add(xs[i])
	}
	mean, uvar := stat.MeanVariance(xs, nil)
	assert.InDelta(t, mean, ms.Mean(), 1e-9)
	assert.InDelta(t, stat.StdErr(math.Sqrt(uvar), float64(len(xs))), ms.StdErr(), 1e-9)

	// raw-sum form of the same quantities
	T := float64(ms.T)
	assert.InDelta(t, ms.S1/T, ms.Mean(), 1e-9)
	raw := math.Sqrt((ms.S2/T - (ms.S1/T)*(ms.S1/T)) / (T - 1))
	assert.InDelta(t, raw, ms.StdErr(), 1e-9)
	assert.GreaterOrEqual(t, ms.StdErr(), 0.0)
}

func TestMeanExactForCounts(t *testing.T) {
	// 17 ones in 50 samples, interleaved so the running average drifts
	var ms Moments
	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			ms.AddInt(1)
		} else {
			ms.AddInt(0)
		}
	}
	assert.Equal(t, 17.0, ms.S1)
	assert.Equal(t, 0.34, ms.Mean())
	assert.Equal(t, 0.34, ms.Summary().Mean)
	assert.Equal(t, 0.34, ms.Moment2())
}

func TestInit(t *testing.T) {
	var ms Moments
	ms.AddInt(3)
	ms.AddInt(4)
	ms.Init()
	assert.Equal(t, Moments{}, ms)
}

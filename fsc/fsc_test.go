// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestTableValues(t *testing.T) {
	type tv struct {
		n    int
		m    float64
		a    int
		mfsc float64
		clip bool
	}
	tvs := []tv{
		{100, 0.5, 1, 0.5000000000000004, false},
		{100, 0.5, 2, 0.5012562893380035, false},
		{100, 0.5, 100, 0.6907504562964073, false},
		{10, 2, 4, 3.31259695023578, false},
		{10, 2, 5, 2.302585092994046, true},
		{10, 2, 10, 2.302585092994046, true},
	}
	for i, v := range tvs {
		tb := NewTable(v.n, v.m)
		dif := math.Abs(tb.MFsc(v.a) - v.mfsc)
		if dif > difTol {
			t.Errorf("m_fsc err: idx: %v, n: %v, m: %v, A: %v, m_fsc: %v, cor: %v, dif: %v\n", i, v.n, v.m, v.a, tb.MFsc(v.a), v.mfsc, dif)
		}
		assert.Equal(t, v.clip, tb.Clipped(v.a), "clip idx %d", i)
		assert.InDelta(t, v.mfsc/float64(v.n), tb.PFsc(v.a), difTol)
	}
}

func TestTableZeroStrength(t *testing.T) {
	tb := NewTable(50, 0)
	require.Len(t, tb.P, 51)
	for a := range tb.P {
		assert.Equal(t, 0.0, tb.PFsc(a), "A=%d", a)
		assert.Equal(t, 0.0, tb.MFsc(a), "A=%d", a)
	}
	assert.Equal(t, 0, tb.NClipped())
}

func TestTableZeroActive(t *testing.T) {
	for _, m := range []float64{0, 0.3, 1, 1.5, 4} {
		tb := NewTable(20, m)
		assert.Equal(t, 0.0, tb.MFsc(0), "m=%v", m)
		assert.Equal(t, 0.0, tb.PFsc(0), "m=%v", m)
		assert.False(t, tb.Clipped(0))
	}
}

// the corrected probability must make the chance of receiving no input from
// A independent senders equal to 1 - m*A/N
func TestTableCorrection(t *testing.T) {
	n := 200
	m := 0.9
	tb := NewTable(n, m)
	for a := 1; a <= n; a++ {
		require.False(t, tb.Clipped(a))
		miss := math.Pow(1-tb.PFsc(a), float64(a))
		assert.InDelta(t, 1-m*float64(a)/float64(n), miss, 1e-9, "A=%d", a)
		assert.LessOrEqual(t, tb.PFsc(a), 1.0)
	}
}

func TestTableClipping(t *testing.T) {
	n := 100
	tb := NewTable(n, 1.0)
	// 1 - A/N <= 0 only at A = N
	assert.Equal(t, 1, tb.NClipped())
	assert.True(t, tb.Clipped(n))
	assert.InDelta(t, math.Log(100), tb.MFsc(n), difTol)

	tb = NewTable(n, 2.0)
	assert.Equal(t, 51, tb.NClipped())
	for a := 1; a <= n; a++ {
		assert.Equal(t, a >= 50, tb.Clipped(a), "A=%d", a)
	}
}

func TestLambda(t *testing.T) {
	assert.Equal(t, 0.0, Lambda(0))
	prev := 0.0
	for _, h := range []float64{1e-6, 0.01, 0.02, 0.1, 0.5, 1, 2, 5, 10} {
		l := Lambda(h)
		assert.Greater(t, l, prev, "h=%v", h)
		assert.Less(t, l, 1.0, "h=%v", h)
		prev = l
	}
	assert.InDelta(t, 0.009950166250831893, Lambda(0.01), difTol)
	assert.InDelta(t, 1.0, Lambda(40), 1e-15)
}

func TestThermSteps(t *testing.T) {
	assert.Equal(t, int64(101), ThermSteps(0.01))
	assert.Equal(t, int64(51), ThermSteps(0.02))
	assert.Equal(t, int64(3), ThermSteps(0.5))
	assert.Equal(t, int64(2), ThermSteps(1))
	assert.Equal(t, int64(0), ThermSteps(0))
}

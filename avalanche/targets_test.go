// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/avalanche/rng"
)

// seqIndexer returns a fixed cyclic sequence of indices
type seqIndexer struct {
	seq []int
	i   int
}

func (si *seqIndexer) Index(n int) int {
	v := si.seq[si.i%len(si.seq)] % n
	si.i++
	return v
}

func requireDistinct(t *testing.T, sel []int, k, n int) {
	t.Helper()
	require.Len(t, sel, k)
	seen := make(map[int]bool, k)
	for _, i := range sel {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
		require.False(t, seen[i], "duplicate target %d", i)
		seen[i] = true
	}
}

func TestSelectDistinct(t *testing.T) {
	n := 50
	ts := NewTargetSampler(n, rng.New(9))
	for rep := 0; rep < 5; rep++ {
		for k := 0; k <= n; k++ {
			requireDistinct(t, ts.Select(k), k, n)
		}
	}
	// clamped above N
	requireDistinct(t, ts.Select(n+10), n, n)
	assert.Empty(t, ts.Select(-1))
	// marker set is clear between selections
	assert.Equal(t, uint(0), ts.mark.Count())
}

func TestSelectRejectsRepeats(t *testing.T) {
	si := &seqIndexer{seq: []int{3, 3, 3, 1, 3, 1, 4}}
	ts := NewTargetSampler(10, si)
	sel := ts.Select(3)
	assert.Equal(t, []int{3, 1, 4}, sel)
	assert.Equal(t, 7, si.i)
}

func TestSelectComplement(t *testing.T) {
	// k = 8 of 10: draws the 2 excluded neurons instead
	si := &seqIndexer{seq: []int{6, 6, 2}}
	ts := NewTargetSampler(10, si)
	sel := ts.Select(8)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 7, 8, 9}, sel)
	assert.Equal(t, 3, si.i)
	assert.Equal(t, uint(0), ts.mark.Count())

	// k = N needs no draws at all
	sel = ts.Select(10)
	assert.Equal(t, 3, si.i)
	requireDistinct(t, sel, 10, 10)
}

func TestSelectUniform(t *testing.T) {
	n := 10
	ts := NewTargetSampler(n, rng.New(5))
	for _, k := range []int{2, 7} {
		counts := make([]int, n)
		const reps = 20000
		for r := 0; r < reps; r++ {
			for _, i := range ts.Select(k) {
				counts[i]++
			}
		}
		exp := float64(reps*k) / float64(n)
		for i, c := range counts {
			// each neuron is included with probability k/N
			assert.InDelta(t, exp, float64(c), 0.08*exp, "k=%d neuron %d", k, i)
		}
	}
}

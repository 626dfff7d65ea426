// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/emer/avalanche/ergraph"
)

// traceRand replays a fixed cycle of uniform deviates and records every draw
type traceRand struct {
	us    []float64
	i     int
	lines []string
}

func newTraceRand() *traceRand {
	return &traceRand{us: []float64{0.1, 0.6, 0.3, 0.9, 0.45, 0.2, 0.7, 0.05}}
}

func (tr *traceRand) next() float64 {
	u := tr.us[tr.i%len(tr.us)]
	tr.i++
	return u
}

func (tr *traceRand) BoolP(p float64) bool {
	u := tr.next()
	b := u < p
	tr.lines = append(tr.lines, fmt.Sprintf("BoolP %g u=%g %v", p, u, b))
	return b
}

func (tr *traceRand) Index(n int) int {
	u := tr.next()
	i := int(u * float64(n))
	tr.lines = append(tr.lines, fmt.Sprintf("Index %d u=%g %d", n, u, i))
	return i
}

// traceDraw returns a fixed count for one active-count entry and records the draw
type traceDraw struct {
	tr *traceRand
	a  int
	k  int
}

func (td *traceDraw) Draw() int {
	td.tr.lines = append(td.tr.lines, fmt.Sprintf("Draw A=%d %d", td.a, td.k))
	return td.k
}

// always is a stream where every edge exists
type always struct{}

func (always) BoolP(p float64) bool { return true }

func runTrace(t *testing.T, name string, pop *Population, rule Rule, tr *traceRand, steps int) {
	t.Helper()
	en := Engine{Pop: pop, Rule: rule}
	for s := 1; s <= steps; s++ {
		en.Step()
		tr.lines = append(tr.lines, fmt.Sprintf("step %d active %v", s, pop.Act))
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(strings.Join(tr.lines, "\n")+"\n"))
}

// each neuron in index order: fan-out count, target indices, then external drive
func TestBranchDrawOrder(t *testing.T) {
	tr := newTraceRand()
	n := 4
	ks := []int{0, 3, 1, 1, 1}
	br := &BranchRule{Lambda: 0.25, Rand: tr, Targets: NewTargetSampler(n, tr)}
	for a, k := range ks {
		br.Binom = append(br.Binom, &traceDraw{tr: tr, a: a, k: k})
	}
	runTrace(t, "branch_draw_order", NewPopulation(n), br, tr, 3)
}

// each neuron in index order: external drive, and only if it fails, internal drive
func TestPIFDrawOrder(t *testing.T) {
	tr := newTraceRand()
	gr := ergraph.Generate(3, 1, always{})
	require.Equal(t, 6, gr.NEdges)
	pr := &PIFRule{Graph: gr, W: gr.Weights(1), Lambda: 0.25, Rand: tr}
	runTrace(t, "pif_draw_order", NewPopulation(3), pr, tr, 3)
}

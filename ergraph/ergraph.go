// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ergraph generates the fixed (quenched) directed Erdős–Rényi connectivity
used by the probabilistic integrate-and-fire network, and derives the per-neuron
synaptic weights of its linear activation rule.

The graph is built once as a gonum simple.DirectedGraph and then flattened into
sorted incoming / outgoing index lists that the simulation reads every step.
Only the flattened lists are kept.
*/
package ergraph

import (
	"fmt"
	"sort"
	"unsafe"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Rand is the random stream consumed while drawing edges.
type Rand interface {
	// BoolP returns true with probability p
	BoolP(p float64) bool
}

// Graph is a directed simple graph over N neurons without self-loops.
// It is immutable after Generate.
type Graph struct {

	// number of neurons
	N int

	// independent probability of each ordered (sender, receiver) edge
	PEdge float64

	// sorted sending neighbors of each neuron
	In [][]int32

	// sorted receiving neighbors of each neuron
	Out [][]int32

	// total number of edges
	NEdges int
}

// Generate draws a directed Erdős–Rényi graph over n neurons, testing every
// ordered pair (n, nn) with n != nn exactly once, in row-major order of sender
// then receiver, so the consumption of the random stream is fixed.
func Generate(n int, pEdge float64, rnd Rand) *Graph {
	gr := &Graph{N: n, PEdge: pEdge}
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for snd := 0; snd < n; snd++ {
		for rcv := 0; rcv < n; rcv++ {
			if snd == rcv {
				continue
			}
			if rnd.BoolP(pEdge) {
				g.SetEdge(g.NewEdge(simple.Node(snd), simple.Node(rcv)))
				gr.NEdges++
			}
		}
	}
	gr.flatten(g)
	return gr
}

// flatten builds the In / Out index lists from g.
func (gr *Graph) flatten(g *simple.DirectedGraph) {
	gr.In = make([][]int32, gr.N)
	gr.Out = make([][]int32, gr.N)
	for i := 0; i < gr.N; i++ {
		id := int64(i)
		gr.In[i] = nodeIdxs(g.To(id))
		gr.Out[i] = nodeIdxs(g.From(id))
	}
}

// nodeIdxs returns the ids of the nodes in the iterator, sorted ascending
func nodeIdxs(it graph.Nodes) []int32 {
	idxs := make([]int32, 0, it.Len())
	for it.Next() {
		idxs = append(idxs, int32(it.Node().ID()))
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
	return idxs
}

// HasEdge reports whether there is an edge from snd to rcv.
func (gr *Graph) HasEdge(snd, rcv int) bool {
	out := gr.Out[snd]
	i := sort.Search(len(out), func(i int) bool { return out[i] >= int32(rcv) })
	return i < len(out) && out[i] == int32(rcv)
}

// InDegree returns the number of sending neighbors of neuron n.
func (gr *Graph) InDegree(n int) int { return len(gr.In[n]) }

// OutDegree returns the number of receiving neighbors of neuron n.
func (gr *Graph) OutDegree(n int) int { return len(gr.Out[n]) }

// Weights returns the linear activation weights w[n] = m / InDegree(n).
// A neuron without sending neighbors gets weight 0: it can only be
// activated by external drive.
func (gr *Graph) Weights(m float64) []float64 {
	w := make([]float64, gr.N)
	for n := range w {
		if k := len(gr.In[n]); k > 0 {
			w[n] = m / float64(k)
		}
	}
	return w
}

// NIsolated returns the number of neurons with zero in-degree.
func (gr *Graph) NIsolated() int {
	ni := 0
	for _, in := range gr.In {
		if len(in) == 0 {
			ni++
		}
	}
	return ni
}

// MeanDegree returns the mean in-degree (equal to the mean out-degree).
func (gr *Graph) MeanDegree() float64 {
	if gr.N == 0 {
		return 0
	}
	return float64(gr.NEdges) / float64(gr.N)
}

// MemBytes returns the memory footprint of the neighbor lists.
func (gr *Graph) MemBytes() int {
	idx := int(unsafe.Sizeof(int32(0)))
	hdr := int(unsafe.Sizeof([]int32(nil)))
	return 2*idx*gr.NEdges + 2*hdr*gr.N
}

// String returns a one-line summary of the graph.
func (gr *Graph) String() string {
	return fmt.Sprintf("ER graph: N: %d\t PEdge: %g\t Edges: %d\t MeanDegree: %.3f\t Isolated: %d", gr.N, gr.PEdge, gr.NEdges, gr.MeanDegree(), gr.NIsolated())
}

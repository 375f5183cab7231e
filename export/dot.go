// Package export renders a fitted tree as a Graphviz DOT document,
// following the Python original's to_graphviz/_to_graphviz layout: one
// box-shaped node per split, one node per leaf, "yes"/"no" edge labels
// (spec §6).
package export

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/wlattner/segreg/segtree"
)

// labeledNode is a graph node carrying the text and shape DOT should
// render for it: an oval leaf summary or a boxed "x ≤ t?" split.
type labeledNode struct {
	id    int64
	label string
	shape string
}

func (n labeledNode) ID() int64 { return n.id }

func (n labeledNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", n.label)}}
	if n.shape != "" {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: n.shape})
	}
	return attrs
}

// labeledEdge is a graph edge carrying a "yes"/"no" branch label.
type labeledEdge struct {
	from, to labeledNode
	label    string
}

func (e labeledEdge) From() graph.Node { return e.from }
func (e labeledEdge) To() graph.Node   { return e.to }
func (e labeledEdge) ReversedEdge() graph.Edge {
	return labeledEdge{from: e.to, to: e.from, label: e.label}
}

func (e labeledEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", e.label)}}
}

// WriteDOT writes root as a Graphviz DOT document to w.
func WriteDOT(w io.Writer, root segtree.Segment) error {
	g := simple.NewDirectedGraph()
	nextID := int64(0)
	buildGraph(g, root, &nextID)

	data, err := dot.Marshal(g, "segreg", "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal DOT: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// buildGraph recursively adds seg and its descendants to g, returning the
// node just added so the caller can wire an edge to it.
func buildGraph(g *simple.DirectedGraph, seg segtree.Segment, nextID *int64) labeledNode {
	switch v := seg.(type) {
	case *segtree.Leaf:
		n := labeledNode{id: *nextID, label: v.String()}
		*nextID++
		g.AddNode(n)
		return n
	case *segtree.Node:
		self := labeledNode{id: *nextID, label: fmt.Sprintf("x ≤ %.3g?", v.Threshold()), shape: "box"}
		*nextID++
		g.AddNode(self)

		left := buildGraph(g, v.Left(), nextID)
		g.SetEdge(labeledEdge{from: self, to: left, label: "yes"})

		right := buildGraph(g, v.Right(), nextID)
		g.SetEdge(labeledEdge{from: self, to: right, label: "no"})

		return self
	default:
		panic("export: unknown Segment implementation")
	}
}

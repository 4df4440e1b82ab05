package plan

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"

	"quantity-generator/quantity"
)

// Graph is the operation graph as a directed multigraph over dimensions.
// Every edge "L op R => O" contributes the lines L->O and R->O, so a path
// from A to B means B can be computed from a value of A.
type Graph struct {
	g     *multi.DirectedGraph
	nodes map[string]dimensionNode
	names []string
}

type dimensionNode struct {
	id       int64
	name     string
	imported bool
}

func (n dimensionNode) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n dimensionNode) DOTID() string { return n.name }

// Attributes implements encoding.Attributer.
func (n dimensionNode) Attributes() []encoding.Attribute {
	if n.imported {
		return []encoding.Attribute{{Key: "style", Value: "dashed"}}
	}

	return nil
}

type operandLine struct {
	from, to dimensionNode
	id       int64
	op       *Operation
}

func (l operandLine) From() graph.Node { return l.from }

func (l operandLine) To() graph.Node { return l.to }

func (l operandLine) ID() int64 { return l.id }

func (l operandLine) ReversedLine() graph.Line {
	l.from, l.to = l.to, l.from
	return l
}

// Attributes labels the line with its operation, e.g. "Length / Time".
func (l operandLine) Attributes() []encoding.Attribute {
	label := l.op.Left.Name + " " + l.op.Op.String() + " " + l.op.Right.Name
	return []encoding.Attribute{{Key: "label", Value: label}}
}

// Graph builds the operation graph of every visible dimension and of every
// operation declared locally or by an import.
func (c *Catalog) Graph() *Graph {
	gr := &Graph{
		g:     multi.NewDirectedGraph(),
		nodes: make(map[string]dimensionNode),
	}

	for _, name := range c.DimensionNames() {
		d := c.dimensions[name]
		gr.node(name, !d.Local())
	}

	var lineID int64

	for _, op := range c.AllOperations() {
		out := gr.node(op.Output.Name, true)

		for _, operand := range []*Dimension{op.Left, op.Right} {
			gr.g.SetLine(operandLine{from: gr.node(operand.Name, true), to: out, id: lineID, op: op})
			lineID++
		}
	}

	return gr
}

// node returns the node named name, adding it if missing.
func (gr *Graph) node(name string, imported bool) dimensionNode {
	if n, ok := gr.nodes[name]; ok {
		return n
	}

	n := dimensionNode{id: int64(len(gr.names)), name: name, imported: imported}
	gr.nodes[name] = n
	gr.names = append(gr.names, name)
	gr.g.AddNode(n)

	return n
}

func (gr *Graph) lookup(name string) (dimensionNode, error) {
	n, ok := gr.nodes[name]
	if !ok {
		return dimensionNode{}, fmt.Errorf("%w %s", quantity.ErrUnknownDimension, name)
	}

	return n, nil
}

// DOT renders the graph in Graphviz DOT format.
func (gr *Graph) DOT(name string) ([]byte, error) {
	return dot.MarshalMulti(gr.g, name, "", "\t")
}

// Reachable reports whether to can be computed from a value of from.
func (gr *Graph) Reachable(from, to string) (bool, error) {
	f, err := gr.lookup(from)
	if err != nil {
		return false, err
	}

	t, err := gr.lookup(to)
	if err != nil {
		return false, err
	}

	return topo.PathExistsIn(gr.g, f, t), nil
}

// Path returns the shortest chain of dimensions leading from one dimension
// to another, both included. It returns nil when to is unreachable.
func (gr *Graph) Path(from, to string) ([]string, error) {
	f, err := gr.lookup(from)
	if err != nil {
		return nil, err
	}

	t, err := gr.lookup(to)
	if err != nil {
		return nil, err
	}

	nodes, _ := path.DijkstraFrom(f, gr.g).To(t.ID())
	if len(nodes) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, gr.names[n.ID()])
	}

	return names, nil
}

// Steps returns the operations producing to from from in a single step.
func (gr *Graph) Steps(from, to string) []*Operation {
	f, okFrom := gr.nodes[from]
	t, okTo := gr.nodes[to]

	if !okFrom || !okTo {
		return nil
	}

	var ops []*Operation

	lines := gr.g.Lines(f.ID(), t.ID())
	for lines.Next() {
		if l, ok := lines.Line().(operandLine); ok && !slices.Contains(ops, l.op) {
			ops = append(ops, l.op)
		}
	}

	return ops
}

// Isolated returns the dimensions that take part in no operation, sorted.
func (gr *Graph) Isolated() []string {
	var res []string

	for _, name := range gr.names {
		id := gr.nodes[name].id
		if gr.g.From(id).Len() == 0 && gr.g.To(id).Len() == 0 {
			res = append(res, name)
		}
	}

	slices.Sort(res)

	return res
}

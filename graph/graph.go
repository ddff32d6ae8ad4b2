package graph

import (
	"bytes"
)

// NodeConstrain is implemented by anything that can be drawn as a node.
type NodeConstrain interface {
	// DotSpec().ID is used as key in the graph, so should be unique.
	DotSpec() *DotNodeSpec
}

type DotNodeSpec struct {
	ID        string
	Name      string
	Tooltip   string
	Shape     string
	Style     string
	FillColor string
}

type DotEdgeSpec struct {
	FromNodeID string
	ToNodeID   string
	Tooltip    string
	Style      string
	Color      string
}

type Edge[NT NodeConstrain] struct {
	From NT
	To   NT
}

// Graph keeps nodes and edges in insertion order, so rendering is stable.
type Graph[NT NodeConstrain] struct {
	connectionCallback func(from, to NT) *DotEdgeSpec
	nodes              map[string]NT
	nodeOrder          []string
	edges              []*Edge[NT]
}

func NewGraph[NT NodeConstrain](edgeSpecFunc func(from, to NT) *DotEdgeSpec) *Graph[NT] {
	return &Graph[NT]{
		connectionCallback: edgeSpecFunc,
		nodes:              make(map[string]NT),
	}
}

func (g *Graph[NT]) AddNode(n NT) error {
	nodeKey := n.DotSpec().ID
	if _, ok := g.nodes[nodeKey]; ok {
		return newGraphError(ErrDuplicateNode, nodeKey)
	}
	g.nodes[nodeKey] = n
	g.nodeOrder = append(g.nodeOrder, nodeKey)

	return nil
}

func (g *Graph[NT]) Connect(from, to string) error {
	nodeFrom, ok := g.nodes[from]
	if !ok {
		return newGraphError(ErrConnectNotExistingNode, from)
	}

	nodeTo, ok := g.nodes[to]
	if !ok {
		return newGraphError(ErrConnectNotExistingNode, to)
	}

	g.edges = append(g.edges, &Edge[NT]{From: nodeFrom, To: nodeTo})
	return nil
}

func (g *Graph[NT]) Len() int {
	return len(g.nodeOrder)
}

// https://en.wikipedia.org/wiki/DOT_(graph_description_language)
func (g *Graph[NT]) ToDotGraph() (string, error) {
	data := struct {
		Nodes []*DotNodeSpec
		Edges []*DotEdgeSpec
	}{}

	for _, key := range g.nodeOrder {
		data.Nodes = append(data.Nodes, g.nodes[key].DotSpec())
	}
	for _, edge := range g.edges {
		data.Edges = append(data.Edges, g.connectionCallback(edge.From, edge.To))
	}

	buf := new(bytes.Buffer)
	if err := digraphTemplate.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

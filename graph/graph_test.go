package graph_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/go-typewriter/graph"
)

func TestChainGraph(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph(edgeSpecFromConnection)
	first := &testNode{Name: "type"}
	second := &testNode{Name: "pause"}
	third := &testNode{Name: "delete"}
	require.NoError(t, g.AddNode(first))
	require.NoError(t, g.AddNode(second))
	require.NoError(t, g.AddNode(third))
	assert.Equal(t, 3, g.Len())

	require.NoError(t, g.Connect(first.DotSpec().ID, second.DotSpec().ID))
	require.NoError(t, g.Connect(second.DotSpec().ID, third.DotSpec().ID))

	dot, err := g.ToDotGraph()
	require.NoError(t, err)
	assert.Contains(t, dot, `"type" -> "pause"`)
	assert.Contains(t, dot, `"pause" -> "delete"`)
	assert.Less(t, strings.Index(dot, `"type" [label=`), strings.Index(dot, `"pause" [label=`))
}

func TestGraphErrors(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph(edgeSpecFromConnection)
	node := &testNode{Name: "only"}
	require.NoError(t, g.AddNode(node))

	err := g.AddNode(&testNode{Name: "only"})
	assert.True(t, errors.Is(err, graph.ErrDuplicateNode))
	assert.EqualError(t, err, `node with same key already exists in this graph: "only"`)

	err = g.Connect("only", "missing")
	assert.True(t, errors.Is(err, graph.ErrConnectNotExistingNode))
}

func TestLabelsAreQuoted(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph(edgeSpecFromConnection)
	require.NoError(t, g.AddNode(&testNode{Name: `say "hi"`}))

	dot, err := g.ToDotGraph()
	require.NoError(t, err)
	assert.Contains(t, dot, `label="say \"hi\""`)
}

type testNode struct {
	Name string
}

func (tn *testNode) DotSpec() *graph.DotNodeSpec {
	return &graph.DotNodeSpec{
		ID:        tn.Name,
		Name:      tn.Name,
		Tooltip:   tn.Name,
		Shape:     "box",
		Style:     "filled",
		FillColor: "green",
	}
}

func edgeSpecFromConnection(from, to *testNode) *graph.DotEdgeSpec {
	return &graph.DotEdgeSpec{
		FromNodeID: from.DotSpec().ID,
		ToNodeID:   to.DotSpec().ID,
		Tooltip:    fmt.Sprintf("%s -> %s", from.DotSpec().Name, to.DotSpec().Name),
		Style:      "solid",
		Color:      "black",
	}
}

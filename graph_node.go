package typewriter

import (
	"fmt"
	"time"

	"github.com/Azure/go-typewriter/graph"
)

type stepNode struct {
	*StepInstance
}

func newStepNode(si *StepInstance) *stepNode {
	return &stepNode{
		StepInstance: si,
	}
}

func (sn *stepNode) getID() string {
	return fmt.Sprintf("%d_%s", sn.Index, sn.GetName())
}

func (sn *stepNode) DotSpec() *graph.DotNodeSpec {
	return &graph.DotNodeSpec{
		ID:        sn.getID(),
		Name:      sn.Definition.String(),
		Shape:     sn.Definition.shape(),
		Style:     "filled",
		FillColor: sn.getFillColor(),
		Tooltip:   sn.getTooltip(),
	}
}

func (sn *stepNode) getFillColor() string {
	switch sn.GetState() {
	case StepStatePending:
		return "gray"
	case StepStateRunning:
		return "yellow"
	case StepStateCompleted:
		return "green"
	default:
		return "white"
	}
}

func (sn *stepNode) getTooltip() string {
	state := sn.GetState()
	executionData := sn.ExecutionData()

	if state != StepStatePending {
		return fmt.Sprintf("Kind: %s\nState: %s\nStartAt: %s\nDuration: %s\nTicks: %d", sn.Definition.Kind(), state, executionData.StartTime.Format(time.RFC3339Nano), executionData.Duration, executionData.Ticks)
	}

	return fmt.Sprintf("Kind: %s\nState: %s", sn.Definition.Kind(), state)
}

func stepConn(snFrom, snTo *stepNode) *graph.DotEdgeSpec {
	edgeSpec := &graph.DotEdgeSpec{
		FromNodeID: snFrom.getID(),
		ToNodeID:   snTo.getID(),
		Color:      "black",
		Style:      "bold",
	}

	// update edge tooltip if NodeTo is started already.
	if snTo.GetState() != StepStatePending {
		edgeSpec.Tooltip = fmt.Sprintf("Time: %s", snTo.ExecutionData().StartTime.Format(time.RFC3339Nano))
	}

	if snFrom.GetState() == StepStateCompleted {
		edgeSpec.Color = "green"
	}

	return edgeSpec
}

// VisualizeLastRun renders the executions of the latest run in graphviz
// dot format, colored by state.
func (tw *Typewriter) VisualizeLastRun() (string, error) {
	g := graph.NewGraph(stepConn)
	var prev *stepNode
	for _, si := range tw.LastRun() {
		node := newStepNode(si)
		if err := g.AddNode(node); err != nil {
			return "", err
		}
		if prev != nil {
			if err := g.Connect(prev.getID(), node.getID()); err != nil {
				return "", err
			}
		}
		prev = node
	}

	return g.ToDotGraph()
}

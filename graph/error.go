package graph

import "fmt"

type GraphErrorCode string

const (
	ErrDuplicateNode          GraphErrorCode = "node with same key already exists in this graph"
	ErrConnectNotExistingNode GraphErrorCode = "node to connect does not exist in this graph"
)

func (code GraphErrorCode) Error() string {
	return string(code)
}

// GraphError names the node a graph operation failed on.
type GraphError struct {
	Code GraphErrorCode
	Node string
}

func newGraphError(code GraphErrorCode, node string) *GraphError {
	return &GraphError{Code: code, Node: node}
}

func (ge *GraphError) Error() string {
	return fmt.Sprintf("%s: %q", ge.Code, ge.Node)
}

func (ge *GraphError) Unwrap() error {
	return ge.Code
}

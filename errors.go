package dspgraph

import (
	"errors"
	"fmt"
)

// Sentinel build-time error kinds. Callers compare with errors.Is; never
// compare a returned error against these with ==, since Builder always
// wraps them: in a *BuildError for context, or with fmt.Errorf in
// Build's defensive evaluation-order check.
var (
	ErrPortOutOfRange          = errors.New("dspgraph: port index out of range")
	ErrDuplicateConnection     = errors.New("dspgraph: duplicate audio connection")
	ErrCycleDetected           = errors.New("dspgraph: edge would create a cycle")
	ErrUnknownModulationTarget = errors.New("dspgraph: unknown modulation target")
	ErrNodeNotFound            = errors.New("dspgraph: node not found")
)

// BuildError wraps one of the sentinels above with the offending node and
// port/target, so callers get both errors.Is matching and a readable
// message. Modeled on the teacher's DisconnectedError.
type BuildError struct {
	Err    error
	Node   NodeId
	Port   int
	Target string
}

func (e *BuildError) Error() string {
	switch {
	case e.Target != "":
		return fmt.Sprintf("%s: node %d target %q", e.Err, e.Node, e.Target)
	case e.Port >= 0:
		return fmt.Sprintf("%s: node %d port %d", e.Err, e.Node, e.Port)
	default:
		return fmt.Sprintf("%s: node %d", e.Err, e.Node)
	}
}

func (e *BuildError) Unwrap() error { return e.Err }

func portError(sentinel error, node NodeId, port int) error {
	return &BuildError{Err: sentinel, Node: node, Port: port}
}

func nodeError(sentinel error, node NodeId) error {
	return &BuildError{Err: sentinel, Node: node, Port: -1}
}

func targetError(sentinel error, node NodeId, target string) error {
	return &BuildError{Err: sentinel, Node: node, Port: -1, Target: target}
}

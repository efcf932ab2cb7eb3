package dspgraph

// NodeId is an opaque, stable handle to a node within a single graph. Ids
// are assigned in insertion order starting at 0.
type NodeId int

// NoNode is the zero-value-free sentinel meaning "no such node". It is
// never a valid id returned by (*Builder).Add.
const NoNode NodeId = -1

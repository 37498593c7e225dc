// Package cpm implements the critical path method over a project's budget
// items and milestones: graph assembly, cycle detection, topological
// ordering, the forward and backward passes, and float derivation. The
// package is pure in-memory computation; loading and persistence belong to
// the service layer.
package cpm

import (
	"sort"
	"time"

	"github.com/jmcalloway/proforma/internal/domain"
)

// NodeKey identifies a schedulable record across the two underlying tables.
type NodeKey struct {
	Type domain.NodeType
	ID   string
}

func (k NodeKey) String() string {
	return string(k.Type) + ":" + k.ID
}

// Edge is a typed, lagged dependency between two nodes. Each edge is held on
// both endpoints (successor list on the predecessor, predecessor list on the
// successor) so both passes traverse without re-deriving adjacency.
type Edge struct {
	ID      string
	Type    domain.DependencyType
	LagDays int
	Hard    bool

	Predecessor *Node
	Successor   *Node
}

// Node is one schedulable unit. Budget items carry a duration of at least
// one day; milestones are zero-duration points. The Early/Late/Float fields
// start nil and are populated by the passes.
type Node struct {
	Key          NodeKey
	Name         string
	Duration     int
	FixedStart   *time.Time
	FixedFinish  *time.Time
	TimingMethod domain.TimingMethod
	TimingLocked bool

	// Pre-calculation dates kept for audit and diffing.
	OrigStart  *time.Time
	OrigFinish *time.Time

	Predecessors []*Edge
	Successors   []*Edge

	EarlyStart  *time.Time
	EarlyFinish *time.Time
	LateStart   *time.Time
	LateFinish  *time.Time
	FloatDays   *int
	Critical    bool
}

// IsMilestone reports whether the node is a zero-duration point.
func (n *Node) IsMilestone() bool {
	return n.Key.Type == domain.NodeMilestone
}

// Graph holds every node for one project plus the effective project bounds
// derived during the build. It lives for exactly one calculation run.
type Graph struct {
	Nodes map[NodeKey]*Node

	// Start is the earlier of the project's analysis start and any node's
	// fixed start; End is the later of the analysis end and any fixed finish.
	Start *time.Time
	End   *time.Time
}

// SortedKeys returns the node keys in a deterministic order (type, then id)
// so traversal and reporting are stable across runs.
func (g *Graph) SortedKeys() []NodeKey {
	keys := make([]NodeKey, 0, len(g.Nodes))
	for k := range g.Nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].ID < keys[j].ID
	})
	return keys
}

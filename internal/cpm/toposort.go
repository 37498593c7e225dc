package cpm

import "fmt"

// Sort returns the graph's nodes in dependency order using Kahn's algorithm:
// every predecessor appears strictly before all of its successors. The
// returned error is defensive; DetectCycles runs first and should have caught
// any true cycle before this point.
func Sort(g *Graph) ([]*Node, error) {
	inDegree := make(map[NodeKey]int, len(g.Nodes))
	var queue []*Node

	// Seed in deterministic key order so equal-rank nodes keep a stable
	// position across runs.
	for _, key := range g.SortedKeys() {
		n := g.Nodes[key]
		inDegree[key] = len(n.Predecessors)
		if inDegree[key] == 0 {
			queue = append(queue, n)
		}
	}

	sorted := make([]*Node, 0, len(g.Nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		sorted = append(sorted, n)
		for _, e := range n.Successors {
			succ := e.Successor
			inDegree[succ.Key]--
			if inDegree[succ.Key] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(sorted) != len(g.Nodes) {
		return nil, fmt.Errorf("topological sort covered %d of %d nodes: graph contains a cycle", len(sorted), len(g.Nodes))
	}
	return sorted, nil
}

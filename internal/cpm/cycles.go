package cpm

import "strings"

// DetectCycles walks the dependency graph depth-first and returns a
// human-readable description of every circular chain found, as node keys
// joined by " -> ". An empty result means the graph is acyclic. The scheduler
// never breaks cycles itself; callers abort on a non-empty result.
func DetectCycles(g *Graph) []string {
	visiting := make(map[NodeKey]bool)
	visited := make(map[NodeKey]bool)
	var cycles []string
	var path []NodeKey

	var visit func(n *Node)
	visit = func(n *Node) {
		if visited[n.Key] {
			return
		}
		if visiting[n.Key] {
			parts := make([]string, 0, len(path)+1)
			for _, k := range path {
				parts = append(parts, k.String())
			}
			parts = append(parts, n.Key.String())
			cycles = append(cycles, strings.Join(parts, " -> "))
			return
		}
		visiting[n.Key] = true
		path = append(path, n.Key)
		for _, e := range n.Successors {
			visit(e.Successor)
		}
		path = path[:len(path)-1]
		delete(visiting, n.Key)
		visited[n.Key] = true
	}

	// Every node is a DFS root if not already visited, so disconnected
	// components are all checked.
	for _, key := range g.SortedKeys() {
		visit(g.Nodes[key])
	}
	return cycles
}

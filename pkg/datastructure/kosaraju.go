package datastructure

import (
	"sort"

	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

// SCC. strongly connected components of the road network, numbered in kosaraju discovery order.
type SCC struct {
	components [][]int64
	sccOf      map[int64]int
}

func (s *SCC) NumberOfComponents() int {
	return len(s.components)
}

// Component. intersection ids of component c, ascending.
func (s *SCC) Component(c int) []int64 {
	return s.components[c]
}

func (s *SCC) ComponentOf(id int64) (int, bool) {
	c, ok := s.sccOf[id]
	return c, ok
}

// SameComponent. u and v are mutually reachable.
func (s *SCC) SameComponent(u, v int64) bool {
	cu, ok := s.sccOf[u]
	if !ok {
		return false
	}
	cv, ok := s.sccOf[v]
	return ok && cu == cv
}

// RunKosaraju. runs kosaraju's algorithm to find the strongly connected components (SCCs) of the graph.
// first pass records dfs finish order on the graph, second pass runs dfs on the reversed graph in reverse
// finish order; every tree of the second pass is one component.
func (g *Graph) RunKosaraju() *SCC {
	order := make([]int64, 0, len(g.ids))
	visited := make(map[int64]bool, len(g.ids))
	for _, v := range g.ids {
		if !visited[v] {
			g.dfs(v, &order, visited, func(u int64, visit func(int64)) {
				for _, e := range g.adjacency[u] {
					visit(e.destination)
				}
			})
		}
	}

	order = util.ReverseG[int64](order)

	reversed := make(map[int64][]int64, len(g.adjacency))
	for origin, out := range g.adjacency {
		for _, e := range out {
			reversed[e.destination] = append(reversed[e.destination], origin)
		}
	}

	// reset visited
	visited = make(map[int64]bool, len(g.ids))
	scc := &SCC{
		components: make([][]int64, 0, 10),
		sccOf:      make(map[int64]int, len(g.ids)),
	}
	for _, v := range order {
		if visited[v] {
			continue
		}
		component := make([]int64, 0, 10)
		g.dfs(v, &component, visited, func(u int64, visit func(int64)) {
			for _, w := range reversed[u] {
				visit(w)
			}
		})
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		for _, u := range component {
			scc.sccOf[u] = len(scc.components)
		}
		scc.components = append(scc.components, component)
	}
	return scc
}

// dfs. iterative post-order dfs, appends every finished vertex to output.
func (g *Graph) dfs(root int64, output *[]int64, visited map[int64]bool,
	forNeighbors func(u int64, visit func(int64))) {
	type frame struct {
		v        int64
		children []int64
		next     int
	}

	collect := func(u int64) []int64 {
		children := make([]int64, 0, 4)
		forNeighbors(u, func(w int64) { children = append(children, w) })
		return children
	}

	visited[root] = true
	stack := []frame{{v: root, children: collect(root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			w := top.children[top.next]
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, frame{v: w, children: collect(w)})
			}
			continue
		}
		*output = append(*output, top.v)
		stack = stack[:len(stack)-1]
	}
}

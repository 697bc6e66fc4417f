package landmark

import (
	"github.com/lintang-b-s/navigatorx-stations/pkg"
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
)

// Dijkstra. one-to-all shortest travel times (second) over the graph or its reverse.
type Dijkstra struct {
	graph           *da.Graph
	index           map[int64]int // intersection id -> position in graph.Intersections()
	reverse         map[int64][]da.Segment
	useReverseGraph bool

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, index map[int64]int, reverse map[int64][]da.Segment,
	useReverseGraph bool) *Dijkstra {
	return &Dijkstra{
		graph:           graph,
		index:           index,
		reverse:         reverse,
		useReverseGraph: useReverseGraph,
	}
}

// ShortestPath. travel times from s (to s when running on the reverse graph) indexed like graph.Intersections().
// unreachable intersections get 2*INF_WEIGHT.
func (us *Dijkstra) ShortestPath(s int64) []float64 {
	n := len(us.index)
	shortestTimeTravels := make([]float64, n)
	for v := 0; v < n; v++ {
		shortestTimeTravels[v] = 2 * pkg.INF_WEIGHT
	}
	settled := make([]bool, n)

	pq := da.NewFourAryHeap[int64]()
	shortestTimeTravels[us.index[s]] = 0
	pq.Insert(da.NewPriorityQueueNode(0, s, s))

	for !pq.IsEmpty() {
		node, _ := pq.ExtractMin()
		u := node.GetItem()
		uIdx := us.index[u]
		if settled[uIdx] {
			// stale entry, lazy deletion
			continue
		}
		settled[uIdx] = true
		us.numSettledNodes++

		for _, arc := range us.arcs(u) {
			v := arc.GetDestination()
			if us.useReverseGraph {
				v = arc.GetOrigin()
			}
			vIdx := us.index[v]
			newArrTime := shortestTimeTravels[uIdx] + arc.GetCost()
			if newArrTime >= pkg.INF_WEIGHT || settled[vIdx] {
				continue
			}
			if newArrTime < shortestTimeTravels[vIdx] {
				shortestTimeTravels[vIdx] = newArrTime
				pq.Insert(da.NewPriorityQueueNode(newArrTime, v, v))
			}
		}
	}
	return shortestTimeTravels
}

func (us *Dijkstra) arcs(u int64) []da.Segment {
	if us.useReverseGraph {
		return us.reverse[u]
	}
	return us.graph.Neighbors(u)
}

func (us *Dijkstra) NumSettledNodes() int {
	return us.numSettledNodes
}

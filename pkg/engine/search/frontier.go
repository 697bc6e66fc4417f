package search

import (
	"fmt"
	"strings"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

type Strategy uint8

const (
	BreadthFirst Strategy = iota
	DepthFirst
	GreedyBestFirst
	AStar
)

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case GreedyBestFirst:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// UsesHeuristic. only the priority frontiers look at the heuristic.
func (s Strategy) UsesHeuristic() bool {
	return s == GreedyBestFirst || s == AStar
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth_first", "anchura":
		return BreadthFirst, nil
	case "dfs", "depth_first", "profundidad":
		return DepthFirst, nil
	case "greedy", "best_first", "greedy_best_first":
		return GreedyBestFirst, nil
	case "", "astar", "a*", "a_star":
		return AStar, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown search strategy %q", name)
	}
}

// Frontier holds discovered but not yet expanded nodes. owned by a single search run.
type Frontier interface {
	Insert(n *Node)
	ExtractNext() *Node
	IsEmpty() bool
	Len() int
}

// NewFrontier. goal & heuristic are only used by the priority strategies; a nil heuristic falls back to ZeroHeuristic.
func NewFrontier(strategy Strategy, heuristic Heuristic, goal da.Intersection) (Frontier, error) {
	if heuristic == nil {
		heuristic = ZeroHeuristic{}
	}
	switch strategy {
	case BreadthFirst:
		return newFifoFrontier(), nil
	case DepthFirst:
		return newLifoFrontier(), nil
	case GreedyBestFirst:
		return newPriorityFrontier(func(n *Node) float64 {
			return heuristic.Estimate(n.GetState(), goal)
		}), nil
	case AStar:
		return newPriorityFrontier(func(n *Node) float64 {
			return n.GetCost() + heuristic.Estimate(n.GetState(), goal)
		}), nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown search strategy %d", strategy)
	}
}

// fifoFrontier. breadth-first, fewest edges on unit-cost graphs only.
type fifoFrontier struct {
	nodes []*Node
	head  int
}

func newFifoFrontier() *fifoFrontier {
	return &fifoFrontier{nodes: make([]*Node, 0)}
}

func (f *fifoFrontier) Insert(n *Node) {
	f.nodes = append(f.nodes, n)
}

func (f *fifoFrontier) ExtractNext() *Node {
	if f.IsEmpty() {
		return nil
	}
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	if f.head > 1024 && f.head*2 >= len(f.nodes) {
		// compact the consumed prefix
		f.nodes = append(f.nodes[:0], f.nodes[f.head:]...)
		f.head = 0
	}
	return n
}

func (f *fifoFrontier) IsEmpty() bool {
	return f.head >= len(f.nodes)
}

func (f *fifoFrontier) Len() int {
	return len(f.nodes) - f.head
}

// lifoFrontier. depth-first, no optimality guarantee.
type lifoFrontier struct {
	nodes []*Node
}

func newLifoFrontier() *lifoFrontier {
	return &lifoFrontier{nodes: make([]*Node, 0)}
}

func (f *lifoFrontier) Insert(n *Node) {
	f.nodes = append(f.nodes, n)
}

func (f *lifoFrontier) ExtractNext() *Node {
	if f.IsEmpty() {
		return nil
	}
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}

func (f *lifoFrontier) IsEmpty() bool {
	return len(f.nodes) == 0
}

func (f *lifoFrontier) Len() int {
	return len(f.nodes)
}

// priorityFrontier. ordered by rank, ties broken by state id ascending then insertion order.
type priorityFrontier struct {
	pq   *da.MinHeap[*Node]
	rank func(n *Node) float64
}

func newPriorityFrontier(rank func(n *Node) float64) *priorityFrontier {
	return &priorityFrontier{
		pq:   da.NewFourAryHeap[*Node](),
		rank: rank,
	}
}

func (f *priorityFrontier) Insert(n *Node) {
	f.pq.Insert(da.NewPriorityQueueNode(f.rank(n), n.GetState().GetID(), n))
}

func (f *priorityFrontier) ExtractNext() *Node {
	top, err := f.pq.ExtractMin()
	if err != nil {
		return nil
	}
	return top.GetItem()
}

func (f *priorityFrontier) IsEmpty() bool {
	return f.pq.IsEmpty()
}

func (f *priorityFrontier) Len() int {
	return f.pq.Size()
}

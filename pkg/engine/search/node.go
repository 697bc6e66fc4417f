package search

import (
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

// Node is a search tree node. parent is a non-owning link; siblings share the same ancestor chain.
type Node struct {
	state  da.Intersection
	parent *Node
	action da.Segment
	root   bool
	depth  int
	cost   float64 // second
}

func newRootNode(state da.Intersection) *Node {
	return &Node{
		state: state,
		root:  true,
	}
}

func newChildNode(parent *Node, state da.Intersection, action da.Segment) *Node {
	return &Node{
		state:  state,
		parent: parent,
		action: action,
		depth:  parent.depth + 1,
		cost:   parent.cost + action.GetCost(),
	}
}

func (n *Node) GetState() da.Intersection {
	return n.state
}

func (n *Node) GetParent() *Node {
	return n.parent
}

// GetAction. segment that produced this node; ok is false for the root.
func (n *Node) GetAction() (da.Segment, bool) {
	return n.action, !n.root
}

func (n *Node) GetDepth() int {
	return n.depth
}

func (n *Node) GetCost() float64 {
	return n.cost
}

func (n *Node) IsRoot() bool {
	return n.root
}

// Path. intersection ids from the root to n.
func (n *Node) Path() []int64 {
	ids := make([]int64, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		ids = append(ids, cur.state.GetID())
	}
	return util.ReverseG(ids)
}

// Actions. segments from the root to n.
func (n *Node) Actions() []da.Segment {
	actions := make([]da.Segment, 0, n.depth)
	for cur := n; cur != nil && !cur.root; cur = cur.parent {
		actions = append(actions, cur.action)
	}
	return util.ReverseG(actions)
}

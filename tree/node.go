package tree

import (
	"fmt"
	"strings"
)

// NoID is the sentinel id of a freshly allocated node.
const NoID = -1

// Node is a guide-tree node.
type Node struct {
	Left  *Node
	Right *Node

	// Samples holds the sample indices of a leaf. Nil for internal nodes.
	Samples []int

	// Size is the number of samples below the node. For leaves it equals
	// len(Samples).
	Size int

	// ID is NoID unless assigned by a builder (UPGMA leaves) or LabelInternal.
	ID int
}

// New returns an empty node: no children, no samples and the sentinel id.
func New() *Node {
	return &Node{ID: NoID}
}

// NewLeaf returns a leaf that takes ownership of samples.
func NewLeaf(samples []int) *Node {
	return &Node{
		Samples: samples,
		Size:    len(samples),
		ID:      NoID,
	}
}

// NewInternal returns an internal node owning left and right.
func NewInternal(left, right *Node) *Node {
	return &Node{
		Left:  left,
		Right: right,
		Size:  left.Size + right.Size,
		ID:    NoID,
	}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Free detaches the subtree below n and drops any sample slice, leaving n
// empty. Detached nodes are released recursively.
func (n *Node) Free() {
	if n == nil {
		return
	}
	if n.Left != nil {
		n.Left.Free()
	}
	if n.Right != nil {
		n.Right.Free()
	}
	n.Left = nil
	n.Right = nil
	n.Samples = nil
	n.Size = 0
}

// Collapse turns an internal node into a leaf owning samples. Both children
// are freed.
func (n *Node) Collapse(samples []int) {
	n.Left.Free()
	n.Right.Free()
	n.Left = nil
	n.Right = nil
	n.Samples = samples
	n.Size = len(samples)
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	n.Left.walk(fn, depth+1)
	n.Right.walk(fn, depth+1)
}

// Leaves returns the leaves below n from left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// NumLeaves returns the number of leaves below n.
func (n *Node) NumLeaves() int {
	count := 0
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// LabelInternal assigns consecutive ids, starting at label, to the internal
// nodes below n in post-order and returns the next unused label. Leaf ids
// are left untouched.
func (n *Node) LabelInternal(label int) int {
	if n == nil || n.IsLeaf() {
		return label
	}
	label = n.Left.LabelInternal(label)
	label = n.Right.LabelInternal(label)
	n.ID = label
	return label + 1
}

// Equal reports whether a and b have the same shape, ids and leaf samples
// in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID != b.ID || a.Size != b.Size || len(a.Samples) != len(b.Samples) {
		return false
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			return false
		}
	}
	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.Walk(func(c *Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		if c.IsLeaf() {
			fmt.Fprintf(&sb, "leaf id=%d n=%d %v\n", c.ID, c.Size, c.Samples)
		} else {
			fmt.Fprintf(&sb, "node id=%d n=%d\n", c.ID, c.Size)
		}
		return true
	})
	return sb.String()
}

package radix

import (
	"strings"

	"github.com/hideo55/go-popcount"
)

// Node is one edge-label segment of the trie.
type Node struct {
	// label is the part of the word this node adds to its parent's path;
	// only the root may have an empty label
	label string
	// word marks the end of a stored word
	word bool
	// empty is set on the root until the first word is added
	empty bool
	// bitmap has bit i set iff child[i] != nil
	bitmap uint32
	child  [alphabetSize]*Node
}

func newLeaf(label string) *Node {
	return &Node{
		label: strings.Clone(label),
		word:  true,
	}
}

// Label returns the node's edge label.
func (n *Node) Label() string { return n.label }

// IsWord reports whether the path ending at this node is a stored word.
func (n *Node) IsWord() bool { return n.word }

// Child returns the child whose label starts with ch, or nil.
func (n *Node) Child(ch byte) *Node {
	if ch < 'a' || ch > 'z' {
		return nil
	}
	return n.child[slot(ch)]
}

// Children returns the number of present children.
func (n *Node) Children() int {
	return int(popcount.Count(uint64(n.bitmap)))
}

// attach puts c into the slot selected by the first letter of its label.
func (n *Node) attach(c *Node) {
	idx := slot(c.label[0])

	n.child[idx] = c
	n.bitmap |= 1 << idx
	n.empty = false
}

// split moves everything past the first off bytes of the label, together
// with the word flag and all children, into a new child node.
func (n *Node) split(off int) {
	tail := &Node{
		label:  n.label[off:],
		word:   n.word,
		bitmap: n.bitmap,
		child:  n.child,
	}

	n.label = n.label[:off]
	n.child = [alphabetSize]*Node{}
	n.bitmap = 0
	n.attach(tail)
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	var (
		idx    int
		minLen = len(a)
	)

	if len(b) < minLen {
		minLen = len(b)
	}

	for ; idx < minLen && a[idx] == b[idx]; idx++ {
	}

	return idx
}

// Package radix implements a case-insensitive set of ASCII words stored in a
// compressed trie.
//
// Every node holds a label (a run of letters) instead of a single character,
// so chains of non-branching nodes never appear and the memory used is
// proportional to the distinct character content of the stored words.
//
// Example trie holding "abc", "abcdef", "abcghi" and "def":
//
//	               ,-- ["abc" word] --+-- ["def" word]
//	               |                  |
//	[root ""] -----+                  `-- ["ghi" word]
//	               |
//	               `-- ["def" word]
//
// A Dict is not safe for concurrent use; callers must serialize Add against
// every other call.
package radix

import "strings"

// Hook is run before every Add of an already normalized word. The returned
// function, if not nil, is run after the Add completes.
type Hook func(d *Dict, word string) (after func())

// Option configures a Dict.
type Option func(*Dict)

// WithHook installs a verification hook around every Add.
func WithHook(h Hook) Option {
	return func(d *Dict) {
		d.hook = h
	}
}

// Dict is a set of lowercase words.
type Dict struct {
	root Node
	hook Hook
}

// New returns an empty Dict.
func New(opts ...Option) *Dict {
	d := &Dict{
		root: Node{empty: true},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewDict returns a Dict holding the given words. It stops at the first
// invalid word and returns the error.
func NewDict(words ...string) (*Dict, error) {
	d := New()

	for _, word := range words {
		if _, err := d.Add(word); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Root returns the root node for read-only inspection.
func (d *Dict) Root() *Node {
	return &d.root
}

// Empty reports whether no word has been added yet.
func (d *Dict) Empty() bool {
	return d.root.empty
}

// Add inserts a word and reports whether it was not a member before.
// Invalid words are rejected with an error wrapping ErrInvalidWord and
// leave the Dict unchanged.
func (d *Dict) Add(word string) (bool, error) {
	word, err := Normalize(word)
	if err != nil {
		return false, err
	}

	if d.hook != nil {
		if after := d.hook(d, word); after != nil {
			defer after()
		}
	}

	return d.insert(word), nil
}

// insert places a normalized word into the trie.
func (d *Dict) insert(word string) bool {
	n := &d.root

	for {
		if n.label == "" {
			// only the root has an empty label
			if n.empty {
				n.label = strings.Clone(word)
				n.word = true
				n.empty = false
				return true
			}

			c := n.child[slot(word[0])]
			if c == nil {
				n.attach(newLeaf(word))
				return true
			}

			n = c
			continue
		}

		off := commonPrefix(n.label, word)

		switch {
		case off == len(n.label) && off == len(word):
			// exact match
			added := !n.word
			n.word = true
			return added

		case off == len(n.label):
			// the label is a proper prefix of the word
			word = word[off:]

			c := n.child[slot(word[0])]
			if c == nil {
				n.attach(newLeaf(word))
				return true
			}

			n = c

		case off == len(word):
			// the word is a proper prefix of the label
			n.split(off)
			n.word = true
			return true

		default:
			// the word and the label diverge after off bytes
			n.split(off)
			n.word = false
			n.attach(newLeaf(word[off:]))
			return true
		}
	}
}

// Has reports whether the word, case-folded, is a member.
func (d *Dict) Has(word string) bool {
	word, err := Normalize(word)
	if err != nil {
		return false
	}

	return d.has(word)
}

// has looks up an already normalized word.
func (d *Dict) has(word string) bool {
	n := &d.root

	for {
		if n.empty {
			return false
		}
		if n.word && n.label == word {
			return true
		}
		if len(n.label) >= len(word) || word[:len(n.label)] != n.label {
			return false
		}

		word = word[len(n.label):]

		if n = n.child[slot(word[0])]; n == nil {
			return false
		}
	}
}

// Len returns the number of stored words. It walks the whole trie.
func (d *Dict) Len() int {
	var count int

	d.walk(func(n *Node) {
		if n.word {
			count++
		}
	})

	return count
}

// walk visits every node in depth-first slot order without recursion.
func (d *Dict) walk(visit func(*Node)) {
	if d.root.empty {
		return
	}

	stack := []*Node{&d.root}

	for l := len(stack); l > 0; l = len(stack) {
		n := stack[l-1]
		stack = stack[:l-1]

		visit(n)

		for i := alphabetSize - 1; i >= 0; i-- {
			if c := n.child[i]; c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// Iter calls handler for every word in depth-first slot order, a word before
// the words it prefixes. The handler can stop the walk by returning false.
// Iter returns whether all words were visited.
func (d *Dict) Iter(handler func(word string) bool) bool {
	if d.root.empty {
		return true
	}

	return iterate(&d.root, nil, handler)
}

func iterate(n *Node, path []byte, handler func(string) bool) bool {
	path = append(path, n.label...)

	if n.word && !handler(string(path)) {
		return false
	}

	for _, c := range n.child {
		if c != nil && !iterate(c, path, handler) {
			return false
		}
	}

	return true
}

// Words returns every word with prefix prepended, in Iter order.
func (d *Dict) Words(prefix string) []string {
	words := make([]string, 0)

	d.Iter(func(word string) bool {
		words = append(words, prefix+word)
		return true
	})

	return words
}

// Stats describes the shape of a Dict.
type Stats struct {
	Nodes      int
	Words      int
	LabelBytes int
	MaxDepth   int
}

// Stats walks the trie and returns its shape.
func (d *Dict) Stats() Stats {
	var st Stats

	if d.root.empty {
		return st
	}

	type item struct {
		n     *Node
		depth int
	}

	stack := []item{{&d.root, 0}}

	for l := len(stack); l > 0; l = len(stack) {
		it := stack[l-1]
		stack = stack[:l-1]

		st.Nodes++
		st.LabelBytes += len(it.n.label)
		if it.n.word {
			st.Words++
		}
		if it.depth > st.MaxDepth {
			st.MaxDepth = it.depth
		}

		for _, c := range it.n.child {
			if c != nil {
				stack = append(stack, item{c, it.depth + 1})
			}
		}
	}

	return st
}

package radix

import (
	"fmt"

	"github.com/aglyzov/go-dict/contract"
)

// Check verifies the structural invariants of the whole trie without
// modifying it:
//
//   - only the root may have an empty label;
//   - a word node has a non-empty label;
//   - a non-empty node that is not a word has at least two children;
//   - every child label starts with the letter of its slot and the child
//     bitmap agrees with the slots;
//   - every stored word is represented by exactly one word node.
func (d *Dict) Check() error {
	if d.root.empty {
		if d.root.word || d.root.label != "" || d.root.bitmap != 0 || d.root.Children() != 0 {
			return fmt.Errorf("empty root holds data: label=%q word=%v bitmap=%026b",
				d.root.label, d.root.word, d.root.bitmap)
		}
		return nil
	}

	seen := make(map[string]struct{})

	return checkNode(&d.root, true, nil, seen)
}

// Valid reports whether Check finds no violation.
func (d *Dict) Valid() bool {
	return d.Check() == nil
}

func checkNode(n *Node, isRoot bool, path []byte, seen map[string]struct{}) error {
	if n.empty && !isRoot {
		return fmt.Errorf("node %q: only the root may be empty", path)
	}
	if !isRoot && n.label == "" {
		return fmt.Errorf("node under %q: empty label", path)
	}

	path = append(path, n.label...)

	for i := 0; i < len(n.label); i++ {
		if ch := n.label[i]; ch < 'a' || ch > 'z' {
			return fmt.Errorf("node %q: label has %q", path, ch)
		}
	}

	if n.word && n.label == "" {
		return fmt.Errorf("node %q: word with an empty label", path)
	}

	var present int

	for i, c := range n.child {
		has := n.bitmap&(1<<i) != 0

		if (c != nil) != has {
			return fmt.Errorf("node %q: bitmap bit %d is %v for slot holding %v", path, i, has, c != nil)
		}
		if c == nil {
			continue
		}
		present++

		if c.label == "" || slot(c.label[0]) != i {
			return fmt.Errorf("node %q: child %q in slot %q", path, c.label, byte('a'+i))
		}
	}

	if n.bitmap>>alphabetSize != 0 {
		return fmt.Errorf("node %q: bitmap %b has bits past the alphabet", path, n.bitmap)
	}
	if present != n.Children() {
		return fmt.Errorf("node %q: %d children but popcount %d", path, present, n.Children())
	}
	if !n.empty && !n.word && present < 2 {
		return fmt.Errorf("node %q: not a word and only %d children", path, present)
	}

	if n.word {
		word := string(path)
		if _, dup := seen[word]; dup {
			return fmt.Errorf("word %q is stored twice", word)
		}
		seen[word] = struct{}{}
	}

	for _, c := range n.child {
		if c == nil {
			continue
		}
		if err := checkNode(c, false, path, seen); err != nil {
			return err
		}
	}

	return nil
}

type snapshot struct {
	member bool
	size   int
}

// ContractHook returns a Hook that checks the invariants before and after
// every Add, and that the added word is a member afterwards with the size
// grown by one unless it was a member before. Violations panic with a
// *contract.Violation.
func ContractHook() Hook {
	return func(d *Dict, word string) func() {
		invariant := contract.Invariant("radix.Add", d.Check)

		prepost := contract.PrePost("radix.Add",
			func() snapshot {
				return snapshot{member: d.has(word), size: d.Len()}
			},
			func(pre, post snapshot) bool {
				if !post.member {
					return false
				}
				if pre.member {
					return post.size == pre.size
				}
				return post.size == pre.size+1
			},
		)

		return func() {
			prepost()
			invariant()
		}
	}
}

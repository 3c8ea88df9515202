/*
Package trie provides a pattern-capable trie (prefix tree) keyed on byte
sequences, used by the dictionary package to index words by their literal
spelling and by their letter-sorted anagram form.

Unlike a plain prefix trie, lookup interprets two metacharacters in the
query path:

  - '.' matches any single character (branches over every child).
  - '+' matches one-or-more repetitions of the letter already consumed to
    reach the current node (branches over children sharing that letter).

'+' is designed to be evaluated against a trie whose keys are
descending-sorted letter strings, so that every repetition of a given
letter sits in a contiguous chain of same-lettered children; "one or more
L" then becomes "walk the chain of L children, or stop here."

Each terminal path holds a list of integer payloads (WordIndex values)
rather than the words themselves, which keeps the trie serializable and
independent of how its caller stores the underlying strings.

Concurrency:
  - Add and Lookup are not safe for concurrent use with each other; callers
    build a trie once (single-threaded) and treat it as immutable
    afterwards, matching the Dictionary's own construction discipline.
*/
package trie

import "github.com/hgreenberg/sift/indexset"

// node is one letter position in the trie. letter is meaningless at the
// root, where hasLetter is false.
type node struct {
	letter    byte
	hasLetter bool
	payloads  []int
	children  []*node
}

// Trie is a pattern-capable trie over byte-sequence keys with integer
// payloads at terminal paths.
type Trie struct {
	root *node
}

// New returns an empty Trie, ready for Add calls.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Add inserts idx at the node reached by descending path, creating any
// missing intermediate children.
//
// path is an opaque key during insertion: '.' and '+' are stored as
// literal bytes, not interpreted. Callers must never place metacharacters
// in an Add path — only Lookup treats them specially. Calling Add with the
// same (path, idx) pair twice produces a duplicate payload; callers must
// avoid that themselves, the trie does not deduplicate on insert.
func (t *Trie) Add(path string, idx int) {
	t.root.add(path, idx)
}

func (n *node) add(path string, idx int) {
	if len(path) == 0 {
		n.payloads = append(n.payloads, idx)
		return
	}
	c := path[0]
	for _, child := range n.children {
		if child.hasLetter && child.letter == c {
			child.add(path[1:], idx)
			return
		}
	}
	child := &node{letter: c, hasLetter: true}
	child.add(path[1:], idx)
	n.children = append(n.children, child)
}

// Lookup walks the trie interpreting pattern's '.' and '+' metacharacters
// and returns the deduplicated set of payloads found at every path the
// pattern can match. Lookup never fails: an empty set is the only
// negative signal.
func (t *Trie) Lookup(pattern string) *indexset.Set[int] {
	out := indexset.New[int]()
	t.root.lookup(pattern, out)
	return out
}

func (n *node) lookup(pattern string, out *indexset.Set[int]) {
	if len(pattern) == 0 {
		for _, idx := range n.payloads {
			out.Add(idx)
		}
		return
	}

	switch c := pattern[0]; c {
	case '.':
		rest := pattern[1:]
		for _, child := range n.children {
			child.lookup(rest, out)
		}
	case '+':
		rest := pattern[1:]
		// Zero additional repetitions: the one repetition of the current
		// node's letter already consumed to arrive here is enough.
		n.lookup(rest, out)
		// One more repetition: descend into same-lettered children,
		// still carrying the '+' so further repetitions can follow.
		for _, child := range n.children {
			if child.hasLetter && n.hasLetter && child.letter == n.letter {
				child.lookup(pattern, out)
			}
		}
	default:
		for _, child := range n.children {
			if child.hasLetter && child.letter == c {
				child.lookup(pattern[1:], out)
				return
			}
		}
	}
}

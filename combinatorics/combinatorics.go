/*
Package combinatorics provides the pure pattern-string generators the query
engine composes with dictionary lookups: AllDeletes, AllAddedWildcards, and
AllReplacedWildcards. Each enumerates every way to choose n positions out of
a string (for deletion, insertion, or substitution) and renders the result
as a pattern string.

All three are built on top of a shared index-combination backtracking walk
that pushes candidate positions onto the stack package's int Stack as it
descends and pops them off on the way back out, rather than threading a
growable slice through recursive calls by value.

Generation order is lexicographic ascending by index tuple: combinations
are produced the way nested increasing loops would produce them (first
index varies slowest). Callers that need set semantics (every caller here
does) are unaffected by the exact order.
*/
package combinatorics

import "github.com/hgreenberg/sift/stack"

// combinations returns every k-combination of the indices [0, n), each as
// an ascending []int, in lexicographic order by index tuple.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var result [][]int
	if k == 0 {
		return [][]int{{}}
	}

	s := stack.NewStack()
	var backtrack func(start int)
	backtrack = func(start int) {
		if s.Size() == k {
			combo := make([]int, k)
			for i := 0; i < k; i++ {
				// ValueAt(0) is the top (most recently pushed, i.e. last
				// index); walk down to reassemble ascending order.
				v, _ := s.ValueAt(k - 1 - i)
				combo[i] = v
			}
			result = append(result, combo)
			return
		}
		for i := start; i < n; i++ {
			s.Push(i)
			backtrack(i + 1)
			_, _ = s.Pop()
		}
	}
	backtrack(0)
	return result
}

// AllDeletes enumerates every length-(len(s)-n) string obtained by deleting
// exactly n positions from s, preserving the relative order of the
// remaining characters. If n > len(s) the result is empty; if n == 0 the
// result is []string{s}.
func AllDeletes(s string, n int) []string {
	l := len(s)
	if n > l {
		return nil
	}
	if n == 0 {
		return []string{s}
	}

	results := make([]string, 0, len(combinations(l, n)))
	for _, combo := range combinations(l, n) {
		deleted := make(map[int]bool, len(combo))
		for _, idx := range combo {
			deleted[idx] = true
		}
		buf := make([]byte, 0, l-n)
		for i := 0; i < l; i++ {
			if !deleted[i] {
				buf = append(buf, s[i])
			}
		}
		results = append(results, string(buf))
	}
	return results
}

// AllAddedWildcards enumerates every length-(len(s)+n) string that contains
// the characters of s in order, with the remaining n positions filled by
// '.'.
func AllAddedWildcards(s string, n int) []string {
	l := len(s)
	total := l + n
	results := make([]string, 0, len(combinations(total, l)))
	for _, combo := range combinations(total, l) {
		buf := make([]byte, total)
		for i := range buf {
			buf[i] = '.'
		}
		for letterIdx, pos := range combo {
			buf[pos] = s[letterIdx]
		}
		results = append(results, string(buf))
	}
	return results
}

// AllReplacedWildcards enumerates every length-len(s) string obtained by
// replacing exactly n positions of s with '.'.
func AllReplacedWildcards(s string, n int) []string {
	l := len(s)
	if n > l {
		return nil
	}

	results := make([]string, 0, len(combinations(l, n)))
	for _, combo := range combinations(l, n) {
		replaced := make(map[int]bool, len(combo))
		for _, idx := range combo {
			replaced[idx] = true
		}
		buf := make([]byte, l)
		for i := 0; i < l; i++ {
			if replaced[i] {
				buf[i] = '.'
			} else {
				buf[i] = s[i]
			}
		}
		results = append(results, string(buf))
	}
	return results
}

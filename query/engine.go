package query

import (
	"regexp"
	"strings"

	"github.com/hgreenberg/sift/combinatorics"
	"github.com/hgreenberg/sift/dictionary"
	"github.com/hgreenberg/sift/indexset"
)

// Engine holds a Dictionary by reference and dispatches each AST variant
// to the trie lookups and combinator fan-out that implement it.
type Engine struct {
	dict *dictionary.Dictionary
}

// NewEngine returns an Engine backed by dict.
func NewEngine(dict *dictionary.Dictionary) *Engine {
	return &Engine{dict: dict}
}

// Run executes ast and returns the matching dictionary words. Run never
// fails: every AST variant either reduces to a total trie/combinator
// operation, or (KindRegex) was already validated at construction time.
func (e *Engine) Run(ast AST) []dictionary.Word {
	switch ast.Kind {
	case KindRegex:
		return e.regex(ast.regex)
	case KindAnagram:
		return e.anagram(ast.Letters)
	case KindBank:
		return e.bank(ast.Letters)
	case KindTransposeDelete:
		return e.transposeDelete(ast.Letters, ast.N)
	case KindTransposeAdd:
		return e.transposeAdd(ast.Letters, ast.N)
	case KindDelete:
		return e.delete(ast.Letters, ast.N)
	case KindAdd:
		return e.add(ast.Letters, ast.N)
	case KindChange:
		return e.change(ast.Letters, ast.N)
	case KindLength:
		return e.dict.WordsOfLength(ast.N)
	default:
		return nil
	}
}

func (e *Engine) regex(re *regexp.Regexp) []dictionary.Word {
	var out []dictionary.Word
	for _, w := range e.dict.Words() {
		if re.MatchString(string(w)) {
			out = append(out, w)
		}
	}
	return out
}

func (e *Engine) anagram(letters string) []dictionary.Word {
	return dropSelf(e.dict.LookupAnagram(letters, true), letters)
}

func (e *Engine) bank(letters string) []dictionary.Word {
	pattern := bankPattern(letters)
	return e.dict.LookupAnagram(pattern, false)
}

// bankPattern builds "c1+c2+...ck+" where c1..ck are the distinct sorted
// letters of letters in descending order.
func bankPattern(letters string) string {
	sorted := dictionary.SortDesc(letters)
	var b strings.Builder
	var prev byte
	hasPrev := false
	for i := 0; i < len(sorted); i++ {
		c := sorted[i]
		if hasPrev && c == prev {
			continue
		}
		b.WriteByte(c)
		b.WriteByte('+')
		prev = c
		hasPrev = true
	}
	return b.String()
}

func (e *Engine) transposeDelete(letters string, n int) []dictionary.Word {
	if n > len(letters) {
		return nil
	}
	acc := indexset.New[dictionary.Word]()
	for _, d := range combinatorics.AllDeletes(letters, n) {
		acc.Union(indexset.FromSlice(e.dict.LookupAnagram(d, true)))
	}
	return dropSelf(acc.Items(), letters)
}

func (e *Engine) delete(letters string, n int) []dictionary.Word {
	if n > len(letters) {
		return nil
	}
	acc := indexset.New[dictionary.Word]()
	for _, d := range combinatorics.AllDeletes(letters, n) {
		acc.Union(indexset.FromSlice(e.dict.Lookup(d)))
	}
	return acc.Items()
}

func (e *Engine) transposeAdd(letters string, n int) []dictionary.Word {
	sorted := dictionary.SortDesc(letters)
	acc := indexset.New[dictionary.Word]()
	for _, p := range combinatorics.AllAddedWildcards(sorted, n) {
		acc.Union(indexset.FromSlice(e.dict.LookupAnagram(p, false)))
	}
	return dropSelf(acc.Items(), letters)
}

func (e *Engine) add(letters string, n int) []dictionary.Word {
	acc := indexset.New[dictionary.Word]()
	for _, p := range combinatorics.AllAddedWildcards(letters, n) {
		acc.Union(indexset.FromSlice(e.dict.Lookup(p)))
	}
	return acc.Items()
}

func (e *Engine) change(letters string, n int) []dictionary.Word {
	if n > len(letters) {
		return nil
	}
	acc := indexset.New[dictionary.Word]()
	for _, p := range combinatorics.AllReplacedWildcards(letters, n) {
		acc.Union(indexset.FromSlice(e.dict.Lookup(p)))
	}
	return dropSelf(acc.Items(), letters)
}

func dropSelf(words []dictionary.Word, self string) []dictionary.Word {
	out := make([]dictionary.Word, 0, len(words))
	for _, w := range words {
		if string(w) != self {
			out = append(out, w)
		}
	}
	return out
}

/*
Package dictionary normalizes a raw word list into an immutable, indexed
Dictionary: every surviving word is assigned a stable WordIndex and inserted
into two PatternTries — one keyed on the word's literal spelling, one keyed
on its letters sorted into descending code-point order (its "anagram key").
The query engine never touches a trie directly; it always goes through
Dictionary.Lookup / Dictionary.LookupAnagram.

A Dictionary also keeps a length index (a red-black TreeMap from word
length to the WordIndex values of that length, adapted from the teacher's
treemap package) supporting length-constrained lookups, a feature this
domain commonly needs that the bare query algebra does not otherwise
express.

Concurrency:
  - Build/NewFromReader run single-threaded. Once returned, a Dictionary is
    never mutated again; concurrent readers are safe by inspection.
*/
package dictionary

import (
	"bufio"
	"compress/flate"
	"encoding/gob"
	"errors"
	"io"
	"sort"

	"github.com/hgreenberg/sift/indexset"
	"github.com/hgreenberg/sift/treemap"
	"github.com/hgreenberg/sift/trie"
)

// Word is a normalized dictionary entry: lowercase ASCII alphabetic, length
// at least 1.
type Word string

// WordIndex is a stable, non-negative identifier for a Word within a
// Dictionary, equal to its position in the Dictionary's word sequence.
type WordIndex int

var (
	// ErrFileIO is returned when reading a word list or cache file fails.
	ErrFileIO = errors.New("dictionary: file I/O error")
	// ErrSerialization is returned when writing a cache fails.
	ErrSerialization = errors.New("dictionary: serialization error")
	// ErrDeserialization is returned when a cache file is malformed.
	ErrDeserialization = errors.New("dictionary: deserialization error")
)

// Dictionary owns a normalized, indexed word list and is immutable once
// built.
type Dictionary struct {
	words       []Word
	wordTrie    *trie.Trie
	anagramTrie *trie.Trie
	lengthIndex *treemap.TreeMap[int, []WordIndex]
}

// Stats summarizes a Dictionary for introspection and diagnostics.
type Stats struct {
	WordCount       int
	LengthHistogram map[int]int
}

// SortDesc returns word's characters rearranged in descending code-point
// order — the canonical anagram key, also used by the query package to
// build Bank patterns and TransposeAdd's wildcard-interleaved keys.
func SortDesc(word string) string {
	b := []byte(word)
	sort.Slice(b, func(i, j int) bool { return b[i] > b[j] })
	return string(b)
}

func isNormalizable(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			continue
		}
		return false
	}
	return true
}

func normalize(word string) (string, bool) {
	if !isNormalizable(word) {
		return "", false
	}
	b := []byte(word)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b), true
}

// Build normalizes unfilteredWords (ASCII-alphabetic filter, lowercase
// fold, order-preserving) and constructs a Dictionary over the survivors.
// Duplicate words are retained with distinct indices; no deduplication is
// performed.
func Build(unfilteredWords []string) *Dictionary {
	words := make([]Word, 0, len(unfilteredWords))
	for _, raw := range unfilteredWords {
		if normalized, ok := normalize(raw); ok {
			words = append(words, Word(normalized))
		}
	}

	wordTrie := trie.New()
	anagramTrie := trie.New()
	lengthIndex := treemap.NewTreeMap[int, []WordIndex]()
	for i, w := range words {
		idx := WordIndex(i)
		wordTrie.Add(string(w), int(idx))
		anagramTrie.Add(SortDesc(string(w)), int(idx))

		bucket, _ := lengthIndex.Get(len(w))
		lengthIndex.Put(len(w), append(bucket, idx))
	}

	return &Dictionary{
		words:       words,
		wordTrie:    wordTrie,
		anagramTrie: anagramTrie,
		lengthIndex: lengthIndex,
	}
}

// NewFromReader reads newline-separated words from r and builds a
// Dictionary over them, as Build.
func NewFromReader(r io.Reader) (*Dictionary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrFileIO
	}
	return Build(words), nil
}

// Lookup queries the word trie with word as a pattern (so '.' and '+' in
// word are honored) and resolves the matching indices to Words.
func (d *Dictionary) Lookup(word string) []Word {
	return d.resolve(d.wordTrie.Lookup(word))
}

// LookupAnagram queries the anagram trie. If sortKey is true, key is
// sorted into descending order before the lookup; otherwise key is used
// verbatim, for callers that have already placed metacharacters into a
// canonically-sorted string whose ordering must not be disturbed.
func (d *Dictionary) LookupAnagram(key string, sortKey bool) []Word {
	if sortKey {
		key = SortDesc(key)
	}
	return d.resolve(d.anagramTrie.Lookup(key))
}

// WordsOfLength returns every Word of exactly n characters, via the length
// index.
func (d *Dictionary) WordsOfLength(n int) []Word {
	indices, ok := d.lengthIndex.Get(n)
	if !ok {
		return nil
	}
	out := make([]Word, len(indices))
	for i, idx := range indices {
		out[i] = d.words[idx]
	}
	return out
}

// Words returns every Word in the Dictionary, in index order.
func (d *Dictionary) Words() []Word {
	out := make([]Word, len(d.words))
	copy(out, d.words)
	return out
}

// Stats reports the word count and a length histogram.
func (d *Dictionary) Stats() Stats {
	hist := make(map[int]int)
	for _, k := range d.lengthIndex.Keys() {
		bucket, _ := d.lengthIndex.Get(k)
		hist[k] = len(bucket)
	}
	return Stats{WordCount: len(d.words), LengthHistogram: hist}
}

func (d *Dictionary) resolve(indices *indexset.Set[int]) []Word {
	items := indices.Items()
	out := make([]Word, 0, len(items))
	for _, idx := range items {
		out = append(out, d.words[idx])
	}
	return out
}

// cachePayload is the gob-serializable snapshot a cache file stores. Only
// the normalized word list is persisted: both tries and the length index
// are pure functions of that list under Dictionary's fixed construction
// rules, so storing them again would be redundant bytes that Build
// trivially reproduces on load.
type cachePayload struct {
	Words []string
}

// WriteCache serializes d to w as a gob-encoded word list wrapped in a
// DEFLATE stream.
func (d *Dictionary) WriteCache(w io.Writer) error {
	flateWriter, err := flate.NewWriter(w, flate.BestCompression)
	if err != nil {
		return ErrSerialization
	}
	payload := cachePayload{Words: make([]string, len(d.words))}
	for i, word := range d.words {
		payload.Words[i] = string(word)
	}
	if err := gob.NewEncoder(flateWriter).Encode(payload); err != nil {
		return ErrSerialization
	}
	if err := flateWriter.Close(); err != nil {
		return ErrSerialization
	}
	return nil
}

// ReadCache deserializes a Dictionary previously written with WriteCache.
func ReadCache(r io.Reader) (*Dictionary, error) {
	flateReader := flate.NewReader(r)
	defer flateReader.Close()

	var payload cachePayload
	if err := gob.NewDecoder(flateReader).Decode(&payload); err != nil {
		return nil, ErrDeserialization
	}
	return Build(payload.Words), nil
}

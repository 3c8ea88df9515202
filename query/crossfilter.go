package query

import "github.com/hgreenberg/sift/deque"

// Pair is one (input, match) result of a cross-filter: match is a word
// produced by running ast, with its '%' placeholders substituted with
// input, against the engine's dictionary.
type Pair struct {
	Input string
	Match string
}

// CrossFilter runs ast once per entry of inputWords, substituting each
// input for '%' in ast before executing it, and returns every resulting
// (input, match) pair in input order. Inputs that fail substitution (an
// invalid regex after substitution) or that yield no matches contribute no
// pairs.
//
// Results are buffered through a Deque, matching the teacher's producer/
// consumer idiom, and drained FIFO into the returned slice once every input
// has run; no live pipe is involved.
func CrossFilter(e *Engine, ast AST, inputWords []string) []Pair {
	buffer := deque.NewDeque[Pair]()
	for _, input := range inputWords {
		substituted, err := Substitute(ast, input)
		if err != nil {
			continue
		}
		for _, match := range e.Run(substituted) {
			buffer.OfferLast(Pair{Input: input, Match: string(match)})
		}
	}

	out := make([]Pair, 0, buffer.Size())
	for !buffer.IsEmpty() {
		pair, err := buffer.PollFirst()
		if err != nil {
			break
		}
		out = append(out, pair)
	}
	return out
}

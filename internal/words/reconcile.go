package words

import "strings"

const DefaultDelimiter = ','

// Tokenize splits every line on delimiter and flattens the pieces into one sequence.
// Duplicates and empty tokens are kept; an empty line yields a single empty token.
func Tokenize(lines []string, delimiter rune) []string {
	sep := string(delimiter)
	tokens := make([]string, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, strings.Split(line, sep)...)
	}
	return tokens
}

// WithoutEmpty returns tokens with empty strings removed.
func WithoutEmpty(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Reconcile computes the word set for fresh tokens starting from current.
// Words of current that are still present keep their relative order;
// tokens that are new are appended in order of first appearance.
func Reconcile(current WordSet, fresh []string) WordSet {
	if len(fresh) == 0 {
		return Empty
	}

	present := make(map[string]struct{}, len(fresh))
	for _, t := range fresh {
		present[t] = struct{}{}
	}

	next := WordSet{
		words: make([]string, 0, len(present)),
		index: make(map[string]struct{}, len(present)),
	}
	for _, w := range current.words {
		if _, ok := present[w]; ok {
			next.add(w)
		}
	}
	for _, t := range fresh {
		next.add(t)
	}
	return next
}

package words

import "strings"

// WordSet is an immutable ordered collection of unique words.
// The zero value is an empty set.
type WordSet struct {
	words []string
	index map[string]struct{}
}

// Empty is the empty WordSet.
var Empty = WordSet{}

// NewWordSet builds a WordSet from words, keeping the first occurrence of each duplicate.
func NewWordSet(words ...string) WordSet {
	if len(words) == 0 {
		return Empty
	}
	ws := WordSet{
		words: make([]string, 0, len(words)),
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		ws.add(w)
	}
	return ws
}

// add is only used while a set is being built and before it is published.
func (ws *WordSet) add(word string) {
	if _, ok := ws.index[word]; ok {
		return
	}
	ws.index[word] = struct{}{}
	ws.words = append(ws.words, word)
}

func (ws WordSet) Len() int {
	return len(ws.words)
}

func (ws WordSet) IsEmpty() bool {
	return len(ws.words) == 0
}

func (ws WordSet) Contains(word string) bool {
	_, ok := ws.index[word]
	return ok
}

// Words returns a copy of the words in set order.
func (ws WordSet) Words() []string {
	out := make([]string, len(ws.words))
	copy(out, ws.words)
	return out
}

// Equal reports whether both sets hold the same words in the same order.
func (ws WordSet) Equal(other WordSet) bool {
	if len(ws.words) != len(other.words) {
		return false
	}
	for i := range ws.words {
		if ws.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

func (ws WordSet) String() string {
	return "[" + strings.Join(ws.words, " ") + "]"
}

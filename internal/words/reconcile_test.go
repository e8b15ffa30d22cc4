package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		delimiter rune
		expected  []string
	}{
		{
			name:      "single line",
			lines:     []string{"apple,banana"},
			delimiter: ',',
			expected:  []string{"apple", "banana"},
		},
		{
			name:      "lines are flattened in order",
			lines:     []string{"a,b", "c", "b,a"},
			delimiter: ',',
			expected:  []string{"a", "b", "c", "b", "a"},
		},
		{
			name:      "empty tokens are kept",
			lines:     []string{"a,,b,"},
			delimiter: ',',
			expected:  []string{"a", "", "b", ""},
		},
		{
			name:      "empty line yields one empty token",
			lines:     []string{""},
			delimiter: ',',
			expected:  []string{""},
		},
		{
			name:      "no lines",
			lines:     nil,
			delimiter: ',',
			expected:  []string{},
		},
		{
			name:      "custom delimiter",
			lines:     []string{"a;b,c"},
			delimiter: ';',
			expected:  []string{"a", "b,c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.lines, tt.delimiter))
		})
	}
}

func TestWithoutEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, WithoutEmpty([]string{"", "a", "", "b", ""}))
	assert.Empty(t, WithoutEmpty([]string{"", ""}))
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		current  WordSet
		fresh    []string
		expected []string
	}{
		{
			name:     "first content",
			current:  Empty,
			fresh:    []string{"apple", "banana"},
			expected: []string{"apple", "banana"},
		},
		{
			name:     "removed word is pruned and new word appended",
			current:  NewWordSet("apple", "banana"),
			fresh:    []string{"banana", "cherry"},
			expected: []string{"banana", "cherry"},
		},
		{
			name:     "empty content empties the set",
			current:  NewWordSet("banana", "cherry"),
			fresh:    nil,
			expected: []string{},
		},
		{
			name:     "duplicates are absorbed",
			current:  NewWordSet("a"),
			fresh:    []string{"b", "a", "b", "c", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "retained words keep their old order",
			current:  NewWordSet("x", "y", "z"),
			fresh:    []string{"z", "new", "y", "x"},
			expected: []string{"x", "y", "z", "new"},
		},
		{
			name:     "empty string is an ordinary word",
			current:  NewWordSet("a"),
			fresh:    []string{"a", "", "b"},
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile(tt.current, tt.fresh)
			assert.Equal(t, tt.expected, result.Words())
		})
	}
}

func TestReconcile_NoOpIsIdempotent(t *testing.T) {
	current := NewWordSet("apple", "banana", "cherry")

	result := Reconcile(current, current.Words())

	assert.True(t, result.Equal(current))
}

func TestReconcile_MembershipMatchesTokens(t *testing.T) {
	inputs := [][]string{
		{"a", "b", "a"},
		{"", "x", ""},
		{"q"},
		{"b", "q", "b", "z", ""},
	}

	current := Empty
	for _, fresh := range inputs {
		current = Reconcile(current, fresh)

		expected := make(map[string]struct{})
		for _, tok := range fresh {
			expected[tok] = struct{}{}
		}
		assert.Equal(t, len(expected), current.Len())
		for tok := range expected {
			assert.True(t, current.Contains(tok), "missing %q", tok)
		}
	}
}

func TestReconcile_DoesNotMutateCurrent(t *testing.T) {
	current := NewWordSet("apple", "banana")

	_ = Reconcile(current, []string{"cherry"})

	assert.Equal(t, []string{"apple", "banana"}, current.Words())
	assert.True(t, current.Contains("apple"))
	assert.False(t, current.Contains("cherry"))
}

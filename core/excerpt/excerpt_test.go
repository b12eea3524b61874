package excerpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultWords, New(0).Words)
	assert.Equal(t, DefaultWords, New(-3).Words)
	assert.Equal(t, 5, New(5).Words)
}

func TestChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    int
		input    string
		expected []string
	}{
		{"empty", 3, "", nil},
		{"whitespace only", 3, " \n\t ", nil},
		{"exact", 2, "a b", []string{"a b"}},
		{"split", 2, "a b c d e", []string{"a b", "c d", "e"}},
		{"collapses whitespace", 3, "a\n\nb \t c", []string{"a b c"}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, New(testCase.words).Chunks(testCase.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    int
		input    string
		expected string
	}{
		{"empty", 3, "", ""},
		{"short text kept", 5, "Hello there, world.", "Hello there, world."},
		{"cut with ellipsis", 3, "one two three four", "one two three…"},
		{"trailing punctuation dropped", 2, "one two, three", "one two…"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, New(testCase.words).Excerpt(testCase.input))
		})
	}
}

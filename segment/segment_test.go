package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	s := NewSegmenter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace runs",
			in:   "one\n\ntwo\t\tthree   four",
			want: "one two three four",
		},
		{
			name: "normalizes ellipsis",
			in:   "wait… what",
			want: "wait... what",
		},
		{
			name: "trims",
			in:   "  padded  ",
			want: "padded",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.in))
		})
	}
}

func TestSentences(t *testing.T) {
	s := NewSegmenter()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic terminators",
			in:   "First sentence. Second one! Third?",
			want: []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name: "trailing fragment without terminator is kept",
			in:   "Complete sentence. trailing fragment",
			want: []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name: "single sentence",
			in:   "Only one sentence here.",
			want: []string{"Only one sentence here."},
		},
		{
			name: "spans newlines",
			in:   "Broken\nacross lines. Next.",
			want: []string{"Broken across lines.", "Next."},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "   \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sentences(tt.in))
		})
	}
}

func TestSentences_NoWordsLost(t *testing.T) {
	s := NewSegmenter()
	text := "One two three. Four five! Six seven? eight nine ten"

	joined := strings.Join(s.Sentences(text), " ")
	assert.Equal(t, s.Words(text), strings.Fields(joined))
}

func TestWords(t *testing.T) {
	s := NewSegmenter()

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, s.Words(" alpha\nbeta\tgamma "))
	assert.Empty(t, s.Words("  \n "))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 0, WordCount(""))
}

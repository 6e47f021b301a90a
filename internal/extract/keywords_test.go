package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
)

func tok(text, lemma, pos string) nlp.Token {
	return nlp.Token{Text: text, Lemma: lemma, POS: pos}
}

func TestSelectKeywords(t *testing.T) {
	tests := []struct {
		name   string
		tokens []nlp.Token
		want   []string
	}{
		{
			name: "noun verb and propn qualify",
			tokens: []nlp.Token{
				tok("Sarah", "Sarah", "PROPN"),
				tok("should", "should", "AUX"),
				tok("review", "review", "VERB"),
				tok("the", "the", "DET"),
				tok("design", "design", "NOUN"),
			},
			want: []string{"sarah", "review", "design"},
		},
		{
			name: "short surface text excluded",
			tokens: []nlp.Token{
				tok("fix", "fix", "VERB"),
				tok("bug", "bug", "NOUN"),
				tok("login", "login", "NOUN"),
			},
			want: []string{"login"},
		},
		{
			name: "length check uses surface text not lemma",
			tokens: []nlp.Token{
				tok("runs", "run", "VERB"),
			},
			want: []string{"run"},
		},
		{
			name: "truncates to first six in sentence order",
			tokens: []nlp.Token{
				tok("alpha", "alpha", "NOUN"),
				tok("bravo", "bravo", "NOUN"),
				tok("charlie", "charlie", "NOUN"),
				tok("delta", "delta", "NOUN"),
				tok("echoes", "echo", "NOUN"),
				tok("foxtrot", "foxtrot", "NOUN"),
				tok("golfing", "golf", "NOUN"),
			},
			want: []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"},
		},
		{
			name: "duplicate lemmas allowed",
			tokens: []nlp.Token{
				tok("review", "review", "VERB"),
				tok("reviews", "review", "NOUN"),
			},
			want: []string{"review", "review"},
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectKeywords(tt.tokens, 6, 3)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 6)
		})
	}
}

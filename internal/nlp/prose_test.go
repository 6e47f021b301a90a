package nlp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversalPOS(t *testing.T) {
	tests := []struct {
		penn string
		want string
	}{
		{"NN", "NOUN"},
		{"NNS", "NOUN"},
		{"NNP", "PROPN"},
		{"NNPS", "PROPN"},
		{"VB", "VERB"},
		{"VBD", "VERB"},
		{"VBZ", "VERB"},
		{"MD", "AUX"},
		{"JJ", "ADJ"},
		{"RB", "ADV"},
		{"DT", "DET"},
		{".", "PUNCT"},
		{"FW", "X"},
		{"", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.penn, func(t *testing.T) {
			assert.Equal(t, tt.want, universalPOS(tt.penn))
		})
	}
}

func TestProsePipeline(t *testing.T) {
	p, err := NewProsePipeline()
	require.NoError(t, err)

	t.Run("segments and annotates sentences", func(t *testing.T) {
		doc, err := p.Annotate("John must fix the login bug by tomorrow. Sarah should review the design doc.")
		require.NoError(t, err)
		require.Len(t, doc.Sentences, 2)

		first := doc.Sentences[0]
		assert.Equal(t, "John must fix the login bug by tomorrow.", first.Text)
		assert.NotEmpty(t, first.Tokens)

		// Every token carries a lemma and a POS category.
		for _, tok := range first.Tokens {
			assert.NotEmpty(t, tok.Lemma, "token %q has no lemma", tok.Text)
			assert.NotEmpty(t, tok.POS, "token %q has no POS", tok.Text)
		}
	})

	t.Run("lemmatizes inflected verbs", func(t *testing.T) {
		assert.Equal(t, "fix", p.lemma("fixes"))
		assert.Equal(t, "review", p.lemma("reviewed"))
	})

	t.Run("falls back to surface form for unknown words", func(t *testing.T) {
		assert.Equal(t, "frobnicator", p.lemma("frobnicator"))
	})
}

func TestStaticPipeline(t *testing.T) {
	t.Run("returns configured document", func(t *testing.T) {
		doc := &Document{Sentences: []Sentence{{Text: "hello"}}}
		p := &StaticPipeline{Doc: doc}

		got, err := p.Annotate("anything")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("returns configured error", func(t *testing.T) {
		p := &StaticPipeline{Err: ErrModelUnavailable}

		_, err := p.Annotate("anything")
		assert.True(t, errors.Is(err, ErrModelUnavailable))
	})
}

// Package nlp wraps the linguistic pipeline behind the Pipeline
// interface. It produces annotated sentences (entities, per-token
// lemma and part-of-speech) that the extraction engine consumes as
// ground truth; nothing downstream re-segments or re-tags text.
package nlp

import "errors"

// ErrModelUnavailable indicates the linguistic models could not be
// initialized. This is fatal at startup; the daemon must not serve
// requests in this state.
var ErrModelUnavailable = errors.New("nlp: linguistic model unavailable")

// Entity is a named-entity mention with its category label.
// The extraction engine only interprets the "PERSON" label; all other
// categories are passed through unused.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Token is a single token with its lemma and universal part-of-speech
// category (NOUN, VERB, PROPN, ...).
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
}

// Sentence is one sentence plus the linguistic metadata the pipeline
// attached to it. Immutable once produced.
type Sentence struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
	Tokens   []Token  `json:"tokens"`
}

// Document holds the per-sentence annotations for a full text plus the
// document-level entity mentions (used for the participants set).
type Document struct {
	Sentences []Sentence `json:"sentences"`
	Entities  []Entity   `json:"entities"`
}

// PersonLabel is the entity category identifying human names.
const PersonLabel = "PERSON"

// Pipeline performs sentence segmentation, tokenization, lemmatization,
// part-of-speech tagging, and named-entity recognition.
//
// Implementations are read-only after construction and safe for
// concurrent use by multiple in-flight extractions.
type Pipeline interface {
	// Annotate analyzes raw text and returns its annotated sentences
	// in document order.
	Annotate(text string) (*Document, error)
}

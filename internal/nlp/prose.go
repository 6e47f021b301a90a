package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// ProsePipeline implements Pipeline on top of prose (segmentation,
// tagging, NER) and golem (lemmatization). English only.
type ProsePipeline struct {
	lemmatizer *golem.Lemmatizer
}

// NewProsePipeline initializes the linguistic models. Returns
// ErrModelUnavailable if either model cannot be loaded; callers must
// treat that as fatal before serving requests.
func NewProsePipeline() (*ProsePipeline, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: loading lemmatizer dictionary: %v", ErrModelUnavailable, err)
	}

	// Probe annotation so model-load failures surface at startup
	// rather than on the first request.
	if _, err := prose.NewDocument("startup probe sentence."); err != nil {
		return nil, fmt.Errorf("%w: loading tagger model: %v", ErrModelUnavailable, err)
	}

	return &ProsePipeline{lemmatizer: lemmatizer}, nil
}

// Annotate implements Pipeline.
func (p *ProsePipeline) Annotate(text string) (*Document, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotating document: %w", err)
	}

	out := &Document{}
	for _, ent := range doc.Entities() {
		out.Entities = append(out.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	for _, sent := range doc.Sentences() {
		annotated, err := p.annotateSentence(sent.Text)
		if err != nil {
			return nil, err
		}
		out.Sentences = append(out.Sentences, annotated)
	}

	return out, nil
}

// annotateSentence re-runs tagging and NER on a single sentence so the
// tokens and entities are scoped to it. Segmentation is disabled; the
// document-level pass already decided the boundaries.
func (p *ProsePipeline) annotateSentence(text string) (Sentence, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return Sentence{}, fmt.Errorf("annotating sentence: %w", err)
	}

	s := Sentence{Text: text}
	for _, ent := range doc.Entities() {
		s.Entities = append(s.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	for _, tok := range doc.Tokens() {
		s.Tokens = append(s.Tokens, Token{
			Text:  tok.Text,
			Lemma: p.lemma(tok.Text),
			POS:   universalPOS(tok.Tag),
		})
	}
	return s, nil
}

// lemma returns the dictionary lemma for a word, falling back to the
// surface form when the word is not in the dictionary.
func (p *ProsePipeline) lemma(word string) string {
	if p.lemmatizer.InDict(word) {
		return p.lemmatizer.Lemma(word)
	}
	if lower := strings.ToLower(word); p.lemmatizer.InDict(lower) {
		return p.lemmatizer.Lemma(lower)
	}
	return word
}

// universalPOS maps Penn Treebank tags (what prose emits) to universal
// part-of-speech categories. The engine only branches on NOUN, VERB,
// and PROPN; the remaining mappings keep the annotation readable.
func universalPOS(pennTag string) string {
	switch pennTag {
	case "NN", "NNS":
		return "NOUN"
	case "NNP", "NNPS":
		return "PROPN"
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return "VERB"
	case "MD":
		return "AUX"
	case "JJ", "JJR", "JJS":
		return "ADJ"
	case "RB", "RBR", "RBS":
		return "ADV"
	case "PRP", "PRP$", "WP", "WP$":
		return "PRON"
	case "DT", "PDT", "WDT":
		return "DET"
	case "IN":
		return "ADP"
	case "CC":
		return "CCONJ"
	case "CD":
		return "NUM"
	case "UH":
		return "INTJ"
	case ".", ",", ":", "(", ")", "``", "''", "#", "$":
		return "PUNCT"
	default:
		return "X"
	}
}

var _ Pipeline = (*ProsePipeline)(nil)

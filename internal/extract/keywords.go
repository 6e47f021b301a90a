package extract

import (
	"strings"

	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
)

// keywordPOS are the part-of-speech categories whose tokens qualify as
// topical keywords.
var keywordPOS = map[string]struct{}{
	"NOUN":  {},
	"VERB":  {},
	"PROPN": {},
}

// SelectKeywords returns the lower-cased lemmas of the first maxKeywords
// qualifying tokens, in sentence order. A token qualifies when its POS
// is NOUN, VERB, or PROPN and its surface text is longer than minLen
// characters. Pure first-occurrence truncation, no salience weighting.
func SelectKeywords(tokens []nlp.Token, maxKeywords, minLen int) []string {
	var keywords []string
	for _, tok := range tokens {
		if len(keywords) >= maxKeywords {
			break
		}
		if _, ok := keywordPOS[tok.POS]; !ok {
			continue
		}
		if len(tok.Text) <= minLen {
			continue
		}
		keywords = append(keywords, strings.ToLower(tok.Lemma))
	}
	return keywords
}

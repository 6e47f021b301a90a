package extract

import (
	"math"
	"strings"

	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
)

// Confidence scoring weights. Additive, starting from the base; capped
// at 1.0 and rounded to 2 decimals. Hand-tuned, not calibrated.
const (
	baseConfidence    = 0.45
	assigneeBonus     = 0.20
	dueDateBonus      = 0.15
	keywordBonus      = 0.15
	keywordBonusFloor = 3 // bonus applies when keyword count exceeds this
)

// Classifier decides whether an annotated sentence denotes a task and,
// if so, assembles the task record. Stateless after construction and
// safe for concurrent use.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier, filling zero-valued config fields
// with the production defaults.
func NewClassifier(cfg Config) *Classifier {
	if cfg.MinSentenceLength == 0 {
		cfg.MinSentenceLength = 8
	}
	if cfg.MaxKeywords == 0 {
		cfg.MaxKeywords = 6
	}
	if cfg.MinKeywordTokenLength == 0 {
		cfg.MinKeywordTokenLength = 3
	}
	if len(cfg.ActionKeywords) == 0 {
		cfg.ActionKeywords = DefaultActionKeywords()
	}
	return &Classifier{config: cfg}
}

// ClassifySentence returns the task derived from a sentence, or false
// when the sentence is rejected. Rejection gates, in order: trimmed
// length below the minimum, then absence of every action keyword.
func (c *Classifier) ClassifySentence(sentence nlp.Sentence) (Task, bool) {
	title := strings.TrimSpace(sentence.Text)
	if len(title) < c.config.MinSentenceLength {
		return Task{}, false
	}

	lower := strings.ToLower(title)
	if !c.containsActionKeyword(lower) {
		return Task{}, false
	}

	assignee := firstPerson(sentence.Entities)

	var dueDate string
	if dates := ExtractDates(title); len(dates) > 0 {
		dueDate = dates[0]
	}

	keywords := SelectKeywords(sentence.Tokens, c.config.MaxKeywords, c.config.MinKeywordTokenLength)

	return Task{
		Title:      title,
		Assignee:   assignee,
		Priority:   ClassifyPriority(title),
		DueDate:    dueDate,
		Keywords:   keywords,
		Confidence: score(assignee, dueDate, len(keywords)),
	}, true
}

// containsActionKeyword reports whether any action keyword occurs as a
// literal substring of the lower-cased sentence.
func (c *Classifier) containsActionKeyword(lower string) bool {
	for _, keyword := range c.config.ActionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// firstPerson returns the text of the first PERSON entity in pipeline
// order, or the absent marker. Entity quality is the pipeline's
// responsibility; misattributed entities pass through unchanged.
func firstPerson(entities []nlp.Entity) string {
	for _, ent := range entities {
		if ent.Label == nlp.PersonLabel {
			return ent.Text
		}
	}
	return Unassigned
}

// score computes the additive confidence heuristic.
func score(assignee, dueDate string, keywordCount int) float64 {
	confidence := baseConfidence
	if assignee != Unassigned {
		confidence += assigneeBonus
	}
	if dueDate != "" {
		confidence += dueDateBonus
	}
	if keywordCount > keywordBonusFloor {
		confidence += keywordBonus
	}
	return math.Round(math.Min(confidence, 1.0)*100) / 100
}

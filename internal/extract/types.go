// Package extract implements the rule-based task-extraction engine.
// It turns annotated meeting-note sentences into structured action
// items with an inferred assignee, priority, due date, keywords, and a
// heuristic confidence score.
package extract

// Priority is the urgency level assigned to a task.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Unassigned is the absent-assignee marker used when no PERSON entity
// appears in a task's sentence.
const Unassigned = "Unassigned"

// Task is one extracted action item. Immutable after creation.
type Task struct {
	Title    string   `json:"title"`
	Assignee string   `json:"assignee"`
	Priority Priority `json:"priority"`
	// DueDate is empty when no due-date expression was recognized.
	DueDate string `json:"due_date,omitempty"`
	// Keywords holds at most MaxKeywords lower-cased lemmas in
	// first-occurrence order.
	Keywords []string `json:"keywords"`
	// Confidence is a hand-tuned additive heuristic in [0,1] rounded
	// to 2 decimals, not a calibrated probability.
	Confidence float64 `json:"confidence"`
}

// Result is the aggregate output of one extraction run.
type Result struct {
	Tasks        []Task   `json:"tasks"`
	Summary      string   `json:"summary"`
	Participants []string `json:"participants"`
}

// Config holds the engine tunables. The defaults reproduce the
// production rule set; tests may narrow them.
type Config struct {
	// MinSentenceLength is the minimum trimmed sentence length for a
	// sentence to be considered at all.
	MinSentenceLength int `koanf:"min_sentence_length"`
	// MaxKeywords caps the keyword list per task.
	MaxKeywords int `koanf:"max_keywords"`
	// MinKeywordTokenLength is the surface-text length a token must
	// exceed to qualify as a keyword.
	MinKeywordTokenLength int `koanf:"min_keyword_token_length"`
	// ActionKeywords marks a sentence as a candidate task when any of
	// them occurs as a literal substring.
	ActionKeywords []string `koanf:"action_keywords"`
}

// DefaultConfig returns the production rule set.
func DefaultConfig() Config {
	return Config{
		MinSentenceLength:     8,
		MaxKeywords:           6,
		MinKeywordTokenLength: 3,
		ActionKeywords:        DefaultActionKeywords(),
	}
}

// DefaultActionKeywords returns the fixed action-keyword list.
// Matching is literal substring, not word-boundary aware: a keyword
// inside a larger word still counts.
func DefaultActionKeywords() []string {
	return []string{
		"create", "build", "fix", "update", "review", "send", "complete", "finalize",
		"prepare", "schedule", "deploy", "design", "investigate", "check", "resolve",
		"follow up", "contact", "analyze", "setup", "configure",
	}
}

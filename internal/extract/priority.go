package extract

import "strings"

// priorityGroup pairs a priority level with its trigger keywords.
type priorityGroup struct {
	level    Priority
	keywords []string
}

// priorityGroups are tested in fixed order; the first group with any
// matching substring wins, so critical outranks high outranks medium
// outranks low regardless of position in the sentence.
var priorityGroups = []priorityGroup{
	{PriorityCritical, []string{"urgent", "asap", "emergency", "immediately"}},
	{PriorityHigh, []string{"important", "priority", "high"}},
	{PriorityMedium, []string{"should", "need to", "must"}},
	{PriorityLow, []string{"later", "eventually", "when possible"}},
}

// ClassifyPriority returns the priority level for a sentence. Matching
// is literal substring over the lower-cased text; medium is the default
// when no group matches.
func ClassifyPriority(text string) Priority {
	lower := strings.ToLower(text)
	for _, group := range priorityGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.level
			}
		}
	}
	return PriorityMedium
}

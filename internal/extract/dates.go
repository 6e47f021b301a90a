package extract

import "regexp"

// datePatterns are the three due-date expression families, evaluated
// case-insensitively. No calendar validity check: 13/45/2024 matches.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby (\w+ \d{1,2})`),
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`),
	regexp.MustCompile(`(?i)\b(tomorrow|next week|next month)\b`),
}

// ExtractDates returns the due-date expressions recognized in a
// sentence, deduplicated preserving first-occurrence order. The first
// element is the one selected as a task's due date.
func ExtractDates(text string) []string {
	var dates []string
	seen := make(map[string]struct{})

	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := match[1]
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			dates = append(dates, candidate)
		}
	}

	return dates
}

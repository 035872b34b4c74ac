package domain

import (
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	checkboxPattern = regexp.MustCompile(`^[-*]\s+\[([ x])\]\s+(.+)$`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// ExtractAcceptanceCriteria returns the checkbox items under the
// "Acceptance Criteria" heading of a markdown body.
// The section runs until the next heading of the same or higher level.
// A missing heading or an empty section yields an empty slice.
func ExtractAcceptanceCriteria(body string) []Criterion {
	criteria := []Criterion{}
	level := 0

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t\r")

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			depth := len(m[1])
			if level > 0 && depth <= level {
				break
			}
			if level == 0 && isAcceptanceHeading(m[2]) {
				level = depth
			}
			continue
		}
		if level == 0 {
			continue
		}

		if m := checkboxPattern.FindStringSubmatch(line); m != nil {
			criteria = append(criteria, Criterion{
				Done: m[1] == "x",
				Text: strings.TrimSpace(m[2]),
			})
		}
	}
	return criteria
}

func isAcceptanceHeading(text string) bool {
	normalized := whitespaceRun.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Contains(normalized, "acceptance criteria")
}

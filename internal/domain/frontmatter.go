package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const frontmatterDelimiter = "---"

var (
	titlePattern       = regexp.MustCompile(`(?m)^title:\s*(?:"(.+?)"|'(.+?)')`)
	labelsPattern      = regexp.MustCompile(`(?ms)^labels:\s*\[(.*?)\]`)
	githubIssuePattern = regexp.MustCompile(`(?m)^github_issue:\s*(\d+)`)
)

// ParseIssue parses an issue markdown file.
// It returns false when the content has no frontmatter block; that is an
// expected outcome and callers skip such files.
//
// Format:
//
//	---
//	title: "Add login form"
//	labels: [frontend, auth]
//	github_issue: 42
//	---
//	Body text.
func ParseIssue(content, file string) (*IssueRecord, bool) {
	frontmatter, body, ok := splitFrontmatter(content)
	if !ok {
		return nil, false
	}

	record := &IssueRecord{
		Title: matchTitle(frontmatter),
		Body:  body,
		File:  file,
	}
	if m := labelsPattern.FindStringSubmatch(frontmatter); m != nil {
		record.Labels = m[1]
	}
	if m := githubIssuePattern.FindStringSubmatch(frontmatter); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			record.RemoteID = &n
		}
	}
	record.AcceptanceCriteria = ExtractAcceptanceCriteria(body)
	return record, true
}

// ParseFrontmatterTitle returns the quoted title from a document's frontmatter.
func ParseFrontmatterTitle(content string) (string, bool) {
	frontmatter, _, ok := splitFrontmatter(content)
	if !ok {
		return "", false
	}
	title := matchTitle(frontmatter)
	return title, title != ""
}

func matchTitle(frontmatter string) string {
	m := titlePattern.FindStringSubmatch(frontmatter)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// splitFrontmatter separates the leading "---" block from the body.
// The opening delimiter must be the first line.
func splitFrontmatter(content string) (frontmatter, body string, ok bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r\n") != frontmatterDelimiter {
		return "", "", false
	}

	var fm strings.Builder
	offset := len(lines[0])
	for _, line := range lines[1:] {
		offset += len(line)
		if strings.TrimRight(line, " \t\r\n") == frontmatterDelimiter {
			return fm.String(), strings.TrimSpace(content[offset:]), true
		}
		fm.WriteString(line)
	}
	return "", "", false
}

package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

var listMarker = regexp.MustCompile(`^(\d+[\.\)]|[-*•])\s+`)

// ExtractRequirements scans RFP text and returns categorized requirements in
// order of first appearance. Statements that hit no keyword dictionary are
// discarded. Empty or whitespace-only input yields an empty slice, not an
// error; the function carries no state between calls.
func ExtractRequirements(text string) []Requirement {
	statements := splitStatements(text)

	requirements := make([]Requirement, 0, len(statements))
	for _, statement := range statements {
		keywords := statementKeywords(statement)
		category := classify(keywords)
		if category == "" {
			continue
		}
		requirements = append(requirements, Requirement{
			ID:       fmt.Sprintf("REQ-%03d", len(requirements)+1),
			Text:     statement,
			Category: category,
			Keywords: keywords,
		})
	}
	return requirements
}

// splitStatements breaks text into candidate statements: first by line, then
// by sentence delimiter within each line. List markers are stripped so
// numbered and bulleted requirements read as plain statements.
func splitStatements(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var statements []string
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = listMarker.ReplaceAllString(line, "")

		for _, sentence := range splitSentences(line) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			statements = append(statements, sentence)
		}
	}
	return statements
}

func splitSentences(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case '.', '!', '?', ';':
			return true
		default:
			return false
		}
	})
}

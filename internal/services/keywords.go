package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKeywordLen is the shortest token (exclusive) used for matching.
const minKeywordLen = 4

// ExtractKeywords lowercases the text, drops everything except letters, digits,
// underscores and whitespace, and returns the
// distinct whitespace-separated tokens longer than four characters, in order
// of first appearance.
func ExtractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)

	seen := make(map[string]struct{})
	keywords := []string{}
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) <= minKeywordLen {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}
	return keywords
}

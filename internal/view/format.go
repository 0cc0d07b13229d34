package view

import (
	"regexp"
	"strings"
)

// MaxTopics is the number of topic labels shown on a project card.
const MaxTopics = 3

var wordStart = regexp.MustCompile(`\b\w`)

// Title turns a repository name into a card title: hyphens become spaces and
// the first character of every word is upper-cased ("my-cool-app" → "My Cool App").
func Title(name string) string {
	return wordStart.ReplaceAllStringFunc(strings.ReplaceAll(name, "-", " "), strings.ToUpper)
}

// Topics returns at most the first MaxTopics labels, in order.
func Topics(topics []string) []string {
	if len(topics) > MaxTopics {
		return topics[:MaxTopics]
	}
	return topics
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// Package analyzer provides the pure data-analysis layer of the report
// pipeline: ADL pattern extraction, symptom normalization and relationship
// detection, medication formatting, and treatment timelines. Everything here
// is deterministic string and slice work over assessment sub-trees.
package analyzer

import "strings"

// TextMatcher decides whether free clinical text refers to a target term.
// Relationship and pattern detection is inherently approximate string
// analysis, so the strategy is pluggable; SubstringMatcher is the default
// naive implementation and callers must treat results as heuristic.
type TextMatcher interface {
	Matches(text, target string) bool
}

// SubstringMatcher matches by case-insensitive substring containment.
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(text, target string) bool {
	if text == "" || target == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(target))
}

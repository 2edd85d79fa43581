package analyzer

import (
	"fmt"
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// Closed severity and frequency vocabularies, ordered so that longer or more
// specific phrases are tried first; normalization scans in order and the
// first containment match wins ("very severe pain" must resolve to
// "very severe", not "severe").
var severityLevels = []string{"very severe", "severe", "moderate", "mild", "none"}

var frequencyLevels = []string{"most of the time", "constantly", "often", "sometimes", "rarely"}

// NormalizeSeverity maps free severity text onto the closed vocabulary.
// Unrecognized input returns "".
func NormalizeSeverity(raw string) string {
	return normalizeLevel(raw, severityLevels)
}

// NormalizeFrequency maps free frequency text onto the closed vocabulary.
func NormalizeFrequency(raw string) string {
	return normalizeLevel(raw, frequencyLevels)
}

func normalizeLevel(raw string, levels []string) string {
	lowered := strings.ToLower(raw)
	for _, level := range levels {
		if strings.Contains(lowered, level) {
			return level
		}
	}
	return ""
}

// SymptomPattern is one detected cross-symptom pattern.
type SymptomPattern struct {
	Kind        string   `json:"kind"` // location | severity | trigger
	Key         string   `json:"key"`
	Symptoms    []string `json:"symptoms"`
	Description string   `json:"description"`
}

// SymptomRelationship links two symptoms by heuristic text matching.
type SymptomRelationship struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"` // aggravates | relieves | concurrent
}

// SymptomAnalysis is the full output of AnalyzeSymptoms.
type SymptomAnalysis struct {
	Normalized    []NormalizedSymptom   `json:"normalized"`
	Patterns      []SymptomPattern      `json:"patterns,omitempty"`
	Relationships []SymptomRelationship `json:"relationships,omitempty"`
}

// NormalizedSymptom is a symptom with its severity and frequency mapped onto
// the closed vocabularies.
type NormalizedSymptom struct {
	Location  string `json:"location"`
	Severity  string `json:"severity,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// Options configures symptom analysis.
type Options struct {
	// EnableContextual turns on cross-symptom pattern and relationship
	// detection. Off, the analysis is normalization only.
	EnableContextual bool
	// Matcher is the text-matching strategy; nil selects SubstringMatcher.
	Matcher TextMatcher
}

// AnalyzeSymptoms normalizes every symptom and, when contextual analysis is
// enabled, detects shared-location, shared-severity and shared-trigger
// patterns plus pairwise aggravates/relieves/concurrent relationships.
func AnalyzeSymptoms(symptoms []assessment.Symptom, opts Options) SymptomAnalysis {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = SubstringMatcher{}
	}

	var analysis SymptomAnalysis
	for _, s := range symptoms {
		if s.Location == "" {
			continue
		}
		analysis.Normalized = append(analysis.Normalized, NormalizedSymptom{
			Location:  s.Location,
			Severity:  NormalizeSeverity(s.Severity),
			Frequency: NormalizeFrequency(s.Frequency),
		})
	}

	if !opts.EnableContextual {
		return analysis
	}
	analysis.Patterns = detectPatterns(symptoms, analysis.Normalized)
	analysis.Relationships = detectRelationships(symptoms, matcher)
	return analysis
}

func detectPatterns(symptoms []assessment.Symptom, normalized []NormalizedSymptom) []SymptomPattern {
	var patterns []SymptomPattern

	// Location-based: two or more symptoms sharing a location.
	patterns = append(patterns, groupPattern("location", func(s assessment.Symptom) string {
		return strings.ToLower(s.Location)
	}, symptoms, "symptoms reported at %s")...)

	// Severity-based, over the normalized vocabulary.
	bySeverity := map[string][]string{}
	var severityOrder []string
	for _, n := range normalized {
		if n.Severity == "" {
			continue
		}
		if _, seen := bySeverity[n.Severity]; !seen {
			severityOrder = append(severityOrder, n.Severity)
		}
		bySeverity[n.Severity] = append(bySeverity[n.Severity], n.Location)
	}
	for _, sev := range severityOrder {
		locations := bySeverity[sev]
		if len(locations) < 2 {
			continue
		}
		patterns = append(patterns, SymptomPattern{
			Kind:        "severity",
			Key:         sev,
			Symptoms:    locations,
			Description: fmt.Sprintf("multiple symptoms rated %s", sev),
		})
	}

	// Shared-trigger: identical aggravating text across symptoms.
	patterns = append(patterns, groupPattern("trigger", func(s assessment.Symptom) string {
		return strings.ToLower(strings.TrimSpace(s.Aggravating))
	}, symptoms, "symptoms sharing trigger %q")...)

	return patterns
}

// groupPattern buckets symptoms by a key and emits one pattern per bucket
// with two or more members, preserving first-encounter order.
func groupPattern(kind string, keyFn func(assessment.Symptom) string, symptoms []assessment.Symptom, descFormat string) []SymptomPattern {
	buckets := map[string][]string{}
	var order []string
	for _, s := range symptoms {
		key := keyFn(s)
		if key == "" || s.Location == "" {
			continue
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], s.Location)
	}

	var patterns []SymptomPattern
	for _, key := range order {
		members := buckets[key]
		if len(members) < 2 {
			continue
		}
		patterns = append(patterns, SymptomPattern{
			Kind:        kind,
			Key:         key,
			Symptoms:    members,
			Description: fmt.Sprintf(descFormat, key),
		})
	}
	return patterns
}

// detectRelationships compares each symptom's aggravating/relieving text to
// every other symptom's location. Matching aggravating text means "from
// aggravates to"; relieving text means "from relieves to"; identical
// normalized frequency with a shared location word yields "concurrent".
func detectRelationships(symptoms []assessment.Symptom, matcher TextMatcher) []SymptomRelationship {
	var rels []SymptomRelationship
	for i, a := range symptoms {
		if a.Location == "" {
			continue
		}
		for j, b := range symptoms {
			if i == j || b.Location == "" {
				continue
			}
			switch {
			case matcher.Matches(a.Aggravating, b.Location):
				rels = append(rels, SymptomRelationship{From: a.Location, To: b.Location, Relation: "aggravates"})
			case matcher.Matches(a.Relieving, b.Location):
				rels = append(rels, SymptomRelationship{From: a.Location, To: b.Location, Relation: "relieves"})
			case i < j && a.Frequency != "" && NormalizeFrequency(a.Frequency) == NormalizeFrequency(b.Frequency) && NormalizeFrequency(a.Frequency) != "":
				rels = append(rels, SymptomRelationship{From: a.Location, To: b.Location, Relation: "concurrent"})
			}
		}
	}
	return rels
}

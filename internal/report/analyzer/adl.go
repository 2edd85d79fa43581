package analyzer

import (
	"sort"
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// ADLPattern is the dominant independence level for one activity category,
// with any equipment or technique modifications mined from the notes.
type ADLPattern struct {
	Category      string                       `json:"category"`
	Level         assessment.IndependenceLevel `json:"level"`
	Activities    int                          `json:"activities"`
	Modifications []string                     `json:"modifications,omitempty"`
}

// TemporalFinding is one phrase extracted from the typical-day routines,
// classified as a plain activity or a functional limitation.
type TemporalFinding struct {
	Period     string `json:"period"` // morning | afternoon | evening | night
	Phrase     string `json:"phrase"`
	Limitation bool   `json:"limitation"`
}

// ADLAnalysis is the output of AnalyzeADLPerformance.
type ADLAnalysis struct {
	Patterns []ADLPattern        `json:"patterns,omitempty"`
	Temporal []TemporalFinding   `json:"temporal,omitempty"`
	Symptoms []NormalizedSymptom `json:"symptoms,omitempty"`
}

// modificationVerbs introduce an assistive device or technique in free-text
// notes; equipmentTerms is the fixed vocabulary mined from those notes.
var modificationVerbs = []string{"uses", "with", "requires", "needs", "using"}

var equipmentTerms = []string{
	"grab bar", "shower chair", "bath bench", "raised toilet seat", "commode",
	"reacher", "sock aid", "long-handled sponge", "dressing stick",
	"walker", "cane", "wheelchair", "rail", "built-up handle",
}

// limitationKeywords flag a routine phrase as a functional limitation.
var limitationKeywords = []string{
	"difficulty", "unable", "needs help", "requires assistance", "limited",
}

// AnalyzeADLPerformance extracts independence patterns from the ADL
// sub-tree, temporal findings from the current typical-day routines, and a
// normalized view of any supplied symptoms. All inputs are optional.
func AnalyzeADLPerformance(adl *assessment.ADL, typicalDay *assessment.TypicalDay, symptoms []assessment.Symptom) ADLAnalysis {
	var analysis ADLAnalysis
	analysis.Patterns = extractPatterns(adl)
	analysis.Temporal = extractTemporal(typicalDay)
	if len(symptoms) > 0 {
		analysis.Symptoms = AnalyzeSymptoms(symptoms, Options{}).Normalized
	}
	return analysis
}

func extractPatterns(adl *assessment.ADL) []ADLPattern {
	if adl == nil {
		return nil
	}

	type category struct {
		name       string
		activities map[string]assessment.Activity
	}
	var categories []category
	if adl.Basic != nil {
		categories = append(categories,
			category{"bathing", adl.Basic.Bathing},
			category{"dressing", adl.Basic.Dressing},
			category{"feeding", adl.Basic.Feeding},
			category{"transfers", adl.Basic.Transfers},
			category{"toileting", adl.Basic.Toileting},
		)
	}
	if adl.IADL != nil {
		categories = append(categories,
			category{"household", adl.IADL.Household},
			category{"community", adl.IADL.Community},
		)
	}

	var patterns []ADLPattern
	for _, cat := range categories {
		if len(cat.activities) == 0 {
			continue
		}
		level, rated := modeLevel(cat.activities)
		if !rated {
			continue
		}
		patterns = append(patterns, ADLPattern{
			Category:      cat.name,
			Level:         level,
			Activities:    len(cat.activities),
			Modifications: extractModifications(cat.activities),
		})
	}
	return patterns
}

// modeLevel picks the most frequent rated independence level in a category.
// Ties break toward the level whose count reached the maximum first in
// sorted activity-name order, not toward clinical severity.
func modeLevel(activities map[string]assessment.Activity) (assessment.IndependenceLevel, bool) {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := map[assessment.IndependenceLevel]int{}
	var best assessment.IndependenceLevel
	bestCount := 0
	for _, name := range names {
		level := activities[name].Independence
		if !level.Rated() {
			continue
		}
		counts[level]++
		if counts[level] > bestCount {
			best, bestCount = level, counts[level]
		}
	}
	return best, bestCount > 0
}

// extractModifications mines the category's notes for equipment terms that
// appear alongside a modification verb.
func extractModifications(activities map[string]assessment.Activity) []string {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := map[string]bool{}
	var mods []string
	for _, name := range names {
		notes := strings.ToLower(activities[name].Notes)
		if notes == "" || !containsAny(notes, modificationVerbs) {
			continue
		}
		for _, term := range equipmentTerms {
			if strings.Contains(notes, term) && !seen[term] {
				seen[term] = true
				mods = append(mods, term)
			}
		}
	}
	return mods
}

func extractTemporal(td *assessment.TypicalDay) []TemporalFinding {
	if td == nil || td.Current == nil || td.Current.Daily == nil || td.Current.Daily.Routines == nil {
		return nil
	}
	r := td.Current.Daily.Routines

	var findings []TemporalFinding
	periods := []struct {
		name  string
		block assessment.RoutineBlock
	}{
		{"morning", r.Morning},
		{"afternoon", r.Afternoon},
		{"evening", r.Evening},
		{"night", r.Night},
	}
	for _, p := range periods {
		for _, phrase := range splitRoutine(p.block.Activities) {
			findings = append(findings, TemporalFinding{
				Period:     p.name,
				Phrase:     phrase,
				Limitation: containsAny(strings.ToLower(phrase), limitationKeywords),
			})
		}
	}
	return findings
}

// splitRoutine breaks a free-text routine on commas and newlines, trimming
// whitespace and dropping empty phrases.
func splitRoutine(text string) []string {
	var phrases []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return phrases
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

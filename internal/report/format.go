package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormatClinicalValue renders a measured value for the report. Nil, empty
// string, and zero numbers all read as "Not assessed"; otherwise the value is
// stringified with the optional unit appended.
func FormatClinicalValue(value interface{}, unit string) string {
	if !hasValue(value) {
		return "Not assessed"
	}
	s := fmt.Sprintf("%v", value)
	if unit != "" {
		return s + " " + unit
	}
	return s
}

func hasValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case bool:
		return v
	default:
		return true
	}
}

// FormatClinicalList joins items in clinical-prose style: "A", "A and B",
// "A, B and C". Empty input yields "".
func FormatClinicalList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// FormatClinicalDate renders an ISO date (YYYY-MM-DD) as a long-form date,
// "January 14, 2025". Empty input yields ""; unparseable input is passed
// through unchanged so bad data remains visible in the draft.
func FormatClinicalDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// TitleCaseLabel converts a camelCase or snake_case key into a report label:
// "emergencyContact" -> "Emergency Contact".
func TitleCaseLabel(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	prevLower := false
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
			continue
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			if b.Len() > 0 && b.String()[b.Len()-1] == ' ' {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
		}
		prevLower = unicode.IsLower(r)
	}
	return b.String()
}

// joinFragments filters empty fragments and joins the remainder with blank
// lines so missing source fields never leave stray separators.
func joinFragments(fragments ...string) string {
	var kept []string
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			kept = append(kept, strings.TrimSpace(f))
		}
	}
	return strings.Join(kept, "\n\n")
}

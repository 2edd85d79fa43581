package report

import (
	"encoding/json"
	"strings"
)

// FormatReport renders successful, non-empty sections in the order given
// (callers pass results already in registry order) and joins them with
// blank lines. Failed sections are omitted.
func FormatReport(results []SectionResult) string {
	var rendered []string
	for _, r := range results {
		if r.Err != nil || r.Content.Empty() {
			continue
		}
		rendered = append(rendered, FormatSection(r.Content))
	}
	return strings.Join(rendered, "\n\n")
}

// FormatSection renders one section per its content type.
func FormatSection(c SectionContent) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(c.Title)))
	b.WriteString("\n")

	switch c.Type {
	case Structured:
		writeStructured(&b, c.Structured, 0)
	case ModerateNarrative, FullNarrative:
		b.WriteString(c.Narrative)
	default:
		// Mixed and unknown types: best effort. Narrative first, then any
		// structured rows, falling back to a JSON dump when neither fits.
		wrote := false
		if c.Narrative != "" {
			b.WriteString(c.Narrative)
			wrote = true
		}
		if len(c.Structured) > 0 {
			if wrote {
				b.WriteString("\n\n")
			}
			writeStructured(&b, c.Structured, 0)
			wrote = true
		}
		if !wrote {
			if raw, err := json.MarshalIndent(c, "", "  "); err == nil {
				b.Write(raw)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeStructured(b *strings.Builder, items []LabeledItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		if len(item.Children) > 0 {
			b.WriteString(indent + item.Label + ":\n")
			writeStructured(b, item.Children, depth+1)
			continue
		}
		b.WriteString(indent + item.Label + ": " + item.Value + "\n")
	}
}

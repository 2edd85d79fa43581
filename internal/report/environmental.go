package report

import (
	"sort"
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// EnvironmentalAgent renders the property overview and per-room findings.
// Rooms without at least one non-empty finding list are omitted entirely.
type EnvironmentalAgent struct {
	baseAgent
}

func NewEnvironmentalAgent(reg *Registry) *EnvironmentalAgent {
	return &EnvironmentalAgent{newBaseAgent(reg, SectionEnvironmental)}
}

func (a *EnvironmentalAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	env := doc.Environmental
	if env == nil {
		return c, nil
	}

	if env.Property != nil {
		prop := Group("Property Overview",
			Item("Type", env.Property.Type),
			Item("Levels", env.Property.Levels),
			Item("Entry", env.Property.Entry),
			Item("Stairs", env.Property.Stairs),
			Item("Notes", env.Property.Notes),
		)
		if g := pruneGroup(prop); len(g.Children) > 0 {
			c.Structured = append(c.Structured, g)
		}
	}

	var blocks []string
	if env.Safety != nil {
		blocks = append(blocks, findingsBlock("General Safety", map[string][]string{
			"Hazards":         env.Safety.Hazards,
			"Concerns":        env.Safety.Concerns,
			"Recommendations": env.Safety.Recommendations,
		}))
	}

	roomNames := make([]string, 0, len(env.Rooms))
	for name := range env.Rooms {
		roomNames = append(roomNames, name)
	}
	sort.Strings(roomNames)
	for _, name := range roomNames {
		room := env.Rooms[name]
		blocks = append(blocks, findingsBlock(TitleCaseLabel(name), map[string][]string{
			"Modifications":   room.Modifications,
			"Hazards":         room.Hazards,
			"Recommendations": room.Recommendations,
		}))
	}

	c.Narrative = joinFragments(blocks...)
	return c, nil
}

// findingsBlock renders a heading followed by its non-empty bullet lists, or
// "" when every list is empty.
func findingsBlock(heading string, lists map[string][]string) string {
	labels := make([]string, 0, len(lists))
	for label := range lists {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var lines []string
	for _, label := range labels {
		items := lists[label]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, label+":")
		for _, item := range items {
			if strings.TrimSpace(item) == "" {
				continue
			}
			lines = append(lines, "- "+item)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return heading + "\n" + strings.Join(lines, "\n")
}

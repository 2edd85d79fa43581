package report

import (
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// TypicalDayAgent contrasts the pre-accident and current daily routines.
type TypicalDayAgent struct {
	baseAgent
}

func NewTypicalDayAgent(reg *Registry) *TypicalDayAgent {
	return &TypicalDayAgent{newBaseAgent(reg, SectionTypicalDay)}
}

func (a *TypicalDayAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	td := doc.TypicalDay
	if td == nil {
		return c, nil
	}
	c.Narrative = joinFragments(
		dayProfileBlock("Pre-Accident Routine", td.PreAccident),
		dayProfileBlock("Current Routine", td.Current),
	)
	return c, nil
}

func dayProfileBlock(heading string, profile *assessment.DayProfile) string {
	if profile == nil || profile.Daily == nil || profile.Daily.Routines == nil {
		return ""
	}
	r := profile.Daily.Routines
	periods := []struct {
		label string
		block assessment.RoutineBlock
	}{
		{"Morning", r.Morning},
		{"Afternoon", r.Afternoon},
		{"Evening", r.Evening},
		{"Night", r.Night},
	}

	var lines []string
	for _, p := range periods {
		if strings.TrimSpace(p.block.Activities) == "" {
			continue
		}
		lines = append(lines, p.label+": "+strings.TrimSpace(p.block.Activities))
	}
	if len(lines) == 0 {
		return ""
	}
	return heading + "\n" + strings.Join(lines, "\n")
}

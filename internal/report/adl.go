package report

import (
	"sort"
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// ADLAgent renders per-activity independence bullet lists. It does no
// aggregation; category-level scoring lives in the analyzer package.
type ADLAgent struct {
	baseAgent
}

func NewADLAgent(reg *Registry) *ADLAgent {
	return &ADLAgent{newBaseAgent(reg, SectionADL)}
}

func (a *ADLAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	adl := doc.ADL
	if adl == nil {
		return c, nil
	}

	var blocks []string
	if adl.Basic != nil {
		blocks = append(blocks,
			adlCategoryBlock("Bathing", adl.Basic.Bathing),
			adlCategoryBlock("Dressing", adl.Basic.Dressing),
			adlCategoryBlock("Feeding", adl.Basic.Feeding),
			adlCategoryBlock("Transfers", adl.Basic.Transfers),
			adlCategoryBlock("Toileting", adl.Basic.Toileting),
		)
	}
	if adl.IADL != nil {
		blocks = append(blocks,
			adlCategoryBlock("Household Tasks", adl.IADL.Household),
			adlCategoryBlock("Community Tasks", adl.IADL.Community),
		)
	}
	c.Narrative = joinFragments(blocks...)
	return c, nil
}

// adlCategoryBlock renders one category's rated sub-activities as a bullet
// list. Sub-activities with neither a rating nor notes are skipped; an empty
// category yields "".
func adlCategoryBlock(heading string, activities map[string]assessment.Activity) string {
	if len(activities) == 0 {
		return ""
	}
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		act := activities[name]
		if act.Independence == "" && act.Notes == "" {
			continue
		}
		line := "- " + TitleCaseLabel(name)
		if act.Independence != "" {
			line += ": " + act.Independence.Label()
		}
		if act.Notes != "" {
			line += " (" + act.Notes + ")"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}
	return heading + ":\n" + strings.Join(lines, "\n")
}

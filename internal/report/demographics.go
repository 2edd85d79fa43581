package report

import (
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// DemographicsAgent renders the client-information table.
type DemographicsAgent struct {
	baseAgent
}

func NewDemographicsAgent(reg *Registry) *DemographicsAgent {
	return &DemographicsAgent{newBaseAgent(reg, SectionDemographics)}
}

func (a *DemographicsAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	d := doc.Demographics
	if d == nil {
		return c, nil
	}

	client := Group("Client",
		Item("Name", strings.TrimSpace(d.FirstName+" "+d.LastName)),
		Item("Date of Birth", FormatClinicalDate(d.DateOfBirth)),
		Item("Gender", d.Gender),
		Item("Marital Status", d.MaritalStatus),
		Item("Address", d.Address),
		Item("Phone", d.Phone),
		Item("Email", d.Email),
	)
	if g := pruneGroup(client); len(g.Children) > 0 {
		c.Structured = append(c.Structured, g)
	}

	if d.EmergencyContact != nil {
		ec := Group("Emergency Contact",
			Item("Name", d.EmergencyContact.Name),
			Item("Relationship", d.EmergencyContact.Relationship),
			Item("Phone", d.EmergencyContact.Phone),
		)
		if g := pruneGroup(ec); len(g.Children) > 0 {
			c.Structured = append(c.Structured, g)
		}
	}

	social := Group("Social Status",
		Item("Occupation", d.Occupation),
		Item("Employer", d.Employer),
		Item("Living Arrangement", d.LivingArrangement),
	)
	if g := pruneGroup(social); len(g.Children) > 0 {
		c.Structured = append(c.Structured, g)
	}

	return c, nil
}

// pruneGroup drops leaf items with no value so missing fields never appear
// as blank table rows.
func pruneGroup(g LabeledItem) LabeledItem {
	var kept []LabeledItem
	for _, ch := range g.Children {
		if len(ch.Children) > 0 {
			if sub := pruneGroup(ch); len(sub.Children) > 0 {
				kept = append(kept, sub)
			}
			continue
		}
		if strings.TrimSpace(ch.Value) != "" {
			kept = append(kept, ch)
		}
	}
	g.Children = kept
	return g
}

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/otreport/otreport/internal/assessment"
)

// SummaryAgent assembles the summary-of-findings narrative: client framing
// with calendar-aware age, then fixed paragraphs conditioned on which
// assessment sub-trees are present.
type SummaryAgent struct {
	baseAgent
	now func() time.Time
}

func NewSummaryAgent(reg *Registry) *SummaryAgent {
	return &SummaryAgent{baseAgent: newBaseAgent(reg, SectionSummary), now: time.Now}
}

// AgeAt computes whole years between an ISO birth date and a reference day,
// decrementing by one when the reference month/day precedes the birthday.
func AgeAt(dateOfBirth string, ref time.Time) (int, error) {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("parse date of birth: %w", err)
	}
	age := ref.Year() - dob.Year()
	if ref.Month() < dob.Month() || (ref.Month() == dob.Month() && ref.Day() < dob.Day()) {
		age--
	}
	return age, nil
}

func (a *SummaryAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()

	var paragraphs []string
	if intro := a.introParagraph(doc.Demographics); intro != "" {
		paragraphs = append(paragraphs, intro)
	}
	if doc.Symptoms != nil && len(allSymptoms(doc.Symptoms)) > 0 {
		paragraphs = append(paragraphs,
			"The client continues to report ongoing symptoms affecting physical, cognitive and emotional functioning, as detailed in the subjective findings of this report.")
	}
	if doc.FunctionalAssessment != nil {
		paragraphs = append(paragraphs,
			"Objective testing identified functional limitations in range of motion, strength and positional tolerance consistent with the client's reported difficulties.")
	}
	if doc.ADL != nil {
		paragraphs = append(paragraphs,
			"The client demonstrates reduced independence in activities of daily living relative to pre-accident function, with assistance now required for tasks previously performed independently.")
	}
	if doc.TypicalDay != nil {
		paragraphs = append(paragraphs,
			"A comparison of pre-accident and current daily routines shows a substantially restricted activity pattern.")
	}

	c.Narrative = strings.Join(paragraphs, "\n\n")
	return c, nil
}

func (a *SummaryAgent) introParagraph(d *assessment.Demographics) string {
	if d == nil {
		return ""
	}
	name := strings.TrimSpace(d.FirstName + " " + d.LastName)
	if name == "" {
		name = "The client"
	}
	if d.DateOfBirth == "" {
		return name + " was assessed in their home environment."
	}
	age, err := AgeAt(d.DateOfBirth, a.now())
	if err != nil {
		return name + " was assessed in their home environment."
	}
	return fmt.Sprintf("%s is a %d-year-old client assessed in their home environment.", name, age)
}

package report

import (
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// SubjectiveAgent narrates the client's reported symptoms by domain.
type SubjectiveAgent struct {
	baseAgent
}

func NewSubjectiveAgent(reg *Registry) *SubjectiveAgent {
	return &SubjectiveAgent{newBaseAgent(reg, SectionSubjective)}
}

func (a *SubjectiveAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	s := doc.Symptoms
	if s == nil {
		return c, nil
	}

	c.Narrative = joinFragments(
		symptomDomainBlock("Physical Symptoms", s.Physical),
		symptomDomainBlock("Cognitive Symptoms", s.Cognitive),
		symptomDomainBlock("Emotional Symptoms", s.Emotional),
		s.GeneralNotes,
	)
	return c, nil
}

// symptomDomainBlock renders one symptom domain, or "" when the domain has
// no entries so the whole sub-block is suppressed.
func symptomDomainBlock(heading string, symptoms []assessment.Symptom) string {
	if len(symptoms) == 0 {
		return ""
	}
	var blocks []string
	for _, sym := range symptoms {
		if b := symptomBlock(sym); b != "" {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return heading + ":\n" + strings.Join(blocks, "\n")
}

// symptomBlock renders one symptom as
// "<location>: <severity>, <frequency>\nAggravating factors: ...".
func symptomBlock(sym assessment.Symptom) string {
	if sym.Location == "" {
		return ""
	}
	var descriptors []string
	if sym.Severity != "" {
		descriptors = append(descriptors, strings.ToLower(sym.Severity))
	}
	if sym.Frequency != "" {
		descriptors = append(descriptors, "occurring "+strings.ToLower(sym.Frequency))
	}
	line := sym.Location
	if len(descriptors) > 0 {
		line += ": " + strings.Join(descriptors, ", ")
	}
	if sym.Description != "" {
		line += ". " + sym.Description
	}

	lines := []string{line}
	if sym.Aggravating != "" {
		lines = append(lines, "Aggravating factors: "+sym.Aggravating)
	}
	if sym.Relieving != "" {
		lines = append(lines, "Relieving factors: "+sym.Relieving)
	}
	if sym.Impact != "" {
		lines = append(lines, "Functional impact: "+sym.Impact)
	}
	return strings.Join(lines, "\n")
}

// SymptomManagementAgent narrates how the client manages each symptom.
type SymptomManagementAgent struct {
	baseAgent
}

func NewSymptomManagementAgent(reg *Registry) *SymptomManagementAgent {
	return &SymptomManagementAgent{newBaseAgent(reg, SectionSymptomManagement)}
}

func (a *SymptomManagementAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	s := doc.Symptoms
	if s == nil {
		return c, nil
	}

	var lines []string
	for _, sym := range allSymptoms(s) {
		if sym.Location == "" || sym.Management == "" {
			continue
		}
		lines = append(lines, sym.Location+": "+sym.Management)
	}
	if len(lines) == 0 {
		return c, nil
	}
	c.Narrative = "The client reports the following management strategies:\n" + strings.Join(lines, "\n")
	return c, nil
}

func allSymptoms(s *assessment.Symptoms) []assessment.Symptom {
	out := make([]assessment.Symptom, 0, len(s.Physical)+len(s.Cognitive)+len(s.Emotional))
	out = append(out, s.Physical...)
	out = append(out, s.Cognitive...)
	out = append(out, s.Emotional...)
	return out
}

package report

import "github.com/otreport/otreport/internal/assessment"

// Agent converts one slice of the assessment document into one report
// section. Implementations must tolerate missing sub-trees and return empty
// content rather than an error for absent data; errors are reserved for
// genuine generation failures.
type Agent interface {
	Section() Section
	GenerateSection(doc *assessment.Document) (SectionContent, error)
}

// baseAgent binds a concrete agent to its registry entry, pre-filling title,
// type, and order on the produced content.
type baseAgent struct {
	cfg SectionConfig
}

func newBaseAgent(reg *Registry, s Section) baseAgent {
	cfg, ok := reg.Config(s)
	if !ok {
		cfg = SectionConfig{Section: s}
	}
	return baseAgent{cfg: cfg}
}

func (b baseAgent) Section() Section { return b.cfg.Section }

func (b baseAgent) content() SectionContent {
	return SectionContent{
		Section: b.cfg.Section,
		Title:   b.cfg.Title,
		Type:    b.cfg.Type,
		Order:   b.cfg.Order,
	}
}

// DefaultAgents builds the full agent set for a registry, in no particular
// order; document order comes from the registry alone.
func DefaultAgents(reg *Registry) []Agent {
	return []Agent{
		NewDemographicsAgent(reg),
		NewSummaryAgent(reg),
		NewMedicalHistoryAgent(reg),
		NewMechanismOfInjuryAgent(reg),
		NewNatureOfInjuryAgent(reg),
		NewCourseOfRecoveryAgent(reg),
		NewSubjectiveAgent(reg),
		NewSymptomManagementAgent(reg),
		NewTypicalDayAgent(reg),
		NewFunctionalAgent(reg),
		NewADLAgent(reg),
		NewEnvironmentalAgent(reg),
		NewAttendantCareAgent(reg),
	}
}

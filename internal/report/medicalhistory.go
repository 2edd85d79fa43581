package report

import (
	"fmt"

	"github.com/otreport/otreport/internal/assessment"
	"github.com/otreport/otreport/internal/report/analyzer"
)

// The medical-history family of agents all build narrative fragments from
// medicalHistory sub-fields. Each fragment builder returns "" when its source
// is absent, and joinFragments filters empties so no stray blank lines appear.

// MedicalHistoryAgent covers pre-accident status: conditions, pre-existing
// notes, surgeries, allergies, and the current medication list.
type MedicalHistoryAgent struct {
	baseAgent
}

func NewMedicalHistoryAgent(reg *Registry) *MedicalHistoryAgent {
	return &MedicalHistoryAgent{newBaseAgent(reg, SectionMedicalHistory)}
}

func (a *MedicalHistoryAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	mh := doc.MedicalHistory
	if mh == nil {
		return c, nil
	}
	c.Narrative = joinFragments(
		preExistingFragment(mh),
		conditionsFragment(mh.Conditions),
		surgeriesFragment(mh),
		medicationsFragment(mh.Medications),
		allergiesFragment(mh),
	)
	return c, nil
}

func preExistingFragment(mh *assessment.MedicalHistory) string {
	if mh.PreExisting == "" {
		return ""
	}
	return "Pre-existing conditions: " + mh.PreExisting
}

func conditionsFragment(conditions []assessment.Condition) string {
	var names []string
	for _, cond := range conditions {
		if cond.Name == "" {
			continue
		}
		entry := cond.Name
		if cond.Diagnosed != "" {
			entry += fmt.Sprintf(" (diagnosed %s)", FormatClinicalDate(cond.Diagnosed))
		}
		names = append(names, entry)
	}
	if len(names) == 0 {
		return ""
	}
	return "Documented medical conditions include " + FormatClinicalList(names) + "."
}

func surgeriesFragment(mh *assessment.MedicalHistory) string {
	if mh.Surgeries == "" {
		return ""
	}
	return "Surgical history: " + mh.Surgeries
}

func allergiesFragment(mh *assessment.MedicalHistory) string {
	if mh.Allergies == "" {
		return ""
	}
	return "Allergies: " + mh.Allergies
}

func medicationsFragment(meds []assessment.Medication) string {
	formatted := analyzer.MedicationList(meds)
	if len(formatted) == 0 {
		return ""
	}
	return "Current medications: " + FormatClinicalList(formatted) + "."
}

// MechanismOfInjuryAgent narrates how the injury occurred.
type MechanismOfInjuryAgent struct {
	baseAgent
}

func NewMechanismOfInjuryAgent(reg *Registry) *MechanismOfInjuryAgent {
	return &MechanismOfInjuryAgent{newBaseAgent(reg, SectionMechanismOfInjury)}
}

func (a *MechanismOfInjuryAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	if doc.MedicalHistory == nil || doc.MedicalHistory.Injury == nil {
		return c, nil
	}
	inj := doc.MedicalHistory.Injury

	var date string
	if inj.Date != "" {
		date = "On " + FormatClinicalDate(inj.Date) + ", the client was injured."
	}
	c.Narrative = joinFragments(date, inj.Circumstance)
	return c, nil
}

// NatureOfInjuryAgent narrates the injuries sustained and the immediate
// clinical picture.
type NatureOfInjuryAgent struct {
	baseAgent
}

func NewNatureOfInjuryAgent(reg *Registry) *NatureOfInjuryAgent {
	return &NatureOfInjuryAgent{newBaseAgent(reg, SectionNatureOfInjury)}
}

func (a *NatureOfInjuryAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	if doc.MedicalHistory == nil || doc.MedicalHistory.Injury == nil {
		return c, nil
	}
	inj := doc.MedicalHistory.Injury

	var symptoms string
	if inj.ImmediateSymptoms != "" {
		symptoms = "Immediately following the accident, the client reported " + inj.ImmediateSymptoms + "."
	}
	c.Narrative = joinFragments(inj.Description, symptoms)
	return c, nil
}

// CourseOfRecoveryAgent narrates treatment from the accident to the present:
// initial treatment, then past and current providers.
type CourseOfRecoveryAgent struct {
	baseAgent
}

func NewCourseOfRecoveryAgent(reg *Registry) *CourseOfRecoveryAgent {
	return &CourseOfRecoveryAgent{newBaseAgent(reg, SectionCourseOfRecovery)}
}

func (a *CourseOfRecoveryAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	mh := doc.MedicalHistory
	if mh == nil {
		return c, nil
	}

	var initial string
	if mh.Injury != nil && mh.Injury.InitialTreatment != "" {
		initial = "Initial treatment: " + mh.Injury.InitialTreatment
	}
	timeline := analyzer.BuildTimeline(mh)
	c.Narrative = joinFragments(initial, analyzer.ProgressionNarrative(timeline))
	return c, nil
}

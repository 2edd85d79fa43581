package report

import "fmt"

// ContentType constrains the shape of a section's content.
type ContentType string

const (
	Structured        ContentType = "structured"
	ModerateNarrative ContentType = "moderate_narrative"
	FullNarrative     ContentType = "full_narrative"
	Mixed             ContentType = "mixed"
)

// Section identifies one report section.
type Section string

const (
	SectionDemographics      Section = "demographics"
	SectionSummary           Section = "summary_of_findings"
	SectionMedicalHistory    Section = "medical_history"
	SectionMechanismOfInjury Section = "mechanism_of_injury"
	SectionNatureOfInjury    Section = "nature_of_injury"
	SectionCourseOfRecovery  Section = "course_of_recovery"
	SectionSubjective        Section = "subjective_information"
	SectionSymptomManagement Section = "symptom_management"
	SectionTypicalDay        Section = "typical_day"
	SectionFunctional        Section = "functional_assessment"
	SectionADL               Section = "adl_assessment"
	SectionEnvironmental     Section = "environmental_assessment"
	SectionAttendantCare     Section = "attendant_care"
)

// SectionContent is the output of one agent: the title, order, and type come
// from the registry entry the agent is bound to.
type SectionContent struct {
	Section Section     `json:"section"`
	Title   string      `json:"title"`
	Type    ContentType `json:"type"`
	Order   int         `json:"order"`

	// Exactly one of Narrative and Structured is populated, per Type.
	// Mixed sections may carry both.
	Narrative  string        `json:"narrative,omitempty"`
	Structured []LabeledItem `json:"structured,omitempty"`

	// Locked marks a section whose content a clinician has frozen; the
	// regeneration endpoint refuses to overwrite it.
	Locked bool `json:"locked,omitempty"`
}

// LabeledItem is one row of a structured section: a label plus either a
// value or a nested group. Discriminated by Children being nil, so the
// formatter never reflects over arbitrary maps.
type LabeledItem struct {
	Label    string        `json:"label"`
	Value    string        `json:"value,omitempty"`
	Children []LabeledItem `json:"children,omitempty"`
}

// Group builds a nested LabeledItem.
func Group(label string, children ...LabeledItem) LabeledItem {
	return LabeledItem{Label: label, Children: children}
}

// Item builds a leaf LabeledItem.
func Item(label, value string) LabeledItem {
	return LabeledItem{Label: label, Value: value}
}

// Empty reports whether the section produced no content at all. Empty
// sections are omitted from the report; they are not validation failures,
// because missing assessment sub-trees are not errors.
func (c SectionContent) Empty() bool {
	return c.Narrative == "" && len(c.Structured) == 0
}

// ValidateContent checks that a section's content matches its declared type:
// structured sections need structured rows, narrative sections need text.
// Mixed and unknown types always validate, as does empty content.
func ValidateContent(c SectionContent) error {
	if c.Empty() {
		return nil
	}
	switch c.Type {
	case Structured:
		if len(c.Structured) == 0 {
			return fmt.Errorf("section %s: structured content required, got narrative", c.Section)
		}
	case ModerateNarrative, FullNarrative:
		if c.Narrative == "" {
			return fmt.Errorf("section %s: narrative content required, got structured", c.Section)
		}
	}
	return nil
}

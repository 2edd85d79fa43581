package report

import "sort"

// SectionConfig is one entry of the report structure catalogue.
type SectionConfig struct {
	Section Section
	Type    ContentType
	Order   int
	Title   string
}

// Registry is the immutable ordered catalogue of report sections. It is
// built once at startup and passed by reference into the generator; there is
// no ambient registration.
type Registry struct {
	entries map[Section]SectionConfig
	ordered []Section
}

// defaultSections is the standard in-home assessment report structure.
var defaultSections = []SectionConfig{
	{SectionDemographics, Structured, 1, "Client Information"},
	{SectionSummary, FullNarrative, 2, "Summary of Findings"},
	{SectionMedicalHistory, ModerateNarrative, 3, "Pre-Accident Medical History"},
	{SectionMechanismOfInjury, ModerateNarrative, 4, "Mechanism of Injury"},
	{SectionNatureOfInjury, ModerateNarrative, 5, "Nature of Injury"},
	{SectionCourseOfRecovery, ModerateNarrative, 6, "Course of Recovery to Date"},
	{SectionSubjective, FullNarrative, 7, "Subjective Information"},
	{SectionSymptomManagement, ModerateNarrative, 8, "Symptom Management"},
	{SectionTypicalDay, FullNarrative, 9, "Typical Day"},
	{SectionFunctional, Mixed, 10, "Functional Assessment"},
	{SectionADL, ModerateNarrative, 11, "Activities of Daily Living"},
	{SectionEnvironmental, Mixed, 12, "Environmental Assessment"},
	{SectionAttendantCare, Mixed, 13, "Attendant Care Requirements"},
}

// NewRegistry builds the default registry.
func NewRegistry() *Registry {
	return NewRegistryWith(defaultSections)
}

// NewRegistryWith builds a registry from explicit entries, mainly for tests.
func NewRegistryWith(entries []SectionConfig) *Registry {
	r := &Registry{entries: make(map[Section]SectionConfig, len(entries))}
	for _, e := range entries {
		r.entries[e.Section] = e
		r.ordered = append(r.ordered, e.Section)
	}
	sort.SliceStable(r.ordered, func(i, j int) bool {
		return r.entries[r.ordered[i]].Order < r.entries[r.ordered[j]].Order
	})
	return r
}

// Config looks up one section's configuration. Callers must skip sections
// where ok is false.
func (r *Registry) Config(s Section) (SectionConfig, bool) {
	c, ok := r.entries[s]
	return c, ok
}

// OrderedSections returns all section keys in ascending document order.
func (r *Registry) OrderedSections() []Section {
	out := make([]Section, len(r.ordered))
	copy(out, r.ordered)
	return out
}

package analyzer

import (
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// NoMedications is the sentinel returned when nothing named remains after
// filtering.
const NoMedications = "No current medications reported."

// FormatMedication renders one medication as
// "<name> <dosage> <frequency> for <purpose>"; every field after the name is
// optional and fields are space-joined. An entry without a name yields "".
func FormatMedication(m assessment.Medication) string {
	if m.Name == "" {
		return ""
	}
	parts := []string{m.Name}
	if m.Dosage != "" {
		parts = append(parts, m.Dosage)
	}
	if m.Frequency != "" {
		parts = append(parts, m.Frequency)
	}
	if m.Purpose != "" {
		parts = append(parts, "for "+m.Purpose)
	}
	return strings.Join(parts, " ")
}

// MedicationList formats every named medication, dropping unnamed entries.
func MedicationList(meds []assessment.Medication) []string {
	var out []string
	for _, m := range meds {
		if f := FormatMedication(m); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// MedicationSummary renders the medication list as a prose fragment, or the
// sentinel when the filtered list is empty.
func MedicationSummary(meds []assessment.Medication) string {
	formatted := MedicationList(meds)
	if len(formatted) == 0 {
		return NoMedications
	}
	if len(formatted) == 1 {
		return formatted[0]
	}
	return strings.Join(formatted[:len(formatted)-1], ", ") + " and " + formatted[len(formatted)-1]
}

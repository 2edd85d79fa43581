package report

import (
	"fmt"

	"github.com/otreport/otreport/internal/assessment"
	"github.com/otreport/otreport/internal/report/carecalc"
)

// AttendantCareAgent renders the attendant-care section. When the clinician
// has completed the care-requirements form, its entered minutes are the
// source of truth and the section reports the cost summary. Without form
// data the agent falls back to deriving monthly hours from the ADL
// independence levels via fixed per-category lookup tables. The two
// calculations are never combined.
type AttendantCareAgent struct {
	baseAgent
	rates carecalc.RateSet
}

func NewAttendantCareAgent(reg *Registry) *AttendantCareAgent {
	return &AttendantCareAgent{
		baseAgent: newBaseAgent(reg, SectionAttendantCare),
		rates:     carecalc.CurrentRates,
	}
}

// SetRates overrides the rate set used for the form-based cost summary.
func (a *AttendantCareAgent) SetRates(rates carecalc.RateSet) { a.rates = rates }

func (a *AttendantCareAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	if doc.AttendantCare != nil {
		return a.formBased(c, doc.AttendantCare), nil
	}
	if doc.ADL != nil {
		return a.independenceBased(c, doc.ADL), nil
	}
	return c, nil
}

// -- Form-based path (clinician-entered minutes) --

func (a *AttendantCareAgent) formBased(c SectionContent, form *assessment.AttendantCare) SectionContent {
	summary := carecalc.Summarize(form, a.rates)

	c.Structured = []LabeledItem{
		careLevelGroup("Level 1 - Routine Personal Care", summary.Level1),
		careLevelGroup("Level 2 - Basic Supervisory Functions", summary.Level2),
		careLevelGroup("Level 3 - Complex Health Care", summary.Level3),
		Item("Total Monthly Cost", fmt.Sprintf("$%.2f", summary.TotalMonthlyCost)),
	}
	c.Narrative = fmt.Sprintf(
		"Based on the completed care requirements form, the client requires attendant care at a total monthly cost of $%.2f (%s rate set).",
		summary.TotalMonthlyCost, summary.RateSet)
	return c
}

func careLevelGroup(label string, cost carecalc.LevelCost) LabeledItem {
	return Group(label,
		Item("Weekly Minutes", fmt.Sprintf("%.0f", cost.WeeklyMinutes)),
		Item("Monthly Hours", fmt.Sprintf("%.1f", cost.MonthlyHours)),
		Item("Hourly Rate", fmt.Sprintf("$%.2f", cost.HourlyRate)),
		Item("Monthly Cost", fmt.Sprintf("$%.2f", cost.MonthlyCost)),
	)
}

// -- Independence-based fallback path --

// dailyHoursAtTotal holds, per care category, the attendant hours per day a
// fully dependent client requires; the month figure scales by 30. The level
// weights grade the daily figure down for lesser dependence.
var dailyHoursAtTotal = map[string]float64{
	"bathing":   1.5,
	"dressing":  1.0,
	"feeding":   1.5,
	"toileting": 1.0,
	"transfers": 0.5,
	"household": 1.0,
}

var levelWeight = map[assessment.IndependenceLevel]float64{
	assessment.Independent:         0,
	assessment.ModifiedIndependent: 0,
	assessment.Supervision:         0.25,
	assessment.MinimalAssistance:   0.33,
	assessment.ModerateAssistance:  0.5,
	assessment.MaximalAssistance:   0.75,
	assessment.TotalAssistance:     1.0,
}

const overnightMonthlyHours = 60

func (a *AttendantCareAgent) independenceBased(c SectionContent, adl *assessment.ADL) SectionContent {
	categories := adlCategories(adl)
	if len(categories) == 0 {
		return c
	}

	var monthly float64
	var rows []LabeledItem
	for _, cat := range []string{"bathing", "dressing", "feeding", "toileting", "transfers", "household"} {
		acts, ok := categories[cat]
		if !ok {
			continue
		}
		level := worstActivityLevel(acts)
		if !level.Rated() {
			continue
		}
		hours := dailyHoursAtTotal[cat] * levelWeight[level] * 30
		monthly += hours
		rows = append(rows, Item(TitleCaseLabel(cat),
			fmt.Sprintf("%s, %.1f hours/month", level.Label(), hours)))
	}

	// Overnight care is a step function: nothing while the client can
	// reposition independently, a flat monthly block otherwise.
	if acts, ok := categories["transfers"]; ok {
		level := worstActivityLevel(acts)
		if level.Rated() && level.Rank() > assessment.ModifiedIndependent.Rank() {
			monthly += overnightMonthlyHours
			rows = append(rows, Item("Overnight Care",
				fmt.Sprintf("%d.0 hours/month", overnightMonthlyHours)))
		}
	}

	if len(rows) == 0 {
		return c
	}
	rows = append(rows,
		Item("Total Monthly Hours", fmt.Sprintf("%.1f", monthly)),
		Item("Total Annual Hours", fmt.Sprintf("%.1f", monthly*12)),
	)
	c.Structured = rows
	c.Narrative = fmt.Sprintf(
		"In the absence of a completed care requirements form, attendant care needs were derived from assessed independence levels: approximately %.1f hours per month (%.1f hours annually).",
		monthly, monthly*12)
	return c
}

func adlCategories(adl *assessment.ADL) map[string]map[string]assessment.Activity {
	out := make(map[string]map[string]assessment.Activity)
	add := func(name string, acts map[string]assessment.Activity) {
		if len(acts) > 0 {
			out[name] = acts
		}
	}
	if adl.Basic != nil {
		add("bathing", adl.Basic.Bathing)
		add("dressing", adl.Basic.Dressing)
		add("feeding", adl.Basic.Feeding)
		add("transfers", adl.Basic.Transfers)
		add("toileting", adl.Basic.Toileting)
	}
	if adl.IADL != nil {
		add("household", adl.IADL.Household)
	}
	return out
}

// worstActivityLevel aggregates a category to its most dependent rated level.
func worstActivityLevel(acts map[string]assessment.Activity) assessment.IndependenceLevel {
	levels := make([]assessment.IndependenceLevel, 0, len(acts))
	for _, a := range acts {
		levels = append(levels, a.Independence)
	}
	return assessment.WorstLevel(levels...)
}

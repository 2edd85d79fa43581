// Package carecalc computes attendant-care totals and monthly costs from the
// clinician-entered care-requirements form: minutes per occurrence times
// weekly frequency, rolled up through sections and levels to dollar costs.
// All formulas are pure functions of their inputs; totals are recomputed in
// full on every call.
package carecalc

import "github.com/otreport/otreport/internal/assessment"

// WeeksPerMonth is the fixed weekly-to-monthly conversion constant.
const WeeksPerMonth = 4.3

// RateSet holds the hourly rate for each attendant-care level.
type RateSet struct {
	Name   string
	Level1 float64 // routine personal care
	Level2 float64 // basic supervisory functions
	Level3 float64 // complex health care
}

// CurrentRates is the default rate set.
var CurrentRates = RateSet{Name: "current", Level1: 14.90, Level2: 14.00, Level3: 21.11}

// Rates2010 is the historical rate set for claims dated before the current
// guideline took effect.
var Rates2010 = RateSet{Name: "2010", Level1: 11.63, Level2: 9.25, Level3: 13.99}

// RateSetByName resolves a configured rate-set name. Unknown names fall back
// to the current set.
func RateSetByName(name string) RateSet {
	if name == Rates2010.Name {
		return Rates2010
	}
	return CurrentRates
}

// ActivityTotal is the weekly minutes for one line item:
// minutes x timesPerWeek, with no rounding.
func ActivityTotal(a assessment.CareActivity) float64 {
	return a.Minutes * a.TimesPerWeek
}

// SectionTotal sums the weekly minutes of a section's activities.
func SectionTotal(s assessment.CareSection) float64 {
	var total float64
	for _, a := range s.Activities {
		total += ActivityTotal(a)
	}
	return total
}

// LevelTotal sums the weekly minutes of a level's sections.
func LevelTotal(l assessment.CareLevel) float64 {
	var total float64
	for _, s := range l.Sections {
		total += SectionTotal(s)
	}
	return total
}

// LevelCost converts a level's weekly minutes to monthly hours and cost.
// Composition order is fixed: divide by 60, multiply by 4.3, multiply by the
// hourly rate.
type LevelCost struct {
	WeeklyMinutes float64 `json:"weeklyMinutes"`
	WeeklyHours   float64 `json:"weeklyHours"`
	MonthlyHours  float64 `json:"monthlyHours"`
	HourlyRate    float64 `json:"hourlyRate"`
	MonthlyCost   float64 `json:"monthlyCost"`
}

func costFor(l assessment.CareLevel, rate float64) LevelCost {
	minutes := LevelTotal(l)
	weeklyHours := minutes / 60
	monthlyHours := weeklyHours * WeeksPerMonth
	return LevelCost{
		WeeklyMinutes: minutes,
		WeeklyHours:   weeklyHours,
		MonthlyHours:  monthlyHours,
		HourlyRate:    rate,
		MonthlyCost:   monthlyHours * rate,
	}
}

// Summary is the full cost rollup for a care-requirements form.
type Summary struct {
	RateSet          string    `json:"rateSet"`
	Level1           LevelCost `json:"level1"`
	Level2           LevelCost `json:"level2"`
	Level3           LevelCost `json:"level3"`
	TotalMonthlyCost float64   `json:"totalMonthlyCost"`
}

// Summarize computes the three level costs and the monthly grand total.
func Summarize(form *assessment.AttendantCare, rates RateSet) Summary {
	s := Summary{RateSet: rates.Name}
	if form == nil {
		return s
	}
	s.Level1 = costFor(form.Level1, rates.Level1)
	s.Level2 = costFor(form.Level2, rates.Level2)
	s.Level3 = costFor(form.Level3, rates.Level3)
	s.TotalMonthlyCost = s.Level1.MonthlyCost + s.Level2.MonthlyCost + s.Level3.MonthlyCost
	return s
}

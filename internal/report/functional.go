package report

import (
	"strings"

	"github.com/otreport/otreport/internal/assessment"
)

// FunctionalAgent renders objective findings: tolerance and transfer tables
// plus a short narrative for balance and general notes.
type FunctionalAgent struct {
	baseAgent
}

func NewFunctionalAgent(reg *Registry) *FunctionalAgent {
	return &FunctionalAgent{newBaseAgent(reg, SectionFunctional)}
}

func (a *FunctionalAgent) GenerateSection(doc *assessment.Document) (SectionContent, error) {
	c := a.content()
	fa := doc.FunctionalAssessment
	if fa == nil {
		return c, nil
	}

	for _, f := range fa.RangeOfMotion {
		label := strings.TrimSpace(f.Joint + " " + f.Movement)
		if label == "" {
			continue
		}
		g := Group("Range of Motion - "+label,
			Item("Left", FormatClinicalValue(f.Left, "")),
			Item("Right", FormatClinicalValue(f.Right, "")),
			Item("Notes", f.Notes),
		)
		c.Structured = append(c.Structured, pruneGroup(g))
	}
	for _, f := range fa.ManualMuscle {
		if f.MuscleGroup == "" {
			continue
		}
		g := Group("Strength - "+f.MuscleGroup,
			Item("Left", FormatClinicalValue(f.Left, "")),
			Item("Right", FormatClinicalValue(f.Right, "")),
			Item("Notes", f.Notes),
		)
		c.Structured = append(c.Structured, pruneGroup(g))
	}
	if fa.Transfers != nil {
		g := Group("Transfers",
			Item("Bed Mobility", fa.Transfers.BedMobility),
			Item("Sit To Stand", fa.Transfers.SitToStand),
			Item("Toilet", fa.Transfers.Toilet),
			Item("Shower", fa.Transfers.Shower),
			Item("Vehicle", fa.Transfers.Vehicle),
		)
		if pruned := pruneGroup(g); len(pruned.Children) > 0 {
			c.Structured = append(c.Structured, pruned)
		}
	}
	if fa.PosturalTolerances != nil {
		g := Group("Postural Tolerances",
			Item("Sitting", fa.PosturalTolerances.Sitting),
			Item("Standing", fa.PosturalTolerances.Standing),
			Item("Walking", fa.PosturalTolerances.Walking),
			Item("Lifting", fa.PosturalTolerances.Lifting),
		)
		if pruned := pruneGroup(g); len(pruned.Children) > 0 {
			c.Structured = append(c.Structured, pruned)
		}
	}

	var fragments []string
	if fa.Balance != "" {
		fragments = append(fragments, "Balance: "+fa.Balance)
	}
	if fa.Notes != "" {
		fragments = append(fragments, fa.Notes)
	}
	c.Narrative = joinFragments(fragments...)
	return c, nil
}

package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/otreport/otreport/internal/assessment"
)

// TimelineEvent is one dated (or undated) entry on the recovery timeline.
type TimelineEvent struct {
	Date        string `json:"date,omitempty"` // YYYY-MM-DD; empty sorts last
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// BuildTimeline assembles a chronological recovery timeline from the injury
// date and treatment start dates. Entries without a parseable date sort
// after all dated entries, preserving their original order among themselves.
func BuildTimeline(mh *assessment.MedicalHistory) []TimelineEvent {
	if mh == nil {
		return nil
	}

	var events []TimelineEvent
	if mh.Injury != nil && (mh.Injury.Date != "" || mh.Injury.Circumstance != "") {
		desc := "Injury sustained"
		if mh.Injury.Circumstance != "" {
			desc = "Injury sustained: " + mh.Injury.Circumstance
		}
		events = append(events, TimelineEvent{Date: mh.Injury.Date, Description: desc})
	}
	for _, t := range mh.CurrentTreatment {
		name := t.Provider
		if name == "" {
			name = t.ProviderType
		}
		if name == "" {
			continue
		}
		desc := "Treatment with " + name
		if t.Focus != "" {
			desc += " for " + t.Focus
		}
		if t.Frequency != "" {
			desc += " (" + t.Frequency + ")"
		}
		events = append(events, TimelineEvent{
			Date:        t.StartDate,
			Description: desc,
			Current:     t.EndDate == "",
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		di, oki := parseISO(events[i].Date)
		dj, okj := parseISO(events[j].Date)
		switch {
		case oki && okj:
			return di.Before(dj)
		case oki:
			return true // dated before undated
		default:
			return false
		}
	})
	return events
}

func parseISO(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", date)
	return t, err == nil
}

// ProgressionNarrative renders the timeline as prose, distinguishing
// completed from ongoing treatment.
func ProgressionNarrative(events []TimelineEvent) string {
	var past, current []string
	for _, e := range events {
		if strings.HasPrefix(e.Description, "Injury sustained") {
			continue
		}
		desc := strings.TrimPrefix(e.Description, "Treatment with ")
		if e.Current {
			current = append(current, desc)
		} else {
			past = append(past, desc)
		}
	}

	var lines []string
	if len(past) > 0 {
		lines = append(lines, fmt.Sprintf("The client previously received treatment with %s.", proseList(past)))
	}
	if len(current) > 0 {
		lines = append(lines, fmt.Sprintf("The client is currently receiving treatment with %s.", proseList(current)))
	}
	return strings.Join(lines, " ")
}

func proseList(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

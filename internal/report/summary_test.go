package report

import (
	"strings"
	"testing"
	"time"

	"github.com/otreport/otreport/internal/assessment"
)

func TestAgeAt(t *testing.T) {
	cases := []struct {
		dob  string
		ref  string
		want int
	}{
		{"2000-03-15", "2025-03-14", 24}, // day before birthday
		{"2000-03-15", "2025-03-15", 25}, // on the birthday
		{"2000-03-15", "2025-03-16", 25},
		{"2000-12-31", "2025-01-01", 24},
	}
	for _, c := range cases {
		ref, _ := time.Parse("2006-01-02", c.ref)
		got, err := AgeAt(c.dob, ref)
		if err != nil {
			t.Fatalf("AgeAt(%q, %q): %v", c.dob, c.ref, err)
		}
		if got != c.want {
			t.Errorf("AgeAt(%q, %q) = %d, want %d", c.dob, c.ref, got, c.want)
		}
	}

	if _, err := AgeAt("not a date", time.Now()); err == nil {
		t.Error("expected error for unparseable date of birth")
	}
}

func TestSummaryAgentIntro(t *testing.T) {
	agent := NewSummaryAgent(NewRegistry())
	agent.now = func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}

	doc := &assessment.Document{
		Demographics: &assessment.Demographics{
			FirstName:   "Jordan",
			LastName:    "Blake",
			DateOfBirth: "1980-09-20",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "Jordan Blake is a 44-year-old client assessed in their home environment."
	if c.Narrative != want {
		t.Errorf("intro = %q, want %q", c.Narrative, want)
	}
}

func TestSummaryAgentConditionalParagraphs(t *testing.T) {
	agent := NewSummaryAgent(NewRegistry())

	doc := &assessment.Document{
		Symptoms: &assessment.Symptoms{
			Physical: []assessment.Symptom{{Location: "Lower back"}},
		},
		ADL: &assessment.ADL{},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.Narrative, "ongoing symptoms") {
		t.Error("expected the symptom paragraph")
	}
	if !strings.Contains(c.Narrative, "activities of daily living") {
		t.Error("expected the ADL paragraph")
	}
	if strings.Contains(c.Narrative, "Objective testing") {
		t.Error("functional paragraph should require functional data")
	}
	if strings.Contains(c.Narrative, "daily routines") {
		t.Error("typical-day paragraph should require typical-day data")
	}
}

func TestSummaryAgentEmptyDocument(t *testing.T) {
	agent := NewSummaryAgent(NewRegistry())
	c, err := agent.GenerateSection(&assessment.Document{})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %q", c.Narrative)
	}
}

package report

import "testing"

func TestFormatClinicalValue(t *testing.T) {
	cases := []struct {
		value interface{}
		unit  string
		want  string
	}{
		{nil, "", "Not assessed"},
		{"", "degrees", "Not assessed"},
		{0, "degrees", "Not assessed"},
		{0.0, "kg", "Not assessed"},
		{false, "", "Not assessed"},
		{45, "degrees", "45 degrees"},
		{"within normal limits", "", "within normal limits"},
		{3.5, "kg", "3.5 kg"},
		{true, "", "true"},
	}
	for _, c := range cases {
		if got := FormatClinicalValue(c.value, c.unit); got != c.want {
			t.Errorf("FormatClinicalValue(%v, %q) = %q, want %q", c.value, c.unit, got, c.want)
		}
	}
}

func TestFormatClinicalList(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"bathing"}, "bathing"},
		{[]string{"bathing", "dressing"}, "bathing and dressing"},
		{[]string{"bathing", "dressing", "feeding"}, "bathing, dressing and feeding"},
	}
	for _, c := range cases {
		if got := FormatClinicalList(c.items); got != c.want {
			t.Errorf("FormatClinicalList(%v) = %q, want %q", c.items, got, c.want)
		}
	}
}

func TestFormatClinicalDate(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"", ""},
		{"2023-06-15", "June 15, 2023"},
		{"2023-01-02", "January 2, 2023"},
		{"last spring", "last spring"}, // unparseable stays visible
	}
	for _, c := range cases {
		if got := FormatClinicalDate(c.date); got != c.want {
			t.Errorf("FormatClinicalDate(%q) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestTitleCaseLabel(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"bathing", "Bathing"},
		{"emergencyContact", "Emergency Contact"},
		{"living_arrangement", "Living Arrangement"},
		{"dateOfBirth", "Date Of Birth"},
	}
	for _, c := range cases {
		if got := TitleCaseLabel(c.key); got != c.want {
			t.Errorf("TitleCaseLabel(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestJoinFragments(t *testing.T) {
	if got := joinFragments("a", "", "  ", "b"); got != "a\n\nb" {
		t.Errorf("joinFragments = %q", got)
	}
	if got := joinFragments("", "   "); got != "" {
		t.Errorf("all-empty join = %q", got)
	}
}

package assessment

import "testing"

func TestRankOrdering(t *testing.T) {
	ordered := []IndependenceLevel{
		Independent, ModifiedIndependent, Supervision,
		MinimalAssistance, ModerateAssistance, MaximalAssistance, TotalAssistance,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestRankSentinels(t *testing.T) {
	if NotApplicable.Rank() != -1 {
		t.Errorf("not_applicable should be unranked, got %d", NotApplicable.Rank())
	}
	if NotAssessed.Rank() != -1 {
		t.Errorf("not_assessed should be unranked, got %d", NotAssessed.Rank())
	}
	if IndependenceLevel("bogus").Rated() {
		t.Error("unknown level should not be rated")
	}
}

func TestWorstLevel(t *testing.T) {
	got := WorstLevel(ModifiedIndependent, TotalAssistance, Supervision)
	if got != TotalAssistance {
		t.Errorf("expected total_assistance, got %s", got)
	}
}

func TestWorstLevel_IgnoresSentinels(t *testing.T) {
	got := WorstLevel(NotApplicable, Supervision, NotAssessed)
	if got != Supervision {
		t.Errorf("expected supervision, got %s", got)
	}
}

func TestWorstLevel_AllUnrated(t *testing.T) {
	if got := WorstLevel(NotApplicable, NotAssessed); got != "" {
		t.Errorf("expected empty level, got %q", got)
	}
}

func TestLabel(t *testing.T) {
	if ModifiedIndependent.Label() != "modified independent" {
		t.Errorf("unexpected label %q", ModifiedIndependent.Label())
	}
}

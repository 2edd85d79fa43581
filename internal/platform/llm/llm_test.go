package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockProvider struct {
	lastSystem string
	lastUser   string
	response   string
	err        error
}

func (m *mockProvider) Complete(_ context.Context, systemPrompt, userPrompt string, _ int, _ float64) (string, error) {
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.response, m.err
}

func TestRewriteNarrative(t *testing.T) {
	p := &mockProvider{response: "  The client reports ongoing lower back pain.  "}

	out, err := RewriteNarrative(context.Background(), p, "Subjective Information",
		"client reports back pain", "tighten the wording")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "The client reports ongoing lower back pain." {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(p.lastUser, "Subjective Information") {
		t.Errorf("user prompt missing section title: %q", p.lastUser)
	}
	if !strings.Contains(p.lastUser, "tighten the wording") {
		t.Errorf("user prompt missing instructions: %q", p.lastUser)
	}
}

func TestRewriteNarrativeNilProvider(t *testing.T) {
	_, err := RewriteNarrative(context.Background(), nil, "t", "n", "i")
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestRewriteNarrativeEmptyInputs(t *testing.T) {
	p := &mockProvider{response: "x"}
	if _, err := RewriteNarrative(context.Background(), p, "t", "", "i"); err == nil {
		t.Error("expected error for empty narrative")
	}
	if _, err := RewriteNarrative(context.Background(), p, "t", "n", "  "); err == nil {
		t.Error("expected error for empty instructions")
	}
}

func TestRewriteNarrativeProviderError(t *testing.T) {
	p := &mockProvider{err: errors.New("rate limited")}
	if _, err := RewriteNarrative(context.Background(), p, "t", "n", "i"); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestRewriteNarrativeEmptyResponse(t *testing.T) {
	p := &mockProvider{response: "   "}
	if _, err := RewriteNarrative(context.Background(), p, "t", "n", "i"); err == nil {
		t.Error("expected error for empty provider response")
	}
}

func TestNewAnthropicRequiresKey(t *testing.T) {
	if _, err := NewAnthropic("", "claude-sonnet-4-20250514"); err == nil {
		t.Error("expected error for missing API key")
	}
}

// Package llm handles LLM provider communication for clinician-directed
// section rewriting. The provider is optional: without an API key the server
// runs fully deterministic and the rewrite endpoint reports the feature as
// disabled.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("llm: no provider configured")

// Provider is the interface for LLM backends.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// anthropicClient wraps the Anthropic Messages API behind Provider so the
// report service never touches SDK types directly.
type anthropicClient struct {
	api   anthropic.Client
	model string
}

// NewAnthropic builds an Anthropic-backed provider. An empty API key is an
// error so callers fail at startup rather than on the first rewrite request.
func NewAnthropic(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: API key not set")
	}
	return &anthropicClient{
		api:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}, nil
}

func (c *anthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: anthropic completion: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		// Tool-use and thinking blocks carry no narrative text.
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("llm: anthropic response had no text content")
	}
	return out.String(), nil
}

const rewriteSystemPrompt = "You are an occupational therapist revising a section of an " +
	"in-home assessment report. Rewrite the section narrative per the clinician's " +
	"instructions. Preserve every clinical fact; do not invent findings, measurements " +
	"or dates that are not in the original text. Output only the revised narrative, " +
	"with no preamble or markdown."

const (
	rewriteMaxTokens   = 2048
	rewriteTemperature = 0.2
)

// RewriteNarrative asks the provider to revise one section's narrative per
// the clinician's instructions. A nil provider returns ErrDisabled.
func RewriteNarrative(ctx context.Context, p Provider, title, narrative, instructions string) (string, error) {
	if p == nil {
		return "", ErrDisabled
	}
	if strings.TrimSpace(narrative) == "" {
		return "", fmt.Errorf("llm: section has no narrative to rewrite")
	}
	if strings.TrimSpace(instructions) == "" {
		return "", fmt.Errorf("llm: rewrite instructions are empty")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Section: %s\n\n", title)
	fmt.Fprintf(&sb, "Current narrative:\n%s\n\n", narrative)
	fmt.Fprintf(&sb, "Clinician instructions:\n%s\n", instructions)

	out, err := p.Complete(ctx, rewriteSystemPrompt, sb.String(), rewriteMaxTokens, rewriteTemperature)
	if err != nil {
		return "", fmt.Errorf("llm: rewrite: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("llm: provider returned an empty rewrite")
	}
	return out, nil
}

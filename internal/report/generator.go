package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/otreport/otreport/internal/assessment"
)

// State tracks the generator through one linear run. There are no retries
// and no global failure state for per-section errors: a failing agent
// demotes only its own section.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateGenerating State = "generating_sections"
	StateFormatting State = "formatting"
	StateComplete   State = "complete"
)

// SectionResult is the explicit per-section outcome: either content or an
// error. Skip-and-continue is a visible branch, not a log side effect.
type SectionResult struct {
	Section Section
	Content SectionContent
	Err     error
}

// Generator orchestrates the section agents in registry order.
type Generator struct {
	registry *Registry
	agents   map[Section]Agent
	logger   zerolog.Logger
	state    State
}

// NewGenerator builds a generator over an explicit registry and agent set.
// Agents whose section is not registered are ignored; registered sections
// with no agent are skipped at generation time.
func NewGenerator(registry *Registry, agents []Agent, logger zerolog.Logger) *Generator {
	g := &Generator{
		registry: registry,
		agents:   make(map[Section]Agent, len(agents)),
		logger:   logger,
		state:    StateIdle,
	}
	for _, a := range agents {
		if _, ok := registry.Config(a.Section()); ok {
			g.agents[a.Section()] = a
		}
	}
	return g
}

// State returns the generator's position in its last or current run.
func (g *Generator) State() State { return g.state }

// GenerateSections runs every registered agent against a snapshot of the
// document and returns the per-section results in registry order. A section
// agent error or a content/type mismatch demotes only that section.
func (g *Generator) GenerateSections(doc *assessment.Document) []SectionResult {
	g.state = StateLoading
	snapshot := snapshotDocument(doc)

	g.state = StateGenerating
	var results []SectionResult
	for _, section := range g.registry.OrderedSections() {
		agent, ok := g.agents[section]
		if !ok {
			continue // no agent registered: silently skipped
		}
		results = append(results, g.runAgent(agent, snapshot))
	}
	return results
}

func (g *Generator) runAgent(agent Agent, doc *assessment.Document) SectionResult {
	section := agent.Section()

	content, err := safeGenerate(agent, doc)
	if err != nil {
		g.logger.Warn().Str("section", string(section)).Err(err).Msg("section generation failed")
		return SectionResult{Section: section, Err: err}
	}
	if err := ValidateContent(content); err != nil {
		// A shape mismatch is demoted like an agent failure rather than
		// aborting the run; one broken agent must not take down the document.
		g.logger.Warn().Str("section", string(section)).Err(err).Msg("section content mismatch")
		return SectionResult{Section: section, Err: err}
	}
	return SectionResult{Section: section, Content: content}
}

// safeGenerate guards the orchestrator boundary against panicking agents.
func safeGenerate(agent Agent, doc *assessment.Document) (content SectionContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent panic: %v", r)
		}
	}()
	return agent.GenerateSection(doc)
}

// GenerateReport renders the full report as one string with section headers.
func (g *Generator) GenerateReport(doc *assessment.Document) string {
	results := g.GenerateSections(doc)

	g.state = StateFormatting
	text := FormatReport(results)
	g.state = StateComplete
	return text
}

// SectionMap returns the successful, non-empty sections keyed by section
// name, for interactive preview UIs. Derived from the same generation step
// as the full report.
func (g *Generator) SectionMap(doc *assessment.Document) map[Section]SectionContent {
	out := make(map[Section]SectionContent)
	for _, r := range g.GenerateSections(doc) {
		if r.Err == nil && !r.Content.Empty() {
			out[r.Section] = r.Content
		}
	}
	return out
}

// RegenerateSection re-runs a single section's agent against the document,
// leaving every other section untouched. Unknown sections and sections
// without an agent return an error rather than a silent skip, because the
// caller asked for that specific section.
func (g *Generator) RegenerateSection(doc *assessment.Document, section Section) (SectionContent, error) {
	agent, ok := g.agents[section]
	if !ok {
		return SectionContent{}, fmt.Errorf("no agent registered for section %q", section)
	}
	result := g.runAgent(agent, snapshotDocument(doc))
	if result.Err != nil {
		return SectionContent{}, result.Err
	}
	return result.Content, nil
}

// LoadDocument reads and parses an assessment document from disk. Load and
// parse failures are fatal for the run; no partial report is produced from
// unreadable input.
func LoadDocument(path string) (*assessment.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assessment file: %w", err)
	}
	var doc assessment.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse assessment file: %w", err)
	}
	return &doc, nil
}

// GenerateReportFromFile loads an assessment from disk and renders it.
func (g *Generator) GenerateReportFromFile(path string) (string, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return "", err
	}
	return g.GenerateReport(doc), nil
}

// snapshotDocument deep-copies the input so concurrent form edits during an
// in-flight run cannot leak into already-generated sections. A JSON round
// trip is sufficient because the document is itself a JSON value.
func snapshotDocument(doc *assessment.Document) *assessment.Document {
	if doc == nil {
		return &assessment.Document{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	var copy assessment.Document
	if err := json.Unmarshal(raw, &copy); err != nil {
		return doc
	}
	return &copy
}

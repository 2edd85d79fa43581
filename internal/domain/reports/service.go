package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/otreport/otreport/internal/domain/assessments"
	"github.com/otreport/otreport/internal/platform/llm"
	"github.com/otreport/otreport/internal/report"
)

var (
	// ErrSectionLocked is returned when a clinician has frozen a section
	// and a regeneration would overwrite it.
	ErrSectionLocked = errors.New("section is locked")

	// ErrSectionNotFound is returned for section keys the report does not
	// carry.
	ErrSectionNotFound = errors.New("section not found")
)

// DocumentSource resolves an assessment record by id. Satisfied by the
// assessments service.
type DocumentSource interface {
	GetAssessment(ctx context.Context, id uuid.UUID) (*assessments.Record, error)
}

// Service runs the report pipeline over stored assessments and persists the
// results.
type Service struct {
	repo     Repository
	docs     DocumentSource
	gen      *report.Generator
	provider llm.Provider
	logger   zerolog.Logger
}

// NewService wires the report pipeline to storage. provider may be nil; the
// rewrite path then returns llm.ErrDisabled.
func NewService(repo Repository, docs DocumentSource, gen *report.Generator, provider llm.Provider, logger zerolog.Logger) *Service {
	return &Service{repo: repo, docs: docs, gen: gen, provider: provider, logger: logger}
}

// GenerateReport runs every section agent against the stored assessment and
// persists the result. Failed sections are logged and omitted; a report with
// some sections missing is still a report.
func (s *Service) GenerateReport(ctx context.Context, assessmentID uuid.UUID) (*Report, error) {
	rec, err := s.docs.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}

	results := s.gen.GenerateSections(rec.Document)
	sections := make(map[report.Section]report.SectionContent)
	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn().Err(r.Err).Str("section", string(r.Section)).Msg("section generation failed")
			continue
		}
		if r.Content.Empty() {
			continue
		}
		sections[r.Section] = r.Content
	}

	rep := &Report{
		AssessmentID: assessmentID,
		Content:      report.FormatReport(results),
		Sections:     sections,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// RegenerateSection re-runs one section's agent against the current
// assessment document and, when instructions are given, rewrites the
// narrative through the LLM provider. Locked sections refuse regeneration.
func (s *Service) RegenerateSection(ctx context.Context, reportID uuid.UUID, section report.Section, instructions string) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if existing, ok := rep.Sections[section]; ok && existing.Locked {
		return nil, ErrSectionLocked
	}

	rec, err := s.docs.GetAssessment(ctx, rep.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	content, err := s.gen.RegenerateSection(rec.Document, section)
	if err != nil {
		return nil, err
	}

	if instructions != "" {
		if content.Narrative == "" {
			return nil, fmt.Errorf("section %q has no narrative to rewrite", section)
		}
		rewritten, err := llm.RewriteNarrative(ctx, s.provider, content.Title, content.Narrative, instructions)
		if err != nil {
			return nil, err
		}
		content.Narrative = rewritten
	}

	if rep.Sections == nil {
		rep.Sections = make(map[report.Section]report.SectionContent)
	}
	rep.Sections[section] = content
	rep.Content = renderSections(rep.Sections)
	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// SetSectionLock freezes or unfreezes one section of a stored report.
func (s *Service) SetSectionLock(ctx context.Context, reportID uuid.UUID, section report.Section, locked bool) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	content, ok := rep.Sections[section]
	if !ok {
		return nil, ErrSectionNotFound
	}
	content.Locked = locked
	rep.Sections[section] = content
	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListReports(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListReportsByAssessment(ctx context.Context, assessmentID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	return s.repo.ListByAssessment(ctx, assessmentID, limit, offset)
}

// renderSections rebuilds the plain-text document from stored sections in
// registry order.
func renderSections(sections map[report.Section]report.SectionContent) string {
	ordered := make([]report.SectionContent, 0, len(sections))
	for _, c := range sections {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	var rendered []string
	for _, c := range ordered {
		if c.Empty() {
			continue
		}
		rendered = append(rendered, report.FormatSection(c))
	}
	return strings.Join(rendered, "\n\n")
}

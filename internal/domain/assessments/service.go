package assessments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/otreport/otreport/internal/assessment"
)

// Service wraps the repository with the validation the handlers rely on.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// clientName derives the stored display name from the document when the
// caller did not supply one.
func clientName(doc *assessment.Document) string {
	if doc == nil || doc.Demographics == nil {
		return ""
	}
	return strings.TrimSpace(doc.Demographics.FirstName + " " + doc.Demographics.LastName)
}

func (s *Service) CreateAssessment(ctx context.Context, rec *Record) error {
	if rec.Document == nil {
		return fmt.Errorf("document is required")
	}
	if rec.ClientName == "" {
		rec.ClientName = clientName(rec.Document)
	}
	if rec.ClientName == "" {
		return fmt.Errorf("client_name is required when the document has no demographics")
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateAssessment(ctx context.Context, rec *Record) error {
	if rec.Document == nil {
		return fmt.Errorf("document is required")
	}
	if rec.ClientName == "" {
		rec.ClientName = clientName(rec.Document)
	}
	return s.repo.Update(ctx, rec)
}

func (s *Service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAssessments(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return s.repo.List(ctx, limit, offset)
}

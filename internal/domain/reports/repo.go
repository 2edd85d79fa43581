package reports

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists generated reports.
type Repository interface {
	Create(ctx context.Context, rep *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	Update(ctx context.Context, rep *Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Report, int, error)
	ListByAssessment(ctx context.Context, assessmentID uuid.UUID, limit, offset int) ([]*Report, int, error)
}

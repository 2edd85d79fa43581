package assessments

import (
	"time"

	"github.com/google/uuid"

	"github.com/otreport/otreport/internal/assessment"
)

// Record is one stored intake assessment: the client it belongs to plus the
// full document as captured by the intake forms. The document is persisted
// as a single JSONB column; its internal structure is owned by the
// assessment package, not the schema.
type Record struct {
	ID         uuid.UUID            `json:"id"`
	ClientName string               `json:"client_name"`
	Document   *assessment.Document `json:"document"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

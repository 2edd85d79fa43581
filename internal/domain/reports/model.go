package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/otreport/otreport/internal/report"
)

// Report is one generated report, persisted alongside the assessment it was
// produced from. Content is the rendered plain-text document; Sections keeps
// the per-section structure so individual sections can be regenerated or
// locked without re-running the whole pipeline.
type Report struct {
	ID           uuid.UUID                                `json:"id"`
	AssessmentID uuid.UUID                                `json:"assessment_id"`
	Content      string                                   `json:"content"`
	Sections     map[report.Section]report.SectionContent `json:"sections"`
	CreatedAt    time.Time                                `json:"created_at"`
	UpdatedAt    time.Time                                `json:"updated_at"`
}

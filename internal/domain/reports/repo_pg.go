package reports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func (r *repoPG) q() queryable { return r.pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const repCols = `id, assessment_id, content, sections, created_at, updated_at`

func (r *repoPG) scanRow(row pgx.Row) (*Report, error) {
	var rep Report
	err := row.Scan(&rep.ID, &rep.AssessmentID, &rep.Content, &rep.Sections, &rep.CreatedAt, &rep.UpdatedAt)
	return &rep, err
}

func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	return r.q().QueryRow(ctx, `
		INSERT INTO reports (id, assessment_id, content, sections)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		rep.ID, rep.AssessmentID, rep.Content, rep.Sections).Scan(&rep.CreatedAt, &rep.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return r.scanRow(r.q().QueryRow(ctx, `SELECT `+repCols+` FROM reports WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, rep *Report) error {
	return r.q().QueryRow(ctx, `
		UPDATE reports SET content=$2, sections=$3, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		rep.ID, rep.Content, rep.Sections).Scan(&rep.UpdatedAt)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q().Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.q().QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q().Query(ctx, `
		SELECT `+repCols+` FROM reports
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) ListByAssessment(ctx context.Context, assessmentID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.q().QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE assessment_id = $1`, assessmentID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q().Query(ctx, `
		SELECT `+repCols+` FROM reports WHERE assessment_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, assessmentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) collect(rows pgx.Rows, total int) ([]*Report, int, error) {
	var reps []*Report
	for rows.Next() {
		rep, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		reps = append(reps, rep)
	}
	return reps, total, rows.Err()
}

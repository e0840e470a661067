package activity

import (
	"context"
	"database/sql"
)

// PostgresRepo persists entries via database/sql (pgx stdlib driver).
//
// Assumed table:
//
//	activities(id TEXT PK, church_id TEXT, type TEXT, status TEXT,
//	           title TEXT, description TEXT, metadata JSONB, created_at TIMESTAMPTZ)
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Append(ctx context.Context, e Entry) error {
	const q = `
INSERT INTO activities (id, church_id, type, status, title, description, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	metadata := e.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := r.db.ExecContext(ctx, q,
		e.ID,
		e.ChurchID,
		e.Type,
		e.Status,
		e.Title,
		e.Description,
		metadata,
		e.CreatedAt,
	)
	return err
}

func (r *PostgresRepo) ListByChurch(ctx context.Context, churchID string, limit int) ([]Entry, error) {
	const q = `
SELECT id, church_id, type, status, title, COALESCE(description, ''), COALESCE(metadata::text, '{}'), created_at
FROM activities
WHERE church_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.db.QueryContext(ctx, q, churchID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.ChurchID,
			&e.Type,
			&e.Status,
			&e.Title,
			&e.Description,
			&e.Metadata,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

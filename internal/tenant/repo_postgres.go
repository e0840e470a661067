package tenant

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresStore reads churches through database/sql (pgx stdlib driver).
//
// Assumed table:
//
//	churches(id TEXT PK, name TEXT, status TEXT, greeting TEXT, created_at, updated_at)
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (Church, error) {
	const q = `
SELECT id, name, status, COALESCE(greeting, ''), created_at, updated_at
FROM churches
WHERE id = $1
`
	var c Church
	if err := s.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID,
		&c.Name,
		&c.Status,
		&c.Greeting,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Church{}, ErrNotFound
		}
		return Church{}, err
	}
	return c, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-profile-backend/internal/domain"

	"github.com/google/uuid"
)

type referenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) domain.ReferenceRepository {
	return &referenceRepository{db: db}
}

func table(kind domain.ReferenceKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown reference kind %q", kind)
	}
	return string(kind), nil
}

// GetOrCreate inserts with ON CONFLICT DO NOTHING, then reads the row back by name.
// The UNIQUE(name) constraint makes the winner of a race the only row.
func (r *referenceRepository) GetOrCreate(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, bool, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, false, err
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, name) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`, tbl),
		uuid.NewString(), name,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create %s %q: %w", kind, name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	entity, err := r.GetByName(ctx, kind, name)
	if err != nil {
		return nil, false, err
	}
	if entity == nil {
		return nil, false, fmt.Errorf("%s %q vanished after insert", kind, name)
	}
	return entity, affected == 1, nil
}

func (r *referenceRepository) GetByName(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	entity := domain.ReferenceEntity{Kind: kind}
	var id string
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, name, created_at FROM %s WHERE name = ?`, tbl), name,
	).Scan(&id, &entity.Name, &entity.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s %q: %w", kind, name, err)
	}

	if entity.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("corrupt id in %s: %w", tbl, err)
	}
	return &entity, nil
}

func (r *referenceRepository) ListNames(ctx context.Context, kind domain.ReferenceKind) ([]string, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, tbl))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"employee-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type referenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) domain.ReferenceRepository {
	return &referenceRepository{db: db}
}

// table maps a kind to its table name. Kinds are whitelisted because the name is
// interpolated into SQL.
func table(kind domain.ReferenceKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown reference kind %q", kind)
	}
	return string(kind), nil
}

// GetOrCreate relies on the UNIQUE(name) constraint: the no-op DO UPDATE makes
// RETURNING yield the existing row on conflict, and xmax = 0 only holds for a
// freshly inserted tuple.
func (r *referenceRepository) GetOrCreate(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, bool, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at, (xmax = 0) AS inserted`, tbl)

	entity := domain.ReferenceEntity{Kind: kind}
	var inserted bool
	err = r.db.QueryRow(ctx, query, name).Scan(&entity.ID, &entity.Name, &entity.CreatedAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create %s %q: %w", kind, name, err)
	}
	return &entity, inserted, nil
}

func (r *referenceRepository) GetByName(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, name, created_at FROM %s WHERE name = $1`, tbl)

	entity := domain.ReferenceEntity{Kind: kind}
	err = r.db.QueryRow(ctx, query, name).Scan(&entity.ID, &entity.Name, &entity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s %q: %w", kind, name, err)
	}
	return &entity, nil
}

func (r *referenceRepository) ListNames(ctx context.Context, kind domain.ReferenceKind) ([]string, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, tbl))
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

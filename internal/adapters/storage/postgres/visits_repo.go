package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-registry/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (
			id, pet_id, owner_id, date, comment,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		v.ID,
		v.PetID,
		v.OwnerID,
		v.Date,
		v.Comment,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VisitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return visits.Visit{}, visits.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, owner_id, date, comment, created_at, updated_at
		FROM visits
		WHERE id = $1
	`, id)

	var v visits.Visit
	if err := row.Scan(
		&v.ID,
		&v.PetID,
		&v.OwnerID,
		&v.Date,
		&v.Comment,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, owner_id, date, comment, created_at, updated_at
		FROM visits
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVisits(rows)
}

func (r *VisitsRepo) ListByPet(ctx context.Context, petID string) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, owner_id, date, comment, created_at, updated_at
		FROM visits
		WHERE pet_id = $1
		ORDER BY date DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVisits(rows)
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			date = $2,
			comment = $3,
			updated_at = $4
		WHERE id = $1
	`,
		v.ID,
		v.Date,
		v.Comment,
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func collectVisits(rows *sql.Rows) ([]visits.Visit, error) {
	out := make([]visits.Visit, 0)
	for rows.Next() {
		var v visits.Visit
		if err := rows.Scan(
			&v.ID,
			&v.PetID,
			&v.OwnerID,
			&v.Date,
			&v.Comment,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"pet-registry/internal/domain/personnel"
)

type PersonnelRepo struct {
	db *sql.DB
}

func NewPersonnelRepo(db *sql.DB) *PersonnelRepo {
	return &PersonnelRepo{db: db}
}

func (r *PersonnelRepo) Create(ctx context.Context, p personnel.Personnel) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO personnel (
			id, name, email, contact_number, role, password_hash,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.Name,
		p.Email,
		p.ContactNumber,
		p.Role,
		p.PasswordHash,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return personnel.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PersonnelRepo) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return personnel.Personnel{}, personnel.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, contact_number, role, password_hash, created_at, updated_at
		FROM personnel
		WHERE id = $1
	`, id)
	return scanPersonnel(row)
}

func (r *PersonnelRepo) GetByEmail(ctx context.Context, email string) (personnel.Personnel, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return personnel.Personnel{}, personnel.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, contact_number, role, password_hash, created_at, updated_at
		FROM personnel
		WHERE email = $1
	`, email)
	return scanPersonnel(row)
}

func scanPersonnel(row *sql.Row) (personnel.Personnel, error) {
	var p personnel.Personnel
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.ContactNumber,
		&p.Role,
		&p.PasswordHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrNotFound
		}
		return personnel.Personnel{}, err
	}
	return p, nil
}

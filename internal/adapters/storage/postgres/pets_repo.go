package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_id,
	name, pet_type, breed1, breed2, status,
	dob, rfid_number,
	contact, address, email,
	vaccination_history,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	history, err := marshalHistory(p.VaccinationHistory)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, pet_type, breed1, breed2, status,
			dob, rfid_number,
			contact, address, email,
			vaccination_history,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		string(p.PetType),
		p.Breed1,
		p.Breed2,
		string(p.Status),
		p.DOB,
		p.RFIDNumber,
		p.Contact,
		p.Address,
		p.Email,
		history,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		// 23505: unique_violation sobre rfid_number.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pets.ErrRFIDTaken
		}
		return err
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// GetByRFID hace el join mascota+dueño en un solo SELECT.
// LEFT JOIN: si la mascota existe pero el dueño no, el lado owner
// viene NULL y se reporta ErrOwnerMissing (distinto de ErrNotFound).
func (r *PetsRepo) GetByRFID(ctx context.Context, code string) (pets.Pet, owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.id, p.owner_id,
			p.name, p.pet_type, p.breed1, p.breed2, p.status,
			p.dob, p.rfid_number,
			p.contact, p.address, p.email,
			p.vaccination_history,
			p.created_at, p.updated_at,
			o.id, o.name, o.email, o.address, o.contact, o.role
		FROM pets p
		LEFT JOIN owners o ON o.id = p.owner_id
		WHERE p.rfid_number = $1
	`, code)

	var (
		p       pets.Pet
		history []byte

		ownerID      sql.NullString
		ownerName    sql.NullString
		ownerEmail   sql.NullString
		ownerAddress sql.NullString
		ownerContact sql.NullString
		ownerRole    sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.PetType,
		&p.Breed1,
		&p.Breed2,
		&p.Status,
		&p.DOB,
		&p.RFIDNumber,
		&p.Contact,
		&p.Address,
		&p.Email,
		&history,
		&p.CreatedAt,
		&p.UpdatedAt,
		&ownerID,
		&ownerName,
		&ownerEmail,
		&ownerAddress,
		&ownerContact,
		&ownerRole,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, owners.Owner{}, pets.ErrNotFound
		}
		return pets.Pet{}, owners.Owner{}, err
	}

	if p.VaccinationHistory, err = unmarshalHistory(history); err != nil {
		return pets.Pet{}, owners.Owner{}, err
	}

	if !ownerID.Valid {
		return pets.Pet{}, owners.Owner{}, pets.ErrOwnerMissing
	}

	o := owners.Owner{
		ID:      ownerID.String,
		Name:    ownerName.String,
		Email:   ownerEmail.String,
		Address: ownerAddress.String,
		Contact: ownerContact.String,
		Role:    owners.Role(ownerRole.String),
	}
	return p, o, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	history, err := marshalHistory(p.VaccinationHistory)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			pet_type = $3,
			breed1 = $4,
			breed2 = $5,
			status = $6,
			dob = $7,
			contact = $8,
			address = $9,
			email = $10,
			vaccination_history = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.PetType),
		p.Breed1,
		p.Breed2,
		string(p.Status),
		p.DOB,
		p.Contact,
		p.Address,
		p.Email,
		history,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		history []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.PetType,
		&p.Breed1,
		&p.Breed2,
		&p.Status,
		&p.DOB,
		&p.RFIDNumber,
		&p.Contact,
		&p.Address,
		&p.Email,
		&history,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	var err error
	if p.VaccinationHistory, err = unmarshalHistory(history); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// vaccination_history es JSONB: la historia viaja como secuencia
// anidada dentro del registro, estilo documento.
func marshalHistory(history []pets.Vaccination) ([]byte, error) {
	if history == nil {
		history = []pets.Vaccination{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal vaccination history: %w", err)
	}
	return b, nil
}

func unmarshalHistory(raw []byte) ([]pets.Vaccination, error) {
	if len(raw) == 0 {
		return []pets.Vaccination{}, nil
	}
	var history []pets.Vaccination
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("unmarshal vaccination history: %w", err)
	}
	if history == nil {
		history = []pets.Vaccination{}
	}
	return history, nil
}

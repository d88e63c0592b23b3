package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRFID: el código no cumple el formato de 5 dígitos.
	// Se rechaza antes de consultar el store.
	ErrInvalidRFID = errors.New("RFID is incorrect, should be 5 digits")
	ErrNotFound    = errors.New("pet not found")
	ErrRFIDTaken   = errors.New("RFID number already registered")
	// ErrOwnerMissing: la mascota existe pero su ownerRef no resuelve.
	// Se distingue de ErrNotFound a propósito.
	ErrOwnerMissing = errors.New("pet owner missing")
	// ErrUnavailable: falla del store o timeout; nunca datos parciales.
	ErrUnavailable = errors.New("store unavailable")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	OwnerID    string
	Name       string
	PetType    string
	Breed1     string
	Breed2     string
	DOB        time.Time
	RFIDNumber string
	Contact    string
	Address    string
	Email      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	petType := PetType(strings.TrimSpace(in.PetType))
	if petType != PetTypeDog && petType != PetTypeCat {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed1) == "" || strings.TrimSpace(in.Breed2) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.DOB.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	if !ValidRFID(in.RFIDNumber) {
		return Pet{}, ErrInvalidRFID
	}
	if !validContact(in.Contact) {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Address) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:                 uuid.NewString(),
		OwnerID:            strings.TrimSpace(in.OwnerID),
		Name:               strings.TrimSpace(in.Name),
		PetType:            petType,
		Breed1:             strings.TrimSpace(in.Breed1),
		Breed2:             strings.TrimSpace(in.Breed2),
		Status:             StatusActive,
		DOB:                in.DOB,
		RFIDNumber:         in.RFIDNumber,
		Contact:            strings.TrimSpace(in.Contact),
		Address:            strings.TrimSpace(in.Address),
		Email:              strings.TrimSpace(in.Email),
		VaccinationHistory: []Vaccination{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	Name    *string
	PetType *string
	Breed1  *string
	Breed2  *string
	Status  *string
	DOB     *time.Time
}

// Update edita los campos descriptivos. RFIDNumber es inmutable:
// no existe camino de reasignación.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.PetType != nil {
		pt := PetType(strings.TrimSpace(*in.PetType))
		if pt != PetTypeDog && pt != PetTypeCat {
			return Pet{}, ErrInvalidInput
		}
		p.PetType = pt
	}
	if in.Breed1 != nil {
		if strings.TrimSpace(*in.Breed1) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Breed1 = strings.TrimSpace(*in.Breed1)
	}
	if in.Breed2 != nil {
		if strings.TrimSpace(*in.Breed2) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Breed2 = strings.TrimSpace(*in.Breed2)
	}
	if in.Status != nil {
		st := Status(strings.TrimSpace(*in.Status))
		if st != StatusActive && st != StatusInactive {
			return Pet{}, ErrInvalidInput
		}
		p.Status = st
	}
	if in.DOB != nil {
		if in.DOB.IsZero() {
			return Pet{}, ErrInvalidInput
		}
		p.DOB = *in.DOB
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateDetailsInput struct {
	Contact *string
	Address *string
	Email   *string
}

// UpdateDetails edita las copias desnormalizadas de contacto.
func (s *Service) UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Contact != nil {
		if !validContact(*in.Contact) {
			return Pet{}, ErrInvalidInput
		}
		p.Contact = strings.TrimSpace(*in.Contact)
	}
	if in.Address != nil {
		if strings.TrimSpace(*in.Address) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// AddVaccination agrega una entrada al final de la historia
// (orden de inserción; el orden de salida lo decide el composer).
func (s *Service) AddVaccination(ctx context.Context, id string, v Vaccination) (Pet, error) {
	if v.Date.IsZero() || strings.TrimSpace(v.VaccinationType) == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	v.VaccinationType = strings.TrimSpace(v.VaccinationType)
	p.VaccinationHistory = append(p.VaccinationHistory, v)
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// validContact: número de contacto de exactamente 11 dígitos.
func validContact(contact string) bool {
	contact = strings.TrimSpace(contact)
	if len(contact) != 11 {
		return false
	}
	for i := 0; i < len(contact); i++ {
		if contact[i] < '0' || contact[i] > '9' {
			return false
		}
	}
	return true
}

package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-registry/internal/domain/owners"
)

type fakeRepo struct {
	byID   map[string]Pet
	byRFID map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Pet{}, byRFID: map[string]string{}}
}

func (r *fakeRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byRFID[p.RFIDNumber]; ok {
		return ErrRFIDTaken
	}
	r.byID[p.ID] = p
	r.byRFID[p.RFIDNumber] = p.ID
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) GetByRFID(ctx context.Context, code string) (Pet, owners.Owner, error) {
	id, ok := r.byRFID[code]
	if !ok {
		return Pet{}, owners.Owner{}, ErrNotFound
	}
	return r.byID[id], owners.Owner{}, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]Pet, error) { return nil, nil }
func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byRFID, p.RFIDNumber)
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		OwnerID:    "owner-1",
		Name:       "Milo",
		PetType:    "dog",
		Breed1:     "labrador",
		Breed2:     "mixed",
		DOB:        time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
		RFIDNumber: "12345",
		Contact:    "09171234567",
		Address:    "123 Main St",
	}
}

func TestService_Create_DefaultsToActive(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != StatusActive {
		t.Errorf("expected status active, got %q", p.Status)
	}
	if p.VaccinationHistory == nil || len(p.VaccinationHistory) != 0 {
		t.Error("expected empty (non-nil) vaccination history")
	}
}

func TestService_Create_RejectsBadRFID(t *testing.T) {
	svc := NewService(newFakeRepo())

	in := validCreateInput()
	in.RFIDNumber = "12ab5"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidRFID) {
		t.Fatalf("expected ErrInvalidRFID, got %v", err)
	}
}

func TestService_Create_RejectsDuplicateRFID(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in := validCreateInput()
	in.Name = "Otro"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrRFIDTaken) {
		t.Fatalf("expected ErrRFIDTaken, got %v", err)
	}
}

func TestService_Create_RejectsBadContact(t *testing.T) {
	svc := NewService(newFakeRepo())

	in := validCreateInput()
	in.Contact = "123"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_AddVaccination_AppendsInOrder(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first := Vaccination{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "rabies"}
	second := Vaccination{Date: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "distemper"}

	if _, err := svc.AddVaccination(context.Background(), p.ID, first); err != nil {
		t.Fatalf("AddVaccination: %v", err)
	}
	updated, err := svc.AddVaccination(context.Background(), p.ID, second)
	if err != nil {
		t.Fatalf("AddVaccination: %v", err)
	}

	// Orden de inserción en el registro; el orden externo lo da el composer.
	if len(updated.VaccinationHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(updated.VaccinationHistory))
	}
	if updated.VaccinationHistory[0].VaccinationType != "rabies" {
		t.Errorf("expected insertion order preserved, got %q first", updated.VaccinationHistory[0].VaccinationType)
	}
}

func TestService_Update_KeepsRFID(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Milo Updated"
	status := "inactive"
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.RFIDNumber != p.RFIDNumber {
		t.Errorf("rfid must be immutable, got %q", updated.RFIDNumber)
	}
	if updated.Status != StatusInactive {
		t.Errorf("expected status inactive, got %q", updated.Status)
	}
}

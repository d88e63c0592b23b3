package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-registry/internal/domain/owners"
)

// -------------------------
// Test repo (cuenta accesos al store)
// -------------------------

type lookupTestRepo struct {
	pet      Pet
	owner    owners.Owner
	err      error
	queries  int
	lastCode string
}

func (r *lookupTestRepo) GetByRFID(ctx context.Context, code string) (Pet, owners.Owner, error) {
	r.queries++
	r.lastCode = code
	if r.err != nil {
		return Pet{}, owners.Owner{}, r.err
	}
	return r.pet, r.owner, nil
}

func (r *lookupTestRepo) Create(ctx context.Context, p Pet) error { return nil }

func (r *lookupTestRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	return Pet{}, ErrNotFound
}

func (r *lookupTestRepo) List(ctx context.Context) ([]Pet, error) { return nil, nil }

func (r *lookupTestRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return nil, nil
}

func (r *lookupTestRepo) Update(ctx context.Context, p Pet) error { return nil }

func (r *lookupTestRepo) Delete(ctx context.Context, id string) error { return nil }

// -------------------------
// LookupByRFID
// -------------------------

func TestLookupByRFID_InvalidFormat_SkipsStore(t *testing.T) {
	repo := &lookupTestRepo{}
	svc := NewService(repo)

	for _, code := range []string{"", "1234", "123456", "12a45", "hello"} {
		_, err := svc.LookupByRFID(context.Background(), code)
		if !errors.Is(err, ErrInvalidRFID) {
			t.Errorf("code %q: expected ErrInvalidRFID, got %v", code, err)
		}
	}
	if repo.queries != 0 {
		t.Errorf("expected zero store queries for malformed codes, got %d", repo.queries)
	}
}

func TestLookupByRFID_NotFound(t *testing.T) {
	repo := &lookupTestRepo{err: ErrNotFound}
	svc := NewService(repo)

	_, err := svc.LookupByRFID(context.Background(), "12345")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.queries != 1 {
		t.Fatalf("expected exactly one store query, got %d", repo.queries)
	}
}

func TestLookupByRFID_OwnerMissing(t *testing.T) {
	repo := &lookupTestRepo{err: ErrOwnerMissing}
	svc := NewService(repo)

	_, err := svc.LookupByRFID(context.Background(), "12345")
	if !errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("expected ErrOwnerMissing, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("ErrOwnerMissing must not match ErrNotFound")
	}
}

func TestLookupByRFID_StoreFailure_MapsToUnavailable(t *testing.T) {
	repo := &lookupTestRepo{err: errors.New("connection refused")}
	svc := NewService(repo)

	_, err := svc.LookupByRFID(context.Background(), "12345")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLookupByRFID_Success(t *testing.T) {
	repo := &lookupTestRepo{
		pet: Pet{
			RFIDNumber: "12345",
			Name:       "Milo",
			PetType:    PetTypeDog,
		},
		owner: owners.Owner{Name: "Jane Doe"},
	}
	svc := NewService(repo)

	result, err := svc.LookupByRFID(context.Background(), "12345")
	if err != nil {
		t.Fatalf("LookupByRFID: %v", err)
	}
	if result.Owner.Name != "Jane Doe" {
		t.Errorf("expected owner 'Jane Doe', got %q", result.Owner.Name)
	}
	if repo.lastCode != "12345" {
		t.Errorf("expected query for code 12345, got %q", repo.lastCode)
	}
}

// -------------------------
// ComposeLookup
// -------------------------

func TestComposeLookup_SortsHistoryDescending(t *testing.T) {
	l := RFIDLookup{
		Pet: Pet{
			RFIDNumber: "12345",
			Name:       "Milo",
			PetType:    PetTypeDog,
			Breed1:     "labrador",
			Breed2:     "mixed",
			Contact:    "09171234567",
			Address:    "123 Main St",
			VaccinationHistory: []Vaccination{
				{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "rabies"},
				{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "distemper"},
			},
		},
		Owner: owners.Owner{Name: "Jane Doe"},
	}

	out := ComposeLookup(l, "Ana Reyes")

	if len(out.VaccinationHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.VaccinationHistory))
	}
	if out.VaccinationHistory[0].VaccinationType != "distemper" {
		t.Errorf("expected most recent entry first, got %q", out.VaccinationHistory[0].VaccinationType)
	}
	if out.VaccinationHistory[1].VaccinationType != "rabies" {
		t.Errorf("expected oldest entry last, got %q", out.VaccinationHistory[1].VaccinationType)
	}
	if out.OwnerName != "Jane Doe" {
		t.Errorf("expected ownerName 'Jane Doe', got %q", out.OwnerName)
	}
	if out.PersonnelName != "Ana Reyes" {
		t.Errorf("expected personnelName 'Ana Reyes', got %q", out.PersonnelName)
	}
}

func TestComposeLookup_StableForEqualDates(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	l := RFIDLookup{
		Pet: Pet{
			VaccinationHistory: []Vaccination{
				{Date: date, VaccinationType: "first"},
				{Date: date, VaccinationType: "second"},
				{Date: date, VaccinationType: "third"},
			},
		},
	}

	out := ComposeLookup(l, "")

	got := []string{
		out.VaccinationHistory[0].VaccinationType,
		out.VaccinationHistory[1].VaccinationType,
		out.VaccinationHistory[2].VaccinationType,
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal dates must keep insertion order, got %v", got)
		}
	}
}

func TestComposeLookup_EmptyHistoryIsEmptySlice(t *testing.T) {
	out := ComposeLookup(RFIDLookup{Pet: Pet{RFIDNumber: "12345"}}, "")

	if out.VaccinationHistory == nil {
		t.Fatal("vaccinationHistory must be [], not nil")
	}
	if len(out.VaccinationHistory) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(out.VaccinationHistory))
	}
}

func TestComposeLookup_DoesNotMutateInput(t *testing.T) {
	history := []Vaccination{
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "rabies"},
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), VaccinationType: "distemper"},
	}
	l := RFIDLookup{Pet: Pet{VaccinationHistory: history}}

	_ = ComposeLookup(l, "")

	if history[0].VaccinationType != "rabies" {
		t.Error("compose must not reorder the stored history")
	}
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
)

type petsRepo struct {
	mu     sync.RWMutex
	byID   map[string]pets.Pet
	byRFID map[string]string // rfid -> pet id

	owners owners.Repository
}

// NewPetsRepo crea el repo in-memory de mascotas. Recibe el repo de
// dueños para resolver el join de GetByRFID en la misma operación.
func NewPetsRepo(ownersRepo owners.Repository) pets.Repository {
	return &petsRepo{
		byID:   make(map[string]pets.Pet),
		byRFID: make(map[string]string),
		owners: ownersRepo,
	}
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	if _, exists := r.byRFID[p.RFIDNumber]; exists {
		return pets.ErrRFIDTaken
	}

	r.byID[p.ID] = p
	r.byRFID[p.RFIDNumber] = p.ID
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) GetByRFID(ctx context.Context, code string) (pets.Pet, owners.Owner, error) {
	r.mu.RLock()
	id, ok := r.byRFID[code]
	var p pets.Pet
	if ok {
		p = r.byID[id]
	}
	r.mu.RUnlock()

	if !ok {
		return pets.Pet{}, owners.Owner{}, pets.ErrNotFound
	}

	o, err := r.owners.GetByID(ctx, p.OwnerID)
	if err != nil {
		if errors.Is(err, owners.ErrNotFound) {
			return pets.Pet{}, owners.Owner{}, pets.ErrOwnerMissing
		}
		return pets.Pet{}, owners.Owner{}, err
	}

	return p, o, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sortByCreatedAt(out)
	return out, nil
}

func (r *petsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sortByCreatedAt(out)
	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.byID[id]
	if !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byRFID, p.RFIDNumber)
	return nil
}

// Orden estable por created_at asc (consistencia en dev).
func sortByCreatedAt(items []pets.Pet) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

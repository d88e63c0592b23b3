package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/visits"
)

type visitsRepo struct {
	mu   sync.RWMutex
	byID map[string]visits.Visit
}

func NewVisitsRepo() visits.Repository {
	return &visitsRepo{
		byID: make(map[string]visits.Visit),
	}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("visit already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sortByDate(out)
	return out, nil
}

func (r *visitsRepo) ListByPet(ctx context.Context, petID string) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sortByDate(out)
	return out, nil
}

func (r *visitsRepo) Update(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

// Visitas más recientes primero.
func sortByDate(items []visits.Visit) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

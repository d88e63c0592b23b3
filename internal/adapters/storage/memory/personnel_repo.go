package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-registry/internal/domain/personnel"
)

type personnelRepo struct {
	mu      sync.RWMutex
	byID    map[string]personnel.Personnel
	byEmail map[string]string
}

func NewPersonnelRepo() personnel.Repository {
	return &personnelRepo{
		byID:    make(map[string]personnel.Personnel),
		byEmail: make(map[string]string),
	}
}

func (r *personnelRepo) Create(ctx context.Context, p personnel.Personnel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("personnel id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("personnel already exists")
	}
	if _, exists := r.byEmail[p.Email]; exists {
		return personnel.ErrEmailTaken
	}

	r.byID[p.ID] = p
	r.byEmail[p.Email] = p.ID
	return nil
}

func (r *personnelRepo) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return personnel.Personnel{}, personnel.ErrNotFound
	}
	return p, nil
}

func (r *personnelRepo) GetByEmail(ctx context.Context, email string) (personnel.Personnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return personnel.Personnel{}, personnel.ErrNotFound
	}
	return r.byID[id], nil
}

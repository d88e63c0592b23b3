package visits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("visit not found")
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
	PetID   string
	OwnerID string
	Date    time.Time
	Comment string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Visit, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.OwnerID) == "" {
		return Visit{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Visit{}, ErrInvalidInput
	}

	now := s.now()
	v := Visit{
		ID:        uuid.NewString(),
		PetID:     strings.TrimSpace(in.PetID),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Date:      in.Date,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

type UpdateInput struct {
	Date    *time.Time
	Comment *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Visit, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Visit{}, err
	}

	if in.Date != nil {
		if in.Date.IsZero() {
			return Visit{}, ErrInvalidInput
		}
		v.Date = *in.Date
	}
	if in.Comment != nil {
		v.Comment = strings.TrimSpace(*in.Comment)
	}
	v.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]Visit, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Visit, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

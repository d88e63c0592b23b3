package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pet-registry/internal/ports/auth"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("owner not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Contact  string
	Password string
	Role     string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (Owner, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return Owner{}, ErrInvalidInput
	}

	role := Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = RolePetOwner
	}
	if role != RoleDoctor && role != RolePetOwner {
		return Owner{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Owner{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Owner{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Address:      strings.TrimSpace(in.Address),
		Contact:      strings.TrimSpace(in.Contact),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Login valida credenciales y emite un bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (Owner, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Owner{}, "", ErrBadCredentials
	}

	o, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, "", ErrBadCredentials
		}
		return Owner{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return Owner{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: o.ID,
		Name:   o.Name,
		Email:  o.Email,
		Role:   string(o.Role),
	})
	if err != nil {
		return Owner{}, "", err
	}
	return o, token, nil
}

type UpdateInput struct {
	Name    *string
	Address *string
	Contact *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Owner{}, ErrInvalidInput
		}
		o.Name = name
	}
	if in.Address != nil {
		o.Address = strings.TrimSpace(*in.Address)
	}
	if in.Contact != nil {
		o.Contact = strings.TrimSpace(*in.Contact)
	}
	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

package personnel

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
	ErrNotFound       = errors.New("personnel not found")
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
	Name          string
	Email         string
	ContactNumber string
	Password      string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (Personnel, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return Personnel{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Personnel{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Personnel{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Personnel{}, err
	}

	now := s.now()
	p := Personnel{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		ContactNumber: strings.TrimSpace(in.ContactNumber),
		Role:          DefaultRole,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Personnel{}, err
	}
	return p, nil
}

// Login valida credenciales y emite el token que la app móvil
// manda luego en Authorization al escanear.
func (s *Service) Login(ctx context.Context, email, password string) (Personnel, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Personnel{}, "", ErrBadCredentials
	}

	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Personnel{}, "", ErrBadCredentials
		}
		return Personnel{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return Personnel{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
	})
	if err != nil {
		return Personnel{}, "", err
	}
	return p, token, nil
}

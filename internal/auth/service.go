package auth

import (
	"context"
	"errors"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignupClosed       = errors.New("owner registration is closed")
)

type Service struct {
	repo OwnerRepository
}

func NewService(repo OwnerRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a shop-owner account. This is a single-shop deployment:
// once an owner exists, registration closes unless ALLOW_OWNER_SIGNUP is set.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Owner, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 && os.Getenv("ALLOW_OWNER_SIGNUP") == "" {
		return nil, ErrSignupClosed
	}

	if existing, _ := s.repo.FindByEmail(ctx, email); existing != nil {
		return nil, errors.New("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	owner := &Owner{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     RoleOwner,
	}
	if err := s.repo.Save(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Owner, error) {
	owner, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return owner, nil
}

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/antonellamino/clinica-medica-mvp/internal/platform/auth"
)

type Service struct {
	users    Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewService(users Repository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{users: users, secret: secret, tokenTTL: tokenTTL}
}

var validRoles = map[string]bool{
	auth.RoleAdmin: true, auth.RolePractitioner: true, auth.RolePatient: true,
}

const minPasswordLen = 8

func (s *Service) create(ctx context.Context, u *User, password string) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.FirstName == "" || u.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if !validRoles[u.Role] {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return s.users.Create(ctx, u)
}

// Register creates a patient account and signs it in.
func (s *Service) Register(ctx context.Context, u *User, password string) (*TokenResponse, error) {
	u.Role = auth.RolePatient
	if err := s.create(ctx, u, password); err != nil {
		return nil, err
	}
	return s.issue(u)
}

// CreateUser creates an account with an explicit role. Admin use only;
// the handler gates it.
func (s *Service) CreateUser(ctx context.Context, u *User, password string) error {
	return s.create(ctx, u, password)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadPassword
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}
	return s.issue(u)
}

func (s *Service) issue(u *User) (*TokenResponse, error) {
	token, err := auth.IssueToken(s.secret, u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &TokenResponse{Token: token, User: u}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, u *User) error {
	existing, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if u.Email == "" {
		u.Email = existing.Email
	}
	if u.FirstName == "" {
		u.FirstName = existing.FirstName
	}
	if u.LastName == "" {
		u.LastName = existing.LastName
	}
	u.Role = existing.Role
	return s.users.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.ListByRole(ctx, auth.RolePatient, limit, offset)
}

package account

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/antonellamino/clinica-medica-mvp/internal/platform/auth"
)

type mockUserRepo struct {
	users map[uuid.UUID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *User) error {
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string, limit, offset int) ([]*User, int, error) {
	var result []*User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, len(result), nil
}

var testSecret = []byte("test-secret")

func newTestService() *Service {
	return NewService(newMockUserRepo(), testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Register(context.Background(), &User{
		Email: "Ana@Clinic.Test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Role != auth.RolePatient {
		t.Errorf("expected patient role, got %s", resp.User.Role)
	}
	if resp.User.Email != "ana@clinic.test" {
		t.Errorf("expected lowercased email, got %s", resp.User.Email)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.PasswordHash == "secret-password" {
		t.Error("password must not be stored in plain text")
	}
}

func TestRegister_TokenClaims(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Register(context.Background(), &User{
		Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password")
	if err != nil {
		t.Fatal(err)
	}

	claims := &auth.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != resp.User.ID.String() {
		t.Error("token subject should be the user id")
	}
	if claims.Role != auth.RolePatient {
		t.Errorf("expected patient role claim, got %s", claims.Role)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), &User{
		Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "short")
	if err == nil || !strings.Contains(err.Error(), "password") {
		t.Errorf("expected password length error, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()

	u := &User{Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz"}
	if _, err := svc.Register(context.Background(), u, "secret-password"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(context.Background(), &User{
		Email: "ANA@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected email taken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), &User{
		Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password"); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(context.Background(), "ana@clinic.test", "secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), &User{
		Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password"); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(context.Background(), "ana@clinic.test", "wrong-password")
	if !errors.Is(err, ErrBadPassword) {
		t.Errorf("expected bad password, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "nobody@clinic.test", "whatever-password")
	if !errors.Is(err, ErrBadPassword) {
		t.Errorf("unknown email must look like a bad password, got %v", err)
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc := newTestService()

	err := svc.CreateUser(context.Background(), &User{
		Email: "x@clinic.test", FirstName: "X", LastName: "Y", Role: "superuser",
	}, "secret-password")
	if err == nil {
		t.Error("expected error for invalid role")
	}
}

func TestUpdate_RoleImmutable(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Register(context.Background(), &User{
		Email: "ana@clinic.test", FirstName: "Ana", LastName: "Diaz",
	}, "secret-password")
	if err != nil {
		t.Fatal(err)
	}

	update := &User{ID: resp.User.ID, Role: auth.RoleAdmin}
	if err := svc.Update(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.Role != auth.RolePatient {
		t.Errorf("role must not change through update, got %s", update.Role)
	}
}

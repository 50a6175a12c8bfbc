package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"adopta-match/internal/domain"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func TestUserServiceCreateUser_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo, nil)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "  User@Example.com ",
		DisplayName: "Ana",
		Password:    "supersecret",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "supersecret" {
		t.Fatalf("expected hashed password")
	}
	if _, err := repo.GetByID(context.Background(), user.ID); err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
}

func TestUserServiceCreateUser_WeakPassword(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo(), nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "user@example.com",
		DisplayName: "Ana",
		Password:    "corta",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestUserServiceCreateUser_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo, nil)

	input := CreateUserInput{Email: "user@example.com", DisplayName: "Ana", Password: "supersecret"}
	if _, err := svc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo, nil)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "user@example.com",
		DisplayName: "Ana",
		Password:    "supersecret",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "User@Example.com", "supersecret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %q, got %q", created.ID, user.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "user@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserServiceAuthenticate_RateLimited(t *testing.T) {
	repo := newMockUserRepo()
	limiter := NewMemoryLoginRateLimiter(time.Minute, 1)
	svc := NewUserService(zap.NewNop(), repo, limiter)

	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "user@example.com",
		DisplayName: "Ana",
		Password:    "supersecret",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "user@example.com", "supersecret"); err != nil {
		t.Fatalf("first attempt should pass: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "user@example.com", "supersecret"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestUserServiceGetByID_NotFound(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo(), nil)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

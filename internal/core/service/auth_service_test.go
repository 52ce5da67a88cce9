package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoapp/task-api/internal/auth"
	"github.com/todoapp/task-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int64
	findErr error // if set, FindByEmail returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return cloneUser(r.users[email]), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if existing, ok := r.users[user.Email]; ok {
		existing.PasswordHash = user.PasswordHash
		existing.UpdatedAt = time.Now().UTC()
		return cloneUser(existing), nil
	}
	return r.Create(context.Background(), user)
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newAuthService(repo *stubUserRepo) (*AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop()), tokens
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol@example.com", "s3cret")
	svc, tokens := newAuthService(repo)

	token, err := svc.Authenticate(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
	if id, err := claims.UserID(); err != nil || id != 1 {
		t.Fatalf("unexpected subject: %v %v", id, err)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol@example.com", "s3cret")
	svc, _ := newAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "carol@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown email and wrong password must be indistinguishable so credential
// probing cannot enumerate accounts.
func TestAuthService_Authenticate_NoUserEnumeration(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol@example.com", "s3cret")
	svc, _ := newAuthService(repo)

	_, errUnknown := svc.Authenticate(context.Background(), "ghost@example.com", "s3cret")
	_, errWrongPwd := svc.Authenticate(context.Background(), "carol@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errWrongPwd, domain.ErrInvalidCredentials) {
		t.Fatalf("expected identical failures, got %v / %v", errUnknown, errWrongPwd)
	}
	if errUnknown.Error() != errWrongPwd.Error() {
		t.Fatalf("messages differ: %q vs %q", errUnknown.Error(), errWrongPwd.Error())
	}
}

func TestAuthService_Authenticate_RepositoryErrorPropagates(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc, _ := newAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "carol@example.com", "s3cret")
	if !errors.Is(err, repo.findErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Seed bootstrap
// ---------------------------------------------------------------------------

func TestEnsureDefaultUser_CreatesOnce(t *testing.T) {
	repo := newStubUserRepo()

	if err := EnsureDefaultUser(context.Background(), repo, "user@example.com", "pass", zerolog.Nop()); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	created, err := repo.FindByEmail(context.Background(), "user@example.com")
	if err != nil || created == nil {
		t.Fatalf("seed user not stored: %v %v", created, err)
	}
	if created.PasswordHash == "pass" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pass")) != nil {
		t.Fatalf("stored hash does not match seed password")
	}

	// A second run must be a no-op, not a duplicate or an error.
	if err := EnsureDefaultUser(context.Background(), repo, "user@example.com", "pass", zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}
}

func TestEnsureDefaultUser_SeededCredentialAuthenticates(t *testing.T) {
	repo := newStubUserRepo()
	if err := EnsureDefaultUser(context.Background(), repo, "user@example.com", "pass", zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc, _ := newAuthService(repo)
	if _, err := svc.Authenticate(context.Background(), "user@example.com", "pass"); err != nil {
		t.Fatalf("seeded credential does not authenticate: %v", err)
	}
}

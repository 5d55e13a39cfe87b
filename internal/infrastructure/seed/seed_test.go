package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	creates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	clone := *user
	clone.ID = "seeded_user"
	r.byEmail[clone.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (stubHasher) Verify(plaintext, hash string) (bool, error) {
	return hash == "hashed:"+plaintext, nil
}

func TestEnsureDefaultUser_CreatesWhenAbsent(t *testing.T) {
	repo := newStubUserRepo()

	if err := EnsureDefaultUser(context.Background(), repo, stubHasher{}, zerolog.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := repo.FindByEmail(context.Background(), defaultUserEmail)
	if err != nil {
		t.Fatalf("default user not created: %v", err)
	}
	if u.Name != defaultUserName {
		t.Fatalf("unexpected name: %q", u.Name)
	}
	if u.PasswordHash == defaultUserPassword {
		t.Fatal("password must be hashed before persisting")
	}
}

func TestEnsureDefaultUser_Idempotent(t *testing.T) {
	repo := newStubUserRepo()

	_ = EnsureDefaultUser(context.Background(), repo, stubHasher{}, zerolog.Nop())
	if err := EnsureDefaultUser(context.Background(), repo, stubHasher{}, zerolog.Nop()); err != nil {
		t.Fatalf("second run must be a no-op: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly 1 create, got %d", repo.creates)
	}
}

// A concurrent seeder losing the insert race to the unique constraint is
// still a successful outcome.
func TestEnsureDefaultUser_ConstraintRaceIsSuccess(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrEmailTaken

	if err := EnsureDefaultUser(context.Background(), repo, stubHasher{}, zerolog.Nop()); err != nil {
		t.Fatalf("constraint race must be treated as success, got %v", err)
	}
}

func TestEnsureDefaultUser_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("db unavailable")

	if err := EnsureDefaultUser(context.Background(), repo, stubHasher{}, zerolog.Nop()); err == nil {
		t.Fatal("expected error to propagate")
	}
}

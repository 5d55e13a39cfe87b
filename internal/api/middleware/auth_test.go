package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// stubVerifier resolves a fixed token to a fixed user ID.
type stubVerifier struct {
	token  string
	userID string
}

func (v *stubVerifier) Verify(token string) (string, error) {
	if token != v.token {
		return "", domain.ErrInvalidToken
	}
	return v.userID, nil
}

type stubUserStore struct {
	users map[string]*domain.User
}

func (r *stubUserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserStore) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func authFixture() (echo.MiddlewareFunc, *domain.User) {
	user := &domain.User{ID: "user_1", Name: "Ann", Email: "ann@x.com"}
	verifier := &stubVerifier{token: "good-token", userID: "user_1"}
	store := &stubUserStore{users: map[string]*domain.User{"user_1": user}}
	return Auth(verifier, store), user
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	mw, want := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserContextKey).(*domain.User)
		if !ok {
			t.Fatal("user not set in context")
		}
		if user.ID != want.ID {
			t.Fatalf("expected user %s, got %s", want.ID, user.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	mw, _ := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	mw, _ := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	mw, _ := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// A valid signature whose user has since been deleted must be rejected with
// the exact same response as a forged token.
func TestAuthMiddleware_DeletedUserIndistinguishableFromForgery(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{token: "good-token", userID: "user_gone"}
	store := &stubUserStore{users: map[string]*domain.User{}}
	mw := Auth(verifier, store)

	run := func(token string) (int, string) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw(func(c echo.Context) error {
			t.Fatal("should not reach next")
			return nil
		})
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code, rec.Body.String()
	}

	deletedCode, deletedBody := run("good-token")
	forgedCode, forgedBody := run("forged-token")

	if deletedCode != http.StatusUnauthorized || forgedCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", deletedCode, forgedCode)
	}
	if deletedBody != forgedBody {
		t.Fatalf("responses must be byte-identical: %q vs %q", deletedBody, forgedBody)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/keepnote/notes-api/internal/core/domain"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	id, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id != "user_1" {
		t.Fatalf("expected user_1, got %q", id)
	}
}

func TestJWTManager_DefaultTTL(t *testing.T) {
	m := NewJWTManager("secret", 0)
	if m.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default ttl, got %v", m.ttl)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	claims := jwt.MapClaims{
		"id":  "user_1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(expired); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _ := issuer.Issue("user_1")
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_Tampered(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, _ := m.Issue("user_1")
	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestJWTManager_Malformed(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestJWTManager_MissingIDClaim(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing id claim, got %v", err)
	}
}

// Failure modes must collapse into one error so the response cannot be used
// as a forgery oracle.
func TestJWTManager_FailureModesIndistinguishable(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other", time.Hour)

	foreign, _ := other.Issue("user_1")
	expiredClaims := jwt.MapClaims{"id": "user_1", "exp": time.Now().Add(-time.Minute).Unix()}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))

	for _, tok := range []string{"garbage", foreign, expired} {
		if _, err := m.Verify(tok); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected exactly ErrInvalidToken, got %v", tok, err)
		}
	}
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// defaultTokenTTL is the canonical validity window for issued tokens.
const defaultTokenTTL = 24 * time.Hour

// JWTManager issues and verifies HS256-signed bearer tokens. Tokens are not
// persisted server-side: validity is purely a function of signature and
// expiry, so early revocation is not supported.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding userID with an expiry of now + ttl.
func (m *JWTManager) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the bound user ID. Every
// failure mode (malformed token, wrong signing method, bad signature,
// expired) collapses into domain.ErrInvalidToken so the response cannot be
// used as a forgery oracle.
func (m *JWTManager) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}

package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above bcrypt.DefaultCost to slow down offline
// brute force against leaked hashes.
const bcryptCost = 12

// BcryptHasher hashes passwords with bcrypt. Each hash embeds its own random
// salt and cost factor, so verification needs only the stored hash.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time over the derived key. A plain mismatch is (false, nil); any
// other error means the stored hash is corrupt.
func (h *BcryptHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}

package ports

// PasswordHasher performs one-way, salted hashing of plaintext passwords and
// verification against stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A mismatch is (false,
	// nil); a non-nil error means the stored hash itself is malformed.
	Verify(plaintext, hash string) (bool, error)
}

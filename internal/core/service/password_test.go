package service

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal plaintext")
	}

	ok, err := h.Verify("secret1", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	h := NewBcryptHasher()

	hash, _ := h.Hash("secret1")
	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}

// Each hash embeds a fresh random salt, so hashing the same password twice
// must produce different hashes.
func TestBcryptHasher_SaltedHashes(t *testing.T) {
	h := NewBcryptHasher()

	h1, _ := h.Hash("secret1")
	h2, _ := h.Hash("secret1")
	if h1 == h2 {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestBcryptHasher_CorruptStoredHash(t *testing.T) {
	h := NewBcryptHasher()

	ok, err := h.Verify("secret1", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected error for corrupt stored hash")
	}
	if ok {
		t.Fatal("corrupt hash must never verify")
	}
}

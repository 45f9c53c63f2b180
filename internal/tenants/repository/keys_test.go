package repository

import (
	"strings"
	"testing"
)

func TestGenerateAPIKey_Shape(t *testing.T) {
	plaintext, hash, prefix, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(plaintext, "lsk_") {
		t.Fatalf("expected lsk_ prefix, got %s", plaintext)
	}
	if len(plaintext) != 4+64 {
		t.Fatalf("expected 68-character key, got %d", len(plaintext))
	}
	if prefix != plaintext[:12] {
		t.Fatalf("expected prefix to be the first 12 characters, got %s", prefix)
	}
	if hash != HashKey(plaintext) {
		t.Fatal("expected stored hash to match HashKey of the plaintext")
	}
	if len(hash) != 64 {
		t.Fatalf("expected hex sha256 hash, got length %d", len(hash))
	}
}

func TestGenerateAPIKey_KeysAreUnique(t *testing.T) {
	first, _, _, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, _, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct keys from consecutive calls")
	}
}

func TestHashKey_IsDeterministic(t *testing.T) {
	if HashKey("lsk_abc") != HashKey("lsk_abc") {
		t.Fatal("expected stable hash for identical input")
	}
	if HashKey("lsk_abc") == HashKey("lsk_abd") {
		t.Fatal("expected different hashes for different keys")
	}
}

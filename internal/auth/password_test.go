package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	digest, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "hunter2" {
		t.Fatal("digest must not equal the plaintext password")
	}

	if !hasher.Verify("hunter2", digest) {
		t.Error("expected correct password to verify")
	}
	if hasher.Verify("wrong", digest) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	first, _ := hasher.Hash("hunter2")
	second, _ := hasher.Hash("hunter2")
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

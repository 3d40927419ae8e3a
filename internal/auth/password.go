package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is tuned for interactive-login latency.
const HashCost = 10

// PasswordHasher hides the hashing algorithm from callers so it can be
// swapped without touching handler or service logic.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher hashes passwords with bcrypt. The zero value uses HashCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = HashCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

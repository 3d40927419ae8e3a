package auth

import (
	"testing"
	"time"
)

func TestIssueAndValidateToken(t *testing.T) {
	issuer := JWTIssuer{Secret: "test-secret-key"}

	token, err := issuer.Issue(Claims{
		UserID:   7,
		Username: "alice",
		Role:     "Admin",
		Branch:   "Downtown",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("expected id 7, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", claims.Username)
	}
	if claims.Role != "Admin" {
		t.Errorf("expected role 'Admin', got %q", claims.Role)
	}
	if claims.Branch != "Downtown" {
		t.Errorf("expected branch 'Downtown', got %q", claims.Branch)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := JWTIssuer{Secret: "secret1"}.Issue(Claims{UserID: 1, Username: "alice"})

	if _, err := (JWTIssuer{Secret: "secret2"}).Validate(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	if _, err := (JWTIssuer{Secret: "secret"}).Validate("not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer := JWTIssuer{Secret: "test"}
	token, _ := issuer.Issue(Claims{UserID: 1, Username: "alice"})
	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// One hour from issuance, within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}

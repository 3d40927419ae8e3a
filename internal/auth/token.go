package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is the fixed access token lifetime.
const TokenExpiry = time.Hour

// Claims is the identity embedded in an access token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Branch   string `json:"branch"`
	jwt.RegisteredClaims
}

// TokenIssuer issues signed bearer tokens. Tokens are opaque to the rest of
// the system once issued; there is no session store or revocation list.
type TokenIssuer interface {
	Issue(claims Claims) (string, error)
}

// JWTIssuer signs HS256 tokens with a shared secret.
type JWTIssuer struct {
	Secret string
	TTL    time.Duration
}

func (i JWTIssuer) Issue(claims Claims) (string, error) {
	ttl := i.TTL
	if ttl == 0 {
		ttl = TokenExpiry
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (i JWTIssuer) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(i.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

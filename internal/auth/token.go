package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// The admin gate is a single shared secret with no session expiry, so the
// minted token deliberately carries no exp claim. This mirrors the panel's
// documented behaviour; it is not an endorsement of it as a security design.

func MintAdminToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func VerifyAdminToken(secret, raw string) error {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)

	claims := jwt.MapClaims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return fmt.Errorf("invalid token")
	}

	if sub, _ := claims["sub"].(string); sub != "admin" {
		return fmt.Errorf("invalid subject")
	}
	return nil
}

package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies which snapshot a solve-session token unlocks.
type SessionClaims struct {
	jwt.RegisteredClaims
	SnapshotID string `json:"snapshot_id"`
}

// SessionClaimsInput carries the snapshot ID and the issued/expiry times a
// caller supplies; kept separate from SessionClaims's JSON shape so the
// two helpers below are the only place jwt.RegisteredClaims is touched.
type SessionClaimsInput struct {
	SnapshotID string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

func issueSessionToken(secret string, in SessionClaimsInput) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(in.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(in.ExpiresAt),
		},
		SnapshotID: in.SnapshotID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func verifySessionToken(secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("session token expired")
		}
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token claims")
	}
	return claims, nil
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints a signed credential carrying a user id.
type TokenIssuer interface {
	Sign(userID string) (string, error)
}

// TokenVerifier checks a credential and extracts the user id claim.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTTokens issues and verifies HS256 JWTs. The same secret is used for both
// directions, so one value satisfies both interfaces.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
}

var (
	_ TokenIssuer   = (*JWTTokens)(nil)
	_ TokenVerifier = (*JWTTokens)(nil)
)

func NewJWTTokens(secret string, ttl time.Duration) *JWTTokens {
	return &JWTTokens{secret: []byte(secret), ttl: ttl}
}

func (j *JWTTokens) Sign(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(j.ttl).Unix(),
	})
	return token.SignedString(j.secret)
}

func (j *JWTTokens) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}
	return userID, nil
}

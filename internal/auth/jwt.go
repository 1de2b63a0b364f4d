package auth

import (
	"errors"
	"time"

	"skillpilot_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of both token classes: who the caller is and
// which role they act under.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints a short-lived access token. Access tokens are
// stateless and never persisted.
func GenerateAccessToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute
	return generate(userID, role, cfg.JWT.AccessSecret, ttl)
}

// GenerateRefreshToken mints a long-lived refresh token signed with a
// distinct secret. The caller persists it onto the user record; that stored
// copy is what makes refresh one-shot-per-issuance.
func GenerateRefreshToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour
	return generate(userID, role, cfg.JWT.RefreshSecret, ttl)
}

// ParseAccessToken verifies signature and expiry of an access token.
func ParseAccessToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, config.GetConfig().JWT.AccessSecret)
}

// ParseRefreshToken verifies signature and expiry of a refresh token.
// The stored-copy comparison happens in the auth service, not here.
func ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, config.GetConfig().JWT.RefreshSecret)
}

func generate(userID, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		// Signature mismatch and expiry are not distinguished to the caller
		return nil, ErrInvalidToken
	}
	return claims, nil
}

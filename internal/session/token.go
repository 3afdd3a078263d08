package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessCookie = "access_token"

	AccessTTL   = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

func SignAccessToken(secret string, userID int, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature and expiry and returns the user id claim.
func ParseAccessToken(secret, raw string) (int, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	switch v := claims["user_id"].(type) {
	case float64:
		if v <= 0 {
			return 0, ErrInvalidToken
		}
		return int(v), nil
	default:
		return 0, ErrInvalidToken
	}
}

package utilities

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"prepwise-backend-V1.0/internal/model"
)

var (
	jwtSecret   []byte
	tokenExpiry = time.Hour * 24 * 7
)

// InitJWT installs the signing secret and token lifetime. Must be called
// once at startup before any token is issued or validated; the secret comes
// from configuration, never from a compiled-in constant.
func InitJWT(secret string, expiry time.Duration) {
	jwtSecret = []byte(secret)
	if expiry > 0 {
		tokenExpiry = expiry
	}
}

// Claims carried by every issued token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the user.
func GenerateToken(user *model.User) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("jwt secret not initialized")
	}
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.Email,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken verifies the token and extracts claims.
func ValidateToken(tokenStr string) (*Claims, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("jwt secret not initialized")
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, errors.New("invalid or malformed token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("token has expired")
	}
	return claims, nil
}

package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"campustrack_backend/internals/configs"
)

type AccessClaims struct {
	UserID    string `json:"user_id"`
	IsAdmin   bool   `json:"is_admin"`
	IsStudent bool   `json:"is_student"`
	jwt.RegisteredClaims
}

// CreateAccessToken issues an HS256 JWT; "sub" carries the user email.
func CreateAccessToken(userID uuid.UUID, email string, isAdmin, isStudent bool, ttl time.Duration) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := AccessClaims{
		UserID:    userID.String(),
		IsAdmin:   isAdmin,
		IsStudent: isStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies the signature and expiry, and returns the claims.
func ParseAccessToken(raw string) (*AccessClaims, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Could not validate credentials")
	}
	return claims, nil
}

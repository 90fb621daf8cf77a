// Package auth verifies the bearer tokens that identify the calling staff member.
// Tokens are issued elsewhere; Generate exists for operators and tests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kolhub/kolhub/internal/shared/biztime"
)

// RolePlatformAdmin is the role of KOLHub operators. Platform admins carry
// no brand ID.
const RolePlatformAdmin = "platform_admin"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	StaffID uint   `json:"staff_id"`
	BrandID uint   `json:"brand_id,omitempty"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// IsPlatformAdmin reports whether the caller operates the platform.
func (c *Claims) IsPlatformAdmin() bool {
	return c.Role == RolePlatformAdmin
}

type JWTService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewJWTService(secret string, expMinutes int) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		expiresIn: time.Duration(expMinutes) * time.Minute,
	}
}

func (s *JWTService) Generate(staffID, brandID uint, role string) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		StaffID: staffID,
		BrandID: brandID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.StaffID == 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	if !claims.IsPlatformAdmin() && claims.BrandID == 0 {
		return nil, fmt.Errorf("%w: brand scope missing", ErrInvalidToken)
	}
	return claims, nil
}

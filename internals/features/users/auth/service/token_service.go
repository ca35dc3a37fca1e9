package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/rayto1224/ksbc-web/internals/configs"
	userModel "github.com/rayto1224/ksbc-web/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"sub":     user.UserID.String(),
		"user_id": user.UserID.String(),
		"email":   user.UserEmail,
		"role":    user.UserRole,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	if configs.JWTRefreshSecret == "" {
		return "", time.Time{}, errors.New("JWT_REFRESH_SECRET is not set")
	}
	expiresAt := time.Now().Add(RefreshTokenTTL)
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	return signed, expiresAt, err
}

// ParseRefreshToken verifies the refresh token signature and expiry, and
// returns the owning user id.
func ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayto1224/ksbc-web/internals/configs"
	userModel "github.com/rayto1224/ksbc-web/internals/features/users/user/model"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, CheckPassword(hashed, "correct horse battery staple"))
	assert.False(t, CheckPassword(hashed, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "anything"))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() { configs.JWTRefreshSecret = "" })

	userID := uuid.New()
	signed, expiresAt, err := GenerateRefreshToken(userID)
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	parsed, err := ParseRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	_, err = ParseRefreshToken(signed + "tampered")
	assert.Error(t, err)
}

func TestAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	user := &userModel.UserModel{UserID: uuid.New(), UserEmail: "a@b.com", UserRole: "user"}
	_, err := GenerateAccessToken(user)
	assert.Error(t, err)

	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })
	signed, err := GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
}

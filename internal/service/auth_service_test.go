package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend-V1.0/utilities"
)

func TestRegisterAndLogin(t *testing.T) {
	utilities.InitJWT("test-secret", time.Hour)
	svc := NewAuthService(newFakeUserRepo())

	user, token, err := svc.Register("Ada", "  Ada@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	logged, token, err := svc.Login("ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.Password)

	claims, err := utilities.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	utilities.InitJWT("test-secret", time.Hour)
	svc := NewAuthService(newFakeUserRepo())

	_, _, err := svc.Register("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register("Other", "ADA@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, _, err := svc.Register("", "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register("Ada", "", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register("Ada", "ada@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginWrongPassword(t *testing.T) {
	utilities.InitJWT("test-secret", time.Hour)
	svc := NewAuthService(newFakeUserRepo())

	_, _, err := svc.Register("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

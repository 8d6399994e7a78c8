package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend-V1.0/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	user := &model.User{Name: "Ada", Email: "ada@example.com"}
	user.ID = 7

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	InitJWT("secret-one", time.Hour)
	token, err := GenerateToken(&model.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	InitJWT("secret-two", time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	InitJWT("test-secret", time.Millisecond)
	token, err := GenerateToken(&model.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	InitJWT("test-secret", time.Hour)
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

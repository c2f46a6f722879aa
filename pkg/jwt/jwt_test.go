package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.GenerateToken("42", "reader@example.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "reader@example.test", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken("1", "a@example.test")
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := NewManager("secret").ValidateToken("definitely.not.ajwt")
	assert.Error(t, err)
}

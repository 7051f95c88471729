package utils_test

import (
	"testing"

	"github.com/lifedrop/backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := utils.GenerateJWT("64f0c5", "a@x.com", key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, "64f0c5", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := utils.GenerateJWT("64f0c5", "a@x.com", []byte("key-one"))
	require.NoError(t, err)

	_, err = utils.ValidateJWT(token, []byte("key-two"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := utils.ValidateJWT("not.a.token", []byte("key"))
	assert.Error(t, err)
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	token, err := GenerateToken("testuser", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "testuser", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token, err := GenerateToken("u1", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ValidateToken(token, secret)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("wrong-secret"))
	require.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ValidateToken("not.a.jwt", []byte("k"))
	require.Error(t, err)
}

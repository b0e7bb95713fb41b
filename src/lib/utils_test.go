package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64f1c0ffee0ddba11ca11ab1e", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := VerifyJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ca11ab1e", claims["userId"])
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("someid", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = VerifyJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("someid", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyJWT(token, "test-secret")
	assert.Error(t, err)
}

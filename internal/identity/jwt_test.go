package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifierRoundTrip(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	token, err := verifier.IssueToken("user-42", time.Hour)
	require.NoError(t, err)

	sub, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestJWTVerifierRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTVerifier("secret-a").IssueToken("user-42", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTVerifier("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifierRejectsExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	token, err := verifier.IssueToken("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifierRejectsGarbage(t *testing.T) {
	_, err := NewJWTVerifier("test-secret").Verify("not.a.token")
	assert.Error(t, err)
}

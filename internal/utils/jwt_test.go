package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSubjectFromToken(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"sub": "user-123"})

	sub, err := SubjectFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestSubjectFromToken_IgnoresSignature(t *testing.T) {
	// The client never verifies signatures; a token signed with an unknown
	// key must still yield its subject.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-456"})
	tokenString, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	sub, err := SubjectFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-456", sub)
}

func TestSubjectFromToken_Malformed(t *testing.T) {
	_, err := SubjectFromToken("not.a.jwt")
	assert.Error(t, err)
}

func TestSubjectFromToken_MissingSubject(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"role": "member"})

	_, err := SubjectFromToken(tokenString)
	assert.Error(t, err)
}

func TestSubjectFromToken_EmptySubject(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"sub": ""})

	_, err := SubjectFromToken(tokenString)
	assert.Error(t, err)
}

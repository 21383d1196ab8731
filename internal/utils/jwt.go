package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// SubjectFromToken extracts the subject claim from a bearer token without
// verifying its signature. The client never holds the server's signing key;
// the subject is only used to scope the local cache to the authenticated
// user, not to make any trust decision.
//
// Returns an error if the token cannot be parsed or carries no subject.
func SubjectFromToken(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has empty subject")
	}

	return sub, nil
}

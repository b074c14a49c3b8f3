package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken checks an access token issued by the external identity
// provider: HS256 signature under secret, a present and unexpired "exp",
// and a non-empty "sub". It returns the subject.
//
// Any deviation returns a descriptive error; an expired token wraps
// jwt.ErrTokenExpired.
func ValidateToken(tokenString string, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token verification is not configured")
	}

	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("missing subject claim")
	}
	return sub, nil
}

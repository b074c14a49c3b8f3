package testhelpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateJWT creates an access token shaped like the identity provider's.
func (h *TestHelper) CreateJWT(userID uuid.UUID) string {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"aud":  "authenticated",
		"role": "authenticated",
		"iat":  now,
		"exp":  now + 15*60,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.JWTSecret)
	require.NoError(h.T, err, "Failed to sign test JWT")
	return signed
}

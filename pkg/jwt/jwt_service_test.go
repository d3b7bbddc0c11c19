package jwt

import (
	"testing"
	"time"

	"foodgram/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	service := NewJWTService("secret", time.Minute)

	token := service.GenerateTokenUser(42)
	require.NotEmpty(t, token)

	id, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), id)
}

func TestExpiredToken(t *testing.T) {
	service := NewJWTService("secret", -time.Minute)

	token := service.GenerateTokenUser(1)
	_, err := service.GetUserIDByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenSignedWithAnotherKey(t *testing.T) {
	token := NewJWTService("other", time.Minute).GenerateTokenUser(1)

	_, err := NewJWTService("secret", time.Minute).GetUserIDByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUnexpectedSigningMethod(t *testing.T) {
	claims := jwtUserClaim{
		"1",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			Issuer:    "FOODGRAM",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Minute).GetUserIDByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEmptySecretRejectsTokens(t *testing.T) {
	service := NewJWTService("", time.Minute)
	require.Empty(t, service.GenerateTokenUser(7))

	claims := jwtUserClaim{
		"7",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			Issuer:    "FOODGRAM",
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	id, err := service.GetUserIDByToken(forged)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
	require.Zero(t, id)
}

func TestMalformedToken(t *testing.T) {
	_, err := NewJWTService("secret", time.Minute).GetUserIDByToken("not-a-token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

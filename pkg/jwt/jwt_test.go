package jwt

import (
	"testing"
	"time"

	"expediente-admin/config"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "admin@example.com", RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", AccessExpiry: time.Minute})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", AccessExpiry: time.Minute})

	token, _, err := issuer.GenerateAccessToken(uuid.New(), "a@example.com", RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@example.com", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Issuer(t *testing.T) {
	trusted := NewJWTService(config.JWTConfig{Secret: "s", Issuer: "identity", AccessExpiry: time.Minute})
	other := NewJWTService(config.JWTConfig{Secret: "s", Issuer: "someone-else", AccessExpiry: time.Minute})

	token, _, err := trusted.GenerateAccessToken(uuid.New(), "a@example.com", RoleAdmin)
	require.NoError(t, err)
	_, err = trusted.ValidateToken(token)
	assert.NoError(t, err)

	foreign, _, err := other.GenerateAccessToken(uuid.New(), "a@example.com", RoleAdmin)
	require.NoError(t, err)
	_, err = trusted.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})

	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{
		UserID:    uuid.New(),
		Role:      RoleAdmin,
		TokenType: AccessToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	token, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestEmptySecretRefused(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{AccessExpiry: time.Minute})

	_, _, err := svc.GenerateAccessToken(uuid.New(), "a@example.com", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptySecret)

	forged := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID:    uuid.New(),
		Role:      RoleAdmin,
		TokenType: AccessToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	token, err := forged.SignedString([]byte("anything"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, claims)
}

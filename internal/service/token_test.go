package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stf-adrian/start-from-scratch/internal/service"
)

const testSecret = "test-signing-secret"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := service.NewTokenIssuer(testSecret, 7*24*time.Hour)

	userID := uuid.New()
	email := "test@example.com"

	token, err := issuer.Issue(userID, email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, email, claims.Email)
}

func TestTokenIssuer_TamperedToken(t *testing.T) {
	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	token, err := issuer.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	// Flip a byte in the signature segment
	corrupted := []byte(token)
	corrupted[len(corrupted)-1] ^= 0x01

	_, err = issuer.Verify(string(corrupted))
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	issuer := service.NewTokenIssuer(testSecret, -time.Hour)

	token, err := issuer.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := service.NewTokenIssuer(testSecret, time.Hour)
	other := service.NewTokenIssuer("a-different-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenIssuer_GarbageInput(t *testing.T) {
	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(input)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "input %q", input)
	}
}

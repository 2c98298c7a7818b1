package security

import (
	"testing"

	"spacebook-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef", 60)

	token, err := m.GenerateAccessToken(7, "lib@example.edu.my", domain.RoleLibrarian)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, domain.RoleLibrarian, claims.Role)
	assert.True(t, claims.Role.CanModerate())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef", 60)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60)

	token, err := m.GenerateAccessToken(1, "a@b.c", domain.RoleStudent)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef", -1)

	token, err := m.GenerateAccessToken(1, "a@b.c", domain.RoleStudent)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

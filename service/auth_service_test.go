package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshelf/models"
)

func testUser() *models.User {
	return &models.User{ID: 7, Username: "mender", Email: "mender@example.com", IsAdmin: true}
}

func TestHashAndCheckPassword(t *testing.T) {
	s := NewAuthService("secret", time.Hour, 24*time.Hour)

	hash, err := s.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, s.CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, s.CheckPassword(hash, "wrong password"))
}

func TestIssueAndVerifyTokens(t *testing.T) {
	s := NewAuthService("secret", time.Hour, 24*time.Hour)

	tokens, err := s.IssueTokens(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	userID, err := s.VerifyAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	userID, err = s.VerifyRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	s := NewAuthService("secret", time.Hour, 24*time.Hour)

	tokens, err := s.IssueTokens(testUser())
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(tokens.RefreshToken)
	assert.Error(t, err)

	_, err = s.VerifyRefreshToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-a", time.Hour, 24*time.Hour)
	verifier := NewAuthService("secret-b", time.Hour, 24*time.Hour)

	tokens, err := issuer.IssueTokens(testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := NewAuthService("secret", -time.Minute, -time.Minute)

	tokens, err := s.IssueTokens(testUser())
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := NewAuthService("secret", time.Hour, 24*time.Hour)

	_, err := s.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
}

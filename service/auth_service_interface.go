package service

import "patternshelf/models"

// AuthServiceInterface defines the contract for authentication operations.
type AuthServiceInterface interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
	IssueTokens(user *models.User) (*TokenPair, error)
	VerifyAccessToken(token string) (int, error)
	VerifyRefreshToken(token string) (int, error)
}

package controller

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/rs/zerolog/log"

	"patternshelf/app/middleware"
	"patternshelf/models"
	"patternshelf/repository"
	"patternshelf/service"
)

// AuthController handles registration, login and token refresh.
type AuthController struct {
	users repository.UserRepositoryInterface
	auth  service.AuthServiceInterface
}

// NewAuthController creates a new AuthController.
func NewAuthController(users repository.UserRepositoryInterface, auth service.AuthServiceInterface) *AuthController {
	return &AuthController{users: users, auth: auth}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Username) < 3 || len(req.Username) > 50 {
		writeError(w, http.StatusBadRequest, "username must be 3-50 characters")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	ctx := r.Context()

	if existing, err := c.users.FindByUsername(ctx, req.Username); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	} else if existing != nil {
		writeError(w, http.StatusConflict, "Username already exists")
		return
	}
	if existing, err := c.users.FindByEmail(ctx, req.Email); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	} else if existing != nil {
		writeError(w, http.StatusConflict, "Email already exists")
		return
	}

	hash, err := c.auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user, err := c.users.Insert(ctx, &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("user insert failed")
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || !c.auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokens, err := c.auth.IssueTokens(user)
	if err != nil {
		log.Error().Err(err).Msg("token issuing failed")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          user,
	})
}

// Refresh handles POST /api/auth/refresh
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh_token is required")
		return
	}

	userID, err := c.auth.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	user, err := c.users.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		writeError(w, http.StatusUnauthorized, "Unknown user")
		return
	}

	tokens, err := c.auth.IssueTokens(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": tokens.AccessToken})
}

// Me handles GET /api/auth/me (behind auth middleware)
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := c.users.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

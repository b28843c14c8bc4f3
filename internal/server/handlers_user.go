package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// handleUsers handles POST /api/users (create) and GET /api/users (list).
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleUserCreate(w, r)
	case http.MethodGet:
		s.handleUserList(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleUserCreate handles POST /api/users.
func (s *Server) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)
	if req.Name == "" {
		WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Mobile == "" {
		WriteError(w, http.StatusBadRequest, "mobile is required")
		return
	}
	if req.Password == "" {
		WriteError(w, http.StatusBadRequest, "password is required")
		return
	}

	// Hash password with bcrypt (truncate to 72 bytes)
	passwordBytes := []byte(req.Password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(passwordBytes, 10)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := &models.User{
		Name:         req.Name,
		Mobile:       req.Mobile,
		PasswordHash: string(hash),
	}

	if err := s.app.UserStore.CreateUser(r.Context(), user); err != nil {
		if strings.Contains(err.Error(), "already registered") {
			WriteError(w, http.StatusConflict, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("mobile", req.Mobile).Msg("Failed to create user")
		WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "ok",
		"data":   user,
	})
}

// handleUserList handles GET /api/users.
func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	users, err := s.app.UserStore.ListClients(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list users")
		WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   users,
	})
}

// handleUserGet handles GET /api/users/{id}.
func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request, userID string) {
	user, err := s.app.UserStore.GetUser(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("user '%s' not found", userID))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   user,
	})
}

// handleUserDelete handles DELETE /api/users/{id}.
func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	if _, err := s.app.UserStore.GetUser(r.Context(), userID); err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("user '%s' not found", userID))
		return
	}

	if err := s.app.UserStore.DeleteUser(r.Context(), userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to delete user")
		WriteError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAuthLogin handles POST /api/auth/login - authenticate by mobile and
// password.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := s.app.UserStore.GetUserByMobile(r.Context(), req.Mobile)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	passwordBytes := []byte(req.Password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes); err != nil {
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.signJWT(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT for login")
		WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"token": token,
			"user":  user,
		},
	})
}

// signJWT creates a session token for the authenticated user.
func (s *Server) signJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    user.UserID,
		"name":   user.Name,
		"mobile": user.Mobile,
		"role":   user.Role,
		"iss":    "fintrack-server",
		"iat":    now.Unix(),
		"exp":    now.Add(s.app.Config.Auth.GetTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.app.Config.Auth.JWTSecret))
}

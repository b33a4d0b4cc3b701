package handlers

import (
	"net/http"

	"wonbyte/internal/models"
	"wonbyte/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Name          string `json:"name" validate:"required,min=1,max=50"`
	GuardianEmail string `json:"guardianEmail" validate:"omitempty,email"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err == service.ErrEmailTaken {
		respondWithError(w, http.StatusConflict, "email already registered", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create account", "registering account", err)
		return
	}

	if req.GuardianEmail != "" {
		if err := h.authService.SetGuardianEmail(user.ID, req.GuardianEmail); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to save guardian email", "saving guardian email", err)
			return
		}
		user.GuardianEmail = req.GuardianEmail
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err == service.ErrInvalidCredentials {
		respondWithError(w, http.StatusUnauthorized, "invalid email or password", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "login failed", "logging in", err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

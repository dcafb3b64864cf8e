package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/services"
)

// AuthHandler serves student registration and login.
type AuthHandler struct {
	userService   services.UserService
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthHandler(userService services.UserService, jwtSecret string, jwtExpiration time.Duration) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			writeJSON(w, http.StatusConflict, models.NewErrorResponse("User with this email already exists"))
			return
		}
		serverError(w, "Register", err, "Failed to create user")
		return
	}

	token, err := auth.MakeToken(user.ID, user.Email, auth.KindUser, h.jwtSecret, h.jwtExpiration)
	if err != nil {
		serverError(w, "Register", err, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, models.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		User:    *user,
		Token:   token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrInvalidPassword) {
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid email or password"))
			return
		}
		serverError(w, "Login", err, "Login failed")
		return
	}

	token, err := auth.MakeToken(user.ID, user.Email, auth.KindUser, h.jwtSecret, h.jwtExpiration)
	if err != nil {
		serverError(w, "Login", err, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    *user,
		Token:   token,
	})
}

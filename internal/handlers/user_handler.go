package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		serverError(w, "ListUsers", err, "Failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeLookupError(w, "GetUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	user, err := h.userService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeLookupError(w, "UpdateUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeLookupError(w, "DeleteUser", err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("User deleted successfully"))
}

func (h *UserHandler) writeLookupError(w http.ResponseWriter, tag string, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("User not found"))
		return
	}
	serverError(w, tag, err, "Failed to process user request")
}

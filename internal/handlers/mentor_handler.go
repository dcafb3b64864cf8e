package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/middleware"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/services"
)

type MentorHandler struct {
	mentorService services.MentorService
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewMentorHandler(mentorService services.MentorService, jwtSecret string, jwtExpiration time.Duration) *MentorHandler {
	return &MentorHandler{
		mentorService: mentorService,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register claims a seeded mentor record by setting its password.
func (h *MentorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.MentorCredentials
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	mentor, err := h.mentorService.Claim(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMentorNotFound):
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Mentor not found with this email"))
		case errors.Is(err, services.ErrMentorAlreadyRegistered):
			writeJSON(w, http.StatusConflict, models.NewErrorResponse("Mentor account already registered. Please log in."))
		default:
			serverError(w, "MentorRegister", err, "Failed to register mentor")
		}
		return
	}

	h.writeSession(w, mentor)
}

func (h *MentorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.MentorCredentials
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Please provide email and password"))
		return
	}

	mentor, err := h.mentorService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPassword):
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid credentials"))
		case errors.Is(err, services.ErrMentorNotRegistered):
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Mentor account not activated. Please register first."))
		default:
			serverError(w, "MentorLogin", err, "Login failed")
		}
		return
	}

	h.writeSession(w, mentor)
}

func (h *MentorHandler) writeSession(w http.ResponseWriter, mentor *models.Mentor) {
	token, err := auth.MakeToken(mentor.ID, mentor.Email, auth.KindMentor, h.jwtSecret, h.jwtExpiration)
	if err != nil {
		serverError(w, "MentorToken", err, "Failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, models.MentorAuthResponse{
		Success: true,
		Token:   token,
		Mentor:  mentor.Session(),
	})
}

func (h *MentorHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.mentorService.List(r.Context())
	if err != nil {
		serverError(w, "ListMentors", err, "Failed to list mentors")
		return
	}
	writeJSON(w, http.StatusOK, mentors)
}

func (h *MentorHandler) ListByIndustry(w http.ResponseWriter, r *http.Request) {
	industry := chi.URLParam(r, "industry")
	if models.NormalizeIndustry(industry) == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Industry is required"))
		return
	}

	mentors, err := h.mentorService.ListByIndustry(r.Context(), industry)
	if err != nil {
		serverError(w, "ListMentorsByIndustry", err, "Failed to list mentors")
		return
	}
	writeJSON(w, http.StatusOK, mentors)
}

func (h *MentorHandler) GetMentor(w http.ResponseWriter, r *http.Request) {
	h.writeMentor(w, r, "GetMentor", chi.URLParam(r, "id"))
}

// Profile returns the mentor behind the bearer token.
func (h *MentorHandler) Profile(w http.ResponseWriter, r *http.Request) {
	mentorID := middleware.GetAccountID(r.Context())
	if mentorID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Not authorized to access this route"))
		return
	}
	h.writeMentor(w, r, "MentorProfile", mentorID)
}

func (h *MentorHandler) writeMentor(w http.ResponseWriter, r *http.Request, tag, id string) {
	mentor, err := h.mentorService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMentorNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Mentor not found"))
			return
		}
		serverError(w, tag, err, "Failed to load mentor")
		return
	}
	writeJSON(w, http.StatusOK, mentor)
}

func (h *MentorHandler) CreateMentor(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMentorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	mentor, err := h.mentorService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrMentorExists) {
			writeJSON(w, http.StatusConflict, models.NewErrorResponse("Mentor with this email already exists"))
			return
		}
		serverError(w, "CreateMentor", err, "Failed to create mentor")
		return
	}
	writeJSON(w, http.StatusCreated, mentor)
}

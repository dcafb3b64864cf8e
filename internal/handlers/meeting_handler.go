package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathfinder/backend/internal/middleware"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/services"
)

type MeetingHandler struct {
	meetingService services.MeetingService
	mentorService  services.MentorService
	userService    services.UserService
}

func NewMeetingHandler(meetingService services.MeetingService, mentorService services.MentorService, userService services.UserService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
		mentorService:  mentorService,
		userService:    userService,
	}
}

func (h *MeetingHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeetingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	mentor, err := h.mentorService.GetByID(r.Context(), req.MentorID)
	if err != nil {
		if errors.Is(err, services.ErrMentorNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Mentor not found"))
			return
		}
		serverError(w, "CreateMeeting", err, "Failed to create meeting")
		return
	}
	if _, err := h.userService.GetByID(r.Context(), req.UserID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("User not found"))
			return
		}
		serverError(w, "CreateMeeting", err, "Failed to create meeting")
		return
	}

	meeting, err := h.meetingService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			writeJSON(w, http.StatusConflict, models.NewErrorResponse("This time slot is already booked"))
			return
		}
		serverError(w, "CreateMeeting", err, "Failed to create meeting")
		return
	}

	meeting.Mentor = mentor.Summary()
	log.Printf("[CreateMeeting] user=%s mentor=%s date=%s slot=%q", meeting.UserID, meeting.MentorID, meeting.Date.Format("2006-01-02"), meeting.TimeSlot)
	writeJSON(w, http.StatusCreated, meeting)
}

func (h *MeetingHandler) ListUserMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		serverError(w, "ListUserMeetings", err, "Failed to list meetings")
		return
	}
	if err := services.AttachMentors(r.Context(), h.mentorService, meetings); err != nil {
		serverError(w, "ListUserMeetings", err, "Failed to list meetings")
		return
	}
	writeJSON(w, http.StatusOK, meetings)
}

func (h *MeetingHandler) ListMentorMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.ListByMentor(r.Context(), chi.URLParam(r, "mentorId"))
	if err != nil {
		serverError(w, "ListMentorMeetings", err, "Failed to list meetings")
		return
	}
	if err := services.AttachUsers(r.Context(), h.userService, meetings); err != nil {
		serverError(w, "ListMentorMeetings", err, "Failed to list meetings")
		return
	}
	writeJSON(w, http.StatusOK, meetings)
}

// GetMeeting returns one meeting with both the mentor and the mentee attached.
func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := h.meetingService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Meeting not found"))
			return
		}
		serverError(w, "GetMeeting", err, "Failed to load meeting")
		return
	}

	list := []*models.Meeting{meeting}
	if err := services.AttachMentors(r.Context(), h.mentorService, list); err != nil {
		serverError(w, "GetMeeting", err, "Failed to load meeting")
		return
	}
	if err := services.AttachUsers(r.Context(), h.userService, list); err != nil {
		serverError(w, "GetMeeting", err, "Failed to load meeting")
		return
	}
	writeJSON(w, http.StatusOK, meeting)
}

// UpdateMeeting lets the owning mentor change status, notes or link.
func (h *MeetingHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	mentorID := middleware.GetAccountID(r.Context())
	if mentorID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Not authorized to access this route"))
		return
	}

	var req models.UpdateMeetingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	meeting, err := h.meetingService.Update(r.Context(), mentorID, chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMeetingNotFound):
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Meeting not found"))
		case errors.Is(err, services.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Not authorized to update this meeting"))
		default:
			serverError(w, "UpdateMeeting", err, "Failed to update meeting")
		}
		return
	}

	by := mentorID
	if claims := middleware.GetClaims(r.Context()); claims != nil && claims.Email != "" {
		by = claims.Email
	}
	log.Printf("[UpdateMeeting] meeting=%s status=%s by=%s", meeting.ID, meeting.Status, by)

	if err := services.AttachUsers(r.Context(), h.userService, []*models.Meeting{meeting}); err != nil {
		log.Printf("[UpdateMeeting] populate user: %v", err)
	}
	writeJSON(w, http.StatusOK, meeting)
}

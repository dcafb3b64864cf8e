package services

import (
	"context"
	"errors"

	"github.com/pathfinder/backend/internal/models"
)

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrMentorNotFound          = errors.New("mentor not found")
	ErrMentorExists            = errors.New("mentor email already exists")
	ErrMentorAlreadyRegistered = errors.New("mentor already registered")
	ErrMentorNotRegistered     = errors.New("mentor account not activated")
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrUnauthorized            = errors.New("not authorized to modify this meeting")
	ErrSlotTaken               = errors.New("time slot already booked")
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Authenticate returns ErrUserNotFound or ErrInvalidPassword on failure.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetMany(ctx context.Context, ids []string) (map[string]*models.User, error)
	Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type MentorService interface {
	Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error)
	// Claim sets the password on a seeded, unregistered mentor.
	Claim(ctx context.Context, email, password string) (*models.Mentor, error)
	// Authenticate returns ErrInvalidPassword for unknown emails and bad
	// passwords, ErrMentorNotRegistered for unclaimed records.
	Authenticate(ctx context.Context, email, password string) (*models.Mentor, error)
	List(ctx context.Context) ([]*models.Mentor, error)
	ListByIndustry(ctx context.Context, industry string) ([]*models.Mentor, error)
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetMany(ctx context.Context, ids []string) (map[string]*models.Mentor, error)
	// Seed inserts mentors whose email is not yet present and reports how many were added.
	Seed(ctx context.Context, mentors []*models.Mentor) (int, error)
}

type MeetingService interface {
	// Create rejects a second scheduled meeting for the same mentor, day and slot
	// with ErrSlotTaken. The check is best effort, not transactional.
	Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Meeting, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*models.Meeting, error)
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	// Update only succeeds when mentorID owns the meeting.
	Update(ctx context.Context, mentorID, meetingID string, req *models.UpdateMeetingRequest) (*models.Meeting, error)
}

// newMeeting builds a meeting from a validated request.
func newMeeting(id string, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	date, err := models.ParseMeetingDate(req.Date)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusScheduled
	}
	return &models.Meeting{
		ID:          id,
		UserID:      req.UserID,
		MentorID:    req.MentorID,
		Date:        date.UTC(),
		TimeSlot:    req.TimeSlot,
		Status:      status,
		Topic:       req.Topic,
		Notes:       req.Notes,
		MeetingLink: req.MeetingLink,
	}, nil
}

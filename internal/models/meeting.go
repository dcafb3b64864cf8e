package models

import (
	"fmt"
	"strings"
	"time"
)

type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusCompleted MeetingStatus = "completed"
	StatusCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Meeting struct {
	ID          string         `json:"_id" bson:"_id"`
	UserID      string         `json:"userId" bson:"user_id"`
	MentorID    string         `json:"mentorId" bson:"mentor_id"`
	Date        time.Time      `json:"date" bson:"date"`
	TimeSlot    string         `json:"timeSlot" bson:"time_slot"`
	Status      MeetingStatus  `json:"status" bson:"status"`
	Topic       string         `json:"topic" bson:"topic"`
	Notes       string         `json:"notes,omitempty" bson:"notes,omitempty"`
	MeetingLink string         `json:"meetingLink,omitempty" bson:"meeting_link,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	Mentor      *MentorSummary `json:"mentor,omitempty" bson:"-"`
	User        *UserSummary   `json:"user,omitempty" bson:"-"`
}

type CreateMeetingRequest struct {
	UserID      string        `json:"userId"`
	MentorID    string        `json:"mentorId"`
	Date        string        `json:"date"`
	TimeSlot    string        `json:"timeSlot"`
	Topic       string        `json:"topic"`
	Notes       string        `json:"notes"`
	Status      MeetingStatus `json:"status"`
	MeetingLink string        `json:"meetingLink"`
}

type UpdateMeetingRequest struct {
	Status      *MeetingStatus `json:"status"`
	Notes       *string        `json:"notes"`
	MeetingLink *string        `json:"meetingLink"`
}

// ParseMeetingDate accepts a full RFC 3339 timestamp or a bare YYYY-MM-DD day.
func ParseMeetingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid meeting date %q", raw)
	}
	return t, nil
}

func (r *CreateMeetingRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.UserID == "" {
		errors["userId"] = "User is required"
	}
	if r.MentorID == "" {
		errors["mentorId"] = "Mentor is required"
	}
	if r.Date == "" {
		errors["date"] = "Date is required"
	} else if _, err := ParseMeetingDate(r.Date); err != nil {
		errors["date"] = "Date must be YYYY-MM-DD or RFC 3339"
	}
	if strings.TrimSpace(r.TimeSlot) == "" {
		errors["timeSlot"] = "Time slot is required"
	}
	if strings.TrimSpace(r.Topic) == "" {
		errors["topic"] = "Topic is required"
	}
	if r.Status != "" && !r.Status.Valid() {
		errors["status"] = "Status must be scheduled, completed or cancelled"
	}

	return errors
}

func (r *UpdateMeetingRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Status != nil && !r.Status.Valid() {
		errors["status"] = "Status must be scheduled, completed or cancelled"
	}
	if r.Status == nil && r.Notes == nil && r.MeetingLink == nil {
		errors["body"] = "Nothing to update"
	}

	return errors
}

// Apply copies the present fields onto m.
func (r *UpdateMeetingRequest) Apply(m *Meeting) {
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
	if r.MeetingLink != nil {
		m.MeetingLink = *r.MeetingLink
	}
}

// SameDay reports whether a and b fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

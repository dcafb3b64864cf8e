package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pathfinder/backend/internal/models"
)

type MemoryMeetingService struct {
	mu       sync.RWMutex
	meetings map[string]*models.Meeting
}

func NewMemoryMeetingService() *MemoryMeetingService {
	return &MemoryMeetingService{
		meetings: make(map[string]*models.Meeting),
	}
}

func copyMeeting(m *models.Meeting) *models.Meeting {
	cp := *m
	return &cp
}

func sortByDate(list []*models.Meeting) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
}

func (s *MemoryMeetingService) Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	meeting, err := newMeeting(uuid.New().String(), req)
	if err != nil {
		return nil, err
	}
	meeting.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	if meeting.Status == models.StatusScheduled {
		for _, m := range s.meetings {
			if m.MentorID == meeting.MentorID && m.Status == models.StatusScheduled &&
				m.TimeSlot == meeting.TimeSlot && models.SameDay(m.Date, meeting.Date) {
				return nil, ErrSlotTaken
			}
		}
	}

	s.meetings[meeting.ID] = meeting
	return copyMeeting(meeting), nil
}

func (s *MemoryMeetingService) ListByUser(ctx context.Context, userID string) ([]*models.Meeting, error) {
	return s.filter(func(m *models.Meeting) bool { return m.UserID == userID }), nil
}

func (s *MemoryMeetingService) ListByMentor(ctx context.Context, mentorID string) ([]*models.Meeting, error) {
	return s.filter(func(m *models.Meeting) bool { return m.MentorID == mentorID }), nil
}

func (s *MemoryMeetingService) filter(keep func(*models.Meeting) bool) []*models.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Meeting, 0)
	for _, m := range s.meetings {
		if keep(m) {
			out = append(out, copyMeeting(m))
		}
	}
	sortByDate(out)
	return out
}

func (s *MemoryMeetingService) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meeting, exists := s.meetings[id]
	if !exists {
		return nil, ErrMeetingNotFound
	}
	return copyMeeting(meeting), nil
}

func (s *MemoryMeetingService) Update(ctx context.Context, mentorID, meetingID string, req *models.UpdateMeetingRequest) (*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, exists := s.meetings[meetingID]
	if !exists {
		return nil, ErrMeetingNotFound
	}
	if meeting.MentorID != mentorID {
		return nil, ErrUnauthorized
	}
	req.Apply(meeting)
	return copyMeeting(meeting), nil
}

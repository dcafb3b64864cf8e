package services

import (
	"context"

	"github.com/pathfinder/backend/internal/models"
)

// AttachMentors fills Meeting.Mentor with a one-query batch lookup.
// Meetings whose mentor no longer exists are left without a summary.
func AttachMentors(ctx context.Context, mentors MentorService, meetings []*models.Meeting) error {
	if len(meetings) == 0 {
		return nil
	}
	found, err := mentors.GetMany(ctx, uniqueIDs(meetings, func(m *models.Meeting) string { return m.MentorID }))
	if err != nil {
		return err
	}
	for _, m := range meetings {
		if mentor, ok := found[m.MentorID]; ok {
			m.Mentor = mentor.Summary()
		}
	}
	return nil
}

// AttachUsers fills Meeting.User the same way for a mentor's agenda.
func AttachUsers(ctx context.Context, users UserService, meetings []*models.Meeting) error {
	if len(meetings) == 0 {
		return nil
	}
	found, err := users.GetMany(ctx, uniqueIDs(meetings, func(m *models.Meeting) string { return m.UserID }))
	if err != nil {
		return err
	}
	for _, m := range meetings {
		if user, ok := found[m.UserID]; ok {
			m.User = user.Summary()
		}
	}
	return nil
}

func uniqueIDs(meetings []*models.Meeting, key func(*models.Meeting) string) []string {
	seen := make(map[string]bool, len(meetings))
	ids := make([]string, 0, len(meetings))
	for _, m := range meetings {
		id := key(m)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

package portal

import (
	"context"

	"github.com/pathfinder/backend/internal/models"
)

// Session is the signed-in mentor as persisted between runs.
type Session struct {
	Mentor models.MentorSession `json:"mentor"`
	Token  string               `json:"token"`
}

func (s *Session) valid() bool {
	return s != nil && s.Mentor.ID != "" && s.Token != ""
}

// SessionRepository stores at most one session. Load returns nil, nil when
// nothing is stored and an error wrapping storage.ErrCorrupt when the stored
// value cannot be decoded.
type SessionRepository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// Package apitest starts an in-memory API server for controller and client tests.
package apitest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathfinder/backend/internal/handlers"
	"github.com/pathfinder/backend/internal/seed"
	"github.com/pathfinder/backend/internal/services"
)

const Secret = "apitest-secret"

type Server struct {
	*httptest.Server
	Users    *services.MemoryUserService
	Mentors  *services.MemoryMentorService
	Meetings *services.MemoryMeetingService
}

// URL of the /api prefix, ready for client.New.
func (s *Server) APIURL() string {
	return s.Server.URL + "/api"
}

// New serves the full router over memory services seeded with the mentor
// catalogue. The server is closed with the test.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		Users:    services.NewMemoryUserService(),
		Mentors:  services.NewMemoryMentorService(),
		Meetings: services.NewMemoryMeetingService(),
	}
	if _, err := s.Mentors.Seed(context.Background(), seed.Mentors()); err != nil {
		t.Fatalf("seed mentors: %v", err)
	}

	s.Server = httptest.NewServer(handlers.NewRouter(handlers.RouterConfig{
		Users:          s.Users,
		Mentors:        s.Mentors,
		Meetings:       s.Meetings,
		JWTSecret:      Secret,
		JWTExpiration:  time.Hour,
		RequestTimeout: 5 * time.Second,
	}))
	t.Cleanup(s.Server.Close)
	return s
}

// ClaimMentor sets a password on a seeded mentor directly through the service.
func (s *Server) ClaimMentor(t testing.TB, email, password string) string {
	t.Helper()
	m, err := s.Mentors.Claim(context.Background(), email, password)
	if err != nil {
		t.Fatalf("claim %s: %v", email, err)
	}
	return m.ID
}

package portal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pathfinder/backend/internal/apitest"
	"github.com/pathfinder/backend/internal/client"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/storage"
)

type fixture struct {
	srv      *apitest.Server
	api      *client.Client
	sessions *storage.MemoryRepository[Session]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := apitest.New(t)
	return &fixture{
		srv:      srv,
		api:      client.New(srv.APIURL()),
		sessions: storage.NewMemoryRepository[Session](),
	}
}

// book creates a meeting for a fresh mentee directly through the services.
func (f *fixture) book(t *testing.T, mentorID, email, date, topic string) string {
	t.Helper()
	ctx := context.Background()
	u, err := f.srv.Users.Register(ctx, &models.RegisterRequest{FullName: "Mentee " + topic, Email: email, Password: "secret1"})
	if err != nil {
		t.Fatalf("register mentee: %v", err)
	}
	m, err := f.srv.Meetings.Create(ctx, &models.CreateMeetingRequest{
		UserID:   u.ID,
		MentorID: mentorID,
		Date:     date,
		TimeSlot: "10:00 AM",
		Topic:    topic,
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}
	return m.ID
}

func TestStartWithoutSession(t *testing.T) {
	f := newFixture(t)
	c := NewController(f.api, f.sessions)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if c.Page() != PageLogin || c.Session() != nil {
		t.Fatalf("page = %s", c.Page())
	}
}

func TestStartClearsCorruptSession(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	repo, err := storage.NewFileRepository[Session](path)
	if err != nil {
		t.Fatal(err)
	}

	c := NewController(f.api, repo)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if c.Page() != PageLogin {
		t.Fatalf("page = %s", c.Page())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("corrupt session file kept: %v", err)
	}
}

func TestStartClearsIncompleteSession(t *testing.T) {
	f := newFixture(t)
	f.sessions.Save(context.Background(), &Session{Mentor: models.MentorSession{ID: "x"}})

	c := NewController(f.api, f.sessions)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s, _ := f.sessions.Load(context.Background()); s != nil {
		t.Fatalf("session kept: %+v", s)
	}
}

func TestGatedPagesNeedSession(t *testing.T) {
	f := newFixture(t)
	c := NewController(f.api, f.sessions)
	if err := c.Fire(EventAuthenticated); err != nil {
		t.Fatal(err)
	}
	if c.Page() != PageLogin {
		t.Fatalf("dashboard rendered without a session: %s", c.Page())
	}
}

func TestRegisterLoginAndRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := NewController(f.api, f.sessions)
	if err := c.Fire(EventRegister); err != nil {
		t.Fatal(err)
	}
	if err := c.Register(ctx, "alex.chen@example.com", "mentor-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Page() != PageDashboard {
		t.Fatalf("page = %s", c.Page())
	}
	if n := c.Notice(); n == nil || n.Message != "Registration successful! Welcome to the mentor portal." {
		t.Fatalf("notice = %+v", n)
	}
	stored, _ := f.sessions.Load(ctx)
	if stored == nil || stored.Token == "" || stored.Mentor.Name != "Alex Chen" {
		t.Fatalf("stored session = %+v", stored)
	}

	// Claiming twice fails inline and does not move.
	other := NewController(f.api, storage.NewMemoryRepository[Session]())
	other.Fire(EventRegister)
	if err := other.Register(ctx, "alex.chen@example.com", "again!"); err == nil {
		t.Fatal("second claim accepted")
	}
	if other.Err() != "Mentor account already registered. Please log in." || other.Page() != PageRegister {
		t.Fatalf("err=%q page=%s", other.Err(), other.Page())
	}

	if err := other.Login(ctx, "alex.chen@example.com", "wrong-pass"); err == nil {
		t.Fatal("wrong password accepted")
	}
	if other.Err() != "Invalid credentials" || other.Session() != nil {
		t.Fatalf("err=%q", other.Err())
	}
	if err := other.Login(ctx, "alex.chen@example.com", "mentor-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if other.Err() != "" || other.Page() != PageDashboard {
		t.Fatalf("err=%q page=%s", other.Err(), other.Page())
	}

	restored := NewController(f.api, f.sessions)
	if err := restored.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if restored.Page() != PageDashboard || restored.Session().Mentor.Email != "alex.chen@example.com" {
		t.Fatalf("restore failed: page=%s", restored.Page())
	}

	if err := restored.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s, _ := f.sessions.Load(ctx); s != nil {
		t.Fatal("logout left the stored session")
	}
	if restored.Page() != PageLogin || len(restored.Meetings()) != 0 {
		t.Fatalf("page=%s meetings=%d", restored.Page(), len(restored.Meetings()))
	}
	if n := restored.Notice(); n == nil || n.Kind != NoticeInfo {
		t.Fatalf("notice = %+v", n)
	}
}

func TestUpdateMeetingStatusTouchesOnlyMatchingID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alexID := f.srv.ClaimMentor(t, "alex.chen@example.com", "mentor-pass")
	sarahID := f.srv.ClaimMentor(t, "sarah.kim@example.com", "mentor-pass")

	first := f.book(t, alexID, "a@example.com", "2025-06-01", "Resume review")
	second := f.book(t, alexID, "b@example.com", "2025-06-02", "Career switch")
	foreign := f.book(t, sarahID, "c@example.com", "2025-06-01", "Design review")

	c := NewController(f.api, f.sessions)
	if err := c.Login(ctx, "alex.chen@example.com", "mentor-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	meetings := c.Meetings()
	if len(meetings) != 2 || meetings[0].User == nil || meetings[0].User.FullName != "Mentee Resume review" {
		t.Fatalf("meetings = %+v", meetings)
	}

	if err := c.ViewMeeting(first); err != nil {
		t.Fatalf("view: %v", err)
	}
	if c.Page() != PageMeetingDetails {
		t.Fatalf("page = %s", c.Page())
	}

	for _, status := range []models.MeetingStatus{models.StatusCompleted, models.StatusCancelled, models.StatusScheduled, models.StatusCompleted} {
		if !c.UpdateMeetingStatus(ctx, first, status) {
			t.Fatalf("update to %s failed: %s", status, c.Err())
		}
		if got := c.Selected().Status; got != status {
			t.Fatalf("selected status = %s, want %s", got, status)
		}
		for _, m := range c.Meetings() {
			want := models.StatusScheduled
			if m.ID == first {
				want = status
			}
			if m.Status != want {
				t.Fatalf("meeting %s status = %s, want %s", m.ID, m.Status, want)
			}
		}
	}
	if n := c.Notice(); n == nil || n.Message != "Meeting Completed successfully!" {
		t.Fatalf("notice = %+v", n)
	}

	if c.UpdateMeetingStatus(ctx, foreign, models.StatusCancelled) {
		t.Fatal("updated another mentor's meeting")
	}
	if c.Err() != "Failed to update meeting status" {
		t.Fatalf("err = %q", c.Err())
	}
	if got := c.Selected(); got.ID != first || got.Status != models.StatusCompleted {
		t.Fatalf("selected changed: %+v", got)
	}

	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if err := c.ViewMeeting(second); err != nil {
		t.Fatalf("view second: %v", err)
	}
	if c.Selected().Status != models.StatusScheduled {
		t.Fatalf("second meeting status = %s", c.Selected().Status)
	}
}

func TestUpdateWithoutSession(t *testing.T) {
	f := newFixture(t)
	c := NewController(f.api, f.sessions)
	if c.UpdateMeetingStatus(context.Background(), "x", models.StatusCompleted) {
		t.Fatal("update without a session succeeded")
	}
	if c.Err() != "Authentication required" {
		t.Fatalf("err = %q", c.Err())
	}
}

func TestViewProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.srv.ClaimMentor(t, "priya.patel@example.com", "mentor-pass")

	c := NewController(f.api, f.sessions)
	if err := c.Login(ctx, "priya.patel@example.com", "mentor-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.ViewProfile(ctx); err != nil {
		t.Fatalf("profile: %v", err)
	}
	p := c.Profile()
	if c.Page() != PageProfile || p == nil || p.Name != "Priya Patel" || len(p.Availability) == 0 {
		t.Fatalf("page=%s profile=%+v", c.Page(), p)
	}
	if err := c.Back(); err != nil || c.Page() != PageDashboard {
		t.Fatalf("back: %v page=%s", err, c.Page())
	}
}

func TestNoticeExpires(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewController(f.api, f.sessions)
	c.now = func() time.Time { return now }

	c.Logout(context.Background())
	if c.Notice() == nil {
		t.Fatal("notice missing")
	}
	now = now.Add(NoticeTTL)
	if c.Notice() != nil {
		t.Fatal("notice did not expire")
	}
}

func TestAuthenticateFollowsTransitionTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.srv.ClaimMentor(t, "alex.chen@example.com", "mentor-pass")

	c := NewController(f.api, f.sessions)
	if err := c.Login(ctx, "alex.chen@example.com", "mentor-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.ViewProfile(ctx); err != nil {
		t.Fatalf("profile: %v", err)
	}

	err := c.Login(ctx, "alex.chen@example.com", "mentor-pass")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("login from profile: %v", err)
	}
	if c.Page() != PageProfile {
		t.Fatalf("page = %s, want %s", c.Page(), PageProfile)
	}
	if err := c.Register(ctx, "sarah.kim@example.com", "mentor-pass"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("register from profile: %v", err)
	}
	if s := c.Session(); s == nil || s.Mentor.Email != "alex.chen@example.com" {
		t.Fatalf("session changed: %+v", s)
	}
	// The rejected register never reached the server, so the claim is still open.
	f.srv.ClaimMentor(t, "sarah.kim@example.com", "mentor-pass")

	if err := c.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.Login(ctx, "alex.chen@example.com", "mentor-pass"); err != nil {
		t.Fatalf("login after logout: %v", err)
	}
}

// Package portal drives the mentor portal: sign-in, the persisted session,
// the meeting agenda and status changes.
package portal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/pathfinder/backend/internal/client"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/storage"
)

const NoticeTTL = 5 * time.Second

type API interface {
	MentorLogin(ctx context.Context, email, password string) (*models.MentorAuthResponse, error)
	MentorRegister(ctx context.Context, email, password string) (*models.MentorAuthResponse, error)
	ListMentorMeetings(ctx context.Context, mentorID string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, token, meetingID string, req *models.UpdateMeetingRequest) (*models.Meeting, error)
	MentorProfile(ctx context.Context, token string) (*models.Mentor, error)
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
)

type Notice struct {
	Message string
	Kind    NoticeKind
	At      time.Time
}

type Controller struct {
	mu       sync.Mutex
	api      API
	sessions SessionRepository
	now      func() time.Time

	page     Page
	session  *Session
	profile  *models.Mentor
	meetings []models.Meeting
	selected *models.Meeting
	err      string
	notice   *Notice
}

func NewController(api API, sessions SessionRepository) *Controller {
	return &Controller{
		api:      api,
		sessions: sessions,
		now:      time.Now,
		page:     PageLogin,
	}
}

// Start restores a stored session. A stored session opens the dashboard and
// refetches meetings; an unreadable one is discarded.
func (c *Controller) Start(ctx context.Context) error {
	s, err := c.sessions.Load(ctx)
	if err != nil && !errors.Is(err, storage.ErrCorrupt) {
		return fmt.Errorf("load session: %w", err)
	}
	if err == nil && s != nil && !s.valid() {
		err = fmt.Errorf("%w: session without mentor or token", storage.ErrCorrupt)
	}
	if err != nil {
		log.Printf("[portal] discarding stored session: %v", err)
		if err := c.sessions.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	if s == nil {
		return nil
	}

	c.mu.Lock()
	c.session = s
	c.page = PageDashboard
	c.mu.Unlock()

	c.RefreshMeetings(ctx)
	return nil
}

// Page is the page to render. Pages that need a mentor fall back to login
// without a session, and meeting details falls back to the dashboard without
// a selection.
func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gated(c.page) && c.session == nil {
		return PageLogin
	}
	if c.page == PageMeetingDetails && c.selected == nil {
		return PageDashboard
	}
	return c.page
}

func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Controller) Meetings() []models.Meeting {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Meeting(nil), c.meetings...)
}

func (c *Controller) Selected() *models.Meeting {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	m := *c.selected
	return &m
}

func (c *Controller) Profile() *models.Mentor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Err is the inline error shown on the current page.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Notice returns the current toast until it is NoticeTTL old.
func (c *Controller) Notice() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notice == nil || c.now().Sub(c.notice.At) >= NoticeTTL {
		return nil
	}
	n := *c.notice
	return &n
}

func (c *Controller) notifyLocked(msg string, kind NoticeKind) {
	c.notice = &Notice{Message: msg, Kind: kind, At: c.now()}
}

func (c *Controller) Fire(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fireLocked(e)
}

func (c *Controller) fireLocked(e Event) error {
	next, err := Next(c.page, e)
	if err != nil {
		return fmt.Errorf("%w: %s on %s", err, e, c.page)
	}
	c.page = next
	return nil
}

func (c *Controller) Back() error {
	return c.Fire(EventBack)
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, c.api.MentorLogin, email, password,
		"Login failed. Please check your credentials.", "Login successful! Welcome back.")
}

// Register claims a seeded mentor record by setting its password.
func (c *Controller) Register(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, c.api.MentorRegister, email, password,
		"Registration failed. Please try again.", "Registration successful! Welcome to the mentor portal.")
}

type authFunc func(ctx context.Context, email, password string) (*models.MentorAuthResponse, error)

func (c *Controller) authenticate(ctx context.Context, call authFunc, email, password, failMsg, okMsg string) error {
	c.mu.Lock()
	if _, err := Next(c.page, EventAuthenticated); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s on %s", err, EventAuthenticated, c.page)
	}
	c.err = ""
	c.mu.Unlock()

	resp, err := call(ctx, strings.TrimSpace(email), password)
	if err != nil {
		log.Printf("[portal] authentication failed for %s: %v", email, err)
		msg := client.Message(err)
		if msg == "" {
			msg = failMsg
		}
		c.mu.Lock()
		c.err = msg
		c.mu.Unlock()
		return err
	}

	s := &Session{Mentor: resp.Mentor, Token: resp.Token}
	if err := c.sessions.Save(ctx, s); err != nil {
		log.Printf("[portal] save session: %v", err)
	}

	c.mu.Lock()
	c.session = s
	c.profile = nil
	c.notifyLocked(okMsg, NoticeSuccess)
	c.mu.Unlock()

	c.RefreshMeetings(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fireLocked(EventAuthenticated)
}

// Logout forgets the session locally and in the repository.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.session = nil
	c.profile = nil
	c.meetings = nil
	c.selected = nil
	c.err = ""
	c.page = PageLogin
	c.notifyLocked("You have been logged out successfully.", NoticeInfo)
	c.mu.Unlock()

	if err := c.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// RefreshMeetings reloads the agenda. Failures are reported through Err.
func (c *Controller) RefreshMeetings(ctx context.Context) bool {
	s := c.Session()
	if s == nil {
		return false
	}

	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()

	meetings, err := c.api.ListMentorMeetings(ctx, s.Mentor.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[portal] fetch meetings for %s: %v", s.Mentor.ID, err)
		c.err = "Failed to load meetings. Please try again."
		return false
	}
	c.meetings = meetings
	return true
}

// ViewMeeting selects a meeting from the agenda and opens its details.
func (c *Controller) ViewMeeting(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.meetings {
		if c.meetings[i].ID == id {
			if _, err := Next(c.page, EventViewMeeting); err != nil {
				return fmt.Errorf("%w: %s on %s", err, EventViewMeeting, c.page)
			}
			m := c.meetings[i]
			c.selected = &m
			return c.fireLocked(EventViewMeeting)
		}
	}
	return fmt.Errorf("meeting %s is not on the agenda", id)
}

// ViewProfile opens the profile page and loads the full mentor record.
func (c *Controller) ViewProfile(ctx context.Context) error {
	if err := c.Fire(EventViewProfile); err != nil {
		return err
	}
	s := c.Session()
	if s == nil {
		return nil
	}

	profile, err := c.api.MentorProfile(ctx, s.Token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[portal] fetch profile: %v", err)
		c.err = client.Message(err)
		return err
	}
	c.profile = profile
	return nil
}

// UpdateMeetingStatus changes a meeting's status on the server and then in
// the agenda and the open meeting, both only where the id matches. It reports
// success instead of failing so the caller can stay on the page.
func (c *Controller) UpdateMeetingStatus(ctx context.Context, id string, status models.MeetingStatus) bool {
	s := c.Session()
	if s == nil {
		c.mu.Lock()
		c.err = "Authentication required"
		c.mu.Unlock()
		return false
	}

	_, err := c.api.UpdateMeeting(ctx, s.Token, id, &models.UpdateMeetingRequest{Status: &status})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[portal] update meeting %s to %s: %v", id, status, err)
		c.err = "Failed to update meeting status"
		return false
	}

	for i := range c.meetings {
		if c.meetings[i].ID == id {
			c.meetings[i].Status = status
		}
	}
	if c.selected != nil && c.selected.ID == id {
		c.selected.Status = status
	}

	label := string(status)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	c.notifyLocked(fmt.Sprintf("Meeting %s successfully!", label), NoticeSuccess)
	return true
}

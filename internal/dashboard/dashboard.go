// Package dashboard drives the student dashboard: mentor discovery, the
// meeting list and the booking modal.
package dashboard

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pathfinder/backend/internal/client"
	"github.com/pathfinder/backend/internal/models"
)

var ErrMissingFields = errors.New("please fill all required fields")

type API interface {
	ListMentors(ctx context.Context) ([]models.Mentor, error)
	ListMentorsByIndustry(ctx context.Context, industry string) ([]models.Mentor, error)
	ListUserMeetings(ctx context.Context, userID string) ([]models.Meeting, error)
	CreateMeeting(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error)
}

// BookingForm holds the modal's fields. Date is YYYY-MM-DD.
type BookingForm struct {
	Date     string
	TimeSlot string
	Topic    string
}

type State struct {
	Mentors        []models.Mentor
	Meetings       []models.Meeting
	Loading        bool
	Error          string
	SelectedMentor *models.Mentor
	BookingOpen    bool
}

type Dashboard struct {
	mu         sync.Mutex
	api        API
	alerts     Alerter
	userID     string
	industries []string
	state      State
}

func New(api API, alerts Alerter, userID string, industries []string) *Dashboard {
	if alerts == nil {
		alerts = LogAlerter{}
	}
	return &Dashboard{
		api:        api,
		alerts:     alerts,
		userID:     userID,
		industries: industries,
	}
}

// State returns a snapshot safe to read while loads are in flight.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.Mentors = append([]models.Mentor(nil), d.state.Mentors...)
	s.Meetings = append([]models.Meeting(nil), d.state.Meetings...)
	if d.state.SelectedMentor != nil {
		m := *d.state.SelectedMentor
		s.SelectedMentor = &m
	}
	return s
}

// Load fetches mentors and meetings concurrently. The two loads are
// independent: a failure in one never cancels the other.
func (d *Dashboard) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.LoadMentors(ctx) })
	g.Go(func() error { return d.LoadMeetings(ctx) })
	return g.Wait()
}

// LoadMentors lists mentors for the first preferred industry, falling back to
// every mentor when that industry has none.
func (d *Dashboard) LoadMentors(ctx context.Context) error {
	d.mu.Lock()
	d.state.Loading = true
	d.state.Error = ""
	industry := ""
	if len(d.industries) > 0 {
		industry = d.industries[0]
	}
	d.mu.Unlock()

	mentors, err := d.fetchMentors(ctx, industry)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Loading = false
	if err != nil {
		log.Printf("[dashboard] fetch mentors: %v", err)
		d.state.Error = client.Message(err)
		d.state.Mentors = nil
		return err
	}
	d.state.Mentors = mentors
	return nil
}

func (d *Dashboard) fetchMentors(ctx context.Context, industry string) ([]models.Mentor, error) {
	if industry != "" {
		mentors, err := d.api.ListMentorsByIndustry(ctx, industry)
		if err != nil {
			return nil, err
		}
		if len(mentors) > 0 {
			return mentors, nil
		}
	}
	return d.api.ListMentors(ctx)
}

// LoadMeetings is a no-op until the user id is known.
func (d *Dashboard) LoadMeetings(ctx context.Context) error {
	if d.userID == "" {
		return nil
	}
	meetings, err := d.api.ListUserMeetings(ctx, d.userID)
	if err != nil {
		log.Printf("[dashboard] fetch meetings: %v", err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Meetings = meetings
	return nil
}

func (d *Dashboard) OpenBooking(mentor models.Mentor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.SelectedMentor = &mentor
	d.state.BookingOpen = true
}

func (d *Dashboard) CloseBooking() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.BookingOpen = false
}

// Book creates a scheduled meeting with the selected mentor and appends the
// stored record on success. The meeting list is untouched on failure.
func (d *Dashboard) Book(ctx context.Context, form BookingForm) error {
	d.mu.Lock()
	mentor := d.state.SelectedMentor
	d.mu.Unlock()

	if mentor == nil || d.userID == "" || strings.TrimSpace(form.Date) == "" ||
		strings.TrimSpace(form.TimeSlot) == "" || strings.TrimSpace(form.Topic) == "" {
		d.alerts.Alert("Please fill all required fields")
		return ErrMissingFields
	}

	date, err := models.ParseMeetingDate(form.Date)
	if err != nil {
		d.alerts.Alert("Error scheduling meeting: " + err.Error())
		return err
	}

	req := &models.CreateMeetingRequest{
		UserID:      d.userID,
		MentorID:    mentor.ID,
		Date:        date.UTC().Format(time.RFC3339),
		TimeSlot:    form.TimeSlot,
		Topic:       form.Topic,
		Status:      models.StatusScheduled,
		MeetingLink: NewMeetingLink(),
	}

	meeting, err := d.api.CreateMeeting(ctx, req)
	if err != nil {
		log.Printf("[dashboard] schedule meeting: %v", err)
		d.alerts.Alert("Error scheduling meeting: " + client.Message(err))
		return err
	}

	d.mu.Lock()
	d.state.Meetings = append(d.state.Meetings, *meeting)
	d.state.BookingOpen = false
	d.mu.Unlock()

	d.alerts.Alert("Meeting scheduled successfully!")
	return nil
}

// NewMeetingLink returns a placeholder video link with an 8 character code.
func NewMeetingLink() string {
	code := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "https://meet.google.com/" + code[:8]
}

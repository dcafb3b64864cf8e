package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pathfinder/backend/internal/client"
	"github.com/pathfinder/backend/internal/dashboard"
	"github.com/pathfinder/backend/internal/models"
)

const DefaultLoadingDelay = time.Second

var ErrUnknownPage = errors.New("unknown page")

type API interface {
	dashboard.API
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// Controller owns the current page and the profile draft. It is safe for
// concurrent use.
type Controller struct {
	mu     sync.Mutex
	api    API
	alerts dashboard.Alerter
	page   Page
	draft  Draft

	// LoadingDelay is the minimum time spent on the loading page.
	LoadingDelay time.Duration
}

func NewController(api API, alerts dashboard.Alerter) *Controller {
	if alerts == nil {
		alerts = dashboard.LogAlerter{}
	}
	return &Controller{
		api:          api,
		alerts:       alerts,
		page:         PageMain,
		LoadingDelay: DefaultLoadingDelay,
	}
}

func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Draft returns a copy of the accumulated profile.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// GoTo jumps straight to p without consulting the transition table.
func (c *Controller) GoTo(p Page) error {
	if _, ok := transitions[p]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = p
	return nil
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

func (c *Controller) Merge(s Slice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Merge(s)
}

// LogoClick returns to the dashboard for a known user and to auth otherwise.
func (c *Controller) LogoClick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.FullName() != "" {
		c.page = PageDashboard
	} else {
		c.page = PageAuth
	}
}

// Logout drops the draft and returns to the landing page.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Draft{}
	c.page = PageMain
}

// advance validates a step, merges it and fires e. Nothing changes when the
// step is rejected.
func (c *Controller) advance(e Event, s Slice, fields map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := Next(c.page, e); err != nil {
		return fmt.Errorf("%w: %s on %s", err, e, c.page)
	}
	if err := validationError(fields); err != nil {
		return err
	}
	c.draft.Merge(s)
	return c.fireLocked(e)
}

func (c *Controller) Signup(form SignupForm) error {
	return c.advance(EventNext, Credentials{Email: form.Email, Password: form.Password}, form.Validate())
}

// SubmitIdentity falls back to the signup email when none is given.
func (c *Controller) SubmitIdentity(i Identity) error {
	if strings.TrimSpace(i.Email) == "" {
		i.Email = c.Draft().Email()
	}
	return c.advance(EventNext, i, i.Validate())
}

func (c *Controller) SubmitEducation(e Education) error {
	return c.advance(EventNext, e, e.Validate())
}

func (c *Controller) SubmitSkills(s Skills) error {
	return c.advance(EventNext, s, s.Validate())
}

// SubmitGoals merges the last slice, shows the loading page and registers the
// user. The dashboard is reached only once both the loading delay and the
// registration call are done, so the outcome is always settled there. A
// failed registration is reported through the outcome, not the error.
func (c *Controller) SubmitGoals(ctx context.Context, goals Goals) (Outcome, error) {
	c.mu.Lock()
	if _, err := Next(c.page, EventSubmit); err != nil {
		c.mu.Unlock()
		return Outcome{}, fmt.Errorf("%w: %s on %s", err, EventSubmit, c.page)
	}
	if err := validationError(goals.Validate()); err != nil {
		c.mu.Unlock()
		return Outcome{}, err
	}
	c.draft.Merge(goals)
	req, err := c.draft.Build()
	if err != nil {
		c.mu.Unlock()
		return Outcome{}, err
	}
	c.draft.Outcome = Outcome{}
	if err := c.fireLocked(EventSubmit); err != nil {
		c.mu.Unlock()
		return Outcome{}, err
	}
	delay := c.LoadingDelay
	c.mu.Unlock()

	var outcome Outcome
	var g errgroup.Group
	g.Go(func() error {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
		return nil
	})
	g.Go(func() error {
		resp, err := c.api.Register(ctx, req)
		if err != nil {
			log.Printf("[onboarding] registration failed for %s: %v", req.Email, err)
			outcome = Outcome{Status: StatusError, Error: client.Message(err)}
			return nil
		}
		log.Printf("[onboarding] registered user %s", resp.User.ID)
		outcome = Outcome{Status: StatusSuccess, UserID: resp.User.ID, Token: resp.Token}
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Outcome = outcome
	if err := c.fireLocked(EventDone); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Login authenticates from the login page. Failures raise an alert and keep
// the page.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if p := c.Page(); p != PageLogin {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventLoggedIn, p)
	}

	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		log.Printf("[onboarding] login failed for %s: %v", email, err)
		c.alerts.Alert("Login failed: " + client.Message(err))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Merge(Credentials{Email: resp.User.Email})
	c.draft.applyUser(&resp.User, resp.Token)
	return c.fireLocked(EventLoggedIn)
}

// Greeting is the dashboard headline.
func (c *Controller) Greeting() string {
	name := "User"
	if fields := strings.Fields(c.Draft().FullName()); len(fields) > 0 {
		name = fields[0]
	}
	return "Welcome back, " + name
}

// Banner reports the registration outcome, or nothing when there is none.
func (c *Controller) Banner() string {
	o := c.Draft().Outcome
	switch o.Status {
	case StatusSuccess:
		return "Your profile has been successfully saved to the database!"
	case StatusError:
		return "There was an error saving your profile: " + o.Error
	}
	return ""
}

// Dashboard returns a dashboard bound to the signed-in user.
func (c *Controller) Dashboard() *dashboard.Dashboard {
	d := c.Draft()
	return dashboard.New(c.api, c.alerts, d.Outcome.UserID, d.IndustryPreference())
}

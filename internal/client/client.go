// Package client is a typed HTTP client for the Pathfinder REST API, shared by
// the onboarding, dashboard and mentor portal controllers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pathfinder/backend/internal/models"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for baseURL, which includes the /api prefix.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func errorMessage(status int, raw []byte) string {
	var body models.APIResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}

func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	var out []models.Mentor
	if err := c.do(ctx, http.MethodGet, "/mentors", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMentorsByIndustry(ctx context.Context, industry string) ([]models.Mentor, error) {
	var out []models.Mentor
	if err := c.do(ctx, http.MethodGet, "/mentors/industry/"+url.PathEscape(industry), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUserMeetings(ctx context.Context, userID string) ([]models.Meeting, error) {
	var out []models.Meeting
	if err := c.do(ctx, http.MethodGet, "/meetings/user/"+url.PathEscape(userID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMeeting(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	var out models.Meeting
	if err := c.do(ctx, http.MethodPost, "/meetings", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MentorLogin(ctx context.Context, email, password string) (*models.MentorAuthResponse, error) {
	return c.mentorAuth(ctx, "/mentors/login", email, password)
}

// MentorRegister claims a seeded mentor record.
func (c *Client) MentorRegister(ctx context.Context, email, password string) (*models.MentorAuthResponse, error) {
	return c.mentorAuth(ctx, "/mentors/register", email, password)
}

func (c *Client) mentorAuth(ctx context.Context, path, email, password string) (*models.MentorAuthResponse, error) {
	var out models.MentorAuthResponse
	body := models.MentorCredentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, path, "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMentorMeetings(ctx context.Context, mentorID string) ([]models.Meeting, error) {
	var out []models.Meeting
	if err := c.do(ctx, http.MethodGet, "/meetings/mentor/"+url.PathEscape(mentorID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateMeeting(ctx context.Context, token, meetingID string, req *models.UpdateMeetingRequest) (*models.Meeting, error) {
	var out models.Meeting
	if err := c.do(ctx, http.MethodPatch, "/meetings/"+url.PathEscape(meetingID), token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MentorProfile(ctx context.Context, token string) (*models.Mentor, error) {
	var out models.Mentor
	if err := c.do(ctx, http.MethodGet, "/mentors/me/profile", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Message returns the text a user should see for err: the server's message for
// API errors, the error text otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

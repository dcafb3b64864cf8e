package models

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

const (
	DefaultMentorImageURL = "https://img.freepik.com/free-photo/confident-business-woman-portrait-smiling-face_53876-137693.jpg"
	DefaultMentorRating   = 4.5
)

type DayAvailability struct {
	Day   string   `json:"day" bson:"day"`
	Slots []string `json:"slots" bson:"slots"`
}

// Mentor is a seeded or created expert. IsRegistered flips to true once the
// mentor claims the record by setting a password.
type Mentor struct {
	ID           string            `json:"_id" bson:"_id"`
	Name         string            `json:"name" bson:"name"`
	Email        string            `json:"email" bson:"email"`
	PasswordHash string            `json:"-" bson:"password,omitempty"`
	IsRegistered bool              `json:"isRegistered" bson:"is_registered"`
	Role         string            `json:"role" bson:"role"`
	Company      string            `json:"company" bson:"company"`
	Bio          string            `json:"bio,omitempty" bson:"bio,omitempty"`
	Expertise    []string          `json:"expertise" bson:"expertise"`
	Industries   []string          `json:"industries" bson:"industries"`
	ImageURL     string            `json:"imageUrl" bson:"image_url"`
	Rating       float64           `json:"rating" bson:"rating"`
	Availability []DayAvailability `json:"availability" bson:"availability"`
	CreatedAt    time.Time         `json:"createdAt" bson:"created_at"`
}

// MentorSession is the subset of a mentor returned with a token and kept by the portal.
type MentorSession struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	ImageURL string `json:"imageUrl"`
}

// MentorSummary is the mentor view embedded in a student's meeting list.
type MentorSummary struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
}

func (m *Mentor) Session() MentorSession {
	return MentorSession{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		Company:  m.Company,
		ImageURL: m.ImageURL,
	}
}

func (m *Mentor) Summary() *MentorSummary {
	return &MentorSummary{ID: m.ID, Name: m.Name, Role: m.Role, ImageURL: m.ImageURL}
}

// HasIndustry reports whether the mentor is tagged with industry (normalised).
func (m *Mentor) HasIndustry(industry string) bool {
	want := NormalizeIndustry(industry)
	for _, tag := range m.Industries {
		if NormalizeIndustry(tag) == want {
			return true
		}
	}
	return false
}

// NormalizeIndustry turns "Health Care" and "health-care" into the same tag.
func NormalizeIndustry(industry string) string {
	return slug.Make(strings.TrimSpace(industry))
}

// NormalizeIndustries normalises tags, dropping empties and duplicates.
func NormalizeIndustries(industries []string) []string {
	out := make([]string, 0, len(industries))
	seen := make(map[string]bool, len(industries))
	for _, in := range industries {
		tag := NormalizeIndustry(in)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

type CreateMentorRequest struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Company      string            `json:"company"`
	Bio          string            `json:"bio"`
	Expertise    []string          `json:"expertise"`
	Industries   []string          `json:"industries"`
	ImageURL     string            `json:"imageUrl"`
	Rating       *float64          `json:"rating"`
	Availability []DayAvailability `json:"availability"`
}

// MentorCredentials is used for both claiming and logging in.
type MentorCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateMentorRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "Name is required"
	}
	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if strings.TrimSpace(r.Role) == "" {
		errors["role"] = "Role is required"
	}
	if strings.TrimSpace(r.Company) == "" {
		errors["company"] = "Company is required"
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		errors["rating"] = "Rating must be between 0 and 5"
	}

	return errors
}

// ToMentor builds an unregistered mentor with defaults applied.
func (r *CreateMentorRequest) ToMentor() *Mentor {
	m := &Mentor{
		Name:         strings.TrimSpace(r.Name),
		Email:        NormalizeEmail(r.Email),
		Role:         r.Role,
		Company:      r.Company,
		Bio:          r.Bio,
		Expertise:    r.Expertise,
		Industries:   NormalizeIndustries(r.Industries),
		ImageURL:     r.ImageURL,
		Rating:       DefaultMentorRating,
		Availability: r.Availability,
	}
	if m.ImageURL == "" {
		m.ImageURL = DefaultMentorImageURL
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if m.Expertise == nil {
		m.Expertise = []string{}
	}
	if m.Availability == nil {
		m.Availability = []DayAvailability{}
	}
	return m
}

func (r *MentorCredentials) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}

	return errors
}

package onboarding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pathfinder/backend/internal/models"
)

var ErrIncomplete = errors.New("profile draft is incomplete")

type Credentials struct {
	Email    string
	Password string
}

type Identity struct {
	FullName     string
	Email        string
	Age          int
	ProfileImage string
}

type Education struct {
	Level        string
	FieldOfStudy string
	Institution  string
	Certificates []string
}

type Skills struct {
	Technical []models.Skill
	Soft      []models.Skill
}

type Goals struct {
	DesiredRoles       []string
	IndustryPreference []string
	Timeline           string
	SpecificGoal       string
}

// Slice is one step's contribution to a Draft.
type Slice interface {
	apply(d *Draft)
}

func (c Credentials) apply(d *Draft) { d.credentials = &c }
func (i Identity) apply(d *Draft)    { d.identity = &i }
func (e Education) apply(d *Draft)   { d.education = &e }
func (s Skills) apply(d *Draft)      { d.skills = &s }
func (g Goals) apply(d *Draft)       { d.goals = &g }

type Status string

const (
	StatusPending Status = ""
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Outcome is what the registration or login call left behind.
type Outcome struct {
	Status Status
	Error  string
	UserID string
	Token  string
}

// Draft accumulates the wizard slices. A later slice of the same kind
// replaces the earlier one.
type Draft struct {
	credentials *Credentials
	identity    *Identity
	education   *Education
	skills      *Skills
	goals       *Goals

	Outcome Outcome
}

func (d *Draft) Merge(s Slice) {
	s.apply(d)
}

func (d Draft) FullName() string {
	if d.identity == nil {
		return ""
	}
	return d.identity.FullName
}

func (d Draft) Email() string {
	if d.identity != nil && d.identity.Email != "" {
		return d.identity.Email
	}
	if d.credentials != nil {
		return d.credentials.Email
	}
	return ""
}

func (d Draft) IndustryPreference() []string {
	if d.goals == nil {
		return nil
	}
	return append([]string(nil), d.goals.IndustryPreference...)
}

// Build assembles the registration request once every slice is present.
func (d *Draft) Build() (*models.RegisterRequest, error) {
	var missing []string
	if d.credentials == nil {
		missing = append(missing, "credentials")
	}
	if d.identity == nil {
		missing = append(missing, "identity")
	}
	if d.education == nil {
		missing = append(missing, "education")
	}
	if d.skills == nil {
		missing = append(missing, "skills")
	}
	if d.goals == nil {
		missing = append(missing, "goals")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return NewRegistration(*d.credentials, *d.identity, *d.education, *d.skills, *d.goals), nil
}

// NewRegistration builds the request body from a full set of slices. The
// identity email wins over the signup email when both are set.
func NewRegistration(c Credentials, i Identity, e Education, s Skills, g Goals) *models.RegisterRequest {
	email := c.Email
	if i.Email != "" {
		email = i.Email
	}
	age := ""
	if i.Age > 0 {
		age = strconv.Itoa(i.Age)
	}

	certs := make([]models.Certificate, 0, len(e.Certificates))
	for _, name := range e.Certificates {
		if name = strings.TrimSpace(name); name != "" {
			certs = append(certs, models.Certificate{Name: name})
		}
	}

	return &models.RegisterRequest{
		FullName:           i.FullName,
		Email:              email,
		Password:           c.Password,
		Age:                age,
		ProfileImage:       i.ProfileImage,
		Education:          e.Level,
		FieldOfStudy:       e.FieldOfStudy,
		Institution:        e.Institution,
		Certificates:       certs,
		TechnicalSkills:    append([]models.Skill{}, s.Technical...),
		SoftSkills:         append([]models.Skill{}, s.Soft...),
		DesiredRoles:       append([]string{}, g.DesiredRoles...),
		IndustryPreference: append([]string{}, g.IndustryPreference...),
		Timeline:           g.Timeline,
		SpecificGoal:       g.SpecificGoal,
	}
}

// applyUser replaces the profile slices with a stored user after login.
func (d *Draft) applyUser(u *models.User, token string) {
	age, _ := strconv.Atoi(u.Age)
	d.identity = &Identity{FullName: u.FullName, Email: u.Email, Age: age, ProfileImage: u.ProfileImage}

	certs := make([]string, 0, len(u.Certificates))
	for _, c := range u.Certificates {
		certs = append(certs, c.Name)
	}
	d.education = &Education{Level: u.Education, FieldOfStudy: u.FieldOfStudy, Institution: u.Institution, Certificates: certs}
	d.skills = &Skills{Technical: u.TechnicalSkills, Soft: u.SoftSkills}

	industries := u.IndustryPreference
	if len(industries) == 0 {
		industries = []string{"tech"}
	}
	d.goals = &Goals{
		DesiredRoles:       u.DesiredRoles,
		IndustryPreference: industries,
		Timeline:           u.Timeline,
		SpecificGoal:       u.SpecificGoal,
	}

	d.Outcome.UserID = u.ID
	d.Outcome.Token = token
}

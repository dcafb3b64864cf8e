package onboarding

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/pathfinder/backend/internal/models"
)

// ValidationError carries per-field messages from a wizard step.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

type SignupForm struct {
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *SignupForm) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(f.Email) == "" {
		errors["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errors["email"] = "Email is invalid"
	}
	if f.Password == "" {
		errors["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}
	if f.ConfirmPassword != f.Password {
		errors["confirmPassword"] = "Passwords do not match"
	}

	return errors
}

func (i Identity) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(i.FullName) == "" {
		errors["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(i.Email) == "" {
		errors["email"] = "Email is required"
	}
	if i.Age < models.MinAge || i.Age > models.MaxAge {
		errors["age"] = "Age must be between 13 and 120"
	}

	return errors
}

func (e Education) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(e.Level) == "" {
		errors["education"] = "Education level is required"
	}
	if strings.TrimSpace(e.FieldOfStudy) == "" {
		errors["fieldOfStudy"] = "Field of study is required"
	}
	if strings.TrimSpace(e.Institution) == "" {
		errors["institution"] = "Institution is required"
	}

	return errors
}

func (s Skills) Validate() map[string]string {
	errors := make(map[string]string)

	check := func(field string, skills []models.Skill) {
		for _, sk := range skills {
			if sk.Rating < models.MinSkillRating || sk.Rating > models.MaxSkillRating {
				errors[field] = "Skill ratings must be between 0 and 10"
				return
			}
		}
	}
	check("technicalSkills", s.Technical)
	check("softSkills", s.Soft)

	return errors
}

func (g Goals) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(g.Timeline) == "" {
		errors["timeline"] = "Timeline is required"
	}
	if strings.TrimSpace(g.SpecificGoal) == "" {
		errors["specificGoal"] = "Specific goal is required"
	}

	return errors
}

type Industry struct {
	Value string
	Label string
}

var Industries = []Industry{
	{Value: "tech", Label: "Technology"},
	{Value: "education", Label: "Education"},
	{Value: "finance", Label: "Finance"},
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "manufacturing", Label: "Manufacturing"},
	{Value: "retail", Label: "Retail"},
}

var CommonRoles = []string{
	"Software Engineer",
	"Data Scientist",
	"Product Manager",
	"UX Designer",
	"Business Analyst",
	"Project Manager",
	"Marketing Manager",
	"Financial Analyst",
	"Teacher",
	"Healthcare Professional",
}

var EducationLevels = []string{
	"High School",
	"Bachelor's Degree",
	"Master's Degree",
	"Ph.D.",
	"Diploma",
	"Certificate",
	"Other",
}

const defaultSkillRating = 5

// DefaultSkills is the starting point of the skills step.
func DefaultSkills() Skills {
	rated := func(names ...string) []models.Skill {
		out := make([]models.Skill, len(names))
		for i, n := range names {
			out[i] = models.Skill{Name: n, Rating: defaultSkillRating}
		}
		return out
	}
	return Skills{
		Technical: rated("Programming", "Data Analysis", "Development"),
		Soft:      rated("Communication", "Leadership", "Problem Solving"),
	}
}

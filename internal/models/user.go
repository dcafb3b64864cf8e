package models

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
)

type Certificate struct {
	Name string `json:"name" bson:"name"`
}

type Skill struct {
	Name   string `json:"name" bson:"name"`
	Rating int    `json:"rating" bson:"rating"`
}

const (
	MinSkillRating = 0
	MaxSkillRating = 10
	MinAge         = 13
	MaxAge         = 120
)

type User struct {
	ID                 string        `json:"_id" bson:"_id"`
	FullName           string        `json:"fullName" bson:"full_name"`
	Email              string        `json:"email" bson:"email"`
	PasswordHash       string        `json:"-" bson:"password"`
	Age                string        `json:"age,omitempty" bson:"age,omitempty"`
	ProfileImage       string        `json:"profileImage,omitempty" bson:"profile_image,omitempty"`
	Education          string        `json:"education,omitempty" bson:"education,omitempty"`
	FieldOfStudy       string        `json:"fieldOfStudy,omitempty" bson:"field_of_study,omitempty"`
	Institution        string        `json:"institution,omitempty" bson:"institution,omitempty"`
	Certificates       []Certificate `json:"certificates" bson:"certificates"`
	TechnicalSkills    []Skill       `json:"technicalSkills" bson:"technical_skills"`
	SoftSkills         []Skill       `json:"softSkills" bson:"soft_skills"`
	DesiredRoles       []string      `json:"desiredRoles" bson:"desired_roles"`
	IndustryPreference []string      `json:"industryPreference" bson:"industry_preference"`
	Timeline           string        `json:"timeline,omitempty" bson:"timeline,omitempty"`
	SpecificGoal       string        `json:"specificGoal,omitempty" bson:"specific_goal,omitempty"`
	CreatedAt          time.Time     `json:"createdAt" bson:"created_at"`
}

// RegisterRequest is the full onboarding payload: credentials plus every
// wizard slice.
type RegisterRequest struct {
	FullName           string        `json:"fullName"`
	Email              string        `json:"email"`
	Password           string        `json:"password"`
	Age                string        `json:"age"`
	ProfileImage       string        `json:"profileImage,omitempty"`
	Education          string        `json:"education"`
	FieldOfStudy       string        `json:"fieldOfStudy"`
	Institution        string        `json:"institution"`
	Certificates       []Certificate `json:"certificates"`
	TechnicalSkills    []Skill       `json:"technicalSkills"`
	SoftSkills         []Skill       `json:"softSkills"`
	DesiredRoles       []string      `json:"desiredRoles"`
	IndustryPreference []string      `json:"industryPreference"`
	Timeline           string        `json:"timeline"`
	SpecificGoal       string        `json:"specificGoal"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest only touches the fields that are present. Passwords cannot
// be changed through it.
type UpdateUserRequest struct {
	FullName           *string        `json:"fullName"`
	Age                *string        `json:"age"`
	ProfileImage       *string        `json:"profileImage"`
	Education          *string        `json:"education"`
	FieldOfStudy       *string        `json:"fieldOfStudy"`
	Institution        *string        `json:"institution"`
	Certificates       *[]Certificate `json:"certificates"`
	TechnicalSkills    *[]Skill       `json:"technicalSkills"`
	SoftSkills         *[]Skill       `json:"softSkills"`
	DesiredRoles       *[]string      `json:"desiredRoles"`
	IndustryPreference *[]string      `json:"industryPreference"`
	Timeline           *string        `json:"timeline"`
	SpecificGoal       *string        `json:"specificGoal"`
}

// NormalizeEmail lowercases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validateSkills(errors map[string]string, field string, skills []Skill) {
	for _, s := range skills {
		if s.Rating < MinSkillRating || s.Rating > MaxSkillRating {
			errors[field] = "Skill ratings must be between 0 and 10"
			return
		}
	}
}

func validateAge(errors map[string]string, age string) {
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil || n < MinAge || n > MaxAge {
		errors["age"] = "Age must be between 13 and 120"
	}
}

func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.FullName) == "" {
		errors["fullName"] = "Full name is required"
	}
	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}
	if r.Age != "" {
		validateAge(errors, r.Age)
	}
	validateSkills(errors, "technicalSkills", r.TechnicalSkills)
	validateSkills(errors, "softSkills", r.SoftSkills)

	return errors
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

func (r *UpdateUserRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.FullName != nil && strings.TrimSpace(*r.FullName) == "" {
		errors["fullName"] = "Full name cannot be empty"
	}
	if r.Age != nil && *r.Age != "" {
		validateAge(errors, *r.Age)
	}
	if r.TechnicalSkills != nil {
		validateSkills(errors, "technicalSkills", *r.TechnicalSkills)
	}
	if r.SoftSkills != nil {
		validateSkills(errors, "softSkills", *r.SoftSkills)
	}

	return errors
}

// Apply copies the present fields onto u.
func (r *UpdateUserRequest) Apply(u *User) {
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	if r.ProfileImage != nil {
		u.ProfileImage = *r.ProfileImage
	}
	if r.Education != nil {
		u.Education = *r.Education
	}
	if r.FieldOfStudy != nil {
		u.FieldOfStudy = *r.FieldOfStudy
	}
	if r.Institution != nil {
		u.Institution = *r.Institution
	}
	if r.Certificates != nil {
		u.Certificates = *r.Certificates
	}
	if r.TechnicalSkills != nil {
		u.TechnicalSkills = *r.TechnicalSkills
	}
	if r.SoftSkills != nil {
		u.SoftSkills = *r.SoftSkills
	}
	if r.DesiredRoles != nil {
		u.DesiredRoles = *r.DesiredRoles
	}
	if r.IndustryPreference != nil {
		u.IndustryPreference = *r.IndustryPreference
	}
	if r.Timeline != nil {
		u.Timeline = *r.Timeline
	}
	if r.SpecificGoal != nil {
		u.SpecificGoal = *r.SpecificGoal
	}
}

// UserSummary is the mentee view embedded in a mentor's meeting list.
type UserSummary struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

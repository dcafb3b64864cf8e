package onboarding

import (
	"testing"

	"github.com/pathfinder/backend/internal/models"
)

func TestSignupFormMismatch(t *testing.T) {
	f := SignupForm{Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret2"}
	errs := f.Validate()
	if errs["confirmPassword"] != "Passwords do not match" || len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
}

func TestStepValidation(t *testing.T) {
	tests := []struct {
		name  string
		errs  map[string]string
		field string
	}{
		{"identity name", Identity{Email: "a@b.co", Age: 20}.Validate(), "fullName"},
		{"identity young", Identity{FullName: "A", Email: "a@b.co", Age: 12}.Validate(), "age"},
		{"identity old", Identity{FullName: "A", Email: "a@b.co", Age: 121}.Validate(), "age"},
		{"education level", Education{FieldOfStudy: "CS", Institution: "MIT"}.Validate(), "education"},
		{"skills rating", Skills{Soft: []models.Skill{{Name: "x", Rating: 11}}}.Validate(), "softSkills"},
		{"goals timeline", Goals{SpecificGoal: "x"}.Validate(), "timeline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.errs[tt.field]; !ok {
				t.Fatalf("missing %s error in %v", tt.field, tt.errs)
			}
		})
	}

	if errs := (Identity{FullName: "A", Email: "a@b.co", Age: 13}).Validate(); len(errs) != 0 {
		t.Fatalf("age 13 rejected: %v", errs)
	}
	if errs := DefaultSkills().Validate(); len(errs) != 0 {
		t.Fatalf("defaults rejected: %v", errs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	if got := err.Error(); got != "validation failed: a: one; b: two" {
		t.Fatalf("message = %q", got)
	}
}

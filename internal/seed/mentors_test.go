package seed

import (
	"testing"

	"github.com/pathfinder/backend/internal/models"
)

func TestMentorsCatalogue(t *testing.T) {
	mentors := Mentors()
	if len(mentors) != 7 {
		t.Fatalf("want 7 mentors, got %d", len(mentors))
	}
	emails := map[string]bool{}
	for _, m := range mentors {
		if emails[m.Email] {
			t.Errorf("duplicate email %s", m.Email)
		}
		emails[m.Email] = true
		if m.IsRegistered || m.PasswordHash != "" {
			t.Errorf("%s must start unregistered", m.Name)
		}
		if len(m.Industries) == 0 || len(m.Availability) != 3 {
			t.Errorf("%s has incomplete data", m.Name)
		}
		if got := models.NormalizeIndustries(m.Industries); len(got) != len(m.Industries) {
			t.Errorf("%s industries are not canonical: %v", m.Name, m.Industries)
		}
	}
	// Fresh copies on every call.
	mentors[0].Name = "changed"
	if Mentors()[0].Name != "Alex Chen" {
		t.Fatal("catalogue was mutated through a previous result")
	}
}

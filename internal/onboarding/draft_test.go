package onboarding

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pathfinder/backend/internal/models"
)

func fullDraft() *Draft {
	d := &Draft{}
	d.Merge(Credentials{Email: "jane@example.com", Password: "secret1"})
	d.Merge(Identity{FullName: "Jane Doe", Age: 24})
	d.Merge(Education{Level: "Bachelor's Degree", FieldOfStudy: "CS", Institution: "MIT", Certificates: []string{"AWS", "  ", ""}})
	d.Merge(DefaultSkills())
	d.Merge(Goals{DesiredRoles: []string{"Software Engineer"}, IndustryPreference: []string{"tech"}, Timeline: "6 months", SpecificGoal: "Get a job"})
	return d
}

func TestBuildUnionOfSlices(t *testing.T) {
	req, err := fullDraft().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := &models.RegisterRequest{
		FullName:           "Jane Doe",
		Email:              "jane@example.com",
		Password:           "secret1",
		Age:                "24",
		Education:          "Bachelor's Degree",
		FieldOfStudy:       "CS",
		Institution:        "MIT",
		Certificates:       []models.Certificate{{Name: "AWS"}},
		TechnicalSkills:    DefaultSkills().Technical,
		SoftSkills:         DefaultSkills().Soft,
		DesiredRoles:       []string{"Software Engineer"},
		IndustryPreference: []string{"tech"},
		Timeline:           "6 months",
		SpecificGoal:       "Get a job",
	}
	if !reflect.DeepEqual(req, want) {
		t.Fatalf("request =\n%+v\nwant\n%+v", req, want)
	}
}

func TestBuildIncomplete(t *testing.T) {
	d := &Draft{}
	d.Merge(Credentials{Email: "a@b.co", Password: "secret1"})
	d.Merge(Goals{Timeline: "1 year", SpecificGoal: "x"})

	if _, err := d.Build(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("want ErrIncomplete, got %v", err)
	}
}

func TestLaterSliceReplacesEarlier(t *testing.T) {
	d := fullDraft()
	d.Merge(Identity{FullName: "Janet Doe", Email: "janet@example.com", Age: 30})

	req, err := d.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req.FullName != "Janet Doe" || req.Email != "janet@example.com" || req.Age != "30" {
		t.Fatalf("request = %+v", req)
	}
}

func TestApplyUserDefaultsIndustry(t *testing.T) {
	d := &Draft{}
	d.applyUser(&models.User{ID: "u1", FullName: "Sam Lee", Age: "31"}, "tok")

	if got := d.IndustryPreference(); !reflect.DeepEqual(got, []string{"tech"}) {
		t.Fatalf("industries = %v", got)
	}
	if d.FullName() != "Sam Lee" || d.Outcome.UserID != "u1" || d.Outcome.Token != "tok" {
		t.Fatalf("draft = %+v", d)
	}
}

func TestAccessorsOnDraftCopy(t *testing.T) {
	c := NewController(nil, nil)
	c.Merge(Credentials{Email: "jane@example.com", Password: "secret1"})
	c.Merge(Identity{FullName: "Jane Doe", Age: 24})
	c.Merge(Goals{IndustryPreference: []string{"finance"}})

	if got := c.Draft().Email(); got != "jane@example.com" {
		t.Fatalf("email = %q", got)
	}
	if got := c.Draft().FullName(); got != "Jane Doe" {
		t.Fatalf("full name = %q", got)
	}
	industries := c.Draft().IndustryPreference()
	industries[0] = "retail"
	if got := c.Draft().IndustryPreference(); !reflect.DeepEqual(got, []string{"finance"}) {
		t.Fatalf("industries = %v, want a copy", got)
	}
}

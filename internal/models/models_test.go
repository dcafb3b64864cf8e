package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestRegisterRequestValidate(t *testing.T) {
	ok := RegisterRequest{FullName: "Jane Doe", Email: "jane@example.com", Password: "secret1", Age: "21"}
	if errs := ok.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	bad := RegisterRequest{
		Email:           "not-an-email",
		Password:        "123",
		Age:             "9",
		TechnicalSkills: []Skill{{Name: "Go", Rating: 11}},
	}
	errs := bad.Validate()
	for _, field := range []string{"fullName", "email", "password", "age", "technicalSkills"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestUserPasswordNeverSerialised(t *testing.T) {
	u := User{ID: "u1", FullName: "Jane", Email: "jane@example.com", PasswordHash: "$2a$hash"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "hash") || strings.Contains(string(b), "password") {
		t.Fatalf("password leaked: %s", b)
	}
	m := Mentor{ID: "m1", PasswordHash: "$2a$hash"}
	b, _ = json.Marshal(m)
	if strings.Contains(string(b), "hash") {
		t.Fatalf("mentor password leaked: %s", b)
	}
}

func TestUpdateUserRequestApply(t *testing.T) {
	name := "Janet Doe"
	roles := []string{"Data Scientist"}
	req := UpdateUserRequest{FullName: &name, DesiredRoles: &roles}
	u := User{FullName: "Jane Doe", Timeline: "6 months"}
	req.Apply(&u)
	if u.FullName != "Janet Doe" || u.Timeline != "6 months" || len(u.DesiredRoles) != 1 {
		t.Fatalf("unexpected user after apply: %+v", u)
	}
}

func TestCreateMentorDefaults(t *testing.T) {
	req := CreateMentorRequest{
		Name:       "Ada",
		Email:      " Ada@Example.com ",
		Role:       "Engineer",
		Company:    "Analytical",
		Industries: []string{"Tech", "tech", "Health Care", ""},
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	m := req.ToMentor()
	if m.Email != "ada@example.com" {
		t.Errorf("email = %q", m.Email)
	}
	if m.ImageURL != DefaultMentorImageURL || m.Rating != DefaultMentorRating {
		t.Errorf("defaults not applied: %+v", m)
	}
	if len(m.Industries) != 2 || m.Industries[0] != "tech" || m.Industries[1] != "health-care" {
		t.Errorf("industries = %v", m.Industries)
	}
	if !m.HasIndustry("TECH") || m.HasIndustry("finance") {
		t.Error("HasIndustry mismatch")
	}
}

func TestParseMeetingDate(t *testing.T) {
	d, err := ParseMeetingDate("2025-03-14")
	if err != nil || d.Day() != 14 {
		t.Fatalf("day form: %v %v", d, err)
	}
	d, err = ParseMeetingDate("2025-03-14T15:00:00Z")
	if err != nil || d.Hour() != 15 {
		t.Fatalf("rfc3339 form: %v %v", d, err)
	}
	if _, err := ParseMeetingDate("14/03/2025"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMeetingRequests(t *testing.T) {
	req := CreateMeetingRequest{UserID: "u", MentorID: "m", Date: "2025-03-14", TimeSlot: "10:00 AM", Topic: "Careers"}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	req.Status = "pending"
	if _, ok := req.Validate()["status"]; !ok {
		t.Fatal("expected status error")
	}

	if _, ok := (&UpdateMeetingRequest{}).Validate()["body"]; !ok {
		t.Fatal("empty update should be rejected")
	}
	done := StatusCompleted
	notes := "great chat"
	upd := UpdateMeetingRequest{Status: &done, Notes: &notes}
	m := Meeting{Status: StatusScheduled, MeetingLink: "https://meet.google.com/abc"}
	upd.Apply(&m)
	if m.Status != StatusCompleted || m.Notes != notes || m.MeetingLink == "" {
		t.Fatalf("unexpected meeting: %+v", m)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 14, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)
	if !SameDay(a, b) || SameDay(a, b.Add(2*time.Hour)) {
		t.Fatal("SameDay mismatch")
	}
}

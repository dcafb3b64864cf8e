package portal

import (
	"testing"
	"time"

	"github.com/pathfinder/backend/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func agenda() []models.Meeting {
	return []models.Meeting{
		{ID: "1", Topic: "Resume review", Status: models.StatusScheduled, Date: day("2025-06-03T15:00:00Z"), User: &models.UserSummary{FullName: "Jane Doe"}},
		{ID: "2", Topic: "System design", Status: models.StatusCompleted, Date: day("2025-06-01T09:00:00Z"), User: &models.UserSummary{FullName: "Sam Lee"}},
		{ID: "3", Topic: "Career switch", Status: models.StatusScheduled, Date: day("2025-06-03T09:00:00Z"), User: &models.UserSummary{FullName: "Ana Ruiz"}},
		{ID: "4", Topic: "Mock interview", Status: models.StatusCancelled, Date: day("2025-06-05T12:00:00Z")},
	}
}

func ids(meetings []models.Meeting) []string {
	out := make([]string, len(meetings))
	for i, m := range meetings {
		out[i] = m.ID
	}
	return out
}

func TestFilterMeetings(t *testing.T) {
	tests := []struct {
		name   string
		search string
		status string
		want   []string
	}{
		{"all", "", StatusAll, []string{"1", "2", "3", "4"}},
		{"empty status", "", "", []string{"1", "2", "3", "4"}},
		{"by status", "", "scheduled", []string{"1", "3"}},
		{"topic case-insensitive", "DESIGN", StatusAll, []string{"2"}},
		{"mentee name", "jane", StatusAll, []string{"1"}},
		{"no user summary", "mock", StatusAll, []string{"4"}},
		{"search and status", "r", "scheduled", []string{"1", "3"}},
		{"no match", "zzz", StatusAll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterMeetings(agenda(), tt.search, tt.status))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate(agenda(), nil)
	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	wantDays := []string{"2025-06-01", "2025-06-03", "2025-06-05"}
	for i, g := range groups {
		if got := g.Day.Format("2006-01-02"); got != wantDays[i] {
			t.Fatalf("group %d day = %s, want %s", i, got, wantDays[i])
		}
	}
	if got := ids(groups[1].Meetings); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("june 3 meetings = %v, want input order", got)
	}
}

func TestGroupByDateUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	groups := GroupByDate([]models.Meeting{{ID: "x", Date: day("2025-06-01T20:00:00Z")}}, tokyo)
	if got := groups[0].Day.Format("2006-01-02"); got != "2025-06-02" {
		t.Fatalf("day = %s", got)
	}
}

func TestSummarize(t *testing.T) {
	st := Summarize(agenda(), day("2025-06-03T12:00:00Z"))
	if st.Total != 4 || st.Today != 2 || st.Upcoming != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestDateOnlyMeetingsKeepTheirDay(t *testing.T) {
	newYork := time.FixedZone("EDT", -4*60*60)
	meetings := []models.Meeting{
		{ID: "bare", Status: models.StatusScheduled, Date: day("2025-06-02T00:00:00Z")},
		{ID: "timed", Status: models.StatusScheduled, Date: day("2025-06-02T02:00:00Z")},
	}

	groups := GroupByDate(meetings, newYork)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if got := groups[0].Day.Format("2006-01-02"); got != "2025-06-01" || groups[0].Meetings[0].ID != "timed" {
		t.Fatalf("first group = %s %v", got, ids(groups[0].Meetings))
	}
	if got := groups[1].Day.Format("2006-01-02"); got != "2025-06-02" || groups[1].Meetings[0].ID != "bare" {
		t.Fatalf("bare date grouped under %s, want 2025-06-02", got)
	}

	// 9pm on June 1st in New York is already June 2nd in UTC.
	now := time.Date(2025, 6, 1, 21, 0, 0, 0, newYork)
	if st := Summarize(meetings[:1], now); st.Today != 0 {
		t.Fatalf("June 2nd meeting counted as today on June 1st: %+v", st)
	}
	if st := Summarize(meetings[:1], now.Add(4*time.Hour)); st.Today != 1 {
		t.Fatalf("June 2nd meeting not counted on June 2nd: %+v", st)
	}
}

package portal

import (
	"sort"
	"strings"
	"time"

	"github.com/pathfinder/backend/internal/models"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// FilterMeetings keeps meetings whose topic or mentee name contains search,
// case-insensitively, and whose status equals status unless it is "all" or
// empty.
func FilterMeetings(meetings []models.Meeting, search, status string) []models.Meeting {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if status != "" && status != StatusAll && string(m.Status) != status {
			continue
		}
		if needle != "" && !matches(m, needle) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matches(m models.Meeting, needle string) bool {
	if strings.Contains(strings.ToLower(m.Topic), needle) {
		return true
	}
	return m.User != nil && strings.Contains(strings.ToLower(m.User.FullName), needle)
}

type DayGroup struct {
	Day      time.Time
	Meetings []models.Meeting
}

// meetingDay is the calendar day a meeting belongs to in loc. Meetings booked
// for a bare date are stored at UTC midnight and keep that UTC date in every
// zone.
func meetingDay(t time.Time, loc *time.Location) (int, time.Month, int) {
	u := t.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
		return u.Date()
	}
	return t.In(loc).Date()
}

// GroupByDate buckets meetings by calendar day in loc, days ascending. Order
// within a day is preserved.
func GroupByDate(meetings []models.Meeting, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.UTC
	}
	index := make(map[time.Time]int)
	var groups []DayGroup
	for _, m := range meetings {
		y, mo, d := meetingDay(m.Date, loc)
		day := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Meetings = append(groups[i].Meetings, m)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Day.Before(groups[j].Day) })
	return groups
}

type Stats struct {
	Today    int
	Upcoming int
	Total    int
}

// Summarize counts meetings on now's calendar day and scheduled meetings
// still ahead of now.
func Summarize(meetings []models.Meeting, now time.Time) Stats {
	st := Stats{Total: len(meetings)}
	y, mo, d := now.Date()
	for _, m := range meetings {
		my, mm, md := meetingDay(m.Date, now.Location())
		if my == y && mm == mo && md == d {
			st.Today++
		}
		if m.Status == models.StatusScheduled && m.Date.After(now) {
			st.Upcoming++
		}
	}
	return st
}

package portal

import "errors"

var ErrInvalidTransition = errors.New("invalid portal transition")

type Page string

const (
	PageLogin          Page = "login"
	PageRegister       Page = "register"
	PageDashboard      Page = "dashboard"
	PageProfile        Page = "profile"
	PageMeetingDetails Page = "meeting-details"
)

type Event string

const (
	EventRegister      Event = "register"
	EventBack          Event = "back"
	EventAuthenticated Event = "authenticated"
	EventViewMeeting   Event = "view-meeting"
	EventViewProfile   Event = "view-profile"
	EventLogout        Event = "logout"
)

var transitions = map[Page]map[Event]Page{
	PageLogin: {
		EventRegister:      PageRegister,
		EventAuthenticated: PageDashboard,
		EventLogout:        PageLogin,
	},
	PageRegister: {
		EventBack:          PageLogin,
		EventAuthenticated: PageDashboard,
		EventLogout:        PageLogin,
	},
	PageDashboard: {
		EventViewMeeting: PageMeetingDetails,
		EventViewProfile: PageProfile,
		EventLogout:      PageLogin,
	},
	PageProfile: {
		EventBack:   PageDashboard,
		EventLogout: PageLogin,
	},
	PageMeetingDetails: {
		EventBack:   PageDashboard,
		EventLogout: PageLogin,
	},
}

func Next(p Page, e Event) (Page, error) {
	next, ok := transitions[p][e]
	if !ok {
		return p, ErrInvalidTransition
	}
	return next, nil
}

func Pages() []Page {
	return []Page{PageLogin, PageRegister, PageDashboard, PageProfile, PageMeetingDetails}
}

// gated pages render as login while no mentor is signed in.
func gated(p Page) bool {
	return p == PageDashboard || p == PageProfile || p == PageMeetingDetails
}

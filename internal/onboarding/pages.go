// Package onboarding models the student app: its page flow, the multi-step
// profile wizard and the account calls that end it.
package onboarding

import "errors"

var ErrInvalidTransition = errors.New("invalid page transition")

type Page string

const (
	PageMain          Page = "main"
	PageAuth          Page = "auth"
	PageLogin         Page = "login"
	PageSignup        Page = "signup"
	PageProfileSetup  Page = "profile-setup"
	PageEducation     Page = "education-setup"
	PageSkills        Page = "skills-setup"
	PageCareerGoals   Page = "career-goals"
	PageLoading       Page = "loading"
	PageDashboard     Page = "dashboard"
	PageProfile       Page = "profile"
	PageSettings      Page = "settings"
	PageInviteFriends Page = "invite-friends"
	PageHelp          Page = "help"
	PageMentorPortal  Page = "mentor-portal"
)

type Event string

const (
	EventGetStarted    Event = "get-started"
	EventMentorPortal  Event = "mentor-portal"
	EventLogin         Event = "login"
	EventSignup        Event = "signup"
	EventCreateAccount Event = "create-account"
	EventBack          Event = "back"
	EventNext          Event = "next"
	EventSubmit        Event = "submit"
	EventLoggedIn      Event = "logged-in"
	EventDone          Event = "done"
	EventViewProfile   Event = "view-profile"
	EventEditProfile   Event = "edit-profile"
	EventSettings      Event = "settings"
	EventInvite        Event = "invite-friends"
	EventHelp          Event = "help"
	EventLogout        Event = "logout"
)

// transitions lists every allowed move. Anything absent is rejected.
var transitions = map[Page]map[Event]Page{
	PageMain: {
		EventGetStarted:   PageAuth,
		EventMentorPortal: PageMentorPortal,
	},
	PageAuth: {
		EventLogin:  PageLogin,
		EventSignup: PageSignup,
	},
	PageLogin: {
		EventBack:          PageAuth,
		EventCreateAccount: PageSignup,
		EventLoggedIn:      PageDashboard,
	},
	PageSignup: {
		EventBack: PageAuth,
		EventNext: PageProfileSetup,
	},
	PageProfileSetup: {
		EventNext: PageEducation,
	},
	PageEducation: {
		EventBack: PageProfileSetup,
		EventNext: PageSkills,
	},
	PageSkills: {
		EventBack: PageEducation,
		EventNext: PageCareerGoals,
	},
	PageCareerGoals: {
		EventBack:   PageSkills,
		EventSubmit: PageLoading,
	},
	PageLoading: {
		EventDone: PageDashboard,
	},
	PageDashboard: {
		EventViewProfile: PageProfile,
	},
	PageProfile: {
		EventLogout:      PageMain,
		EventEditProfile: PageProfileSetup,
		EventSettings:    PageSettings,
		EventInvite:      PageInviteFriends,
		EventHelp:        PageHelp,
		EventBack:        PageDashboard,
	},
	PageSettings:      {EventBack: PageProfile},
	PageInviteFriends: {EventBack: PageProfile},
	PageHelp:          {EventBack: PageProfile},
	PageMentorPortal:  {EventBack: PageMain},
}

// Next returns the page reached from p on e.
func Next(p Page, e Event) (Page, error) {
	next, ok := transitions[p][e]
	if !ok {
		return p, ErrInvalidTransition
	}
	return next, nil
}

// Pages lists every known page.
func Pages() []Page {
	return []Page{
		PageMain, PageAuth, PageLogin, PageSignup, PageProfileSetup, PageEducation,
		PageSkills, PageCareerGoals, PageLoading, PageDashboard, PageProfile,
		PageSettings, PageInviteFriends, PageHelp, PageMentorPortal,
	}
}

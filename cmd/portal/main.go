// Command portal is a terminal front-end for mentors: sign in once, then list
// and update booked meetings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathfinder/backend/internal/client"
	"github.com/pathfinder/backend/internal/config"
	"github.com/pathfinder/backend/internal/models"
	"github.com/pathfinder/backend/internal/portal"
	"github.com/pathfinder/backend/internal/storage"
)

const usage = `usage: portal <command> [flags]

commands:
  login    -email E -password P   sign in
  register -email E -password P   claim a mentor account
  logout                          forget the stored session
  agenda   [-search S] [-status all|scheduled|completed|cancelled]
  status   <meeting-id> <scheduled|completed|cancelled>
  profile                         show the signed-in mentor
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sessions, err := openSessions(ctx, cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	c := portal.NewController(client.New(cfg.PortalAPIURL), sessions)
	if err := c.Start(ctx); err != nil {
		log.Fatalf("start: %v", err)
	}

	if err := run(ctx, c, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func openSessions(ctx context.Context, cfg *config.Config) (portal.SessionRepository, error) {
	if cfg.RedisAddr != "" {
		rdb, err := storage.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisRepository[portal.Session](rdb, cfg.PortalSessionKey, cfg.JWTExpiration), nil
	}
	return storage.NewFileRepository[portal.Session](cfg.PortalSessionFile)
}

func run(ctx context.Context, c *portal.Controller, cmd string, args []string) error {
	switch cmd {
	case "login", "register":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		email := fs.String("email", "", "mentor email")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		if *email == "" || *password == "" {
			return errors.New("both -email and -password are required")
		}

		// Signing in again replaces the stored session.
		if c.Session() != nil {
			if err := c.Logout(ctx); err != nil {
				return err
			}
		}
		auth := c.Login
		if cmd == "register" {
			if err := c.Fire(portal.EventRegister); err != nil {
				return err
			}
			auth = c.Register
		}
		if err := auth(ctx, *email, *password); err != nil {
			return errors.New(c.Err())
		}
		printNotice(c)
		printAgenda(c, "", portal.StatusAll)
		return nil

	case "logout":
		if err := c.Logout(ctx); err != nil {
			return err
		}
		printNotice(c)
		return nil

	case "agenda":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		search := fs.String("search", "", "match topic or mentee name")
		status := fs.String("status", portal.StatusAll, "meeting status filter")
		fs.Parse(args)
		if err := requireSession(c); err != nil {
			return err
		}
		if msg := c.Err(); msg != "" {
			return errors.New(msg)
		}
		printAgenda(c, *search, *status)
		return nil

	case "status":
		if len(args) != 2 {
			return errors.New("usage: portal status <meeting-id> <status>")
		}
		if err := requireSession(c); err != nil {
			return err
		}
		status := models.MeetingStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", args[1])
		}
		if !c.UpdateMeetingStatus(ctx, args[0], status) {
			return errors.New(c.Err())
		}
		printNotice(c)
		return nil

	case "profile":
		if err := requireSession(c); err != nil {
			return err
		}
		if err := c.ViewProfile(ctx); err != nil {
			return errors.New(c.Err())
		}
		printProfile(c.Profile())
		return nil
	}

	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("unknown command %q", cmd)
}

func requireSession(c *portal.Controller) error {
	if c.Session() == nil {
		return errors.New("not signed in; run `portal login` first")
	}
	return nil
}

func printNotice(c *portal.Controller) {
	if n := c.Notice(); n != nil {
		fmt.Println(n.Message)
	}
}

func printAgenda(c *portal.Controller, search, status string) {
	s := c.Session()
	all := c.Meetings()
	stats := portal.Summarize(all, time.Now())
	fmt.Printf("%s, %s at %s\n", s.Mentor.Name, s.Mentor.Role, s.Mentor.Company)
	fmt.Printf("today: %d  upcoming: %d  total: %d\n\n", stats.Today, stats.Upcoming, stats.Total)

	groups := portal.GroupByDate(portal.FilterMeetings(all, search, status), time.Local)
	if len(groups) == 0 {
		fmt.Println("No meetings found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Day.Format("Monday, January 2, 2006"))
		for _, m := range g.Meetings {
			mentee := ""
			if m.User != nil {
				mentee = m.User.FullName
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", m.ID, m.TimeSlot, m.Status, mentee, m.Topic)
		}
	}
	w.Flush()
}

func printProfile(m *models.Mentor) {
	if m == nil {
		return
	}
	fmt.Printf("%s <%s>\n%s at %s\nrating: %.1f\n", m.Name, m.Email, m.Role, m.Company, m.Rating)
	if m.Bio != "" {
		fmt.Printf("\n%s\n", m.Bio)
	}
	if len(m.Expertise) > 0 {
		fmt.Printf("\nexpertise: %s\n", strings.Join(m.Expertise, ", "))
	}
	if len(m.Industries) > 0 {
		fmt.Printf("industries: %s\n", strings.Join(m.Industries, ", "))
	}
	for _, d := range m.Availability {
		fmt.Printf("  %-10s %s\n", d.Day, strings.Join(d.Slots, ", "))
	}
}

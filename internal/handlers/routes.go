package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appMiddleware "github.com/pathfinder/backend/internal/middleware"
	"github.com/pathfinder/backend/internal/services"
)

type RouterConfig struct {
	Users          services.UserService
	Mentors        services.MentorService
	Meetings       services.MeetingService
	JWTSecret      string
	JWTExpiration  time.Duration
	RequestTimeout time.Duration
	AllowedOrigins []string
	// AuthLimiter throttles login and register. Nil disables throttling.
	AuthLimiter *appMiddleware.RateLimiter
}

func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.Users, cfg.JWTSecret, cfg.JWTExpiration)
	userHandler := NewUserHandler(cfg.Users)
	mentorHandler := NewMentorHandler(cfg.Mentors, cfg.JWTSecret, cfg.JWTExpiration)
	meetingHandler := NewMeetingHandler(cfg.Meetings, cfg.Mentors, cfg.Users)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	throttled := func(h http.HandlerFunc) http.Handler {
		if cfg.AuthLimiter == nil {
			return h
		}
		return cfg.AuthLimiter.Limit(h)
	}
	mentorOnly := appMiddleware.MentorAuth(cfg.JWTSecret)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/register", throttled(authHandler.Register))
		r.Method(http.MethodPost, "/login", throttled(authHandler.Login))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/mentors", func(r chi.Router) {
			r.Method(http.MethodPost, "/register", throttled(mentorHandler.Register))
			r.Method(http.MethodPost, "/login", throttled(mentorHandler.Login))
			r.Get("/", mentorHandler.ListMentors)
			r.Post("/", mentorHandler.CreateMentor)
			r.Get("/industry/{industry}", mentorHandler.ListByIndustry)
			r.With(mentorOnly).Get("/me/profile", mentorHandler.Profile)
			r.Get("/{id}", mentorHandler.GetMentor)
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Post("/", meetingHandler.CreateMeeting)
			r.Get("/user/{userId}", meetingHandler.ListUserMeetings)
			r.Get("/mentor/{mentorId}", meetingHandler.ListMentorMeetings)
			r.Get("/{id}", meetingHandler.GetMeeting)
			r.With(mentorOnly).Patch("/{id}", meetingHandler.UpdateMeeting)
		})
	})

	return r
}

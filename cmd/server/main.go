package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathfinder/backend/internal/config"
	"github.com/pathfinder/backend/internal/handlers"
	appMiddleware "github.com/pathfinder/backend/internal/middleware"
	"github.com/pathfinder/backend/internal/seed"
	"github.com/pathfinder/backend/internal/services"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routerCfg := handlers.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		JWTExpiration:  cfg.JWTExpiration,
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.AllowedOrigins,
		AuthLimiter:    appMiddleware.NewRateLimiter(ctx, cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst),
	}

	if cfg.MongoURI != "" {
		db, err := services.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("MongoDB: %v", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Client().Disconnect(shutdownCtx); err != nil {
				log.Printf("MongoDB disconnect: %v", err)
			}
		}()

		routerCfg.Users = services.NewMongoUserService(ctx, db)
		routerCfg.Mentors = services.NewMongoMentorService(ctx, db)
		routerCfg.Meetings = services.NewMongoMeetingService(ctx, db)
	} else {
		log.Printf("Warning: MONGO_URI not set, using in-memory storage")
		mentors := services.NewMemoryMentorService()
		if cfg.SeedMentors {
			n, err := mentors.Seed(ctx, seed.Mentors())
			if err != nil {
				log.Fatalf("seed mentors: %v", err)
			}
			log.Printf("Seeded %d mentors", n)
		}
		routerCfg.Users = services.NewMemoryUserService()
		routerCfg.Mentors = mentors
		routerCfg.Meetings = services.NewMemoryMeetingService()
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handlers.NewRouter(routerCfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Pathfinder API server starting on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

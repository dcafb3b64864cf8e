// Command seed loads the mentor catalogue into MongoDB. Existing mentors are
// kept unless -reset is given.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathfinder/backend/internal/config"
	"github.com/pathfinder/backend/internal/seed"
	"github.com/pathfinder/backend/internal/services"
)

func main() {
	reset := flag.Bool("reset", false, "delete every mentor before seeding")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := services.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	mentors := services.NewMongoMentorService(ctx, db)
	if *reset {
		n, err := mentors.DeleteAll(ctx)
		if err != nil {
			log.Fatalf("delete mentors: %v", err)
		}
		log.Printf("[seed] deleted %d mentors", n)
	}

	n, err := mentors.Seed(ctx, seed.Mentors())
	if err != nil {
		log.Fatalf("seed mentors: %v", err)
	}
	log.Printf("[seed] inserted %d of %d mentors", n, len(seed.Mentors()))
}

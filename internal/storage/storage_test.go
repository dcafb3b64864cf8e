package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

type session struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type repository interface {
	Load(ctx context.Context) (*session, error)
	Save(ctx context.Context, v *session) error
	Clear(ctx context.Context) error
}

func exercise(t *testing.T, repo repository) {
	t.Helper()
	ctx := context.Background()

	got, err := repo.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("empty load: %+v %v", got, err)
	}

	want := &session{Token: "tok", Name: "Alex Chen"}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want.Name = "mutated after save"

	got, err = repo.Load(ctx)
	if err != nil || got == nil || got.Token != "tok" || got.Name != "Alex Chen" {
		t.Fatalf("load: %+v %v", got, err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("load after clear: %+v %v", got, err)
	}
}

func TestMemoryRepository(t *testing.T) {
	exercise(t, NewMemoryRepository[session]())
}

func TestFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo, err := NewFileRepository[session](path)
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, repo)
}

func TestFileRepositoryCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	repo, _ := NewFileRepository[session](path)
	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("want ErrCorrupt, got %v", err)
	}
}

func TestRedisRepository(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis integration test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer rdb.Close()

	key := "pathfinder:test:" + uuid.New().String()
	exercise(t, NewRedisRepository[session](rdb, key, time.Minute))
}

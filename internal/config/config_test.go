package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":5000")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()
	if cfg.ServerAddress != ":5000" {
		t.Fatalf("ServerAddress = %q", cfg.ServerAddress)
	}
	if cfg.JWTExpiration != 24*time.Hour {
		t.Fatalf("JWTExpiration = %v, want 24h", cfg.JWTExpiration)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "3600")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://pathfinder.app ,")
	t.Setenv("AUTH_RATE_LIMIT_BURST", "9")
	t.Setenv("SEED_MENTORS", "false")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	if cfg.JWTExpiration != time.Hour {
		t.Errorf("JWTExpiration = %v, want 1h", cfg.JWTExpiration)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://pathfinder.app" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.AuthRateLimitBurst != 9 {
		t.Errorf("AuthRateLimitBurst = %d", cfg.AuthRateLimitBurst)
	}
	if cfg.SeedMentors {
		t.Error("SeedMentors should be false")
	}
	if cfg.RedisDB != 0 {
		t.Errorf("RedisDB = %d, want fallback 0", cfg.RedisDB)
	}
}

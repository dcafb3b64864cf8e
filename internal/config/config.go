package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerAddress  string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpiration  time.Duration
	RequestTimeout time.Duration
	AllowedOrigins []string

	// Per-IP limits applied to the login and register endpoints.
	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	// SeedMentors loads the built-in mentor catalogue into the in-memory store
	// when no MongoDB is configured.
	SeedMentors bool

	// Mentor portal client settings.
	PortalAPIURL      string
	PortalSessionFile string
	PortalSessionKey  string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
}

func Load() *Config {
	return &Config{
		ServerAddress:      getEnv("SERVER_ADDRESS", ":5000"),
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDB:            getEnv("MONGO_DB", "pathfinder"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiration:      getDuration("JWT_EXPIRATION", 24*time.Hour),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 10*time.Second),
		AllowedOrigins:     getList("ALLOWED_ORIGINS", []string{"*"}),
		AuthRateLimitRPS:   getFloat("AUTH_RATE_LIMIT_RPS", 1),
		AuthRateLimitBurst: getInt("AUTH_RATE_LIMIT_BURST", 5),
		SeedMentors:        getBool("SEED_MENTORS", true),
		PortalAPIURL:       getEnv("PORTAL_API_URL", "http://localhost:5000/api"),
		PortalSessionFile:  getEnv("PORTAL_SESSION_FILE", ".pathfinder/mentor-session.json"),
		PortalSessionKey:   getEnv("PORTAL_SESSION_KEY", "pathfinder:mentor"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getInt("REDIS_DB", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getDuration accepts Go duration strings ("36h") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

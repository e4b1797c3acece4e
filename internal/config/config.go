package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	ClientURL     string        // Allowed CORS origin for the frontend
	CookieName    string        // Name of the session cookie
	SessionMaxAge time.Duration // Session time-to-live
	SweepSchedule string        // Cron expression for the expired-session sweep
	SecureCookies bool          // Secure flag on the session cookie, on in production
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "4000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	maxAgeStr := getEnv("SESSION_MAX_AGE", "72h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./inkwell.db"),
		ClientURL:     getEnv("CLIENT_URL", "http://localhost:3000"),
		CookieName:    getEnv("COOKIE_NAME", "inkwell_sid"),
		SessionMaxAge: maxAge,
		SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "*/10 * * * *"),
		SecureCookies: getEnv("APP_ENV", "development") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import "os"

// Get reads an environment variable, falling back when unset or empty.
// Call godotenv.Load before this in binaries that support .env files.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import "os"

// JWTSecret used to sign session tokens — read from env or fallback.
var JWTSecret = []byte(getEnv("JWT_SECRET", "foodhub_super_secret_2024"))

// AdminEmail is the reserved address that yields the admin role at
// login when no explicit role is chosen.
func AdminEmail() string {
	return getEnv("ADMIN_EMAIL", "admin@demo.com")
}

// DatabasePath is the sqlite file backing the persistence bridge.
// ":memory:" gives an ephemeral run.
func DatabasePath() string {
	return getEnv("FOODHUB_DB", "foodhub.db")
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

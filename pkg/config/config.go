package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"supatools/pkg/envfile"
)

// Keys the web app uses for the hosted backend. The tools read the same names
// so one .env.local serves both.
const (
	SupabaseURLKey     = "NEXT_PUBLIC_SUPABASE_URL"
	SupabaseAnonKeyKey = "NEXT_PUBLIC_SUPABASE_ANON_KEY"
)

var ErrMissingCredentials = errors.New("missing " + SupabaseURLKey + " or " + SupabaseAnonKeyKey + " in .env.local")

type Config struct {
	AppEnv  string
	EnvFile string

	// MigrationsPath is a golang-migrate source URL; MigrationsDir is the same
	// directory as a plain path for tools that read single files.
	MigrationsPath string
	MigrationsDir  string

	// Supabase/hosted Postgres convenience:
	// - DATABASE_URL: runtime connection (often PgBouncer/pooler)
	// - DIRECT_URL: direct connection for migrations
	// Both are optional; without them the tools go through the REST API only.
	DatabaseURL string
	DirectURL   string

	// SchemaFile optionally overrides the expected tables and columns.
	SchemaFile string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	return Config{
		AppEnv:         env("APP_ENV", env("NODE_ENV", EnvDevelopment)),
		EnvFile:        env("ENV_FILE", ".env.local"),
		MigrationsPath: env("MIGRATIONS_PATH", "file://migrations"),
		MigrationsDir:  env("MIGRATIONS_DIR", "migrations"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DirectURL:      os.Getenv("DIRECT_URL"),
		SchemaFile:     os.Getenv("SCHEMA_CHECKS_FILE"),
	}
}

// HasDatabaseURL reports whether a direct Postgres connection is configured.
func (c Config) HasDatabaseURL() bool {
	return strings.TrimSpace(c.DirectURL) != "" || strings.TrimSpace(c.DatabaseURL) != ""
}

// Credentials are the endpoint and public key for the hosted backend.
type Credentials struct {
	URL     string
	AnonKey string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.URL) == "" || strings.TrimSpace(c.AnonKey) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// LoadCredentials reads the env file at path. Values in the file win; the
// process environment fills whatever the file leaves out.
func LoadCredentials(path string) (Credentials, error) {
	vars, err := envfile.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read %s: %w", path, err)
	}
	return credentialsFrom(vars), nil
}

func credentialsFrom(vars map[string]string) Credentials {
	pick := func(key string) string {
		if v := vars[key]; v != "" {
			return v
		}
		return os.Getenv(key)
	}
	return Credentials{
		URL:     pick(SupabaseURLKey),
		AnonKey: pick(SupabaseAnonKeyKey),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

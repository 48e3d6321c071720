package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"supatools/pkg/config"
	"supatools/pkg/db"
)

func main() {
	cfg := config.Load()

	// This uses DIRECT_URL if set (recommended for Supabase migrations).
	if err := db.MigrateConfig(cfg.MigrationsPath, cfg); err != nil {
		if errors.Is(err, db.ErrNoDatabaseURL) {
			fmt.Fprintln(os.Stderr, "❌ set DIRECT_URL (or DATABASE_URL) to run migrations, or use cmd/dev/setupdb for manual steps")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "❌ migrate failed: %v\n", err)
		os.Exit(1)
	}

	version, dirty, err := db.MigrationVersion(cfg.MigrationsPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ read migration version: %v\n", err)
		os.Exit(1)
	}
	if dirty {
		fmt.Fprintf(os.Stderr, "⚠️  schema version %d is marked dirty; fix it in the SQL editor before migrating again\n", version)
	}

	// Sanity check that the runtime (pooler) connection works too.
	// DSNs are never printed; they carry the database password.
	pool, err := db.Open(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ runtime db open failed: %v\n", err)
		os.Exit(1)
	}
	pool.Close()

	fmt.Printf("✅ migrations applied (version %d)\n", version)
}

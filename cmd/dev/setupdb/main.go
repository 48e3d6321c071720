package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"supatools/internal/migration"
	"supatools/pkg/config"
	"supatools/pkg/db"
	"supatools/pkg/logx"
)

func main() {
	cfg := config.Load()
	var (
		file = flag.String("file", filepath.Join(cfg.MigrationsDir, "000001_initial_schema.up.sql"), "schema SQL file")
		list = flag.Bool("list", false, "list migration files with checksums and exit")
	)
	flag.Parse()

	log := logx.New(config.NewApp(cfg.AppEnv), os.Stdout, os.Stderr)

	if *list {
		files, err := migration.List(cfg.MigrationsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ list %s: %v\n", cfg.MigrationsDir, err)
			os.Exit(1)
		}
		for _, f := range files {
			fmt.Printf("%s  %s\n", f.Md5, f.Name)
		}
		return
	}

	ctx := context.Background()
	r := migration.Runner{Out: os.Stdout, Log: log}

	// Without a database URL the schema can only be applied by hand.
	if cfg.HasDatabaseURL() {
		pool, err := db.OpenDirect(ctx, cfg)
		if err != nil {
			log.Warnf("direct connection failed, falling back to manual steps: %v", err)
		} else {
			defer pool.Close()
			r.Exec = migration.PoolExecutor{Pool: pool}
		}
	}

	fmt.Println("🏗️  Database schema setup")
	applied, err := r.Run(ctx, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if applied {
		fmt.Println("🎉 Schema applied. Run cmd/dev/verifyschema next.")
		return
	}
	fmt.Println("\nAfter running the SQL, check the result with cmd/dev/verifyschema.")
}

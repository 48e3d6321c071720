package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"supatools/internal/migration"
	"supatools/pkg/config"
	"supatools/pkg/logx"
	"supatools/pkg/supabase"
)

func main() {
	cfg := config.Load()
	var (
		file = flag.String("file", filepath.Join(cfg.MigrationsDir, "fix_rls_policies.sql"), "SQL file with the policy fix")
		fn   = flag.String("rpc", migration.DefaultRPCFunction, "SQL-executing function to call")
	)
	flag.Parse()

	log := logx.New(config.NewApp(cfg.AppEnv), os.Stdout, os.Stderr)

	creds, err := config.LoadCredentials(cfg.EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	client, err := supabase.New(creds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🔧 Fixing row level security policies")
	r := migration.Runner{
		Exec: migration.RPCExecutor{Client: client, Function: *fn},
		Out:  os.Stdout,
		Log:  log,
	}
	applied, err := r.Run(context.Background(), *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if applied {
		fmt.Println("🎉 Policies updated. Re-run cmd/dev/verifyschema to confirm access.")
	}
}

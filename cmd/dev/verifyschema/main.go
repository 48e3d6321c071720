package main

import (
	"context"
	"fmt"
	"os"

	"supatools/internal/probe"
	"supatools/pkg/config"
	"supatools/pkg/logx"
	"supatools/pkg/supabase"
)

// Results are printed only; the exit code stays 0 unless the tool cannot start.
func main() {
	cfg := config.Load()
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

	schema, err := probe.LoadSchema(cfg.SchemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	log.Debugf("checking %d tables and %d column sets", len(schema.Tables), len(schema.Columns))

	rep := probe.VerifySchema(context.Background(), client, schema, os.Stdout)
	if rep.Existing() < len(rep.Tables) {
		fmt.Println("\n💡 Missing tables: run cmd/dev/setupdb and follow the printed instructions.")
	}
}

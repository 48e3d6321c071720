package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"supatools/internal/probe"
	"supatools/pkg/config"
	"supatools/pkg/logx"
	"supatools/pkg/supabase"
)

func main() {
	table := flag.String("table", "profiles", "table to read one row from")
	flag.Parse()

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

	fmt.Printf("🔍 Testing connection to %s\n", client.BaseURL)
	if info, err := supabase.InspectKey(creds.AnonKey); err != nil {
		log.Warnf("could not inspect anon key: %v", err)
	} else {
		log.Debugf("anon key role=%s ref=%s", info.Role, info.Ref)
		for _, w := range info.Warnings(creds.URL, time.Now()) {
			fmt.Printf("⚠️  %s\n", w)
		}
	}

	ctx := context.Background()
	if err := probe.TestConnection(ctx, client, *table, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	probe.CheckAuth(ctx, client, os.Stdout)

	fmt.Println("🎉 Connection test complete")
}

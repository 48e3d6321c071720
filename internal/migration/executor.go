// Package migration runs single SQL files against the hosted backend and
// falls back to printed instructions when it cannot.
package migration

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Executor interface {
	Exec(ctx context.Context, sql string) error
}

// DefaultRPCFunction must exist in the project; the initial migration creates it.
const DefaultRPCFunction = "exec_sql"

type RPCCaller interface {
	RPC(ctx context.Context, fn string, args any, out any) error
}

// RPCExecutor sends the whole script to a SQL-executing Postgres function
// through the REST API.
type RPCExecutor struct {
	Client   RPCCaller
	Function string
}

func (e RPCExecutor) Exec(ctx context.Context, sql string) error {
	fn := e.Function
	if fn == "" {
		fn = DefaultRPCFunction
	}
	if err := e.Client.RPC(ctx, fn, map[string]string{"sql": sql}, nil); err != nil {
		return fmt.Errorf("rpc %s: %w", fn, err)
	}
	return nil
}

type pgExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PoolExecutor runs the script over a direct Postgres connection. With no
// arguments pgx uses the simple protocol, so multi-statement scripts work.
type PoolExecutor struct {
	Pool pgExecer
}

func (e PoolExecutor) Exec(ctx context.Context, sql string) error {
	if _, err := e.Pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

type Reader interface {
	Select(ctx context.Context, table, columns string, limit int) ([]json.RawMessage, error)
}

type AuthReader interface {
	AuthSettings(ctx context.Context) (map[string]any, error)
}

// TestConnection reads one row from table. A missing table is only a warning;
// any other backend error is returned so the caller can stop.
func TestConnection(ctx context.Context, c Reader, table string, w io.Writer) error {
	rows, err := c.Select(ctx, table, "*", 1)
	res := Classify(err)

	switch res.Outcome {
	case Connected:
		if len(rows) == 0 {
			fmt.Fprintf(w, "✅ Connected. Table %q exists (no rows yet)\n", table)
		} else {
			fmt.Fprintf(w, "✅ Connected. Table %q is readable\n", table)
		}
		return nil
	case Missing:
		fmt.Fprintf(w, "⚠️  Connected, but table %q does not exist yet. Run the schema setup first.\n", table)
		return nil
	default:
		fmt.Fprintf(w, "❌ Connection failed: %s\n", res.Message)
		return fmt.Errorf("read %s: %w", table, err)
	}
}

// CheckAuth reports whether the auth service answers. Failures are printed as
// warnings and never returned.
func CheckAuth(ctx context.Context, c AuthReader, w io.Writer) bool {
	if _, err := c.AuthSettings(ctx); err != nil {
		fmt.Fprintf(w, "⚠️  Auth check warning: %s\n", Classify(err).Message)
		return false
	}
	fmt.Fprintln(w, "✅ Auth service is reachable")
	return true
}

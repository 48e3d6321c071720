package migration

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"supatools/pkg/logx"
)

// Runner makes one automatic attempt per file. There is no retry: a failure
// prints the SQL for a human to paste into the dashboard SQL editor.
type Runner struct {
	// Exec may be nil, in which case Run only prints instructions.
	Exec Executor
	Out  io.Writer
	Log  *logx.Logger
}

// Run reports whether the script was applied. Only a failure to read path is
// returned as an error.
func (r Runner) Run(ctx context.Context, path string) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read migration %s: %w", path, err)
	}
	sql := string(b)

	if r.Exec == nil {
		PrintManual(r.Out, path, sql, "")
		return false, nil
	}

	if r.Log != nil {
		r.Log.Debugf("executing %s (%d bytes)", path, len(b))
	}
	fmt.Fprintf(r.Out, "🚀 Applying %s...\n", path)
	if err := r.Exec.Exec(ctx, sql); err != nil {
		if r.Log != nil {
			r.Log.Errorf("apply %s: %v", path, err)
		}
		PrintManual(r.Out, path, sql, err.Error())
		return false, nil
	}

	fmt.Fprintf(r.Out, "✅ Applied %s\n", path)
	return true, nil
}

// PrintManual writes dashboard instructions followed by the script between
// delimiter lines. reason is shown when non-empty.
func PrintManual(w io.Writer, path, sql, reason string) {
	if reason != "" {
		fmt.Fprintf(w, "❌ Automatic execution failed: %s\n\n", reason)
	}
	fmt.Fprintln(w, "📋 Run this SQL manually:")
	fmt.Fprintln(w, "1. Open your project in the Supabase dashboard")
	fmt.Fprintln(w, "2. Go to SQL Editor and create a new query")
	fmt.Fprintln(w, "3. Paste everything between the markers below and click Run")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "----- BEGIN %s -----\n", path)
	fmt.Fprint(w, sql)
	if !strings.HasSuffix(sql, "\n") {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "----- END %s -----\n", path)
}

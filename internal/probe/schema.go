package probe

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ColumnCheck selects Columns from Table to detect schema drift.
type ColumnCheck struct {
	Table   string   `koanf:"table"`
	Columns []string `koanf:"columns"`
}

type Schema struct {
	Tables  []string      `koanf:"tables"`
	Columns []ColumnCheck `koanf:"columns"`
}

// DefaultSchema is what the budgeting app's initial migration creates.
func DefaultSchema() Schema {
	return Schema{
		Tables: []string{"profiles", "accounts", "categories", "transactions", "budgets"},
		Columns: []ColumnCheck{
			{Table: "transactions", Columns: []string{"id", "user_id", "account_id", "category_id", "amount", "description", "date"}},
			{Table: "budgets", Columns: []string{"id", "user_id", "category_id", "amount", "period", "start_date"}},
		},
	}
}

type TableResult struct {
	Table string
	Result
}

type ColumnResult struct {
	Check ColumnCheck
	Result
}

// Report is informational; a failing entry never stops the remaining checks.
type Report struct {
	Tables  []TableResult
	Columns []ColumnResult
}

func (r Report) Existing() int {
	n := 0
	for _, t := range r.Tables {
		if t.Outcome == Connected {
			n++
		}
	}
	return n
}

// VerifySchema checks every table, then every column set, printing one line each.
func VerifySchema(ctx context.Context, c Reader, s Schema, w io.Writer) Report {
	var rep Report

	fmt.Fprintln(w, "📋 Checking tables...")
	for _, table := range s.Tables {
		_, err := c.Select(ctx, table, "*", 1)
		res := Classify(err)
		rep.Tables = append(rep.Tables, TableResult{Table: table, Result: res})

		switch res.Outcome {
		case Connected:
			fmt.Fprintf(w, "✅ Table %s exists\n", table)
		case Missing:
			fmt.Fprintf(w, "❌ Table %s does not exist\n", table)
		default:
			fmt.Fprintf(w, "❌ Table %s: error %s\n", table, res.Message)
		}
	}

	if len(s.Columns) > 0 {
		fmt.Fprintln(w, "\n🔎 Checking column structure...")
	}
	for _, check := range s.Columns {
		_, err := c.Select(ctx, check.Table, strings.Join(check.Columns, ","), 1)
		res := Classify(err)
		rep.Columns = append(rep.Columns, ColumnResult{Check: check, Result: res})

		switch {
		case res.Outcome == Connected:
			fmt.Fprintf(w, "✅ %s table structure is correct\n", check.Table)
		case res.Outcome == Missing:
			fmt.Fprintf(w, "❌ %s table structure: table does not exist\n", check.Table)
		case res.IsColumnDrift():
			fmt.Fprintf(w, "❌ %s table structure: missing column (%s)\n", check.Table, res.Message)
		default:
			fmt.Fprintf(w, "❌ %s table structure: error %s\n", check.Table, res.Message)
		}
	}

	fmt.Fprintf(w, "\n%d/%d tables present\n", rep.Existing(), len(rep.Tables))
	return rep
}

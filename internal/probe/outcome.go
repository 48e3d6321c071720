// Package probe checks a hosted backend for expected tables and columns.
package probe

import (
	"errors"

	"supatools/pkg/supabase"
)

type Outcome int

const (
	// Connected means the table answered, possibly with zero rows.
	Connected Outcome = iota
	// Missing means the backend reported that the relation does not exist.
	Missing
	// Failed covers everything else: auth, network, unknown columns.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Connected:
		return "connected"
	case Missing:
		return "missing"
	default:
		return "error"
	}
}

type Result struct {
	Outcome Outcome
	Code    string
	Message string
}

// Backend codes. Keep every literal the tools compare against here.
const (
	codeNoRows            = "PGRST116" // single-object read matched zero rows
	codeUndefinedTable    = "42P01"    // postgres: relation does not exist
	codeTableNotInCache   = "PGRST205" // postgrest: table not found in schema cache
	codeUndefinedColumn   = "42703"    // postgres: column does not exist
	codeColumnNotInSchema = "PGRST204" // postgrest: column not found in schema cache
)

// Classify maps a read error to an Outcome.
func Classify(err error) Result {
	if err == nil {
		return Result{Outcome: Connected}
	}

	var apiErr *supabase.Error
	if !errors.As(err, &apiErr) {
		return Result{Outcome: Failed, Message: err.Error()}
	}

	r := Result{Code: apiErr.Code, Message: apiErr.Message}
	if r.Message == "" {
		r.Message = apiErr.Error()
	}
	switch apiErr.Code {
	case codeNoRows:
		r.Outcome = Connected
	case codeUndefinedTable, codeTableNotInCache:
		r.Outcome = Missing
	default:
		r.Outcome = Failed
	}
	return r
}

// IsColumnDrift reports whether a Failed result came from a missing column.
func (r Result) IsColumnDrift() bool {
	return r.Outcome == Failed && (r.Code == codeUndefinedColumn || r.Code == codeColumnNotInSchema)
}

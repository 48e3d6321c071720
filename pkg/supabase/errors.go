package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx answer from the backend. Code carries the PostgREST or
// Postgres error code when the body had one.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "supabase api error: status=%d", e.Status)
	if e.Code != "" {
		fmt.Fprintf(&b, " code=%s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " message=%s", e.Message)
	}
	return b.String()
}

func decodeError(status int, body []byte) error {
	e := &Error{Status: status}
	if len(body) == 0 {
		e.Message = http.StatusText(status)
		return e
	}

	// PostgREST bodies carry details/hint as strings; auth bodies use msg or
	// error_description, and either may send details as an object.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		e.Message = strings.TrimSpace(string(body))
		return e
	}
	e.Code = stringField(raw, "code", "error_code", "error")
	e.Message = stringField(raw, "message", "msg", "error_description")
	e.Details = stringField(raw, "details")
	e.Hint = stringField(raw, "hint")
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

func stringField(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
		if string(v) != "null" {
			return string(v)
		}
	}
	return ""
}

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"supatools/pkg/config"
)

const testKey = "anon-test-key"

func newTestServer(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := New(config.Credentials{URL: srv.URL + "/", AnonKey: testKey}, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNew_RequiresCredentials(t *testing.T) {
	if _, err := New(config.Credentials{URL: "https://x.supabase.co"}); !errors.Is(err, config.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestSelect_SendsKeyAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/rest/v1/{table}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "table") != "budgets" {
			t.Errorf("unexpected table %q", chi.URLParam(r, "table"))
		}
		if r.Header.Get("apikey") != testKey || r.Header.Get("Authorization") != "Bearer "+testKey {
			t.Errorf("missing auth headers: %v", r.Header)
		}
		if got := r.URL.Query().Get("select"); got != "id,amount" {
			t.Errorf("unexpected select %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("unexpected limit %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"amount":"10.00"}]`))
	})
	c := newTestServer(t, r)

	rows, err := c.Select(context.Background(), "budgets", "id,amount", 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestSelect_DecodesPostgrestError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/rest/v1/{table}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","details":null,"hint":null,"message":"relation \"public.budgets\" does not exist"}`))
	})
	c := newTestServer(t, r)

	_, err := c.Select(context.Background(), "budgets", "*", 1)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "42P01" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if apiErr.Details != "" {
		t.Fatalf("null details should decode empty, got %q", apiErr.Details)
	}
}

func TestRPC_PostsArgs(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/rest/v1/rpc/{fn}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "fn") != "exec_sql" {
			t.Errorf("unexpected fn %q", chi.URLParam(r, "fn"))
		}
		var args map[string]string
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			t.Errorf("decode: %v", err)
		}
		if args["sql"] != "select 1;" {
			t.Errorf("unexpected args %v", args)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestServer(t, r)

	if err := c.RPC(context.Background(), "exec_sql", map[string]string{"sql": "select 1;"}, nil); err != nil {
		t.Fatalf("rpc: %v", err)
	}
}

func TestAuthSettings_NonJSONError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/v1/settings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	c := newTestServer(t, r)

	_, err := c.AuthSettings(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "upstream down" || apiErr.Code != "" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

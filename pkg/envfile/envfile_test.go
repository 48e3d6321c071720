package envfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestParse_TrimsAndKeepsEmbeddedEquals(t *testing.T) {
	got := Parse("  NEXT_PUBLIC_SUPABASE_URL = https://abc.supabase.co \nTOKEN=a=b==c\n")
	if got["NEXT_PUBLIC_SUPABASE_URL"] != "https://abc.supabase.co" {
		t.Fatalf("url mismatch: %q", got["NEXT_PUBLIC_SUPABASE_URL"])
	}
	if got["TOKEN"] != "a=b==c" {
		t.Fatalf("expected embedded '=' preserved, got %q", got["TOKEN"])
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
}

func TestParse_SkipsLinesWithoutKeyOrEquals(t *testing.T) {
	got := Parse("\njust text\n=orphan\n   \nOK=1\n")
	if len(got) != 1 || got["OK"] != "1" {
		t.Fatalf("unexpected map: %#v", got)
	}
}

func TestParse_NoCommentStripping(t *testing.T) {
	got := Parse("# NOTE=kept\nKEY=value # not a comment\n")
	if got["# NOTE"] != "kept" {
		t.Fatalf("expected commented line to be parsed literally, got %#v", got)
	}
	if got["KEY"] != "value # not a comment" {
		t.Fatalf("expected inline hash kept, got %q", got["KEY"])
	}
}

func TestParse_EmptyValueAndCRLF(t *testing.T) {
	got := Parse("EMPTY=\r\nWIN=yes\r\n")
	if v, ok := got["EMPTY"]; !ok || v != "" {
		t.Fatalf("expected EMPTY present with empty value, got %q ok=%v", v, ok)
	}
	if got["WIN"] != "yes" {
		t.Fatalf("expected CR stripped, got %q", got["WIN"])
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), ".env.local"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %#v", got)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	want := map[string]string{
		"NEXT_PUBLIC_SUPABASE_URL":      "https://xyz.supabase.co",
		"NEXT_PUBLIC_SUPABASE_ANON_KEY": "eyJhbGciOiJIUzI1NiJ9.e30=.sig==",
		"EMPTY":                         "",
		"WITH_SPACES":                   "a b c",
	}

	keys := make([]string, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + "=" + want[k] + "\n")
	}

	path := filepath.Join(t.TempDir(), ".env.local")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("key %s: expected %q, got %q", k, v, got[k])
		}
	}
}

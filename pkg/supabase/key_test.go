package supabase

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signKey(t *testing.T, claims KeyClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("project-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestInspectKey_AnonKey(t *testing.T) {
	now := time.Unix(1700000000, 0)
	key := signKey(t, KeyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "supabase",
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
		Role: "anon",
		Ref:  "abcdefgh",
	})

	info, err := InspectKey(key)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.Role != "anon" || info.Ref != "abcdefgh" || info.Issuer != "supabase" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if w := info.Warnings("https://abcdefgh.supabase.co", now); len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
}

func TestKeyInfo_Warnings(t *testing.T) {
	now := time.Unix(1700000000, 0)
	info := KeyInfo{Role: "service_role", Ref: "abc", ExpiresAt: now.Add(-time.Hour)}

	w := info.Warnings("https://other.supabase.co", now)
	if len(w) != 3 {
		t.Fatalf("expected 3 warnings, got %v", w)
	}
	if !strings.Contains(w[0], "service_role") {
		t.Fatalf("unexpected first warning %q", w[0])
	}
}

func TestKeyInfo_CustomDomainSkipsRefCheck(t *testing.T) {
	info := KeyInfo{Role: "anon", Ref: "abc"}
	if w := info.Warnings("http://localhost:54321", time.Now()); len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
}

func TestInspectKey_NotAJWT(t *testing.T) {
	if _, err := InspectKey("sb_publishable_xyz"); err == nil {
		t.Fatalf("expected error")
	}
}

package supabase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyClaims are the claims Supabase puts in project API keys.
type KeyClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

type KeyInfo struct {
	Role      string
	Ref       string
	Issuer    string
	ExpiresAt time.Time
}

// InspectKey decodes an API key without verifying its signature; the project
// secret is never available to these tools.
func InspectKey(key string) (KeyInfo, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyInfo{}, fmt.Errorf("missing key")
	}

	claims := &KeyClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return KeyInfo{}, fmt.Errorf("api key is not a jwt: %w", err)
	}

	info := KeyInfo{
		Role:   claims.Role,
		Ref:    claims.Ref,
		Issuer: claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Warnings lists problems an operator should know about before using the key
// against projectURL.
func (k KeyInfo) Warnings(projectURL string, now time.Time) []string {
	var out []string
	switch k.Role {
	case "anon":
	case "service_role":
		out = append(out, "key has role service_role; it bypasses row level security and must never ship to the browser")
	case "":
		out = append(out, "key has no role claim")
	default:
		out = append(out, fmt.Sprintf("unexpected key role %q", k.Role))
	}

	if !k.ExpiresAt.IsZero() && k.ExpiresAt.Before(now) {
		out = append(out, fmt.Sprintf("key expired at %s", k.ExpiresAt.UTC().Format(time.RFC3339)))
	}

	if ref := projectRef(projectURL); k.Ref != "" && ref != "" && ref != k.Ref {
		out = append(out, fmt.Sprintf("key belongs to project %q but url points at %q", k.Ref, ref))
	}
	return out
}

// projectRef extracts "abc" from https://abc.supabase.co. Custom domains and
// local URLs yield "".
func projectRef(projectURL string) string {
	u, err := url.Parse(strings.TrimSpace(projectURL))
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if !strings.HasSuffix(host, ".supabase.co") {
		return ""
	}
	return strings.TrimSuffix(host, ".supabase.co")
}

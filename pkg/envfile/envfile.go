// Package envfile reads KEY=VALUE files such as .env.local into a map.
//
// The format is deliberately loose: no quoting, escaping or comment handling.
// Everything after the first '=' is the value, so values may contain '='.
package envfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Load reads path and parses it. A missing file yields an empty map and no error.
func Load(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return Parse(string(b)), nil
}

// Parse converts file content into a map. Lines without '=' or without a key are skipped.
func Parse(content string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		parts := strings.Split(line, "=")
		if len(parts) < 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(strings.Join(parts[1:], "="))
	}
	return out
}

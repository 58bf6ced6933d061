// Package config resolves the one external setting the client needs:
// where the recipe-generation service lives.
package config

import (
	"os"
	"strings"
)

// Env var name for the generation service base address.
const EnvServiceURL = "RECIPE_SERVICE_URL"

// DefaultServiceURL is used when nothing is configured — the service's
// standard local dev address.
const DefaultServiceURL = "http://localhost:8000"

// ServiceURL returns the service base address, preferring the explicit
// override (CLI flag), then the environment, then the local default.
// A trailing slash is stripped so path joining stays predictable.
func ServiceURL(override string) string {
	url := strings.TrimSpace(override)
	if url == "" {
		url = strings.TrimSpace(os.Getenv(EnvServiceURL))
	}
	if url == "" {
		url = DefaultServiceURL
	}
	return strings.TrimRight(url, "/")
}

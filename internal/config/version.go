package config

import (
	"os"
	"strings"
)

const fallbackVersion = "0.1.0"

// Version returns the service version: APP_VERSION when set by the
// deployment, otherwise the VERSION file in the repository root, with a
// compiled-in fallback for bare checkouts.
func Version() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}
	return fallbackVersion
}

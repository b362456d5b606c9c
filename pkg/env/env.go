package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of the environment variable or the fallback
// when unset or blank.
func Get(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

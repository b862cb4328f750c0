// Package slug derives filesystem-safe path segments from arbitrary text.
package slug

import (
	"regexp"
	"strings"
)

// Fallback is returned when the input slugifies to nothing.
const Fallback = "post"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases the input, collapses every run of non-alphanumeric
// characters to a single hyphen and strips leading/trailing hyphens.
// An input that reduces to the empty string yields Fallback.
func Make(value string) string {
	value = strings.ToLower(value)
	value = nonAlphanumeric.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")

	if value == "" {
		return Fallback
	}

	return value
}

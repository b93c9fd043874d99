package tagging

import (
	"regexp"
	"strings"
)

// Separator joins tags in the serialized field value.
const Separator = ","

// cleaningPattern matches everything outside word characters, whitespace and hyphens.
// Both classes are ASCII: non-ASCII letters and Unicode spaces such as NBSP
// are removed.
var cleaningPattern = regexp.MustCompile(`[^\w\s-]+`)

// Sanitize strips disallowed characters from a raw tag and trims surrounding
// whitespace. An empty result means the tag must be rejected.
func Sanitize(raw string) string {
	return strings.TrimSpace(cleaningPattern.ReplaceAllString(raw, ""))
}

// ParseSerialized splits a serialized value into its tags.
// An empty value yields an empty list, never a list holding "".
func ParseSerialized(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, Separator)
}

// Serialize joins tags into the canonical field value.
func Serialize(tags []string) string {
	return strings.Join(tags, Separator)
}

package util

import (
	"regexp"
	"strings"
)

var (
	slugPattern  = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	slugStripper = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugSpaces   = regexp.MustCompile(`[-\s]+`)
)

// IsSlug reports whether s consists only of letters, digits, underscores and hyphens.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripper.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}

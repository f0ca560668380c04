package utils

import "regexp"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is safe to embed in the categories query
// parameter: lowercase latin letters, digits and single hyphens, no
// leading or trailing hyphen. Commas are the list separator and can never
// appear inside a slug.
func IsValidSlug(s string) bool {
	return s != "" && slugPattern.MatchString(s)
}

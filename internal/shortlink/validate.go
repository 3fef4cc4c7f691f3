package shortlink

import (
	"regexp"
	"strings"
)

// urlPattern accepts an optional http(s) scheme, a host made of at least two
// dot-separated labels and an optional path, query and fragment.
var urlPattern = regexp.MustCompile(
	`^(?:https?://)?[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=]+$`,
)

// ValidateURL reports ErrInvalidURL unless candidate looks like a web URL.
func ValidateURL(candidate string) error {
	if !urlPattern.MatchString(candidate) {
		return ErrInvalidURL
	}

	return nil
}

// HasScheme reports whether rawURL starts with an http or https scheme.
func HasScheme(rawURL string) bool {
	lower := strings.ToLower(rawURL)

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

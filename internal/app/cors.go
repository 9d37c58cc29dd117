package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether the origin's host matches one of the
// configured patterns. Patterns are exact hosts, "*.domain" suffixes or
// "host:*" port wildcards.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		switch {
		case pattern == host:
			return true
		case strings.HasPrefix(pattern, "*.") && strings.HasSuffix(host, pattern[1:]):
			return true
		case strings.HasSuffix(pattern, ":*") && strings.HasPrefix(host, pattern[:len(pattern)-1]):
			return true
		}
	}
	return false
}

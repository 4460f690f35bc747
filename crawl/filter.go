package crawl

import (
	"net/url"
	"path"
	"strings"
)

// wellKnownPaths are the relative paths probed against every seed origin, in
// priority order. The empty entry is the home page.
var wellKnownPaths = []string{
	"",
	"/about",
	"/about-us",
	"/services",
	"/products",
	"/contact",
	"/contact-us",
	"/blog",
	"/news",
	"/team",
	"/careers",
	"/pricing",
	"/features",
}

// blockedExtensions are path extensions that never carry crawlable content.
var blockedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".css":  true,
	".js":   true,
	".xml":  true,
}

// blockedSegments are administrative or static path segments.
var blockedSegments = map[string]bool{
	"wp-admin":   true,
	"wp-content": true,
	"admin":      true,
	"api":        true,
	"assets":     true,
	"static":     true,
}

// validCandidate reports whether a resolved URL may be crawled for the seed
// host. The host must match exactly (no subdomain leakage) and the path must
// not carry a blocked extension or segment. Matching is case-insensitive.
func validCandidate(u *url.URL, seedHost string) bool {
	if !strings.EqualFold(u.Host, seedHost) {
		return false
	}

	p := strings.ToLower(u.Path)
	if blockedExtensions[path.Ext(p)] {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if blockedSegments[seg] {
			return false
		}
	}
	return true
}

package boundary

import (
	"net/url"
	"strings"
)

// Location is the navigation position a boundary is rendered at.
type Location struct {
	Path     string
	Query    string
	Fragment string
}

// ResetKey combines location and authentication state. Any change of
// either yields a different key.
func ResetKey(loc Location, auth string) string {
	var b strings.Builder
	b.WriteString(loc.Path)
	b.WriteByte('?')
	b.WriteString(loc.Query)
	b.WriteByte('#')
	b.WriteString(loc.Fragment)
	b.WriteByte('|')
	b.WriteString(auth)
	return b.String()
}

func KeyFromURL(u *url.URL, authenticated bool) string {
	auth := "anonymous"
	if authenticated {
		auth = "authenticated"
	}
	if u == nil {
		return ResetKey(Location{}, auth)
	}
	return ResetKey(Location{Path: u.Path, Query: u.RawQuery, Fragment: u.Fragment}, auth)
}

package naisite

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments. Unlike a directory-style
// join, the result never ends in a slash, since the site strips them.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if u.Path == "" || u.Path == "." {
		u.Path = "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitComma parses a comma separated form field.
func splitComma(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// appendUnique appends v to vals unless it is already present.
func appendUnique(vals []string, v string) []string {
	for _, x := range vals {
		if x == v {
			return vals
		}
	}
	return append(vals, v)
}

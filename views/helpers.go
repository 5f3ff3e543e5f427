package views

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// acceptedDateLayouts mirrors the frontmatter formats the pipeline accepts.
var acceptedDateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

// FormatDate renders an ISO-8601 frontmatter date for display, e.g.
// "January 2, 2006". Unparseable dates are shown as-is rather than hidden.
func FormatDate(iso string) string {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}

// MachineDate renders a frontmatter date for a <time datetime> attribute.
func MachineDate(iso string) string {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return iso
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

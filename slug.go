package blog

import "strings"

// SlugFromFilename derives the public slug for a content file by stripping
// the recognized extension. Filenames without it pass through unchanged, so
// the mapping is total; reapplying the extension to a derived slug restores
// the original filename.
func SlugFromFilename(name string) string {
	return strings.TrimSuffix(name, ContentExt)
}

// Filename maps a slug back to its content filename.
func Filename(slug string) string {
	return slug + ContentExt
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

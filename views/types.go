package views

// Site holds the site-wide settings the templates need. The build layer
// maps its own config into this so views stay free of pipeline imports.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	Theme       HighlightTheme
}

// Post is the rendered form of one content file.
type Post struct {
	Title string
	Date  string
	Slug  string
	Link  string
	HTML  string // rendered body markup
}

// Entry is one row of the post listing: a title, a date, and the link
// derived from the post's slug.
type Entry struct {
	Title string
	Date  string
	Slug  string
	Link  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> markup.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

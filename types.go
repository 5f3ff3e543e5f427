package blog

// Metadata is the structured record embedded as YAML frontmatter at the top
// of every content file. Date is an ISO-8601 timestamp string at rest; it is
// parsed only where ordering or display formatting requires it.
type Metadata struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// Post is a fully loaded content file: its metadata, the slug derived from
// its filename, and the raw markdown body with the frontmatter removed.
type Post struct {
	Metadata
	Slug string
	Link string
	Body string
}

// IndexEntry is the read-only {metadata, slug} projection used to render
// the post listing. Entries are built fresh on every index pass and are
// never persisted.
type IndexEntry struct {
	Metadata Metadata
	Slug     string
}

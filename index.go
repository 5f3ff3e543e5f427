package blog

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// dateLayouts are the accepted frontmatter date formats, most specific
// first. Authored posts carry full ISO-8601 timestamps; date-only is
// tolerated for older files.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

// LoadPosts reads every document in the store and returns the fully parsed
// posts ordered by date descending (slug ascending on equal dates, so the
// order is deterministic). Extraction is fanned out across documents; any
// single failure aborts the whole pass and no posts are returned.
func (s *Store) LoadPosts(ctx context.Context) ([]Post, error) {
	names, err := s.ListDocuments()
	if err != nil {
		return nil, err
	}

	posts := make([]Post, len(names))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			p, err := s.ReadPost(name)
			if err != nil {
				return err
			}
			posts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := parseDate(posts[i].Date), parseDate(posts[j].Date)
		if di.Equal(dj) {
			return posts[i].Slug < posts[j].Slug
		}
		return di.After(dj)
	})
	return posts, nil
}

// Index returns the {metadata, slug} projection of every post, in the same
// date-descending order as LoadPosts. One entry per document found; an
// empty content directory yields an empty index, not an error.
func (s *Store) Index(ctx context.Context) ([]IndexEntry, error) {
	posts, err := s.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]IndexEntry, len(posts))
	for i, p := range posts {
		entries[i] = IndexEntry{Metadata: p.Metadata, Slug: p.Slug}
	}
	return entries, nil
}

// parseDate interprets a frontmatter date string. Unparseable dates sort
// last rather than failing the build; the title and date presence checks
// already ran during extraction.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

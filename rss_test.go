package blog

import (
	"bytes"
	"strings"
	"testing"
)

func feedFixture() (SiteConfig, []Post) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Description: "A blog"}
	posts := []Post{
		{Metadata: Metadata{Title: "Newest", Date: "2024-03-01T00:00:00.000Z"}, Slug: "newest"},
		{Metadata: Metadata{Title: "Oldest", Date: "2019-05-01T00:00:00.000Z"}, Slug: "oldest"},
	}
	return cfg, posts
}

func TestWriteFeed(t *testing.T) {
	cfg, posts := feedFixture()
	var buf bytes.Buffer
	if err := WriteFeed(&buf, cfg, posts); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Site</title>",
		"<description>A blog</description>",
		"<link>https://example.com/blog/newest/</link>",
		"<guid>https://example.com/blog/oldest/</guid>",
		"<pubDate>Fri, 01 Mar 2024 00:00:00 +0000</pubDate>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("feed missing %s:\n%s", want, got)
		}
	}
}

func TestWriteFeedUnparseableDateOmitsPubDate(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com"}
	posts := []Post{{Metadata: Metadata{Title: "Odd", Date: "sometime"}, Slug: "odd"}}
	var buf bytes.Buffer
	if err := WriteFeed(&buf, cfg, posts); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	if strings.Contains(buf.String(), "<pubDate>") {
		t.Errorf("feed should omit pubDate for unparseable dates:\n%s", buf.String())
	}
}

func TestWriteSitemap(t *testing.T) {
	cfg, posts := feedFixture()
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, cfg, posts); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		`xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`,
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/blog/newest/</loc>",
		"<lastmod>2019-05-01</lastmod>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("sitemap missing %s:\n%s", want, got)
		}
	}
}

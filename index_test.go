package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// post builds a minimal valid content file body.
func post(title, date string) string {
	return fmt.Sprintf("---\ntitle: %q\ndate: %q\n---\n\nBody of %s.\n", title, date, title)
}

func TestIndexCountsEveryDocument(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("post-%d.mdx", i)
		writePost(t, dir, name, post(fmt.Sprintf("Post %d", i), fmt.Sprintf("2024-01-0%dT00:00:00.000Z", i+1)))
	}

	entries, err := NewStore(dir).Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Index returned %d entries, want 5", len(entries))
	}
}

func TestIndexSpecimenEntry(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.mdx", helloPost)

	entries, err := NewStore(dir).Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Index returned %d entries, want 1", len(entries))
	}
	want := IndexEntry{
		Metadata: Metadata{Title: "Hello", Date: "2020-01-01T00:00:00.000Z"},
		Slug:     "hello",
	}
	if entries[0] != want {
		t.Errorf("entry = %+v, want %+v", entries[0], want)
	}
}

func TestIndexEmptyDirectory(t *testing.T) {
	entries, err := NewStore(t.TempDir()).Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed on empty directory: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Index returned %d entries, want 0", len(entries))
	}
}

func TestIndexSortsByDateDescending(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "oldest.mdx", post("Oldest", "2019-05-01T00:00:00.000Z"))
	writePost(t, dir, "newest.mdx", post("Newest", "2024-03-01T00:00:00.000Z"))
	writePost(t, dir, "middle.mdx", post("Middle", "2021-11-20T00:00:00.000Z"))

	entries, err := NewStore(dir).Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Slug)
	}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestIndexTiesBreakOnSlug(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bravo.mdx", post("Bravo", "2024-01-01T00:00:00.000Z"))
	writePost(t, dir, "alpha.mdx", post("Alpha", "2024-01-01T00:00:00.000Z"))

	entries, err := NewStore(dir).Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if entries[0].Slug != "alpha" || entries[1].Slug != "bravo" {
		t.Fatalf("tie order = [%s %s], want [alpha bravo]", entries[0].Slug, entries[1].Slug)
	}
}

func TestIndexAbortsOnMissingMetadata(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good.mdx", post("Good", "2024-01-01T00:00:00.000Z"))
	writePost(t, dir, "broken.mdx", "# No frontmatter at all\n")

	entries, err := NewStore(dir).Index(context.Background())
	if !errors.Is(err, ErrMissingMetadata) {
		t.Fatalf("err = %v, want ErrMissingMetadata", err)
	}
	if !strings.Contains(err.Error(), "broken.mdx") {
		t.Errorf("error %q does not name the broken file", err)
	}
	if entries != nil {
		t.Errorf("entries = %v, want nil on aborted pass", entries)
	}
}

func TestIndexIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "one.mdx", post("One", "2023-06-01T00:00:00.000Z"))
	writePost(t, dir, "two.mdx", post("Two", "2023-07-01T00:00:00.000Z"))
	writePost(t, dir, "three.mdx", post("Three", "2023-08-01T00:00:00.000Z"))
	s := NewStore(dir)

	first, err := s.Index(context.Background())
	if err != nil {
		t.Fatalf("first Index failed: %v", err)
	}
	second, err := s.Index(context.Background())
	if err != nil {
		t.Fatalf("second Index failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSlugRoundTrip(t *testing.T) {
	tests := []string{"hello.mdx", "a-long-post-name.mdx", "2024-review.mdx"}
	for _, name := range tests {
		slug := SlugFromFilename(name)
		if got := Filename(slug); got != name {
			t.Errorf("round trip %q -> %q -> %q", name, slug, got)
		}
	}
}

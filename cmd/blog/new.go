package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arbarlow/blog"
)

// runNew scaffolds a new content file with a frontmatter skeleton. The
// filename (and therefore the slug) is derived from the title.
func runNew(cfg blog.SiteConfig, title string) error {
	slug := blog.Slugify(title)
	if slug == "" {
		return fmt.Errorf("cannot derive a slug from %q", title)
	}

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(cfg.ContentDir, blog.Filename(slug))
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	content := fmt.Sprintf("---\ntitle: %q\ndate: %q\n---\n\nWrite here.\n",
		title, time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	fmt.Printf("created %s\n", path)
	return nil
}

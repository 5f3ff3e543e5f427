package blog

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/arbarlow/blog/markdown"
	"github.com/arbarlow/blog/views"
)

// Builder renders the whole site into the output directory. One Build call
// is one complete pass: index page, one page per post, feed, sitemap,
// robots.txt, plus a verbatim copy of the static assets directory.
type Builder struct {
	Config SiteConfig
	Store  *Store
}

// NewBuilder creates a Builder over the given config, reading content from
// cfg.ContentDir.
func NewBuilder(cfg SiteConfig) *Builder {
	return &Builder{
		Config: cfg,
		Store:  NewStore(cfg.ContentDir),
	}
}

// Build runs the full build pass. Any error is fatal to the pass; nothing
// is retried and no partially-broken site is left behind as a success.
func (b *Builder) Build(ctx context.Context) error {
	posts, err := b.Store.LoadPosts(ctx)
	if err != nil {
		return err
	}

	site := views.Site{
		Name:        b.Config.Name,
		URL:         b.Config.URL,
		Description: b.Config.Description,
		Author:      b.Config.Author,
		Theme:       views.ParseTheme(b.Config.Theme),
	}

	if err := os.MkdirAll(b.Config.OutDir, 0o755); err != nil {
		return fmt.Errorf("blog: create output dir: %w", err)
	}

	entries := make([]views.Entry, len(posts))
	for i, p := range posts {
		entries[i] = views.Entry{Title: p.Title, Date: p.Date, Slug: p.Slug, Link: p.Link + "/"}
	}
	if err := b.renderToFile(ctx, "index.html", views.Home(site, entries)); err != nil {
		return err
	}
	if err := b.renderToFile(ctx, "404.html", views.NotFound(site)); err != nil {
		return err
	}

	for _, p := range posts {
		var body bytes.Buffer
		markdown.Render(&body, p.Body)
		vp := views.Post{Title: p.Title, Date: p.Date, Slug: p.Slug, Link: p.Link + "/", HTML: body.String()}
		page := views.PostPage(site, vp, BlogPostingJsonLD(p, b.Config))
		if err := b.renderToFile(ctx, filepath.Join("blog", p.Slug, "index.html"), page); err != nil {
			return err
		}
	}

	if err := b.writeFeed(posts); err != nil {
		return err
	}
	if err := b.writeSitemap(posts); err != nil {
		return err
	}
	if err := b.writeRobots(); err != nil {
		return err
	}
	if err := b.copyStatic(); err != nil {
		return err
	}

	log.Printf("blog: built %d posts into %s", len(posts), b.Config.OutDir)
	return nil
}

// renderToFile writes a templ component to a file under the output
// directory, creating parent directories as needed.
func (b *Builder) renderToFile(ctx context.Context, rel string, cmp templ.Component) error {
	path := filepath.Join(b.Config.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("blog: create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("blog: create %s: %w", rel, err)
	}
	defer f.Close()
	if err := cmp.Render(ctx, f); err != nil {
		return fmt.Errorf("blog: render %s: %w", rel, err)
	}
	return f.Close()
}

func (b *Builder) writeFeed(posts []Post) error {
	f, err := os.Create(filepath.Join(b.Config.OutDir, "feed.xml"))
	if err != nil {
		return fmt.Errorf("blog: create feed.xml: %w", err)
	}
	defer f.Close()
	if err := WriteFeed(f, b.Config, posts); err != nil {
		return fmt.Errorf("blog: render feed.xml: %w", err)
	}
	return f.Close()
}

func (b *Builder) writeSitemap(posts []Post) error {
	f, err := os.Create(filepath.Join(b.Config.OutDir, "sitemap.xml"))
	if err != nil {
		return fmt.Errorf("blog: create sitemap.xml: %w", err)
	}
	defer f.Close()
	if err := WriteSitemap(f, b.Config, posts); err != nil {
		return fmt.Errorf("blog: render sitemap.xml: %w", err)
	}
	return f.Close()
}

func (b *Builder) writeRobots() error {
	robots := "User-agent: *\nAllow: /\n\nSitemap: " + BuildURL(b.Config.URL) + "sitemap.xml\n"
	if err := os.WriteFile(filepath.Join(b.Config.OutDir, "robots.txt"), []byte(robots), 0o644); err != nil {
		return fmt.Errorf("blog: write robots.txt: %w", err)
	}
	return nil
}

// copyStatic copies the static assets directory verbatim into the output
// root. A missing static dir is fine; not every site has one.
func (b *Builder) copyStatic() error {
	info, err := os.Stat(b.Config.StaticDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("blog: stat %s: %w", b.Config.StaticDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("blog: %s is not a directory", b.Config.StaticDir)
	}
	// Not os.CopyFS: rebuilds overwrite files already present in the
	// output directory.
	src := os.DirFS(b.Config.StaticDir)
	err = fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(b.Config.OutDir, path)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("blog: copy static assets: %w", err)
	}
	return nil
}

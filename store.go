package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContentExt is the recognized extension for content files. The filename
// minus this extension is the public slug used in listing links.
const ContentExt = ".mdx"

const frontmatterDelim = "---"

// Store reads blog posts from a directory of flat files. One file per post,
// YAML frontmatter followed by a markdown body. Files are immutable for the
// duration of a build; the Store never writes to them.
type Store struct {
	dir string
}

// NewStore creates a Store over the given content directory. The directory
// is not touched until the first read.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the content directory this store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// ListDocuments returns the filenames of all content files in the store, in
// filesystem enumeration order. Only regular files with the recognized
// extension count as documents; dotfiles and foreign extensions are skipped.
func (s *Store) ListDocuments() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("blog: list %s: %w", s.dir, ErrDirectoryNotFound)
		case os.IsPermission(err):
			return nil, fmt.Errorf("blog: list %s: %w", s.dir, ErrPermissionDenied)
		default:
			return nil, fmt.Errorf("blog: list %s: %w", s.dir, err)
		}
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ContentExt) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// ReadPost loads one content file by filename and returns the parsed Post.
// The read is pure: the source file is never modified. A file without a
// frontmatter block, or whose frontmatter lacks title or date, fails with
// ErrMissingMetadata wrapped with the offending filename.
func (s *Store) ReadPost(name string) (Post, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsPermission(err) {
			return Post{}, fmt.Errorf("blog: read %s: %w", name, ErrPermissionDenied)
		}
		return Post{}, fmt.Errorf("blog: read %s: %w", name, err)
	}

	meta, body, err := splitFrontmatter(string(raw))
	if err != nil {
		return Post{}, fmt.Errorf("blog: %s: %w", name, err)
	}

	slug := SlugFromFilename(name)
	return Post{
		Metadata: meta,
		Slug:     slug,
		Link:     "/blog/" + slug,
		Body:     body,
	}, nil
}

// GetPost loads a single post by slug. Returns ErrNotFound if no content
// file with that slug exists.
func (s *Store) GetPost(slug string) (Post, error) {
	name := slug + ContentExt
	if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return Post{}, fmt.Errorf("blog: %s: %w", slug, ErrNotFound)
		}
		return Post{}, fmt.Errorf("blog: stat %s: %w", name, err)
	}
	return s.ReadPost(name)
}

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. The block is delimited by "---" lines and must open the file.
func splitFrontmatter(content string) (Metadata, string, error) {
	rest, ok := strings.CutPrefix(content, frontmatterDelim+"\n")
	if !ok {
		// Tolerate CRLF line endings from Windows editors.
		rest, ok = strings.CutPrefix(content, frontmatterDelim+"\r\n")
	}
	if !ok {
		return Metadata{}, "", ErrMissingMetadata
	}

	block, body, ok := cutDelim(rest)
	if !ok {
		return Metadata{}, "", fmt.Errorf("unterminated frontmatter: %w", ErrMissingMetadata)
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Metadata{}, "", fmt.Errorf("frontmatter: %v: %w", err, ErrMissingMetadata)
	}
	if strings.TrimSpace(meta.Title) == "" || strings.TrimSpace(meta.Date) == "" {
		return Metadata{}, "", fmt.Errorf("frontmatter needs title and date: %w", ErrMissingMetadata)
	}
	return meta, strings.TrimPrefix(body, "\n"), nil
}

// cutDelim finds the closing "---" line of a frontmatter block that has
// already had its opening delimiter removed.
func cutDelim(s string) (block, body string, ok bool) {
	if rest, found := strings.CutPrefix(s, frontmatterDelim); found {
		// Empty frontmatter block.
		if rest == "" || rest[0] == '\n' || strings.HasPrefix(rest, "\r\n") {
			return "", rest, true
		}
	}
	for _, marker := range []string{"\n" + frontmatterDelim + "\n", "\n" + frontmatterDelim + "\r\n", "\r\n" + frontmatterDelim + "\r\n"} {
		if idx := strings.Index(s, marker); idx >= 0 {
			return s[:idx], s[idx+len(marker):], true
		}
	}
	// Closing delimiter on the final line with no trailing newline.
	if block, found := strings.CutSuffix(s, "\n"+frontmatterDelim); found {
		return block, "", true
	}
	return "", "", false
}

package blog

import "errors"

// Sentinel errors for the build-time content pass. Every one of these is
// fatal to the build: a post that silently disappears from the index is
// worse than a failed build, so there is no skip-and-continue mode.
var (
	// ErrDirectoryNotFound is returned when the content directory does not exist.
	ErrDirectoryNotFound = errors.New("content directory not found")

	// ErrPermissionDenied is returned when the content directory cannot be read.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMissingMetadata is returned when a content file has no frontmatter
	// block, or its frontmatter lacks a title or date.
	ErrMissingMetadata = errors.New("missing metadata")

	// ErrNotFound is returned when a requested post does not exist.
	ErrNotFound = errors.New("post not found")
)

package blog

import "testing"

func TestSlugFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"hello.mdx", "hello"},
		{"my-first-post.mdx", "my-first-post"},
		{"nested.name.mdx", "nested.name"},
		// Filenames without the recognized extension pass through unchanged.
		{"readme", "readme"},
		{"notes.md", "notes.md"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SlugFromFilename(tt.name); got != tt.want {
			t.Errorf("SlugFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trim Me  ", "trim-me"},
		{"Already-slugged", "already-slugged"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"Ends with punctuation?", "ends-with-punctuation"},
		{"CamelCase2024", "camelcase2024"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

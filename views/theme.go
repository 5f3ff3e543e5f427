package views

import "strings"

// HighlightTheme selects the stylesheet class applied to fenced code
// blocks. It is presentation-layer state owned by this package; the content
// pipeline never sees it.
type HighlightTheme int

const (
	ThemeGitHub HighlightTheme = iota
	ThemeDracula
	ThemeMonokai
	ThemeNord
)

// ParseTheme maps a config string to a HighlightTheme. Unknown names fall
// back to the GitHub theme.
func ParseTheme(name string) HighlightTheme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dracula":
		return ThemeDracula
	case "monokai":
		return ThemeMonokai
	case "nord":
		return ThemeNord
	default:
		return ThemeGitHub
	}
}

// String returns the theme's canonical name.
func (t HighlightTheme) String() string {
	switch t {
	case ThemeDracula:
		return "dracula"
	case ThemeMonokai:
		return "monokai"
	case ThemeNord:
		return "nord"
	default:
		return "github"
	}
}

// CSSClass returns the class emitted on <body> so the theme stylesheet can
// scope code block colors.
func (t HighlightTheme) CSSClass() string {
	return "hl-" + t.String()
}

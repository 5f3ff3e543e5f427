// Package markdown renders post bodies to HTML as a templ component.
// It is a deliberately small line-based renderer covering the constructs
// the posts actually use; it is not a general CommonMark implementation.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reImg              = regexp.MustCompile(`\!\[(.*?)\]\((.*?)\)`)
	reOrderedList      = regexp.MustCompile(`^(\d+)\.\s`)
	reHeading          = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of md to buf.
func Render(buf *bytes.Buffer, md string) {
	lines := strings.Split(md, "\n")
	inList := false
	inOrderedList := false
	inPara := false
	inQuote := false
	inCode := false
	codeLang := false
	inTable := false
	tableHeaderDone := false

	flushCode := func() {
		if inCode {
			buf.WriteString("</code></pre>")
			if codeLang {
				buf.WriteString("</figure>")
				codeLang = false
			}
			inCode = false
			inPara = false
		}
	}
	flushPara := func() {
		if inPara {
			buf.WriteString("</p>")
			inPara = false
		}
	}
	flushQuote := func() {
		if inQuote {
			buf.WriteString("</blockquote>")
			inQuote = false
		}
	}
	flushList := func() {
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
	}
	flushOrderedList := func() {
		if inOrderedList {
			buf.WriteString("</ol>")
			inOrderedList = false
		}
	}
	flushTable := func() {
		if inTable {
			if tableHeaderDone {
				buf.WriteString("</tbody>")
			}
			buf.WriteString("</table>")
			inTable = false
			tableHeaderDone = false
		}
	}
	flushBlocks := func() {
		flushPara()
		flushList()
		flushOrderedList()
		flushQuote()
		flushTable()
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if inCode {
				flushCode()
			} else {
				flushBlocks()
				lang := strings.TrimSpace(line[3:])
				if lang != "" {
					codeLang = true
					escapedLang := html.EscapeString(lang)
					buf.WriteString(`<figure class="highlight" data-lang="` + escapedLang + `">`)
					buf.WriteString(`<pre><code class="language-` + escapedLang + `">`)
				} else {
					buf.WriteString("<pre><code>")
				}
				inCode = true
				inPara = true
			}
			continue
		}

		if inCode {
			buf.WriteString(html.EscapeString(line))
			buf.WriteString("\n")
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushBlocks()
			continue
		}

		switch {
		case strings.HasPrefix(line, "---"):
			flushBlocks()
			buf.WriteString("<hr/>")
		case reHeading.MatchString(line):
			flushBlocks()
			m := reHeading.FindStringSubmatch(line)
			level := strconv.Itoa(len(m[1]))
			text := strings.TrimSpace(m[2])
			id := headingID(text)
			buf.WriteString(`<h` + level + ` id="` + id + `">`)
			buf.WriteString(FormatInline(text))
			buf.WriteString("</h" + level + ">")
		case strings.HasPrefix(line, "|"):
			if !inTable {
				flushPara()
				flushList()
				flushOrderedList()
				flushQuote()
				buf.WriteString("<table>")
				inTable = true
				buf.WriteString("<thead><tr>")
				for _, cell := range tableCells(line) {
					buf.WriteString("<th>")
					buf.WriteString(FormatInline(cell))
					buf.WriteString("</th>")
				}
				buf.WriteString("</tr></thead>")
			} else if isTableSeparator(line) {
				if !tableHeaderDone {
					buf.WriteString("<tbody>")
					tableHeaderDone = true
				}
			} else {
				if !tableHeaderDone {
					buf.WriteString("<tbody>")
					tableHeaderDone = true
				}
				buf.WriteString("<tr>")
				for _, cell := range tableCells(line) {
					buf.WriteString("<td>")
					buf.WriteString(FormatInline(cell))
					buf.WriteString("</td>")
				}
				buf.WriteString("</tr>")
			}
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			if !inList {
				flushPara()
				flushOrderedList()
				flushQuote()
				flushTable()
				buf.WriteString("<ul>")
				inList = true
			}
			buf.WriteString("<li>")
			buf.WriteString(FormatInline(strings.TrimSpace(line[2:])))
			buf.WriteString("</li>")
		case reOrderedList.MatchString(line):
			if !inOrderedList {
				flushPara()
				flushList()
				flushQuote()
				flushTable()
				buf.WriteString("<ol>")
				inOrderedList = true
			}
			content := reOrderedList.ReplaceAllString(line, "")
			buf.WriteString("<li>")
			buf.WriteString(FormatInline(strings.TrimSpace(content)))
			buf.WriteString("</li>")
		case strings.HasPrefix(line, "> "):
			if !inQuote {
				flushPara()
				flushList()
				flushOrderedList()
				flushTable()
				buf.WriteString("<blockquote>")
				inQuote = true
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line[2:])))
		default:
			if !inPara {
				flushList()
				flushOrderedList()
				flushQuote()
				flushTable()
				buf.WriteString("<p>")
				inPara = true
			} else {
				buf.WriteString(" ")
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line)) + "\n")
		}
	}
	flushBlocks()
	flushCode()
}

// headingID derives an anchor id from heading text.
func headingID(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	prev := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func tableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isTableSeparator(line string) bool {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		cleaned := strings.ReplaceAll(strings.ReplaceAll(cell, "-", ""), ":", "")
		if cleaned != "" {
			return false
		}
	}
	return true
}

// applyOutsideTags applies fn only to text segments outside HTML tags, so
// formatting regexes never touch URLs inside href attributes.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline applies inline formatting (bold, italic, code, links, images) to s.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)

	escaped = reImg.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reImg.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		src := SafeURL(match[2])
		if src == "" {
			return match[1]
		}
		return `<img alt="` + match[1] + `" src="` + src + `" loading="lazy" decoding="async"/>`
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if isExternal(href) {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})

	// Extract inline code into placeholders so the emphasis regexes never
	// rewrite content inside backticks.
	var inlineCode []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(inlineCode)) + "\x00"
		inlineCode = append(inlineCode, "<code>"+match[1]+"</code>")
		return placeholder
	})

	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})

	for i, code := range inlineCode {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}

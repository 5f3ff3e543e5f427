// Package views holds the templ components for every generated page.
// Components are plain Go so the build step needs no template compiler;
// each one writes its markup directly to the output writer.
package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a body component in the shared page chrome: <head> with SEO
// metadata, site header with navigation, and footer.
func Layout(site Site, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := meta.Title
		if title == "" {
			title = site.Name
		}
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`); err != nil {
			return err
		}
		io.WriteString(w, "<title>"+html.EscapeString(title)+"</title>")
		if meta.Description != "" {
			io.WriteString(w, `<meta name="description" content="`+html.EscapeString(meta.Description)+`"/>`)
		}
		if meta.URL != "" {
			io.WriteString(w, `<link rel="canonical" href="`+html.EscapeString(meta.URL)+`"/>`)
			io.WriteString(w, `<meta property="og:url" content="`+html.EscapeString(meta.URL)+`"/>`)
		}
		io.WriteString(w, `<meta property="og:title" content="`+html.EscapeString(title)+`"/>`)
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		io.WriteString(w, `<meta property="og:type" content="`+ogType+`"/>`)
		io.WriteString(w, `<link rel="alternate" type="application/rss+xml" title="`+html.EscapeString(site.Name)+`" href="/feed.xml"/>`)
		io.WriteString(w, `<link rel="stylesheet" href="/styles.css"/>`)
		io.WriteString(w, `</head><body class="`+site.Theme.CSSClass()+`">`)
		io.WriteString(w, `<header><nav><a href="/">`+html.EscapeString(site.Name)+`</a></nav></header><main>`)
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</main><footer>`)
		if site.Author != "" {
			io.WriteString(w, html.EscapeString(site.Author)+` &middot; `)
		}
		io.WriteString(w, `<a href="/feed.xml">RSS</a></footer>`)
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Home renders the post listing page: one link per index entry with its
// title and formatted date.
func Home(site Site, entries []Entry) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>`+html.EscapeString(site.Name)+`</h1>`); err != nil {
			return err
		}
		if site.Description != "" {
			io.WriteString(w, `<p class="description">`+html.EscapeString(site.Description)+`</p>`)
		}
		io.WriteString(w, `<ul class="post-list">`)
		for _, e := range entries {
			io.WriteString(w, `<li><a href="`+html.EscapeString(e.Link)+`">`+html.EscapeString(e.Title)+`</a>`)
			io.WriteString(w, ` <time datetime="`+MachineDate(e.Date)+`">`+html.EscapeString(FormatDate(e.Date))+`</time></li>`)
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return Layout(site, PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}, body)
}

// PostPage renders a single post: title, date, and the rendered body markup.
func PostPage(site Site, post Post, jsonLD string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<article><h1>`+html.EscapeString(post.Title)+`</h1>`); err != nil {
			return err
		}
		io.WriteString(w, `<time datetime="`+MachineDate(post.Date)+`">`+html.EscapeString(FormatDate(post.Date))+`</time>`)
		// post.HTML is produced by the markdown renderer, which escapes all
		// author text itself.
		io.WriteString(w, post.HTML)
		io.WriteString(w, `</article>`)
		if jsonLD != "" {
			io.WriteString(w, `<script type="application/ld+json">`+jsonLD+`</script>`)
		}
		return nil
	})
	return Layout(site, PageMeta{
		Title:  post.Title,
		URL:    buildURL(site.URL, "blog", post.Slug),
		OGType: "article",
	}, body)
}

// NotFound renders the static 404 page.
func NotFound(site Site) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Not found</h1><p>That page does not exist. <a href="/">Back to the index.</a></p>`)
		return err
	})
	return Layout(site, PageMeta{Title: "Not found"}, body)
}

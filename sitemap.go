package blog

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap encodes the home page and every post URL as a sitemap.
func WriteSitemap(w io.Writer, cfg SiteConfig, posts []Post) error {
	urls := []sitemapURL{
		{Loc: BuildURL(cfg.URL)},
	}
	for _, p := range posts {
		lastMod := ""
		if t := parseDate(p.Date); !t.IsZero() {
			lastMod = t.Format("2006-01-02")
		}
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(cfg.URL, "blog", p.Slug),
			LastMod: lastMod,
		})
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(set)
}

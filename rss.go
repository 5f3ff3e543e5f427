package blog

import (
	"encoding/xml"
	"io"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate,omitempty"`
	GUID    string `xml:"guid"`
}

// WriteFeed encodes posts as an RSS 2.0 feed. Posts are emitted in the
// order given, which the loader already has date-descending.
func WriteFeed(w io.Writer, cfg SiteConfig, posts []Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t := parseDate(p.Date); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(cfg.URL, "blog", p.Slug)
		items = append(items, rssItem{
			Title:   p.Title,
			Link:    postURL,
			PubDate: pubDate,
			GUID:    postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}

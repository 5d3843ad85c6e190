// Package feed renders cached section articles as RSS 2.0
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/topstories/pkg/domain"
)

// Generator creates RSS feeds from section articles
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from articles of the section
func (g *Generator) GenerateRSS(section string, articles []domain.Article) (string, error) {
	label := domain.SectionLabel(section)
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, section)

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Top Stories - " + label,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Top stories of the %s section", label),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	item := &RSSItem{
		Title:       a.Title,
		Link:        a.URL,
		GUID:        &RSSGUID{Value: a.ID},
		Description: a.Abstract,
		Author:      a.Byline,
		Categories:  a.DesFacet,
	}

	if ts, err := time.Parse(time.RFC3339, a.PublishedDate); err == nil {
		item.PubDate = ts.Format(time.RFC1123Z)
	}

	if a.ImageURL != nil && *a.ImageURL != "" {
		item.Enclosure = &RSSEnclosure{URL: *a.ImageURL, Type: "image/jpeg"}
	}
	return item
}

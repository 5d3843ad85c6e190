package nyt

import (
	"fmt"
	"time"

	"github.com/umputun/topstories/pkg/domain"
)

// Normalize converts raw API response to articles. Missing fields get their defaults:
// id falls back to "article-<index>", byline to "Unknown Author", published date to now,
// updated date to published date, image to nil, facets to empty lists.
func Normalize(resp *RawResponse, now time.Time) []domain.Article {
	if resp == nil || len(resp.Results) == 0 {
		return []domain.Article{}
	}

	nowStr := now.UTC().Format(time.RFC3339)
	articles := make([]domain.Article, 0, len(resp.Results))
	for i, raw := range resp.Results {
		articles = append(articles, normalizeArticle(raw, i, nowStr))
	}
	return articles
}

func normalizeArticle(raw RawArticle, idx int, now string) domain.Article {
	res := domain.Article{
		ID:            orDefault(string(raw.URI), fmt.Sprintf("article-%d", idx)),
		Title:         string(raw.Title),
		Abstract:      string(raw.Abstract),
		Byline:        orDefault(string(raw.Byline), domain.DefaultByline),
		PublishedDate: orDefault(string(raw.PublishedDate), now),
		Section:       string(raw.Section),
		Subsection:    string(raw.Subsection),
		URL:           string(raw.URL),
		GeoFacet:      facet(raw.GeoFacet),
		DesFacet:      facet(raw.DesFacet),
		OrgFacet:      facet(raw.OrgFacet),
		PerFacet:      facet(raw.PerFacet),
	}
	res.UpdatedDate = orDefault(string(raw.UpdatedDate), res.PublishedDate)

	if len(raw.Multimedia) > 0 {
		if url := string(raw.Multimedia[0].URL); url != "" {
			res.ImageURL = &url
		}
		res.Caption = string(raw.Multimedia[0].Caption)
	}
	return res
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func facet(vals looseStrings) []string {
	if len(vals) == 0 {
		return []string{}
	}
	res := make([]string, len(vals))
	copy(res, vals)
	return res
}

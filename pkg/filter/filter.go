// Package filter implements exact-match article filtering by facets and derivation of filter options.
// All functions are pure, input slices are never modified.
package filter

import (
	"sort"
	"strings"

	"github.com/umputun/topstories/pkg/domain"
)

// ByLocation keeps articles with geo facet equal to the trimmed location.
// Empty or whitespace-only location returns articles unchanged.
func ByLocation(articles []domain.Article, location string) []domain.Article {
	return byFacet(articles, location, func(a domain.Article) []string { return a.GeoFacet })
}

// ByKeywords keeps articles with descriptive facet equal to the trimmed keywords.
// Empty or whitespace-only keywords returns articles unchanged.
func ByKeywords(articles []domain.Article, keywords string) []domain.Article {
	return byFacet(articles, keywords, func(a domain.Article) []string { return a.DesFacet })
}

// Apply applies location filter first and keywords filter on its result
func Apply(articles []domain.Article, filters domain.Filters) []domain.Article {
	res := ByLocation(articles, filters.Location)
	return ByKeywords(res, filters.Keywords)
}

// UniqueLocations returns sorted distinct geo facets of all articles
func UniqueLocations(articles []domain.Article) []string {
	return unique(articles, func(a domain.Article) []string { return a.GeoFacet })
}

// UniqueKeywords returns sorted distinct descriptive facets of all articles
func UniqueKeywords(articles []domain.Article) []string {
	return unique(articles, func(a domain.Article) []string { return a.DesFacet })
}

func byFacet(articles []domain.Article, target string, facetFn func(domain.Article) []string) []domain.Article {
	term := strings.TrimSpace(target)
	if term == "" {
		return articles
	}

	res := []domain.Article{}
	for _, a := range articles {
		for _, v := range facetFn(a) {
			if v == term {
				res = append(res, a)
				break
			}
		}
	}
	return res
}

func unique(articles []domain.Article, facetFn func(domain.Article) []string) []string {
	seen := make(map[string]struct{})
	for _, a := range articles {
		for _, v := range facetFn(a) {
			seen[v] = struct{}{}
		}
	}

	res := make([]string, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

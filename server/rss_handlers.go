package server

import (
	"log"
	"net/http"

	"github.com/umputun/topstories/pkg/domain"
	"github.com/umputun/topstories/pkg/filter"
)

// rssHandler serves RSS feed of cached section articles, optionally narrowed by location and keywords query params
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if !domain.ValidSection(section) {
		http.Error(w, "Unknown section", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	filters := domain.Filters{Location: query.Get("location"), Keywords: query.Get("keywords")}
	articles := s.cache.Get(section)
	if !filters.IsEmpty() {
		articles = filter.Apply(articles, filters)
	}

	rss, err := s.generator.GenerateRSS(section, articles)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

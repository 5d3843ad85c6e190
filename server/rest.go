package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/umputun/topstories/pkg/coordinator"
	"github.com/umputun/topstories/pkg/domain"
)

// sectionInfo is a section entry of the sections list
type sectionInfo struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Default  bool   `json:"default"`
}

// filterValue is the body of a single filter update
type filterValue struct {
	Value string `json:"value"`
}

// cacheEntry describes cached articles of a section
type cacheEntry struct {
	Section   string    `json:"section"`
	Label     string    `json:"label"`
	Count     int       `json:"count"`
	FetchedAt time.Time `json:"fetched_at"`
	Valid     bool      `json:"valid"`
}

// articleView is an article with its relative publish time
type articleView struct {
	domain.Article
	PublishedAgo string `json:"publishedAgo"`
}

// articlesResponse is the current view of the selected section
type articlesResponse struct {
	Section    string            `json:"section"`
	Label      string            `json:"label"`
	State      domain.LoadState  `json:"state"`
	Loading    bool              `json:"loading"`
	Error      *domain.ErrorInfo `json:"error"`
	CacheValid bool              `json:"cache_valid"`
	Total      int               `json:"total"`
	Filtered   bool              `json:"filtered"`
	Filters    domain.Filters    `json:"filters"`
	Articles   []articleView     `json:"articles"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// sectionsHandler lists all sections, marking the selected one and the ones offered first
func (s *Server) sectionsHandler(w http.ResponseWriter, r *http.Request) {
	selected := s.prefs.Get().SelectedSection
	sections := domain.Sections()
	res := make([]sectionInfo, 0, len(sections))
	for _, name := range sections {
		res = append(res, sectionInfo{Name: name, Label: domain.SectionLabel(name), Selected: name == selected,
			Default: slices.Contains(domain.DefaultSections, name)})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// articlesHandler returns current articles filtered by saved filters.
// Query params location and keywords override saved filters.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	filters := s.prefs.Get().Filters
	query := r.URL.Query()
	if query.Has("location") {
		filters.Location = query.Get("location")
	}
	if query.Has("keywords") {
		filters.Keywords = query.Get("keywords")
	}
	s.renderArticles(w, r, filters)
}

// refreshHandler force-fetches the current section
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	s.coord.Refresh(loadContext(r))
	s.renderArticles(w, r, s.prefs.Get().Filters)
}

// selectSectionHandler saves selected section and switches to it
func (s *Server) selectSectionHandler(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if !domain.ValidSection(section) {
		renderError(w, r, fmt.Errorf("unknown section %q", section), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SetSelectedSection(r.Context(), section); err != nil {
		log.Printf("[ERROR] failed to save selected section: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.coord.SelectSection(loadContext(r), section)
	s.renderArticles(w, r, s.prefs.Get().Filters)
}

// filterOptionsHandler returns distinct locations and keywords of the current articles
func (s *Server) filterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	locations, keywords := s.coord.FilterOptions()
	renderJSON(w, r, http.StatusOK, map[string][]string{"locations": locations, "keywords": keywords})
}

// setFiltersHandler saves filters sent as JSON
func (s *Server) setFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var filters domain.Filters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		renderError(w, r, fmt.Errorf("invalid filters: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SetFilters(r.Context(), filters); err != nil {
		log.Printf("[ERROR] failed to save filters: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.renderArticles(w, r, s.prefs.Get().Filters)
}

// setFilterHandler makes handler saving a single filter sent as {"value": "..."}
func (s *Server) setFilterHandler(name string, set func(ctx context.Context, value string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req filterValue
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, r, fmt.Errorf("invalid %s filter: %w", name, err), http.StatusBadRequest)
			return
		}

		if err := set(r.Context(), req.Value); err != nil {
			log.Printf("[ERROR] failed to save %s filter: %v", name, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		s.renderArticles(w, r, s.prefs.Get().Filters)
	}
}

// clearFiltersHandler drops both filters
func (s *Server) clearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.prefs.ClearFilters(r.Context()); err != nil {
		log.Printf("[ERROR] failed to clear filters: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.renderArticles(w, r, domain.Filters{})
}

// cacheHandler lists cached sections with article counts and fetch times
func (s *Server) cacheHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot()
	now := time.Now()
	res := make([]cacheEntry, 0, len(snap.ArticlesBySection))
	for section, articles := range snap.ArticlesBySection {
		fetched := time.UnixMilli(snap.LastFetchTime[section]).UTC()
		res = append(res, cacheEntry{Section: section, Label: domain.SectionLabel(section), Count: len(articles),
			FetchedAt: fetched, Valid: now.Sub(fetched) < coordinator.CacheTTL})
	}
	slices.SortFunc(res, func(a, b cacheEntry) int { return strings.Compare(a.Section, b.Section) })
	renderJSON(w, r, http.StatusOK, res)
}

// clearCacheHandler wipes cached articles of all sections, preferences are kept
func (s *Server) clearCacheHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.coord.ClearArticles(r.Context()); err != nil {
		log.Printf("[ERROR] failed to clear cache: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.renderArticles(w, r, s.prefs.Get().Filters)
}

// clearErrorHandler dismisses the load error
func (s *Server) clearErrorHandler(w http.ResponseWriter, r *http.Request) {
	s.coord.ClearError()
	s.renderArticles(w, r, s.prefs.Get().Filters)
}

// preferencesHandler returns saved preferences
func (s *Server) preferencesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.prefs.Get())
}

// resetPreferencesHandler restores default preferences
func (s *Server) resetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.prefs.Reset(r.Context()); err != nil {
		log.Printf("[ERROR] failed to reset preferences: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.prefs.Get())
}

func (s *Server) renderArticles(w http.ResponseWriter, r *http.Request, filters domain.Filters) {
	renderJSON(w, r, http.StatusOK, makeArticlesResponse(s.coord.Snapshot(filters), filters, time.Now()))
}

func makeArticlesResponse(view coordinator.View, filters domain.Filters, now time.Time) articlesResponse {
	res := articlesResponse{
		Section:    view.Section,
		Label:      domain.SectionLabel(view.Section),
		State:      view.State,
		Loading:    view.Loading,
		Error:      view.Error,
		CacheValid: view.CacheValid,
		Total:      view.Total,
		Filtered:   !filters.IsEmpty(),
		Filters:    filters,
		Articles:   make([]articleView, 0, len(view.Articles)),
	}
	for _, a := range view.Articles {
		res.Articles = append(res.Articles, articleView{Article: a, PublishedAgo: domain.TimeAgo(a.PublishedDate, now)})
	}
	return res
}

// loadContext detaches article loading from the client connection, fetch has its own timeout
func loadContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

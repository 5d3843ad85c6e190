package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topstories/pkg/domain"
)

const articlesPrefix = "articles."

// emptyArticles is returned for sections without cache, shared to keep results comparable
var emptyArticles = []domain.Article{}

// sectionRecord is persisted form of a section cache
type sectionRecord struct {
	Articles  []domain.Article `json:"articles"`
	FetchedAt int64            `json:"fetched_at"` // epoch ms
}

// Snapshot is a copy of the whole articles cache
type Snapshot struct {
	ArticlesBySection map[string][]domain.Article `json:"articlesBySection"`
	LastFetchTime     map[string]int64            `json:"lastFetchTime"`
}

// ArticleStore caches articles per section together with the time of the fetch.
// Section entry is always replaced as a whole, never partially updated.
type ArticleStore struct {
	persister Persister

	mu       sync.RWMutex
	articles map[string][]domain.Article
	fetched  map[string]time.Time
}

// NewArticleStore makes empty store, persister can be nil for memory-only store
func NewArticleStore(persister Persister) *ArticleStore {
	return &ArticleStore{
		persister: persister,
		articles:  make(map[string][]domain.Article),
		fetched:   make(map[string]time.Time),
	}
}

// Restore loads all persisted sections, replacing in-memory state. Broken records are skipped.
func (s *ArticleStore) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	records, err := s.persister.List(ctx, articlesPrefix)
	if err != nil {
		return fmt.Errorf("list cached sections: %w", err)
	}

	articles := make(map[string][]domain.Article, len(records))
	fetched := make(map[string]time.Time, len(records))
	for key, val := range records {
		section := strings.TrimPrefix(key, articlesPrefix)
		var rec sectionRecord
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			lgr.Printf("[WARN] skip broken cache record for %s: %v", section, err)
			continue
		}
		if rec.Articles == nil {
			rec.Articles = emptyArticles
		}
		articles[section] = rec.Articles
		fetched[section] = time.UnixMilli(rec.FetchedAt)
	}

	s.mu.Lock()
	s.articles, s.fetched = articles, fetched
	s.mu.Unlock()

	lgr.Printf("[INFO] restored cache for %d sections", len(articles))
	return nil
}

// Get returns cached articles of the section, shared empty slice if nothing cached.
// Returned slice must not be modified.
func (s *ArticleStore) Get(section string) []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if res, ok := s.articles[section]; ok {
		return res
	}
	return emptyArticles
}

// LastFetchTime returns time of the last successful fetch of the section
func (s *ArticleStore) LastFetchTime(section string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ts, ok := s.fetched[section]
	return ts, ok
}

// Put replaces articles and fetch time of the section. The record is persisted first,
// in-memory state is changed only if persisting succeeded.
func (s *ArticleStore) Put(ctx context.Context, section string, articles []domain.Article, ts time.Time) error {
	stored := make([]domain.Article, len(articles))
	copy(stored, articles)
	ts = time.UnixMilli(ts.UnixMilli())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister != nil {
		data, err := json.Marshal(sectionRecord{Articles: stored, FetchedAt: ts.UnixMilli()})
		if err != nil {
			return fmt.Errorf("marshal section %s: %w", section, err)
		}
		if err := s.persister.Set(ctx, articlesPrefix+section, string(data)); err != nil {
			return fmt.Errorf("persist section %s: %w", section, err)
		}
	}

	s.articles[section] = stored
	s.fetched[section] = ts
	return nil
}

// ClearAll removes articles and fetch times of all sections. Other persisted state is not touched.
func (s *ArticleStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister != nil {
		if _, err := s.persister.DeletePrefix(ctx, articlesPrefix); err != nil {
			return fmt.Errorf("clear cached sections: %w", err)
		}
	}

	s.articles = make(map[string][]domain.Article)
	s.fetched = make(map[string]time.Time)
	return nil
}

// Sections returns sorted list of cached sections
func (s *ArticleStore) Sections() []string {
	s.mu.RLock()
	res := make([]string, 0, len(s.articles))
	for section := range s.articles {
		res = append(res, section)
	}
	s.mu.RUnlock()
	sort.Strings(res)
	return res
}

// Snapshot returns copy of the cache maps
func (s *ArticleStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := Snapshot{
		ArticlesBySection: make(map[string][]domain.Article, len(s.articles)),
		LastFetchTime:     make(map[string]int64, len(s.fetched)),
	}
	for section, articles := range s.articles {
		res.ArticlesBySection[section] = articles
	}
	for section, ts := range s.fetched {
		res.LastFetchTime[section] = ts.UnixMilli()
	}
	return res
}

// Package coordinator decides whether section articles are served from cache or fetched,
// falls back to cached data on failures and provides filtered views of the current articles.
package coordinator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/umputun/topstories/pkg/domain"
	"github.com/umputun/topstories/pkg/filter"
	"github.com/umputun/topstories/pkg/metrics"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// CacheTTL is how long fetched section stays valid
const CacheTTL = 5 * time.Minute

const (
	defaultErrMessage = "Failed to fetch articles"
	filteredCacheSize = 32
)

// Fetcher retrieves fresh articles of the section
type Fetcher interface {
	TopStories(ctx context.Context, section string) ([]domain.Article, error)
}

// Store is the per-section articles cache
type Store interface {
	Get(section string) []domain.Article
	LastFetchTime(section string) (time.Time, bool)
	Put(ctx context.Context, section string, articles []domain.Article, ts time.Time) error
	ClearAll(ctx context.Context) error
}

// userError is implemented by fetch errors with a message for end users
type userError interface {
	error
	UserMessage() string
	StatusCode() int
}

// Config holds optional coordinator parameters
type Config struct {
	Now     func() time.Time // clock, time.Now if not set
	Section string           // current section before the first load, default section if not set
}

// View is a consistent snapshot of the coordinator state
type View struct {
	Section    string            `json:"section"`
	State      domain.LoadState  `json:"state"`
	Loading    bool              `json:"loading"`
	Error      *domain.ErrorInfo `json:"error"`
	CacheValid bool              `json:"cache_valid"`
	Total      int               `json:"total"`
	Articles   []domain.Article  `json:"articles"`
}

// Coordinator manages loading of section articles. Each load gets a sequence number and only
// the latest one changes current articles, loading flag and error. Section cache is written only
// by a load newer than the one which wrote it last, so a slow superseded fetch can't clobber it.
type Coordinator struct {
	fetcher Fetcher
	store   Store
	now     func() time.Time

	writeMu sync.Mutex        // serializes cache writes, held without mu
	written map[string]uint64 // sequence of the last cache write per section, guarded by writeMu

	mu        sync.Mutex
	section   string
	current   []domain.Article
	loading   bool
	err       *domain.ErrorInfo
	states    map[string]domain.LoadState
	seq       uint64
	latest    uint64
	latestSec map[string]uint64
	filtered  *lru.Cache[domain.Filters, []domain.Article] // views of current, purged when it changes
}

// New makes coordinator
func New(fetcher Fetcher, store Store, cfg Config) *Coordinator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if !domain.ValidSection(cfg.Section) {
		cfg.Section = ""
	}
	filtered, _ := lru.New[domain.Filters, []domain.Article](filteredCacheSize) // fails only on non-positive size
	return &Coordinator{
		fetcher:   fetcher,
		store:     store,
		now:       cfg.Now,
		written:   make(map[string]uint64),
		section:   cfg.Section,
		current:   []domain.Article{},
		states:    make(map[string]domain.LoadState),
		latestSec: make(map[string]uint64),
		filtered:  filtered,
	}
}

// LoadArticles makes section current, serving valid non-empty cache without network call
// unless forceRefresh is set. Failures are never returned, they are recorded as Error and
// cached articles of the section, if any, are served instead.
func (c *Coordinator) LoadArticles(ctx context.Context, section string, forceRefresh bool) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.latest = seq
	c.latestSec[section] = seq
	c.section = section

	if cached := c.store.Get(section); !forceRefresh && c.cacheValid(section) && len(cached) > 0 {
		c.setCurrent(cached)
		c.states[section] = domain.StateReady
		c.loading = false
		c.mu.Unlock()
		metrics.LoadsTotal.WithLabelValues(section, metrics.ResultCacheHit).Inc()
		lgr.Printf("[DEBUG] serve %d cached articles for %s", len(cached), section)
		return
	}

	c.states[section] = domain.StateLoading
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	lgr.Printf("[DEBUG] fetch %s, force=%v", section, forceRefresh)
	started := time.Now()
	articles, err := c.fetcher.TopStories(ctx, section)
	metrics.FetchDuration.WithLabelValues(section).Observe(time.Since(started).Seconds())

	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.fail(section, seq, err)
		return
	}

	c.persist(ctx, section, seq, articles)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq == c.latestSec[section] {
		c.states[section] = domain.StateReady
	}
	if seq != c.latest {
		metrics.LoadsTotal.WithLabelValues(section, metrics.ResultSuperseded).Inc()
		lgr.Printf("[DEBUG] load #%d of %s superseded by #%d", seq, section, c.latest)
		return
	}
	c.setCurrent(articles)
	c.loading = false
	metrics.LoadsTotal.WithLabelValues(section, metrics.ResultFetched).Inc()
	lgr.Printf("[INFO] loaded %d articles for %s", len(articles), section)
}

// persist writes fetched articles to the cache unless a newer load of the section did it already.
// Readers of the coordinator state are not blocked by the write.
func (c *Coordinator) persist(ctx context.Context, section string, seq uint64, articles []domain.Article) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if seq <= c.written[section] {
		return
	}
	c.written[section] = seq
	if err := c.store.Put(context.WithoutCancel(ctx), section, articles, c.now()); err != nil {
		metrics.CacheWriteErrors.Inc()
		lgr.Printf("[WARN] failed to cache %s: %v", section, err)
	}
}

// fail records failed load, must be called with lock held
func (c *Coordinator) fail(section string, seq uint64, err error) {
	lgr.Printf("[WARN] failed to load %s: %v", section, err)

	if seq == c.latestSec[section] {
		c.states[section] = domain.StateFailed
	}
	if seq != c.latest {
		metrics.LoadsTotal.WithLabelValues(section, metrics.ResultSuperseded).Inc()
		return
	}

	info := domain.ErrorInfo{Message: defaultErrMessage}
	var uerr userError
	if errors.As(err, &uerr) {
		info = domain.ErrorInfo{Message: uerr.UserMessage(), Status: uerr.StatusCode()}
	}
	c.err = &info
	c.loading = false

	result := metrics.ResultFailed
	cached := c.store.Get(section)
	if len(cached) > 0 {
		result = metrics.ResultFallback
		lgr.Printf("[INFO] serve %d stale articles for %s", len(cached), section)
	}
	metrics.LoadsTotal.WithLabelValues(section, result).Inc()
	c.setCurrent(cached)
}

// SelectSection switches to section, preferring valid cache over network
func (c *Coordinator) SelectSection(ctx context.Context, section string) {
	c.LoadArticles(ctx, section, false)
}

// Refresh force-fetches the current section, default section if nothing was loaded yet
func (c *Coordinator) Refresh(ctx context.Context) {
	c.LoadArticles(ctx, c.Section(), true)
}

// Section returns the section of the latest load, default section if nothing was loaded yet
func (c *Coordinator) Section() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.section == "" {
		return domain.DefaultSection
	}
	return c.section
}

// Articles returns current articles narrowed by filters. Results are memoized per filters
// and the same slice is returned until current articles change.
func (c *Coordinator) Articles(filters domain.Filters) []domain.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view(filters)
}

// AllArticles returns current articles without filtering
func (c *Coordinator) AllArticles() []domain.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// FilterOptions returns sorted distinct locations and keywords of the current articles
func (c *Coordinator) FilterOptions() (locations, keywords []string) {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()
	return filter.UniqueLocations(current), filter.UniqueKeywords(current)
}

// Loading reports whether the latest load is in progress
func (c *Coordinator) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Error returns error of the latest failed load, nil if there is none
func (c *Coordinator) Error() *domain.ErrorInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return nil
	}
	res := *c.err
	return &res
}

// ClearError drops recorded error
func (c *Coordinator) ClearError() {
	c.mu.Lock()
	c.err = nil
	c.mu.Unlock()
}

// State returns load state of the section
func (c *Coordinator) State(section string) domain.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(section)
}

// IsCacheValid checks if section was fetched less than CacheTTL ago
func (c *Coordinator) IsCacheValid(section string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cacheValid(section)
}

// ClearArticles wipes cache of all sections and current articles
func (c *Coordinator) ClearArticles(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearAll(ctx); err != nil {
		return err
	}
	c.setCurrent([]domain.Article{})
	c.states = make(map[string]domain.LoadState)
	lgr.Printf("[INFO] articles cache cleared")
	return nil
}

// Snapshot returns consistent view of the state with current articles narrowed by filters
func (c *Coordinator) Snapshot(filters domain.Filters) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	section := c.section
	if section == "" {
		section = domain.DefaultSection
	}
	res := View{
		Section:    section,
		State:      c.state(section),
		Loading:    c.loading,
		CacheValid: c.cacheValid(section),
		Total:      len(c.current),
		Articles:   c.view(filters),
	}
	if c.err != nil {
		errInfo := *c.err
		res.Error = &errInfo
	}
	return res
}

func (c *Coordinator) state(section string) domain.LoadState {
	if st, ok := c.states[section]; ok {
		return st
	}
	return domain.StateIdle
}

func (c *Coordinator) cacheValid(section string) bool {
	ts, ok := c.store.LastFetchTime(section)
	if !ok {
		return false
	}
	return c.now().Sub(ts) < CacheTTL
}

func (c *Coordinator) setCurrent(articles []domain.Article) {
	c.current = articles
	c.filtered.Purge()
}

func (c *Coordinator) view(filters domain.Filters) []domain.Article {
	if res, ok := c.filtered.Get(filters); ok {
		return res
	}
	res := filter.Apply(c.current, filters)
	c.filtered.Add(filters, res)
	return res
}

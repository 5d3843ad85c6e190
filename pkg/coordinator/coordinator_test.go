package coordinator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/umputun/topstories/pkg/coordinator/mocks"
	"github.com/umputun/topstories/pkg/domain"
	"github.com/umputun/topstories/pkg/metrics"
	"github.com/umputun/topstories/pkg/nyt"
	"github.com/umputun/topstories/pkg/repository"
	"github.com/umputun/topstories/pkg/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// fakeClock is a settable clock for cache expiration checks
type fakeClock struct {
	mu sync.Mutex
	ts time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ts
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.ts = c.ts.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{ts: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
}

func staticFetcher(articles map[string][]domain.Article) *mocks.FetcherMock {
	return &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			return articles[section], nil
		},
	}
}

func TestCoordinator_LoadArticles(t *testing.T) {
	clock := newClock()
	fetcher := staticFetcher(map[string][]domain.Article{
		"world": {{ID: "w1", Title: "world news"}},
		"arts":  {{ID: "a1", Title: "arts news"}},
	})
	st := store.NewArticleStore(nil)
	c := New(fetcher, st, Config{Now: clock.Now})
	ctx := context.Background()

	assert.Equal(t, domain.DefaultSection, c.Section())
	assert.Equal(t, domain.StateIdle, c.State("world"))
	assert.Empty(t, c.AllArticles())
	assert.False(t, c.IsCacheValid("world"))

	c.LoadArticles(ctx, "world", false)
	assert.Equal(t, "world", c.Section())
	assert.Equal(t, []domain.Article{{ID: "w1", Title: "world news"}}, c.AllArticles())
	assert.Equal(t, domain.StateReady, c.State("world"))
	assert.False(t, c.Loading())
	assert.Nil(t, c.Error())
	assert.True(t, c.IsCacheValid("world"))
	assert.Len(t, fetcher.TopStoriesCalls(), 1)

	ts, ok := st.LastFetchTime("world")
	require.True(t, ok)
	assert.Equal(t, clock.Now(), ts.UTC())
	assert.Equal(t, []domain.Article{{ID: "w1", Title: "world news"}}, st.Get("world"))

	// valid cache served without fetch
	c.LoadArticles(ctx, "arts", false)
	c.LoadArticles(ctx, "world", false)
	assert.Len(t, fetcher.TopStoriesCalls(), 2)
	assert.Equal(t, "w1", c.AllArticles()[0].ID)

	// forced refresh ignores valid cache
	c.LoadArticles(ctx, "world", true)
	assert.Len(t, fetcher.TopStoriesCalls(), 3)
}

func TestCoordinator_CacheExpiration(t *testing.T) {
	tbl := []struct {
		name    string
		age     time.Duration
		fetches int
	}{
		{name: "fresh", age: 0, fetches: 1},
		{name: "just before ttl", age: 299999 * time.Millisecond, fetches: 1},
		{name: "at ttl", age: 300000 * time.Millisecond, fetches: 2},
		{name: "just after ttl", age: 300001 * time.Millisecond, fetches: 2},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			clock := newClock()
			fetcher := staticFetcher(map[string][]domain.Article{"world": {{ID: "1"}}})
			c := New(fetcher, store.NewArticleStore(nil), Config{Now: clock.Now})

			c.LoadArticles(context.Background(), "world", false)
			clock.Add(tt.age)
			assert.Equal(t, tt.fetches == 1, c.IsCacheValid("world"))

			c.SelectSection(context.Background(), "world")
			assert.Len(t, fetcher.TopStoriesCalls(), tt.fetches)
		})
	}
}

func TestCoordinator_EmptyCacheFetched(t *testing.T) {
	clock := newClock()
	fetcher := staticFetcher(map[string][]domain.Article{})
	c := New(fetcher, store.NewArticleStore(nil), Config{Now: clock.Now})

	c.LoadArticles(context.Background(), "world", false)
	assert.Empty(t, c.AllArticles())
	assert.True(t, c.IsCacheValid("world"))

	// valid but empty cache doesn't prevent fetching
	c.LoadArticles(context.Background(), "world", false)
	assert.Len(t, fetcher.TopStoriesCalls(), 2)
}

func TestCoordinator_FallbackToCache(t *testing.T) {
	clock := newClock()
	st := store.NewArticleStore(nil)
	require.NoError(t, st.Put(context.Background(), "world", []domain.Article{{ID: "1"}}, clock.Now().Add(-time.Hour)))

	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			return nil, &nyt.APIError{Kind: nyt.KindServerRejected, Status: http.StatusInternalServerError,
				Message: "Unable to load articles. Please try again."}
		},
	}
	c := New(fetcher, st, Config{Now: clock.Now})

	c.LoadArticles(context.Background(), "world", false)
	assert.Equal(t, []domain.Article{{ID: "1"}}, c.AllArticles())
	assert.Equal(t, &domain.ErrorInfo{Message: "Unable to load articles. Please try again.", Status: 500}, c.Error())
	assert.Equal(t, domain.StateFailed, c.State("world"))
	assert.False(t, c.Loading())

	// cache left as it was
	ts, ok := st.LastFetchTime("world")
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(-time.Hour), ts.UTC())

	c.ClearError()
	assert.Nil(t, c.Error())
}

func TestCoordinator_ForcedRefreshFailure(t *testing.T) {
	var apiCalls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	clock := newClock()
	st := store.NewArticleStore(nil)
	require.NoError(t, st.Put(context.Background(), "world", []domain.Article{{ID: "1"}}, clock.Now()))

	client := nyt.New(nyt.Config{BaseURL: api.URL, APIKey: "key", RetryDelay: time.Millisecond})
	c := New(client, st, Config{Now: clock.Now})

	c.LoadArticles(context.Background(), "world", true)
	assert.Equal(t, int32(3), apiCalls.Load())
	require.NotNil(t, c.Error())
	assert.Equal(t, 500, c.Error().Status)
	assert.Equal(t, "Server is temporarily unavailable. Please try again later.", c.Error().Message)
	assert.Equal(t, []domain.Article{{ID: "1"}}, c.AllArticles())
	assert.True(t, c.IsCacheValid("world"), "cache timestamp untouched")
}

func TestCoordinator_FetchAndFilter(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/world.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"uri":"u1","title":"T","geo_facet":["Paris"]}]}`))
	}))
	defer api.Close()

	c := New(nyt.New(nyt.Config{BaseURL: api.URL, APIKey: "key"}), store.NewArticleStore(nil), Config{})
	c.LoadArticles(context.Background(), "world", false)

	res := c.Articles(domain.Filters{Location: "Paris", Keywords: ""})
	require.Len(t, res, 1)
	assert.Equal(t, "u1", res[0].ID)
	assert.Equal(t, "T", res[0].Title)

	assert.Empty(t, c.Articles(domain.Filters{Location: "paris"}))
}

func TestCoordinator_FailureWithoutCache(t *testing.T) {
	tbl := []struct {
		name string
		err  error
		exp  domain.ErrorInfo
	}{
		{name: "api error", err: &nyt.APIError{Kind: nyt.KindClientError, Status: 404,
			Message: "No articles available for this section."},
			exp: domain.ErrorInfo{Message: "No articles available for this section.", Status: 404}},
		{name: "wrapped api error", err: fmt.Errorf("fetch: %w", &nyt.APIError{Kind: nyt.KindNetworkFailure,
			Message: "Network connection issue. Please check your internet and try again."}),
			exp: domain.ErrorInfo{Message: "Network connection issue. Please check your internet and try again."}},
		{name: "plain error", err: errors.New("boom"), exp: domain.ErrorInfo{Message: "Failed to fetch articles"}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := staticFetcher(map[string][]domain.Article{"arts": {{ID: "a1"}}})
			c := New(fetcher, store.NewArticleStore(nil), Config{Now: newClock().Now})
			c.LoadArticles(context.Background(), "arts", false)
			require.Len(t, c.AllArticles(), 1)

			fetcher.TopStoriesFunc = func(ctx context.Context, section string) ([]domain.Article, error) {
				return nil, tt.err
			}
			c.LoadArticles(context.Background(), "world", false)
			assert.Empty(t, c.AllArticles(), "articles of other section are not shown")
			assert.Equal(t, &tt.exp, c.Error())
			assert.Equal(t, domain.StateFailed, c.State("world"))
			assert.Equal(t, domain.StateReady, c.State("arts"))
		})
	}
}

func TestCoordinator_ErrorClearedOnNextLoad(t *testing.T) {
	fail := true
	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return []domain.Article{{ID: "1"}}, nil
		},
	}
	c := New(fetcher, store.NewArticleStore(nil), Config{})

	c.LoadArticles(context.Background(), "world", false)
	require.NotNil(t, c.Error())

	fail = false
	c.Refresh(context.Background())
	assert.Nil(t, c.Error())
	assert.Equal(t, "world", fetcher.TopStoriesCalls()[1].Section)
	assert.Equal(t, []domain.Article{{ID: "1"}}, c.AllArticles())
}

func TestCoordinator_RefreshDefaultSection(t *testing.T) {
	fetcher := staticFetcher(map[string][]domain.Article{"home": {{ID: "h1"}}})
	c := New(fetcher, store.NewArticleStore(nil), Config{})

	c.Refresh(context.Background())
	require.Len(t, fetcher.TopStoriesCalls(), 1)
	assert.Equal(t, domain.DefaultSection, fetcher.TopStoriesCalls()[0].Section)
	assert.Equal(t, "h1", c.AllArticles()[0].ID)
}

func TestCoordinator_PersistFailure(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc:           func(section string) []domain.Article { return []domain.Article{} },
		LastFetchTimeFunc: func(section string) (time.Time, bool) { return time.Time{}, false },
		PutFunc: func(ctx context.Context, section string, articles []domain.Article, ts time.Time) error {
			return errors.New("disk full")
		},
	}
	fetcher := staticFetcher(map[string][]domain.Article{"world": {{ID: "1"}}})
	c := New(fetcher, st, Config{})

	c.LoadArticles(context.Background(), "world", false)
	assert.Equal(t, []domain.Article{{ID: "1"}}, c.AllArticles(), "fresh result served anyway")
	assert.Nil(t, c.Error())
	assert.Equal(t, domain.StateReady, c.State("world"))
	require.Len(t, st.PutCalls(), 1)
	assert.Equal(t, "world", st.PutCalls()[0].Section)
}

func TestCoordinator_Articles(t *testing.T) {
	articles := []domain.Article{
		{ID: "1", GeoFacet: []string{"Paris"}, DesFacet: []string{"Politics"}},
		{ID: "2", GeoFacet: []string{"London"}, DesFacet: []string{"Politics", "Economy"}},
		{ID: "3", GeoFacet: []string{"Paris", "France"}, DesFacet: []string{"Art"}},
	}
	fetcher := staticFetcher(map[string][]domain.Article{"world": articles})
	c := New(fetcher, store.NewArticleStore(nil), Config{})
	c.LoadArticles(context.Background(), "world", false)

	res := c.Articles(domain.Filters{Location: "Paris"})
	require.Len(t, res, 2)
	assert.Equal(t, "1", res[0].ID)
	assert.Equal(t, "3", res[1].ID)

	assert.Empty(t, c.Articles(domain.Filters{Location: "paris"}), "case sensitive")
	assert.Len(t, c.Articles(domain.Filters{}), 3)

	res = c.Articles(domain.Filters{Location: "Paris", Keywords: "Politics"})
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ID)

	// memoized per filters until articles change
	again := c.Articles(domain.Filters{Location: "Paris", Keywords: "Politics"})
	assert.Same(t, &res[0], &again[0])
	paris := c.Articles(domain.Filters{Location: "Paris"})
	assert.Same(t, &paris[0], &c.Articles(domain.Filters{Location: "Paris"})[0])
	assert.Same(t, &res[0], &c.Articles(domain.Filters{Location: "Paris", Keywords: "Politics"})[0])

	c.LoadArticles(context.Background(), "world", true)
	fresh := c.Articles(domain.Filters{Location: "Paris", Keywords: "Politics"})
	assert.Equal(t, res, fresh)
	assert.NotSame(t, &res[0], &fresh[0])

	locations, keywords := c.FilterOptions()
	assert.Equal(t, []string{"France", "London", "Paris"}, locations)
	assert.Equal(t, []string{"Art", "Economy", "Politics"}, keywords)
}

func TestCoordinator_ClearArticles(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	articles := store.NewArticleStore(repos.State)
	prefs := store.NewPreferenceStore(repos.State)
	require.NoError(t, prefs.SetSelectedSection(ctx, "world"))
	require.NoError(t, prefs.SetLocationFilter(ctx, "Paris"))

	fetcher := staticFetcher(map[string][]domain.Article{"world": {{ID: "1"}}, "arts": {{ID: "2"}}})
	c := New(fetcher, articles, Config{})
	c.LoadArticles(ctx, "arts", false)
	c.LoadArticles(ctx, "world", false)
	require.True(t, c.IsCacheValid("world"))

	require.NoError(t, c.ClearArticles(ctx))
	assert.Empty(t, c.AllArticles())
	assert.False(t, c.IsCacheValid("world"))
	assert.False(t, c.IsCacheValid("arts"))
	assert.Empty(t, articles.Sections())
	assert.Equal(t, domain.StateIdle, c.State("world"))

	// preferences survive, on disk too
	restored := store.NewPreferenceStore(repos.State)
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, "world", restored.Get().SelectedSection)
	assert.Equal(t, "Paris", restored.Get().Filters.Location)

	// next selection fetches again
	c.SelectSection(ctx, "world")
	assert.Len(t, fetcher.TopStoriesCalls(), 3)
}

func TestCoordinator_ClearArticlesError(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc:           func(section string) []domain.Article { return []domain.Article{} },
		LastFetchTimeFunc: func(section string) (time.Time, bool) { return time.Time{}, false },
		PutFunc: func(ctx context.Context, section string, articles []domain.Article, ts time.Time) error {
			return nil
		},
		ClearAllFunc: func(ctx context.Context) error { return errors.New("locked") },
	}
	c := New(staticFetcher(map[string][]domain.Article{"world": {{ID: "1"}}}), st, Config{})
	c.LoadArticles(context.Background(), "world", false)

	require.EqualError(t, c.ClearArticles(context.Background()), "locked")
	assert.Len(t, c.AllArticles(), 1, "current articles kept on failure")
}

func TestCoordinator_SupersededLoad(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			if section == "world" {
				close(started)
				<-release
				return []domain.Article{{ID: "slow"}}, nil
			}
			return []domain.Article{{ID: "fast"}}, nil
		},
	}
	st := store.NewArticleStore(nil)
	c := New(fetcher, st, Config{})

	done := make(chan struct{})
	go func() {
		c.LoadArticles(context.Background(), "world", false)
		close(done)
	}()
	<-started
	assert.True(t, c.Loading())
	assert.Equal(t, domain.StateLoading, c.State("world"))

	c.LoadArticles(context.Background(), "arts", false)
	assert.Equal(t, "arts", c.Section())
	assert.False(t, c.Loading())

	close(release)
	<-done

	// slow result is cached for its section but doesn't replace current view
	assert.Equal(t, []domain.Article{{ID: "fast"}}, c.AllArticles())
	assert.Equal(t, "arts", c.Section())
	assert.False(t, c.Loading())
	assert.Equal(t, []domain.Article{{ID: "slow"}}, st.Get("world"))
	assert.Equal(t, domain.StateReady, c.State("world"))
}

func TestCoordinator_StaleResultDoesNotOverwriteCache(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex
	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(started)
				<-release
				return []domain.Article{{ID: "old"}}, nil
			}
			return []domain.Article{{ID: "new"}}, nil
		},
	}
	st := store.NewArticleStore(nil)
	c := New(fetcher, st, Config{})

	done := make(chan struct{})
	go func() {
		c.LoadArticles(context.Background(), "world", true)
		close(done)
	}()
	<-started

	c.LoadArticles(context.Background(), "world", true)
	close(release)
	<-done

	assert.Equal(t, []domain.Article{{ID: "new"}}, st.Get("world"))
	assert.Equal(t, []domain.Article{{ID: "new"}}, c.AllArticles())
}

func TestCoordinator_StaleFailureIgnored(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			if section == "world" {
				close(started)
				<-release
				return nil, errors.New("boom")
			}
			return []domain.Article{{ID: "a1"}}, nil
		},
	}
	c := New(fetcher, store.NewArticleStore(nil), Config{})

	done := make(chan struct{})
	go func() {
		c.LoadArticles(context.Background(), "world", false)
		close(done)
	}()
	<-started
	c.LoadArticles(context.Background(), "arts", false)
	close(release)
	<-done

	assert.Nil(t, c.Error())
	assert.Equal(t, []domain.Article{{ID: "a1"}}, c.AllArticles())
	assert.Equal(t, domain.StateFailed, c.State("world"))
}

func TestCoordinator_Snapshot(t *testing.T) {
	articles := []domain.Article{
		{ID: "1", GeoFacet: []string{"Paris"}},
		{ID: "2", GeoFacet: []string{"Rome"}},
	}
	c := New(staticFetcher(map[string][]domain.Article{"world": articles}), store.NewArticleStore(nil), Config{})

	view := c.Snapshot(domain.Filters{})
	assert.Equal(t, View{Section: "home", State: domain.StateIdle, Articles: []domain.Article{}}, view)

	c.LoadArticles(context.Background(), "world", false)
	view = c.Snapshot(domain.Filters{Location: "Rome"})
	assert.Equal(t, "world", view.Section)
	assert.Equal(t, domain.StateReady, view.State)
	assert.True(t, view.CacheValid)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, []domain.Article{{ID: "2", GeoFacet: []string{"Rome"}}}, view.Articles)
	assert.Nil(t, view.Error)
}

func TestCoordinator_Metrics(t *testing.T) {
	loads := func(section, result string) float64 {
		return testutil.ToFloat64(metrics.LoadsTotal.WithLabelValues(section, result))
	}
	fetched, hits := loads("arts", metrics.ResultFetched), loads("arts", metrics.ResultCacheHit)
	failed, fallback := loads("arts", metrics.ResultFailed), loads("arts", metrics.ResultFallback)

	clock := newClock()
	fail := false
	fetcher := &mocks.FetcherMock{
		TopStoriesFunc: func(ctx context.Context, section string) ([]domain.Article, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return []domain.Article{{ID: "a1"}}, nil
		},
	}
	st := store.NewArticleStore(nil)
	c := New(fetcher, st, Config{Now: clock.Now})
	ctx := context.Background()

	fail = true
	c.LoadArticles(ctx, "arts", false)
	assert.InDelta(t, failed+1, loads("arts", metrics.ResultFailed), 0.001)

	fail = false
	c.LoadArticles(ctx, "arts", false)
	assert.InDelta(t, fetched+1, loads("arts", metrics.ResultFetched), 0.001)

	c.LoadArticles(ctx, "arts", false)
	assert.InDelta(t, hits+1, loads("arts", metrics.ResultCacheHit), 0.001)

	fail = true
	c.LoadArticles(ctx, "arts", true)
	assert.InDelta(t, fallback+1, loads("arts", metrics.ResultFallback), 0.001)
	assert.Len(t, c.Articles(domain.Filters{}), 1)
}

func TestCoordinator_InitialSection(t *testing.T) {
	fetcher := staticFetcher(map[string][]domain.Article{"science": {{ID: "s1"}}})

	c := New(fetcher, store.NewArticleStore(nil), Config{Section: "science"})
	assert.Equal(t, "science", c.Section())
	assert.Equal(t, "science", c.Snapshot(domain.Filters{}).Section)

	c.Refresh(context.Background())
	require.Len(t, fetcher.TopStoriesCalls(), 1)
	assert.Equal(t, "science", fetcher.TopStoriesCalls()[0].Section)
	assert.Equal(t, []domain.Article{{ID: "s1"}}, c.AllArticles())

	c = New(fetcher, store.NewArticleStore(nil), Config{Section: "weather"})
	assert.Equal(t, domain.DefaultSection, c.Section(), "unknown section ignored")
}

func TestCoordinator_CacheWriteDoesNotBlockReaders(t *testing.T) {
	putStarted, release := make(chan struct{}), make(chan struct{})
	st := &mocks.StoreMock{
		GetFunc:           func(section string) []domain.Article { return nil },
		LastFetchTimeFunc: func(section string) (time.Time, bool) { return time.Time{}, false },
		PutFunc: func(ctx context.Context, section string, articles []domain.Article, ts time.Time) error {
			close(putStarted)
			<-release
			return nil
		},
	}
	c := New(staticFetcher(map[string][]domain.Article{"world": {{ID: "1"}}}), st, Config{})

	done := make(chan struct{})
	go func() {
		c.LoadArticles(context.Background(), "world", false)
		close(done)
	}()
	<-putStarted

	read := make(chan View, 1)
	go func() { read <- c.Snapshot(domain.Filters{}) }()
	select {
	case view := <-read:
		assert.True(t, view.Loading, "load still in progress while writing")
		assert.Equal(t, domain.StateLoading, view.State)
	case <-time.After(time.Second):
		close(release)
		t.Fatal("snapshot blocked by cache write")
	}

	close(release)
	<-done
	assert.False(t, c.Loading())
	assert.Equal(t, []domain.Article{{ID: "1"}}, c.AllArticles())
	assert.Equal(t, domain.StateReady, c.State("world"))
}

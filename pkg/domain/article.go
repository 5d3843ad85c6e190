package domain

// DefaultByline is used when the source record has no byline
const DefaultByline = "Unknown Author"

// Article represents a normalized top-stories article
type Article struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Abstract      string   `json:"abstract"`
	Byline        string   `json:"byline"`
	PublishedDate string   `json:"publishedDate"`
	UpdatedDate   string   `json:"updatedDate"`
	Section       string   `json:"section"`
	Subsection    string   `json:"subsection"`
	URL           string   `json:"url"`
	ImageURL      *string  `json:"imageUrl"`
	Caption       string   `json:"caption"`
	GeoFacet      []string `json:"geoFacet"`
	DesFacet      []string `json:"desFacet"`
	OrgFacet      []string `json:"orgFacet"`
	PerFacet      []string `json:"perFacet"`
}

// Filters represents exact-match filtering criteria, empty value means no filter
type Filters struct {
	Location string `json:"location"`
	Keywords string `json:"keywords"`
}

// IsEmpty reports whether no filter is active
func (f Filters) IsEmpty() bool {
	return f.Location == "" && f.Keywords == ""
}

// ErrorInfo is the user-facing description of a failed load.
// Status is the HTTP status of the failure, 0 if there was none.
type ErrorInfo struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// LoadState is the per-section state of the cache coordinator
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// Preferences holds user selections persisted across restarts
type Preferences struct {
	SelectedSection string  `json:"selectedSection"`
	Filters         Filters `json:"filters"`
}

// DefaultPreferences returns preferences used before anything was selected
func DefaultPreferences() Preferences {
	return Preferences{SelectedSection: DefaultSection}
}

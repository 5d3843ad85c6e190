package domain

// DefaultSection is selected when the user has not picked any section yet
const DefaultSection = "home"

// sections lists every section supported by the top stories API
var sections = []string{
	"home", "arts", "automobiles", "books", "business", "fashion", "food", "health", "insider",
	"magazine", "movies", "nyregion", "obituaries", "opinion", "politics", "realestate", "science",
	"sports", "sundayreview", "technology", "theater", "t-magazine", "travel", "upshot", "us", "world",
}

var sectionLabels = map[string]string{
	"home":       "Home",
	"world":      "World",
	"arts":       "Arts",
	"science":    "Science",
	"sports":     "Sports",
	"opinion":    "Opinion",
	"travel":     "Travel",
	"technology": "Technology",
	"business":   "Business",
	"politics":   "Politics",
	"health":     "Health",
	"food":       "Food",
	"fashion":    "Fashion",
	"movies":     "Movies",
	"theater":    "Theater",
	"books":      "Books",
}

// DefaultSections are offered first in the section picker
var DefaultSections = []string{"home", "world", "arts", "science", "sports", "opinion"}

// Sections returns a copy of all supported sections
func Sections() []string {
	res := make([]string, len(sections))
	copy(res, sections)
	return res
}

// ValidSection checks if section is supported by the API
func ValidSection(section string) bool {
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// SectionLabel returns display name of the section, the section itself if no label defined
func SectionLabel(section string) string {
	if label, ok := sectionLabels[section]; ok {
		return label
	}
	return section
}

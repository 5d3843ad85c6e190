package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSections(t *testing.T) {
	all := Sections()
	assert.Len(t, all, 26)
	assert.Contains(t, all, "t-magazine")

	// returned slice is a copy
	all[0] = "changed"
	assert.Equal(t, "home", Sections()[0])

	for _, s := range DefaultSections {
		assert.True(t, ValidSection(s), s)
	}
}

func TestValidSection(t *testing.T) {
	tests := []struct {
		section string
		want    bool
	}{
		{"home", true},
		{"world", true},
		{"sundayreview", true},
		{"World", false},
		{"", false},
		{"weather", false},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSection(tt.section))
		})
	}
}

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "Technology", SectionLabel("technology"))
	assert.Equal(t, "nyregion", SectionLabel("nyregion"))
}

func TestFilters_IsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())
	assert.False(t, Filters{Location: "Paris"}.IsEmpty())
	assert.False(t, Filters{Keywords: "Elections"}.IsEmpty())
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	assert.Equal(t, "home", prefs.SelectedSection)
	assert.True(t, prefs.Filters.IsEmpty())
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want string
	}{
		{"just now", "2024-05-10T11:59:30Z", "Just now"},
		{"minutes", "2024-05-10T11:45:00Z", "15 minutes ago"},
		{"hours", "2024-05-10T09:00:00Z", "3 hours ago"},
		{"with offset", "2024-05-10T05:00:00-04:00", "3 hours ago"},
		{"days", "2024-05-08T12:00:00Z", "2 days ago"},
		{"invalid", "yesterday", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.date, now))
		})
	}
}

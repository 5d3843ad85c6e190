package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topstories/pkg/domain"
)

const preferencesKey = "preferences"

// PreferenceStore keeps selected section and filters
type PreferenceStore struct {
	persister Persister

	mu    sync.RWMutex
	prefs domain.Preferences
}

// NewPreferenceStore makes store with default preferences, persister can be nil
func NewPreferenceStore(persister Persister) *PreferenceStore {
	return &PreferenceStore{persister: persister, prefs: domain.DefaultPreferences()}
}

// Restore loads persisted preferences. Missing or broken record leaves defaults.
func (p *PreferenceStore) Restore(ctx context.Context) error {
	if p.persister == nil {
		return nil
	}

	val, ok, err := p.persister.Get(ctx, preferencesKey)
	if err != nil {
		return fmt.Errorf("get preferences: %w", err)
	}
	if !ok {
		return nil
	}

	prefs := domain.DefaultPreferences()
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		lgr.Printf("[WARN] ignore broken preferences record: %v", err)
		return nil
	}
	if !domain.ValidSection(prefs.SelectedSection) {
		lgr.Printf("[WARN] ignore unknown persisted section %q", prefs.SelectedSection)
		prefs.SelectedSection = domain.DefaultSection
	}

	p.mu.Lock()
	p.prefs = prefs
	p.mu.Unlock()
	return nil
}

// Get returns current preferences
func (p *PreferenceStore) Get() domain.Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefs
}

// SetSelectedSection changes selected section, section must be one of the known sections
func (p *PreferenceStore) SetSelectedSection(ctx context.Context, section string) error {
	if !domain.ValidSection(section) {
		return fmt.Errorf("unknown section %q", section)
	}
	return p.update(ctx, func(prefs *domain.Preferences) { prefs.SelectedSection = section })
}

// SetLocationFilter changes location filter
func (p *PreferenceStore) SetLocationFilter(ctx context.Context, location string) error {
	return p.update(ctx, func(prefs *domain.Preferences) { prefs.Filters.Location = location })
}

// SetKeywordsFilter changes keywords filter
func (p *PreferenceStore) SetKeywordsFilter(ctx context.Context, keywords string) error {
	return p.update(ctx, func(prefs *domain.Preferences) { prefs.Filters.Keywords = keywords })
}

// SetFilters replaces both filters
func (p *PreferenceStore) SetFilters(ctx context.Context, filters domain.Filters) error {
	return p.update(ctx, func(prefs *domain.Preferences) { prefs.Filters = filters })
}

// ClearFilters resets location and keywords filters
func (p *PreferenceStore) ClearFilters(ctx context.Context) error {
	return p.update(ctx, func(prefs *domain.Preferences) { prefs.Filters = domain.Filters{} })
}

// Reset restores default preferences and drops the persisted record
func (p *PreferenceStore) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.persister != nil {
		if err := p.persister.Delete(ctx, preferencesKey); err != nil {
			return fmt.Errorf("delete preferences: %w", err)
		}
	}
	p.prefs = domain.DefaultPreferences()
	return nil
}

// update applies fn to a copy of preferences, persists and swaps it in
func (p *PreferenceStore) update(ctx context.Context, fn func(prefs *domain.Preferences)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefs := p.prefs
	fn(&prefs)

	if p.persister != nil {
		data, err := json.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("marshal preferences: %w", err)
		}
		if err := p.persister.Set(ctx, preferencesKey, string(data)); err != nil {
			return fmt.Errorf("persist preferences: %w", err)
		}
	}

	p.prefs = prefs
	return nil
}

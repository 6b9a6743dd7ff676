// file: internal/corpus/store.go
// version: 1.1.0
// guid: 0b9d7e5c-3a1f-4b8d-a6c4-2e0f1a3b5c7d

package corpus

import (
	"sync/atomic"

	"github.com/jdfalk/dealsearch/internal/models"
)

var emptyCorpus = &models.Corpus{}

// Store holds the current corpus snapshot. Snapshots are immutable; a
// reload swaps the whole pointer, so queries in flight keep whatever
// snapshot they started with and no locking is needed on the read path.
type Store struct {
	current atomic.Pointer[models.Corpus]
}

// NewStore returns an empty store. Until the first Replace, Snapshot
// returns an empty corpus and every matching operation yields empty
// results (the documented "no data" state).
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current corpus. Never nil.
func (s *Store) Snapshot() *models.Corpus {
	if c := s.current.Load(); c != nil {
		return c
	}
	return emptyCorpus
}

// Replace installs a new snapshot. A nil corpus resets to the empty state.
func (s *Store) Replace(c *models.Corpus) {
	s.current.Store(c)
}

// Loaded reports whether a corpus has been installed.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Stats summarizes a snapshot for the stats endpoint and metrics gauges.
type Stats struct {
	Categories     int `json:"categories"`
	Products       int `json:"products"`
	GiftCategories int `json:"gift_categories"`
	Gifts          int `json:"gifts"`
	EarnOffers     int `json:"earn_offers"`
}

// StatsOf counts the partitions of a corpus snapshot.
func StatsOf(c *models.Corpus) Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Categories:     len(c.Categories),
		Products:       len(c.Products),
		GiftCategories: len(c.Gifts),
		Gifts:          c.GiftCount(),
		EarnOffers:     len(c.Earn),
	}
}

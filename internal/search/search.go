// file: internal/search/search.go
// version: 1.2.0
// guid: 5b7d9f1a-3c4e-4d5f-8a6b-9c0d1e2f3a4b

package search

import (
	"strings"

	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/models"
	"github.com/jdfalk/dealsearch/internal/router"
	"github.com/jdfalk/dealsearch/internal/textmatch"
)

// Engine produces the exhaustive, unbounded result set for the results
// page. Unlike the autocomplete assembler there is no cap: display-side
// truncation or pagination is the caller's problem.
type Engine struct {
	store     *corpus.Store
	threshold float64
}

// New builds an Engine. A non-positive threshold selects the default.
func New(store *corpus.Store, threshold float64) *Engine {
	if threshold <= 0 {
		threshold = textmatch.DefaultThreshold
	}
	return &Engine{store: store, threshold: threshold}
}

// SearchAll scans every corpus partition with the substring-or-fuzzy item
// predicate and returns everything that matches, in partition order
// (products, gifts flattened in document order, earn). Always returns a
// non-nil slice so callers can serialize it as an empty array.
func (e *Engine) SearchAll(query string) []models.SearchResult {
	results := []models.SearchResult{}
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return results
	}

	snap := e.store.Snapshot()

	for _, p := range snap.Products {
		if e.matchesItem(p.Title, p.Description, p.Features, p.Category, term) {
			results = append(results, models.SearchResult{
				Type:        "product",
				Title:       p.Title,
				Description: p.Description,
				Price:       p.Price,
				Image:       p.FirstImage(),
				Link:        models.ProductLink(p.Title),
				Category:    "Products",
			})
		}
	}

	for _, gc := range snap.Gifts {
		label := router.DisplayName(gc.Key)
		for _, g := range gc.Items {
			if e.matchesItem(g.Title, g.Description, g.Features, g.Category, term) {
				results = append(results, models.SearchResult{
					Type:        "gift",
					Title:       g.Title,
					Description: g.Description,
					Price:       g.Price,
					Image:       g.FirstImage(),
					Link:        models.GiftLink(gc.Key, g.Title),
					Category:    label,
				})
			}
		}
	}

	for _, o := range snap.Earn {
		if e.matchesEarnItem(o, term) {
			results = append(results, models.SearchResult{
				Type:        "earn",
				Title:       o.Name,
				Description: o.Description,
				Reward:      o.Reward,
				Image:       o.FirstImage(),
				Link:        models.EarnPageLink,
				Category:    "Earn Money",
			})
		}
	}

	return results
}

// matchesItem is the product/gift predicate: substring containment across
// title, description, features and category, then the fuzzy equivalents.
func (e *Engine) matchesItem(title, description string, features []string, category, term string) bool {
	if strings.Contains(strings.ToLower(title), term) ||
		strings.Contains(strings.ToLower(description), term) {
		return true
	}
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	if category != "" && strings.Contains(strings.ToLower(category), term) {
		return true
	}

	if textmatch.AnyWordMatches(term, title, e.threshold) ||
		textmatch.AnyWordMatches(term, description, e.threshold) {
		return true
	}
	for _, f := range features {
		if textmatch.AnyWordMatches(term, f, e.threshold) {
			return true
		}
	}
	return category != "" && textmatch.AnyWordMatches(term, category, e.threshold)
}

// matchesEarnItem mirrors matchesItem over name/description/category/type.
func (e *Engine) matchesEarnItem(o models.EarnOffer, term string) bool {
	if strings.Contains(strings.ToLower(o.Name), term) ||
		strings.Contains(strings.ToLower(o.Description), term) {
		return true
	}
	if o.Category != "" && strings.Contains(strings.ToLower(o.Category), term) {
		return true
	}
	if o.Type != "" && strings.Contains(strings.ToLower(o.Type), term) {
		return true
	}

	if textmatch.AnyWordMatches(term, o.Name, e.threshold) ||
		textmatch.AnyWordMatches(term, o.Description, e.threshold) {
		return true
	}
	if o.Category != "" && textmatch.AnyWordMatches(term, o.Category, e.threshold) {
		return true
	}
	return o.Type != "" && textmatch.AnyWordMatches(term, o.Type, e.threshold)
}

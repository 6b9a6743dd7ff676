// file: internal/resolver/resolver.go
// version: 1.2.0
// guid: 1c5e7a9b-3d2f-4b6c-8e0a-4f5a6b7c8d9e

package resolver

import (
	"strings"

	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/models"
	"github.com/jdfalk/dealsearch/internal/router"
)

// DefaultVariants are the brand substrings accepted as exact matches in
// addition to the query itself. Historically a hard-coded list of Indian
// payment apps; it is injectable now so the matcher itself stays
// domain-agnostic, and the default keeps the historical list.
var DefaultVariants = []string{
	"google pay",
	"phonepe",
	"paytm",
	"cred",
	"amazon pay",
	"bharatpe",
}

// minVariantLen guards against trivially short variants ("app", "pay")
// matching everything.
const minVariantLen = 3

// Resolver finds the single best exact match for a submitted query.
type Resolver struct {
	store    *corpus.Store
	variants []string
}

// New builds a Resolver over the given snapshot store. A nil variants slice
// selects DefaultVariants; an explicit empty slice disables the brand list.
func New(store *corpus.Store, variants []string) *Resolver {
	if variants == nil {
		variants = DefaultVariants
	}
	return &Resolver{store: store, variants: variants}
}

// Resolve normalizes the query and walks the match priority chain:
// category route first (short-circuits everything else), then products,
// then gifts in corpus document order, then earn offers. ok is false when
// nothing matches or the query is empty.
func (r *Resolver) Resolve(query string) (models.ExactMatch, bool) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return models.ExactMatch{}, false
	}

	if key, ok := router.Route(term); ok {
		return models.ExactMatch{
			Type:  models.MatchCategory,
			Title: router.DisplayName(key),
			Link:  models.CategoryLink(key),
		}, true
	}

	snap := r.store.Snapshot()

	for _, p := range snap.Products {
		if r.isExactMatch(p.Title, term) || r.isExactMatch(p.Description, term) {
			return models.ExactMatch{
				Type:  models.MatchProduct,
				Title: p.Title,
				Link:  models.ProductLink(p.Title),
			}, true
		}
	}

	for _, gc := range snap.Gifts {
		for _, g := range gc.Items {
			if r.isExactMatch(g.Title, term) || r.isExactMatch(g.Description, term) {
				return models.ExactMatch{
					Type:  models.MatchGift,
					Title: g.Title,
					Link:  models.GiftLink(gc.Key, g.Title),
				}, true
			}
		}
	}

	for _, e := range snap.Earn {
		if r.isExactMatch(e.Name, term) || r.isExactMatch(e.Description, term) {
			return models.ExactMatch{
				Type:  models.MatchEarn,
				Title: e.Name,
				Link:  models.EarnItemLink(e.Name),
			}, true
		}
	}

	return models.ExactMatch{}, false
}

// isExactMatch reports whether text equals the normalized term, or contains
// one of the accepted variant substrings (the term itself, term+" app",
// term+" application", plus the configured brand list). Variants of three
// characters or fewer never match.
func (r *Resolver) isExactMatch(text, term string) bool {
	if text == "" {
		return false
	}
	textLower := strings.ToLower(text)
	if textLower == term {
		return true
	}

	variants := make([]string, 0, len(r.variants)+3)
	variants = append(variants, term, term+" app", term+" application")
	variants = append(variants, r.variants...)

	for _, v := range variants {
		if len(v) > minVariantLen && strings.Contains(textLower, v) {
			return true
		}
	}
	return false
}

// file: internal/suggest/suggest.go
// version: 1.2.0
// guid: 9e1b3d5f-7a2c-4e6b-8d0a-3c4d5e6f7a8b

package suggest

import (
	"fmt"
	"strings"

	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/models"
	"github.com/jdfalk/dealsearch/internal/textmatch"
)

const (
	// DefaultMaxTotal caps the combined dropdown size.
	DefaultMaxTotal = 8
	// DefaultMaxPerPartition caps product and earn suggestions each.
	// Category suggestions are deliberately uncapped.
	DefaultMaxPerPartition = 3

	descriptionSnippetLen = 100
)

// Assembler produces the bounded autocomplete feed for live typing.
type Assembler struct {
	store           *corpus.Store
	threshold       float64
	maxTotal        int
	maxPerPartition int
}

// New builds an Assembler. Zero values select the defaults.
func New(store *corpus.Store, threshold float64, maxTotal, maxPerPartition int) *Assembler {
	if threshold <= 0 {
		threshold = textmatch.DefaultThreshold
	}
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotal
	}
	if maxPerPartition <= 0 {
		maxPerPartition = DefaultMaxPerPartition
	}
	return &Assembler{
		store:           store,
		threshold:       threshold,
		maxTotal:        maxTotal,
		maxPerPartition: maxPerPartition,
	}
}

// Suggest assembles the dropdown feed: all matching categories first (corpus
// order), then up to maxPerPartition products, then up to maxPerPartition
// earn offers, hard-sliced to maxTotal. Ordering is priority-by-partition
// and corpus order within a partition; there is no relevance score.
func (a *Assembler) Suggest(query string) []models.Suggestion {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	snap := a.store.Snapshot()
	suggestions := a.categorySuggestions(snap, term)
	suggestions = append(suggestions, a.productSuggestions(snap, term)...)
	suggestions = append(suggestions, a.earnSuggestions(snap, term)...)

	if len(suggestions) > a.maxTotal {
		suggestions = suggestions[:a.maxTotal]
	}
	return suggestions
}

func (a *Assembler) categorySuggestions(snap *models.Corpus, term string) []models.Suggestion {
	var out []models.Suggestion
	for _, entry := range snap.Categories {
		cat := entry.Category
		subtitle := "Browse " + entry.Key
		if a.textMatches(term, cat.Title) ||
			a.textMatches(term, subtitle) ||
			a.textMatches(term, cat.Description) {
			out = append(out, models.Suggestion{
				Title:       cat.Title,
				Subtitle:    subtitle,
				Description: cat.Description,
				Icon:        cat.Icon,
				Category:    entry.Key,
				Link:        cat.Link,
			})
		}
	}
	return out
}

func (a *Assembler) productSuggestions(snap *models.Corpus, term string) []models.Suggestion {
	var out []models.Suggestion
	for _, p := range snap.Products {
		if len(out) >= a.maxPerPartition {
			break
		}
		if a.textMatches(term, p.Title) {
			out = append(out, models.Suggestion{
				Title:       p.Title,
				Subtitle:    fmt.Sprintf("Product - ₹%d", p.Price),
				Description: snippet(p.Description),
				Icon:        "fas fa-box",
				Category:    "product",
				Link:        models.ProductLink(p.Title),
			})
		}
	}
	return out
}

func (a *Assembler) earnSuggestions(snap *models.Corpus, term string) []models.Suggestion {
	var out []models.Suggestion
	for _, e := range snap.Earn {
		if len(out) >= a.maxPerPartition {
			break
		}
		if a.textMatches(term, e.Name) {
			out = append(out, models.Suggestion{
				Title:       e.Name,
				Subtitle:    "Earn " + e.Reward,
				Description: snippet(e.Description),
				Icon:        "fas fa-coins",
				Category:    "earn",
				Link:        models.EarnItemLink(e.Name),
			})
		}
	}
	return out
}

// textMatches is the shared substring-or-fuzzy predicate.
func (a *Assembler) textMatches(term, text string) bool {
	return strings.Contains(strings.ToLower(text), term) ||
		textmatch.AnyWordMatches(term, text, a.threshold)
}

// snippet truncates a description to the dropdown snippet length. The
// trailing ellipsis is unconditional, matching the site's rendering.
func snippet(s string) string {
	runes := []rune(s)
	if len(runes) > descriptionSnippetLen {
		runes = runes[:descriptionSnippetLen]
	}
	return string(runes) + "..."
}

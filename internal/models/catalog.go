// file: internal/models/catalog.go
// version: 1.1.0
// guid: 3c9e1f2a-7b4d-4e8f-a1c2-5d6e7f8a9b0c

package models

// Category describes a browsable category page from the catalog metadata.
type Category struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Link        string `json:"link" yaml:"link"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
}

// CategoryEntry pairs a category key with its metadata. Categories are kept
// as an ordered slice because document order drives suggestion order.
type CategoryEntry struct {
	Key      string
	Category Category
}

// Product represents a deal product
type Product struct {
	ID            int      `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Price         int      `json:"price" yaml:"price"`
	OriginalPrice int      `json:"originalPrice" yaml:"originalPrice"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Reviews       int      `json:"reviews" yaml:"reviews"`
	Category      string   `json:"category" yaml:"category"`
	Features      []string `json:"features" yaml:"features"`
	Image         string   `json:"image" yaml:"image"`
	Images        []string `json:"images" yaml:"images"`
	Brand         string   `json:"brand" yaml:"brand"`
	AffiliateLink string   `json:"affiliateLink" yaml:"affiliateLink"`
}

// FirstImage returns the primary image, falling back to the first of Images.
func (p Product) FirstImage() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// GiftItem is a single gift inside a gift category. Shaped like a product.
type GiftItem struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       int      `json:"price" yaml:"price"`
	Features    []string `json:"features" yaml:"features"`
	Category    string   `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Images      []string `json:"images" yaml:"images"`
}

// FirstImage returns the primary image, falling back to the first of Images.
func (g GiftItem) FirstImage() string {
	if g.Image != "" {
		return g.Image
	}
	if len(g.Images) > 0 {
		return g.Images[0]
	}
	return ""
}

// GiftCategory is one gift partition keyed by page name (e.g. "mom-gifts").
// Gift categories are an ordered slice: match resolution walks them in the
// order they appear in the corpus document.
type GiftCategory struct {
	Key   string
	Items []GiftItem
}

// EarnOffer is an "earn money" opportunity (cashback apps, referrals, ...).
type EarnOffer struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Reward      string `json:"reward" yaml:"reward"`
	Category    string `json:"category" yaml:"category"`
	Type        string `json:"type" yaml:"type"`
	Icon        string `json:"icon" yaml:"icon"`
	Logo        string `json:"logo" yaml:"logo"`
}

// FirstImage returns the offer icon, falling back to the logo.
func (e EarnOffer) FirstImage() string {
	if e.Icon != "" {
		return e.Icon
	}
	return e.Logo
}

// Corpus is the immutable catalog snapshot all matching runs against.
// It is never mutated after load; a reload builds a fresh Corpus.
type Corpus struct {
	Categories []CategoryEntry
	Products   []Product
	Gifts      []GiftCategory
	Earn       []EarnOffer
}

// Empty reports whether the corpus carries no data at all (the "no data"
// state before the first successful load).
func (c *Corpus) Empty() bool {
	return c == nil ||
		(len(c.Categories) == 0 && len(c.Products) == 0 && len(c.Gifts) == 0 && len(c.Earn) == 0)
}

// GiftCount returns the total number of gift items across all gift categories.
func (c *Corpus) GiftCount() int {
	n := 0
	for _, gc := range c.Gifts {
		n += len(gc.Items)
	}
	return n
}

// Suggestion is one autocomplete entry produced per query.
type Suggestion struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

// SearchResult is one full-search row for the results page.
type SearchResult struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price,omitempty"`
	Reward      string `json:"reward,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// MatchType tags which corpus partition an exact match came from.
type MatchType string

const (
	MatchCategory MatchType = "category"
	MatchProduct  MatchType = "product"
	MatchGift     MatchType = "gift"
	MatchEarn     MatchType = "earn"
)

// ExactMatch is the single highest-priority hit for a submitted query.
type ExactMatch struct {
	Type  MatchType `json:"type"`
	Title string    `json:"title"`
	Link  string    `json:"link"`
}

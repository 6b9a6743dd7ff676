// file: internal/search/search_test.go
// version: 1.1.0
// guid: 8c0e2a4b-6d5f-4e7a-9b1c-2d3e4f5a6b7c

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/models"
)

func storeWith(c *models.Corpus) *corpus.Store {
	s := corpus.NewStore()
	s.Replace(c)
	return s
}

func watchCorpus() *models.Corpus {
	return &models.Corpus{
		Products: []models.Product{
			{ID: 1, Title: "Smart Watch Series 5", Description: "Fitness tracking", Price: 4999, Image: "images/watch.jpg"},
			{ID: 2, Title: "Wireless Earbuds", Description: "Noise cancelling", Price: 2999},
			{ID: 3, Title: "Desk Lamp", Description: "LED lamp", Price: 999, Features: []string{"watch-friendly glow"}},
		},
		Gifts: []models.GiftCategory{
			{Key: "watches-gifts", Items: []models.GiftItem{
				{Title: "Classic Leather Watch", Description: "Timeless", Price: 3499},
			}},
			{Key: "mom-gifts", Items: []models.GiftItem{
				{Title: "Silk Scarf", Description: "Elegant", Price: 1499},
			}},
		},
		Earn: []models.EarnOffer{
			{Name: "Watch Ads and Earn", Description: "Get paid to watch ads", Reward: "₹10 per ad", Icon: "fas fa-coins"},
			{Name: "Survey Hub", Description: "Paid surveys", Reward: "₹50", Type: "survey"},
		},
	}
}

func TestSearchAllAcrossPartitions(t *testing.T) {
	e := New(storeWith(watchCorpus()), 0)
	results := e.SearchAll("watch")

	require.Len(t, results, 4)

	assert.Equal(t, "product", results[0].Type)
	assert.Equal(t, "Smart Watch Series 5", results[0].Title)
	assert.Equal(t, "index.html?item=Smart%20Watch%20Series%205", results[0].Link)
	assert.Equal(t, "Products", results[0].Category)
	assert.Equal(t, "images/watch.jpg", results[0].Image)

	// Feature strings participate in the product predicate.
	assert.Equal(t, "Desk Lamp", results[1].Title)

	assert.Equal(t, "gift", results[2].Type)
	assert.Equal(t, "watches-gifts.html?item=Classic%20Leather%20Watch", results[2].Link)
	assert.Equal(t, "Watches", results[2].Category)

	assert.Equal(t, "earn", results[3].Type)
	assert.Equal(t, "Watch Ads and Earn", results[3].Title)
	assert.Equal(t, "earn.html", results[3].Link)
	assert.Equal(t, "Earn Money", results[3].Category)
	assert.Equal(t, "₹10 per ad", results[3].Reward)
}

func TestSearchAllFuzzy(t *testing.T) {
	e := New(storeWith(watchCorpus()), 0)

	// "watxh" is one substitution away from "watch".
	results := e.SearchAll("watxh")
	require.NotEmpty(t, results)
	assert.Equal(t, "Smart Watch Series 5", results[0].Title)
}

func TestSearchAllEarnTypeField(t *testing.T) {
	e := New(storeWith(watchCorpus()), 0)

	results := e.SearchAll("survey")
	require.Len(t, results, 1)
	assert.Equal(t, "Survey Hub", results[0].Title)
}

func TestSearchAllNoCap(t *testing.T) {
	c := &models.Corpus{}
	for i := 0; i < 25; i++ {
		c.Products = append(c.Products, models.Product{Title: "Zebra Mug", Description: "desc"})
	}
	e := New(storeWith(c), 0)
	assert.Len(t, e.SearchAll("zebra"), 25)
}

func TestSearchAllEmpty(t *testing.T) {
	e := New(storeWith(watchCorpus()), 0)
	assert.Empty(t, e.SearchAll(""))
	assert.Empty(t, e.SearchAll("  "))
	assert.NotNil(t, e.SearchAll(""))

	unloaded := New(corpus.NewStore(), 0)
	got := unloaded.SearchAll("watch")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

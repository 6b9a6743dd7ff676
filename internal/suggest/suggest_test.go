// file: internal/suggest/suggest_test.go
// version: 1.1.0
// guid: 2d4f6a8c-0e1b-4c3d-9f5a-6b7c8d9e0f1a

package suggest

import (
	"fmt"
	"strings"
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

// Budget arithmetic: 3 matching categories (uncapped) + 3 of 5 matching
// products (per-partition cap) leaves room for exactly 2 of the 5 matching
// earn offers once the combined list is sliced to 8.
func TestSuggestBudget(t *testing.T) {
	c := &models.Corpus{}
	for i := 1; i <= 5; i++ {
		title := fmt.Sprintf("Quokka Corner %d", i)
		if i <= 3 {
			title = fmt.Sprintf("Zebra Corner %d", i)
		}
		key := fmt.Sprintf("cat-%d", i)
		c.Categories = append(c.Categories, models.CategoryEntry{
			Key:      key,
			Category: models.Category{Title: title, Description: "plain", Link: key + ".html"},
		})
	}
	for i := 1; i <= 10; i++ {
		title := fmt.Sprintf("Plain Spoon %d", i)
		if i%2 == 1 {
			title = fmt.Sprintf("Zebra Mug %d", i)
		}
		c.Products = append(c.Products, models.Product{Title: title, Description: "desc", Price: 100 * i})
	}
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("Plain Offer %d", i)
		if i%2 == 1 {
			name = fmt.Sprintf("Zebra Offer %d", i)
		}
		c.Earn = append(c.Earn, models.EarnOffer{Name: name, Description: "desc", Reward: "₹50"})
	}

	a := New(storeWith(c), 0, 0, 0)
	got := a.Suggest("zebra")

	require.Len(t, got, 8)
	// First the 3 matching categories, in corpus order.
	assert.Equal(t, "Zebra Corner 1", got[0].Title)
	assert.Equal(t, "Zebra Corner 2", got[1].Title)
	assert.Equal(t, "Zebra Corner 3", got[2].Title)
	// Then the first 3 matching products.
	assert.Equal(t, "Zebra Mug 1", got[3].Title)
	assert.Equal(t, "Zebra Mug 3", got[4].Title)
	assert.Equal(t, "Zebra Mug 5", got[5].Title)
	// The earn partition gets the 2 leftover slots.
	assert.Equal(t, "Zebra Offer 1", got[6].Title)
	assert.Equal(t, "Zebra Offer 3", got[7].Title)
}

func TestSuggestCategoryFields(t *testing.T) {
	c := &models.Corpus{
		Categories: []models.CategoryEntry{{
			Key: "watches-gifts",
			Category: models.Category{
				Title:       "Watches",
				Description: "Luxury and smart watches",
				Icon:        "fas fa-clock",
				Link:        "watches-gifts.html",
			},
		}},
	}
	a := New(storeWith(c), 0, 0, 0)

	got := a.Suggest("watch")
	require.Len(t, got, 1)
	assert.Equal(t, "Watches", got[0].Title)
	assert.Equal(t, "Browse watches-gifts", got[0].Subtitle)
	assert.Equal(t, "watches-gifts", got[0].Category)
	assert.Equal(t, "watches-gifts.html", got[0].Link)

	// The synthesized "Browse <key>" subtitle is itself matchable.
	got = a.Suggest("browse")
	require.Len(t, got, 1)
}

func TestSuggestProductFields(t *testing.T) {
	long := strings.Repeat("x", 150)
	c := &models.Corpus{
		Products: []models.Product{
			{Title: "Smart Watch Series 5", Description: long, Price: 4999},
		},
	}
	a := New(storeWith(c), 0, 0, 0)

	got := a.Suggest("smart watch")
	require.Len(t, got, 1)
	assert.Equal(t, "Product - ₹4999", got[0].Subtitle)
	assert.Equal(t, strings.Repeat("x", 100)+"...", got[0].Description)
	assert.Equal(t, "fas fa-box", got[0].Icon)
	assert.Equal(t, "product", got[0].Category)
	assert.Equal(t, "index.html?item=Smart%20Watch%20Series%205", got[0].Link)
}

func TestSuggestEarnFields(t *testing.T) {
	c := &models.Corpus{
		Earn: []models.EarnOffer{
			{Name: "Google Pay", Description: "Cashback rewards", Reward: "up to ₹500"},
		},
	}
	a := New(storeWith(c), 0, 0, 0)

	got := a.Suggest("google")
	require.Len(t, got, 1)
	assert.Equal(t, "Earn up to ₹500", got[0].Subtitle)
	assert.Equal(t, "Cashback rewards...", got[0].Description)
	assert.Equal(t, "fas fa-coins", got[0].Icon)
	assert.Equal(t, "earn", got[0].Category)
	assert.Equal(t, "earn.html?item=Google%20Pay", got[0].Link)
}

func TestSuggestFuzzyTitleMatch(t *testing.T) {
	c := &models.Corpus{
		Products: []models.Product{{Title: "Phone Stand", Description: "desc", Price: 299}},
	}
	a := New(storeWith(c), 0, 0, 0)

	got := a.Suggest("fone")
	require.Len(t, got, 1)
	assert.Equal(t, "Phone Stand", got[0].Title)
}

func TestSuggestEmptyInputs(t *testing.T) {
	a := New(storeWith(&models.Corpus{
		Products: []models.Product{{Title: "Phone Stand"}},
	}), 0, 0, 0)

	assert.Nil(t, a.Suggest(""))
	assert.Nil(t, a.Suggest("   "))

	// Unloaded corpus yields no suggestions rather than an error.
	empty := New(corpus.NewStore(), 0, 0, 0)
	assert.Empty(t, empty.Suggest("phone"))
}

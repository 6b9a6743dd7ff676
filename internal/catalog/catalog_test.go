// file: internal/catalog/catalog_test.go
// version: 1.0.0
// guid: 7b9d1f3a-5c4e-4d6f-8a0b-1c2d3e4f5a6b

package catalog

import (
	"testing"

	"github.com/jdfalk/dealsearch/internal/models"
)

var grid = []models.Product{
	{ID: 1, Title: "Wireless Earbuds", Description: "Noise cancelling", Price: 2999, Reviews: 1200, Category: "gadgets"},
	{ID: 2, Title: "Smart Watch", Description: "Fitness tracking", Price: 4999, Reviews: 850, Category: "tech"},
	{ID: 3, Title: "Desk Lamp", Description: "LED lamp", Price: 999, Reviews: 2100, Category: "home"},
	{ID: 4, Title: "Camping Tent", Description: "Waterproof tent", Price: 5999, Reviews: 850, Category: "outdoor"},
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(grid, "tech")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("FilterByCategory(tech) = %v", got)
	}
	if got := FilterByCategory(grid, "all"); len(got) != 4 {
		t.Fatalf("FilterByCategory(all) kept %d", len(got))
	}
	if got := FilterByCategory(grid, "nope"); len(got) != 0 {
		t.Fatalf("FilterByCategory(nope) kept %d", len(got))
	}
}

func TestFilterBySearch(t *testing.T) {
	got := FilterBySearch(grid, "LAMP")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("FilterBySearch(LAMP) = %v", got)
	}
	got = FilterBySearch(grid, "waterproof")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("FilterBySearch(waterproof) = %v", got)
	}
	if got := FilterBySearch(grid, ""); len(got) != 4 {
		t.Fatalf("empty term kept %d", len(got))
	}
}

func TestSort(t *testing.T) {
	got := Sort(grid, SortNewest)
	if got[0].ID != 4 || got[3].ID != 1 {
		t.Fatalf("newest order wrong: %v", ids(got))
	}
	got = Sort(grid, SortPriceLow)
	if got[0].ID != 3 || got[3].ID != 4 {
		t.Fatalf("price-low order wrong: %v", ids(got))
	}
	got = Sort(grid, SortPriceHigh)
	if got[0].ID != 4 {
		t.Fatalf("price-high order wrong: %v", ids(got))
	}
	// Stable: IDs 2 and 4 share a review count, corpus order breaks the tie.
	got = Sort(grid, SortPopular)
	if got[0].ID != 3 || got[1].ID != 1 || got[2].ID != 2 || got[3].ID != 4 {
		t.Fatalf("popular order wrong: %v", ids(got))
	}
	// Unknown key leaves order alone.
	got = Sort(grid, "banana")
	if got[0].ID != 1 {
		t.Fatalf("unknown key reordered: %v", ids(got))
	}
	// Sort must not touch the input.
	if grid[0].ID != 1 {
		t.Fatal("Sort mutated its input")
	}
}

func TestPaging(t *testing.T) {
	if got := Page(grid, InitialPageSize); len(got) != 4 {
		t.Fatalf("Page clamped wrong: %d", len(got))
	}
	if got := Page(grid, 2); len(got) != 2 || got[1].ID != 2 {
		t.Fatalf("Page(2) = %v", ids(got))
	}
	if got := Page(grid, -1); len(got) != 0 {
		t.Fatalf("Page(-1) = %v", ids(got))
	}
	if NextWindow(8) != 12 {
		t.Fatal("NextWindow step wrong")
	}
	if HasMore(grid, 4) {
		t.Fatal("HasMore at end should be false")
	}
	if !HasMore(grid, 2) {
		t.Fatal("HasMore mid-list should be true")
	}
}

func ids(ps []models.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

// file: internal/catalog/catalog.go
// version: 1.0.1
// guid: 3f5a7c9e-1b2d-4c6e-8f0a-5b6c7d8e9f0a

// Package catalog holds the pure product-list transforms behind the home
// page grid: category filtering, search filtering, sorting and the
// load-more paging window. All functions copy; the corpus stays untouched.
package catalog

import (
	"slices"
	"strings"

	"github.com/jdfalk/dealsearch/internal/models"
)

// Paging constants for the product grid.
const (
	InitialPageSize = 8
	PageStep        = 4
)

// Sort keys accepted by Sort.
const (
	SortNewest    = "newest"
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterByCategory returns the products in the given category; "all" or an
// empty category selects everything. Always returns a fresh slice.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == "all" {
		return slices.Clone(products)
	}
	out := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySearch keeps products whose title or description contains the
// lowered term. An empty term keeps everything.
func FilterBySearch(products []models.Product, term string) []models.Product {
	term = strings.ToLower(term)
	if term == "" {
		return slices.Clone(products)
	}
	out := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders a copy of products by the given key: newest (ID descending),
// popular (reviews descending), price-low, price-high. Unknown keys return
// the products unchanged. Sorting is stable so corpus order breaks ties.
func Sort(products []models.Product, key string) []models.Product {
	out := slices.Clone(products)
	switch key {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.Product) int { return b.ID - a.ID })
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Product) int { return b.Reviews - a.Reviews })
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b models.Product) int { return a.Price - b.Price })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int { return b.Price - a.Price })
	}
	return out
}

// Page returns the first displayed products (the grid's visible window).
func Page(products []models.Product, displayed int) []models.Product {
	if displayed < 0 {
		displayed = 0
	}
	if displayed > len(products) {
		displayed = len(products)
	}
	return slices.Clone(products[:displayed])
}

// NextWindow grows the visible window by PageStep, as the load-more button
// does. HasMore reports whether the button should stay visible.
func NextWindow(displayed int) int {
	return displayed + PageStep
}

// HasMore reports whether more products remain beyond the visible window.
func HasMore(products []models.Product, displayed int) bool {
	return displayed < len(products)
}

// file: internal/models/links.go
// version: 1.0.1
// guid: 7e3a9c5b-1d4f-4e6a-8b2c-9d0e1f2a3b4c

package models

import (
	"net/url"
	"strings"
)

// encodeItem matches the browser's encodeURIComponent closely enough for
// the catalog's page links: spaces become %20, not +.
func encodeItem(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ProductLink is the home-page deep link for a product.
func ProductLink(title string) string {
	return "index.html?item=" + encodeItem(title)
}

// GiftLink is the category-page deep link for a gift item.
func GiftLink(categoryKey, title string) string {
	return categoryKey + ".html?item=" + encodeItem(title)
}

// EarnItemLink is the earn-page deep link for a specific offer.
func EarnItemLink(name string) string {
	return "earn.html?item=" + encodeItem(name)
}

// EarnPageLink is the bare earn page, used by full-search results.
const EarnPageLink = "earn.html"

// CategoryLink is the bare category page for a routed category key.
func CategoryLink(key string) string {
	return key + ".html"
}

// SearchResultsLink is the results page; the query itself travels through a
// session-scoped handoff slot, not the URL.
const SearchResultsLink = "search-results.html"

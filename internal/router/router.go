// file: internal/router/router.go
// version: 1.0.2
// guid: 2a7c4e9b-6d1f-4a3b-8c5e-7f0a1b2c3d4e

package router

import "strings"

// categoryEntry maps a category page key to its trigger keywords. The table
// is an ordered slice, not a map: keywords overlap across categories
// ("gift" most of all) and ties are broken strictly by declaration order.
type categoryEntry struct {
	key      string
	keywords []string
}

var categoryKeywords = []categoryEntry{
	{"mom-gifts", []string{
		"mom", "mother", "mama", "mummy", "mommy", "maternal",
		"best gift for mom", "gifts for mom", "mom gifts",
		"mothers day", "mother day", "mom birthday",
		"gift mom", "for mom", "mom present",
	}},
	{"dad-gifts", []string{
		"dad", "father", "papa", "daddy", "paternal",
		"best gift for dad", "gifts for dad", "dad gifts",
		"fathers day", "father day", "dad birthday",
		"gift dad", "for dad", "dad present",
	}},
	{"men-gifts", []string{
		"men", "male", "guy", "boyfriend", "husband", "brother",
		"best gift for men", "gifts for men", "men gifts",
		"gift men", "for men", "men present",
		"boyfriend gift", "husband gift", "brother gift",
	}},
	{"women-gifts", []string{
		"women", "female", "girl", "girlfriend", "wife", "sister",
		"best gift for women", "gifts for women", "women gifts",
		"gift women", "for women", "women present",
		"girlfriend gift", "wife gift", "sister gift",
	}},
	{"watches-gifts", []string{
		"watch", "watches", "timepiece", "clock",
		"best watch", "gift watch", "watch gift",
		"luxury watch", "smart watch", "wrist watch",
	}},
	{"perfumes-gifts", []string{
		"perfume", "perfumes", "fragrance", "cologne", "scent",
		"best perfume", "gift perfume", "perfume gift",
		"luxury perfume", "designer perfume", "men perfume", "women perfume",
	}},
	{"gift-guide", []string{
		"gift guide", "gift ideas", "gift suggestions",
		"best gifts", "gift recommendations", "what to gift",
		"gift help", "gift advice", "gift tips",
	}},
	{"earn", []string{
		"earn", "earning", "money", "cashback", "rewards",
		"referral", "referrals", "apps", "credit card", "debit card",
		"loan", "loans", "make money", "earn money",
	}},
}

var displayNames = map[string]string{
	"men-gifts":      "Men Gifts",
	"women-gifts":    "Women Gifts",
	"mom-gifts":      "Mom Gifts",
	"dad-gifts":      "Dad Gifts",
	"watches-gifts":  "Watches",
	"perfumes-gifts": "Perfumes",
}

// Route maps a normalized (lowered, trimmed) query to a category key. The
// first category whose keyword is a substring of the query wins; ok is
// false when nothing triggers.
func Route(normalizedQuery string) (key string, ok bool) {
	if normalizedQuery == "" {
		return "", false
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(normalizedQuery, kw) {
				return entry.key, true
			}
		}
	}
	return "", false
}

// DisplayName returns the human-readable title for a category key. Unknown
// keys pass through unchanged.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	return key
}

// Keys returns the routed category keys in declaration order.
func Keys() []string {
	keys := make([]string, len(categoryKeywords))
	for i, entry := range categoryKeywords {
		keys[i] = entry.key
	}
	return keys
}

// Keywords returns the trigger keywords for a category key, or nil when the
// key is not in the table.
func Keywords(key string) []string {
	for _, entry := range categoryKeywords {
		if entry.key == key {
			return entry.keywords
		}
	}
	return nil
}

// file: internal/textmatch/textmatch_test.go
// version: 1.1.0
// guid: 5e2f8c1d-9a3b-4c6d-8e0f-1a2b3c4d5e6f

package textmatch

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"phone", "phone", 0},
		{"fone", "phone", 2},
		{"Phone", "phone", 0}, // case-insensitive
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d (symmetry)", c.b, c.a, got, c.want)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "watch", "google pay", "crème"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("Similarity of two empties = %v, want 1", got)
	}
	if got := Similarity("cat", "cat"); got != 1.0 {
		t.Errorf("Similarity(cat, cat) = %v, want 1", got)
	}
	if got := Similarity("cat", "dog"); got >= 0.5 {
		t.Errorf("Similarity(cat, dog) = %v, want < 0.5", got)
	}
	// distance 2 on a 5-rune word
	if got := Similarity("fone", "phone"); got != 0.6 {
		t.Errorf("Similarity(fone, phone) = %v, want 0.6", got)
	}
}

func TestWordsMatch(t *testing.T) {
	if !WordsMatch("fone", "phone", DefaultThreshold) {
		t.Error("fone should match phone at 0.6")
	}
	if WordsMatch("xyz", "phone", DefaultThreshold) {
		t.Error("xyz should not match phone at 0.6")
	}
}

func TestAnyWordMatches(t *testing.T) {
	cases := []struct {
		query, target string
		want          bool
	}{
		{"fone", "phone", true},
		{"xyz", "phone", false},
		{"smart fone deals", "Apple iPhone 15 phone", true},
		{"", "phone", false},
		{"phone", "", false},
		{"", "", false},
		{"   ", "phone", false},
	}
	for _, c := range cases {
		if got := AnyWordMatches(c.query, c.target, DefaultThreshold); got != c.want {
			t.Errorf("AnyWordMatches(%q, %q) = %v, want %v", c.query, c.target, got, c.want)
		}
	}
}

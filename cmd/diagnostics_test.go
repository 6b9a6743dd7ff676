// file: cmd/diagnostics_test.go
// version: 2.0.0
// guid: 5b9c2e1f-8a4d-4c6b-9e0f-1a2b3c4d5e6f

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdfalk/dealsearch/internal/config"
)

func TestCorpusStatsCommand(t *testing.T) {
	setupCommandConfig(t)

	output, err := captureStdout(t, func() error {
		return runCorpusStats()
	})
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(output, "Products:        2") {
		t.Fatalf("expected product count in output, got:\n%s", output)
	}
}

func TestCorpusValidateClean(t *testing.T) {
	setupCommandConfig(t)

	output, err := captureStdout(t, func() error {
		return runCorpusValidate(true)
	})
	if err != nil {
		t.Fatalf("validate failed on clean corpus: %v", err)
	}
	if !strings.Contains(output, "No issues detected") {
		t.Fatalf("expected clean report, got:\n%s", output)
	}
}

func TestCorpusValidateFindsIssues(t *testing.T) {
	setupCommandConfig(t)

	badCorpus := `{
		"products": [
			{"id": 1, "title": "Widget", "price": 10},
			{"id": 1, "title": "Widget Clone", "price": 12},
			{"id": 2, "title": "", "price": 5}
		],
		"gifts": {
			"unroutable-gifts": [{"title": "Mystery Box", "price": 99}]
		},
		"earn": [{"name": "", "reward": "10"}]
	}`
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(badCorpus), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	config.AppConfig.CorpusPath = path

	output, err := captureStdout(t, func() error {
		return runCorpusValidate(false)
	})
	if err != nil {
		t.Fatalf("validate should not error without --strict: %v", err)
	}
	for _, want := range []string{
		"duplicate product id 1",
		"empty title",
		`gift category "unroutable-gifts" has no routing keywords`,
		"empty name",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}

	// Strict mode turns the report into a failure.
	_, err = captureStdout(t, func() error {
		return runCorpusValidate(true)
	})
	if err == nil {
		t.Fatal("expected error in strict mode")
	}
}

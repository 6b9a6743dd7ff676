// file: cmd/diagnostics.go
// version: 2.0.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdfalk/dealsearch/internal/config"
	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/models"
	"github.com/jdfalk/dealsearch/internal/router"
)

var (
	diagnosticsCmd = &cobra.Command{
		Use:   "diagnostics",
		Short: "Corpus inspection helpers",
		Long:  "Diagnostic utilities for inspecting and validating the catalog corpus file.",
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show corpus partition counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorpusStats()
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check the corpus for common data problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			return runCorpusValidate(strict)
		},
	}
)

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit nonzero when any issue is found")

	diagnosticsCmd.AddCommand(statsCmd)
	diagnosticsCmd.AddCommand(validateCmd)
}

func loadCorpusFile() (*models.Corpus, error) {
	path := config.AppConfig.CorpusPath
	c, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus from %s: %w", path, err)
	}
	return c, nil
}

func runCorpusStats() error {
	c, err := loadCorpusFile()
	if err != nil {
		return err
	}

	stats := corpus.StatsOf(c)
	if outputJSON {
		return printJSON(stats)
	}

	fmt.Printf("Corpus: %s\n", config.AppConfig.CorpusPath)
	fmt.Printf("  Categories:      %d\n", stats.Categories)
	fmt.Printf("  Products:        %d\n", stats.Products)
	fmt.Printf("  Gift categories: %d\n", stats.GiftCategories)
	fmt.Printf("  Gifts:           %d\n", stats.Gifts)
	fmt.Printf("  Earn offers:     %d\n", stats.EarnOffers)
	return nil
}

func runCorpusValidate(strict bool) error {
	c, err := loadCorpusFile()
	if err != nil {
		return err
	}

	var issues []string

	seenIDs := make(map[int]string)
	for _, p := range c.Products {
		if p.Title == "" {
			issues = append(issues, fmt.Sprintf("product id %d has an empty title", p.ID))
		}
		if prev, dup := seenIDs[p.ID]; dup {
			issues = append(issues, fmt.Sprintf("duplicate product id %d (%q and %q)", p.ID, prev, p.Title))
		} else {
			seenIDs[p.ID] = p.Title
		}
	}

	// Gift partitions the keyword router can never route to are unreachable
	// from a submitted search.
	routable := make(map[string]bool)
	for _, key := range router.Keys() {
		routable[key] = true
	}
	for _, gc := range c.Gifts {
		if !routable[gc.Key] {
			issues = append(issues, fmt.Sprintf("gift category %q has no routing keywords", gc.Key))
		}
		for _, item := range gc.Items {
			if item.Title == "" {
				issues = append(issues, fmt.Sprintf("gift in %q has an empty title", gc.Key))
			}
		}
	}

	for i, e := range c.Earn {
		if e.Name == "" {
			issues = append(issues, fmt.Sprintf("earn offer at index %d has an empty name", i))
		}
	}

	if len(issues) == 0 {
		fmt.Println("Corpus looks good. No issues detected.")
		return nil
	}

	fmt.Printf("Found %d issues:\n", len(issues))
	for i, issue := range issues {
		fmt.Printf("%2d. %s\n", i+1, issue)
	}
	if strict {
		return fmt.Errorf("%d validation issues", len(issues))
	}
	return nil
}

// file: cmd/bench.go
// version: 1.0.0
// guid: e3b5d7f9-a1c3-4e5f-b7d9-c1e3f5a7b9d1

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jdfalk/dealsearch/internal/config"
	"github.com/jdfalk/dealsearch/internal/resolver"
	"github.com/jdfalk/dealsearch/internal/search"
	"github.com/jdfalk/dealsearch/internal/suggest"
)

// benchCmd replays a query file through the matching pipeline. Useful for
// sizing corpus changes before they ship: it reports per-operation latency
// and how many queries come back empty.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Replay a query file through suggest, search and resolve",
	Long: `Replay a file of queries (one per line, # comments ignored) through the
suggest, search and resolve pipelines and report timing and hit rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesFile, _ := cmd.Flags().GetString("queries")
		rounds, _ := cmd.Flags().GetInt("rounds")
		if queriesFile == "" {
			return fmt.Errorf("--queries is required")
		}
		if rounds < 1 {
			rounds = 1
		}

		queries, err := readQueries(queriesFile)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			return fmt.Errorf("no queries found in %s", queriesFile)
		}

		store, err := loadStore()
		if err != nil {
			return err
		}

		cfg := config.AppConfig
		assembler := suggest.New(store, cfg.FuzzyThreshold, cfg.MaxSuggestions, cfg.MaxPerPartition)
		engine := search.New(store, cfg.FuzzyThreshold)
		res := resolver.New(store, cfg.ExactMatchVariants)

		total := len(queries) * rounds
		fmt.Printf("Replaying %d queries x %d rounds\n", len(queries), rounds)
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetDescription("replaying"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)

		var suggestDur, searchDur, resolveDur time.Duration
		var suggestEmpty, searchEmpty, resolveMiss int

		for r := 0; r < rounds; r++ {
			for _, q := range queries {
				start := time.Now()
				if len(assembler.Suggest(q)) == 0 {
					suggestEmpty++
				}
				suggestDur += time.Since(start)

				start = time.Now()
				if len(engine.SearchAll(q)) == 0 {
					searchEmpty++
				}
				searchDur += time.Since(start)

				start = time.Now()
				if _, ok := res.Resolve(q); !ok {
					resolveMiss++
				}
				resolveDur += time.Since(start)

				bar.Add(1)
			}
		}
		bar.Finish()

		fmt.Printf("\nResults over %d query executions:\n", total)
		fmt.Printf("  suggest: avg %v, %d empty (%.1f%%)\n",
			suggestDur/time.Duration(total), suggestEmpty, pct(suggestEmpty, total))
		fmt.Printf("  search:  avg %v, %d empty (%.1f%%)\n",
			searchDur/time.Duration(total), searchEmpty, pct(searchEmpty, total))
		fmt.Printf("  resolve: avg %v, %d misses (%.1f%%)\n",
			resolveDur/time.Duration(total), resolveMiss, pct(resolveMiss, total))
		return nil
	},
}

func init() {
	benchCmd.Flags().String("queries", "", "file with one query per line")
	benchCmd.Flags().Int("rounds", 1, "number of times to replay the file")
}

// readQueries loads the replay file. Blank lines and # comments are skipped.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open queries file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries file: %w", err)
	}
	return queries, nil
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

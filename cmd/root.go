// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/dealsearch/internal/config"
	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/resolver"
	"github.com/jdfalk/dealsearch/internal/search"
	"github.com/jdfalk/dealsearch/internal/server"
	"github.com/jdfalk/dealsearch/internal/suggest"
	"github.com/jdfalk/dealsearch/internal/watcher"
)

var cfgFile string
var corpusPath string
var watchCorpus bool
var fuzzyThreshold float64
var outputJSON bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dealsearch",
	Short: "Catalog search and suggestion engine for the deals site",
	Long: `Dealsearch loads the site catalog (categories, products, gifts and
earn offers) and answers three kinds of queries against it: live
autocomplete suggestions, exact-match resolution for submitted
searches, and full search across every catalog partition.

Run it as a CLI for one-off queries or with "serve" as an HTTP API.`,
}

// loadStore loads the configured corpus file into a fresh store. Shared by
// the one-shot query commands.
func loadStore() (*corpus.Store, error) {
	path := config.AppConfig.CorpusPath
	c, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus from %s: %w", path, err)
	}
	store := corpus.NewStore()
	store.Replace(c)
	return store, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Show autocomplete suggestions for a query",
	Long:  `Show the bounded autocomplete dropdown for a query, exactly as the site would render it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		cfg := config.AppConfig
		assembler := suggest.New(store, cfg.FuzzyThreshold, cfg.MaxSuggestions, cfg.MaxPerPartition)
		items := assembler.Suggest(args[0])

		if outputJSON {
			return printJSON(items)
		}

		if len(items) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}
		for i, s := range items {
			fmt.Printf("%2d. %s (%s)\n", i+1, s.Title, s.Subtitle)
			fmt.Printf("    -> %s\n", s.Link)
		}
		return nil
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a full search across all catalog partitions",
	Long:  `Run a full uncapped search across products, gifts and earn offers.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		engine := search.New(store, config.AppConfig.FuzzyThreshold)
		results := engine.SearchAll(args[0])

		if outputJSON {
			return printJSON(results)
		}

		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		fmt.Printf("Found %d results\n", len(results))
		for i, r := range results {
			fmt.Printf("%2d. [%s] %s\n", i+1, r.Type, r.Title)
			if r.Price > 0 {
				fmt.Printf("    Price: ₹%d\n", r.Price)
			}
			if r.Reward != "" {
				fmt.Printf("    Reward: %s\n", r.Reward)
			}
			fmt.Printf("    -> %s\n", r.Link)
		}
		return nil
	},
}

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <query>",
	Short: "Resolve a submitted query to its single best destination",
	Long: `Resolve a query the way the site handles a submitted search: category
routing first, then exact item matches in priority order. Prints the
destination link, or exits nonzero when nothing matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		res := resolver.New(store, config.AppConfig.ExactMatchVariants)
		match, ok := res.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no exact match for %q", args[0])
		}

		if outputJSON {
			return printJSON(match)
		}
		fmt.Printf("%s: %s\n", match.Type, match.Title)
		fmt.Printf("-> %s\n", match.Link)
		return nil
	},
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search API server",
	Long:  `Start the HTTP API serving suggest, search and resolve queries over the loaded corpus.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := corpus.NewStore()

		path := config.AppConfig.CorpusPath
		if c, err := corpus.Load(path); err != nil {
			// Serve anyway: every query returns empty results until a
			// reload succeeds, and health reports no_data.
			fmt.Printf("Warning: could not load corpus from %s: %v\n", path, err)
		} else {
			store.Replace(c)
			stats := corpus.StatsOf(c)
			fmt.Printf("Loaded corpus from %s: %d categories, %d products, %d gifts, %d earn offers\n",
				path, stats.Categories, stats.Products, stats.Gifts, stats.EarnOffers)
		}

		if config.AppConfig.WatchCorpus {
			w := watcher.New(func(changed string) {
				c, err := corpus.Load(changed)
				if err != nil {
					fmt.Printf("Warning: corpus reload failed: %v\n", err)
					return
				}
				store.Replace(c)
			}, watcher.DefaultDebounce)
			if err := w.Start(path); err != nil {
				return fmt.Errorf("failed to start corpus watcher: %w", err)
			}
			defer w.Stop()
			fmt.Printf("Watching %s for changes\n", path)
		}

		fmt.Println("Starting dealsearch API server...")

		srv := server.NewServer(store)
		cfg := server.GetDefaultServerConfig()

		// Override with command line flags if provided
		if port := cmd.Flag("port").Value.String(); port != "" {
			cfg.Port = port
		}
		if host := cmd.Flag("host").Value.String(); host != "" {
			cfg.Host = host
		}
		if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				cfg.ReadTimeout = d
			}
		}
		if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
			if d, err := time.ParseDuration(wt); err == nil {
				cfg.WriteTimeout = d
			}
		}
		if it := cmd.Flag("idle-timeout").Value.String(); it != "" {
			if d, err := time.ParseDuration(it); err == nil {
				cfg.IdleTimeout = d
			}
		}

		return srv.Start(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dealsearch.yaml)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "search-data.json", "path to the corpus file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&watchCorpus, "watch", false, "reload the corpus when the file changes (serve only)")
	rootCmd.PersistentFlags().Float64Var(&fuzzyThreshold, "threshold", 0.6, "fuzzy similarity threshold (0..1]")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print results as JSON")

	viper.BindPFlag("corpus_path", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("watch_corpus", rootCmd.PersistentFlags().Lookup("watch"))
	viper.BindPFlag("fuzzy_threshold", rootCmd.PersistentFlags().Lookup("threshold"))

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(diagnosticsCmd)

	// Add serve command specific flags
	serveCmd.Flags().String("port", "8080", "port to run the API server on")
	serveCmd.Flags().String("host", "localhost", "host to bind the API server to")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("idle-timeout", "60s", "idle timeout (e.g. 60s, 2m)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dealsearch")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// file: internal/config/config.go
// version: 1.1.0
// guid: 8b0d2f4a-6c5e-4d7f-9a1b-2c3d4e5f6a7b

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	CorpusPath      string
	WatchCorpus     bool
	FuzzyThreshold  float64
	MaxSuggestions  int
	MaxPerPartition int

	// ExactMatchVariants overrides the built-in brand substring list used
	// by the exact-match resolver. nil keeps the default list.
	ExactMatchVariants []string

	BasicAuthEnabled      bool
	BasicAuthUsername     string
	BasicAuthPassword     string
	BasicAuthPasswordHash string // bcrypt hash; takes precedence over the plaintext password

	RateLimitPerMinute int
	RateLimitBurst     int
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("corpus_path", "search-data.json")
	viper.SetDefault("fuzzy_threshold", 0.6)
	viper.SetDefault("max_suggestions", 8)
	viper.SetDefault("max_per_partition", 3)
	viper.SetDefault("rate_limit_per_minute", 300)
	viper.SetDefault("rate_limit_burst", 30)

	AppConfig = Config{
		CorpusPath:      viper.GetString("corpus_path"),
		WatchCorpus:     viper.GetBool("watch_corpus"),
		FuzzyThreshold:  viper.GetFloat64("fuzzy_threshold"),
		MaxSuggestions:  viper.GetInt("max_suggestions"),
		MaxPerPartition: viper.GetInt("max_per_partition"),

		BasicAuthEnabled:      viper.GetBool("basic_auth.enabled"),
		BasicAuthUsername:     viper.GetString("basic_auth.username"),
		BasicAuthPassword:     viper.GetString("basic_auth.password"),
		BasicAuthPasswordHash: viper.GetString("basic_auth.password_hash"),

		RateLimitPerMinute: viper.GetInt("rate_limit_per_minute"),
		RateLimitBurst:     viper.GetInt("rate_limit_burst"),
	}

	if viper.IsSet("exact_match_variants") {
		AppConfig.ExactMatchVariants = viper.GetStringSlice("exact_match_variants")
	}

	// Clamp nonsense values back to the defaults
	if AppConfig.FuzzyThreshold <= 0 || AppConfig.FuzzyThreshold > 1 {
		AppConfig.FuzzyThreshold = 0.6
	}
	if AppConfig.MaxSuggestions <= 0 {
		AppConfig.MaxSuggestions = 8
	}
	if AppConfig.MaxPerPartition <= 0 {
		AppConfig.MaxPerPartition = 3
	}
}

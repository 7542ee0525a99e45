package model

import (
	"fmt"
)

// Tokenizer variant names accepted by ExtractionConfig.Tokenizer.
const (
	TokenizerRegexp   = "regexp"
	TokenizerTreebank = "treebank"
)

// Config is the complete KWE configuration
type Config struct {
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Output      OutputConfig      `yaml:"output"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// ExtractionConfig controls the keyword extraction pipeline
type ExtractionConfig struct {
	// MaxKeywordSize caps the number of word tokens per keyword
	MaxKeywordSize int `yaml:"max_keyword_size"`

	// FlexibleWindow gathers every n-gram from 1 up to MaxKeywordSize
	// instead of only the longest window per chunk
	FlexibleWindow bool `yaml:"flexible_window"`

	// Tokenizer selects the word tokenizer variant: "regexp" or "treebank"
	Tokenizer string `yaml:"tokenizer"`

	// Stopwords overrides the built-in English stopword list when non-empty
	Stopwords []string `yaml:"stopwords,omitempty"`

	// ExtraPunctuation extends the built-in punctuation set
	ExtraPunctuation []string `yaml:"extra_punctuation,omitempty"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	Top     int  `yaml:"top"` // 0 means no extra truncation beyond pruning
}

// CacheConfig controls the batch result cache
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	TTLMinutes int  `yaml:"ttl_minutes"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			MaxKeywordSize: 3,
			FlexibleWindow: false,
			Tokenizer:      TokenizerRegexp,
		},
		Output: OutputConfig{
			Verbose: false,
			Top:     0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 30,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}

// Validate checks configuration invariants before a pipeline is built
func (c *Config) Validate() error {
	if c.Extraction.MaxKeywordSize <= 0 {
		return fmt.Errorf("%w: max_keyword_size must be positive, got %d",
			ErrInvalidConfiguration, c.Extraction.MaxKeywordSize)
	}
	switch c.Extraction.Tokenizer {
	case TokenizerRegexp, TokenizerTreebank:
	default:
		return fmt.Errorf("%w: unknown tokenizer %q (want %q or %q)",
			ErrInvalidConfiguration, c.Extraction.Tokenizer, TokenizerRegexp, TokenizerTreebank)
	}
	return nil
}

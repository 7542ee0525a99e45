package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/pipeline"
	"github.com/spf13/viper"
)

// loadConfig builds the effective configuration: defaults, overlaid by the
// config file and KWE_* environment (via viper). Flag overrides are applied
// by the individual commands afterwards.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("extraction.max_keyword_size") {
		cfg.Extraction.MaxKeywordSize = viper.GetInt("extraction.max_keyword_size")
	}
	if viper.IsSet("extraction.flexible_window") {
		cfg.Extraction.FlexibleWindow = viper.GetBool("extraction.flexible_window")
	}
	if viper.IsSet("extraction.tokenizer") {
		cfg.Extraction.Tokenizer = viper.GetString("extraction.tokenizer")
	}
	if viper.IsSet("extraction.stopwords") {
		cfg.Extraction.Stopwords = viper.GetStringSlice("extraction.stopwords")
	}
	if viper.IsSet("extraction.extra_punctuation") {
		cfg.Extraction.ExtraPunctuation = viper.GetStringSlice("extraction.extra_punctuation")
	}
	if viper.IsSet("output.top") {
		cfg.Output.Top = viper.GetInt("output.top")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.ttl_minutes") {
		cfg.Cache.TTLMinutes = viper.GetInt("cache.ttl_minutes")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// loadStopwordsFile reads a stopword override list, one word per line.
// Blank lines and '#' comments are skipped.
func loadStopwordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords file: %w", err)
	}
	return words, nil
}

// parseFormat resolves the --format flag; an empty flag defers to per-file
// extension detection inside the pipeline
func parseFormat(flagValue string) (pipeline.Format, error) {
	switch flagValue {
	case "":
		return pipeline.FormatAuto, nil
	case "text":
		return pipeline.FormatText, nil
	case "html":
		return pipeline.FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or html)", flagValue)
	}
}
